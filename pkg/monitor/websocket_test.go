package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"digital.vasic.assumptions/pkg/testcase"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// startServer runs a Server on an ephemeral port and waits for
// the listener to come up. The returned stop function shuts the
// server down and waits for Start to return.
func startServer(
	t *testing.T, collector *Collector,
) (*Server, func()) {
	t.Helper()

	s := NewServer("127.0.0.1:0", collector)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start(ctx)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get(
			fmt.Sprintf("http://%s/health", s.Addr()),
		)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 10*time.Millisecond)

	stop := func() {
		http.DefaultClient.CloseIdleConnections()
		cancel()
		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}
	}
	return s, stop
}

func TestServer_WSStreamsEvents(t *testing.T) {
	collector := NewCollector()
	s, stop := startServer(t, collector)
	defer stop()

	url := fmt.Sprintf("ws://%s/ws", s.Addr())
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	// First frame is the aggregate snapshot for late joiners.
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var stats Stats
	require.NoError(t, json.Unmarshal(data, &stats))
	assert.Equal(t, 0, stats.Total)

	collector.EmitResult(&testcase.Result{
		CaseID:  "a",
		Status:  testcase.StatusAborted,
		Message: "Assumption failed: no network",
	})

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err = conn.ReadMessage()
	require.NoError(t, err)

	var event Event
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, EventAborted, event.Type)
	assert.Equal(t, testcase.ID("a"), event.CaseID)
	assert.Equal(
		t, "Assumption failed: no network", event.Message,
	)
}

func TestServer_SummaryEndpoint(t *testing.T) {
	collector := NewCollector()
	collector.EmitResult(&testcase.Result{
		CaseID: "a", Status: testcase.StatusPassed,
	})

	s, stop := startServer(t, collector)
	defer stop()

	resp, err := http.Get(
		fmt.Sprintf("http://%s/summary", s.Addr()),
	)
	require.NoError(t, err)
	defer resp.Body.Close()

	var stats Stats
	require.NoError(
		t, json.NewDecoder(resp.Body).Decode(&stats),
	)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Passed)
}

func TestServer_StopIsGraceful(t *testing.T) {
	collector := NewCollector()
	s, stop := startServer(t, collector)

	ctx, cancel := context.WithTimeout(
		context.Background(), time.Second,
	)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))

	stop()
}

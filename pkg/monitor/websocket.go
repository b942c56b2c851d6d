package monitor

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Server streams run events to WebSocket clients. It exposes
// /ws for the event stream, /summary for the current aggregate
// statistics, and /health.
type Server struct {
	mu        sync.RWMutex
	collector *Collector
	clients   map[chan []byte]struct{}
	addr      string
	server    *http.Server
	listener  net.Listener
	upgrader  websocket.Upgrader
}

// clientBuffer is the per-client send queue depth. Clients that
// fall further behind than this are disconnected.
const clientBuffer = 32

// NewServer creates a monitoring server for the given collector.
func NewServer(addr string, collector *Collector) *Server {
	return &Server{
		addr:      addr,
		collector: collector,
		clients:   make(map[chan []byte]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}
}

// Start begins serving until ctx is cancelled. It returns once
// the listener is closed.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/summary", s.handleSummary)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("monitor listen on %s: %w", s.addr, err)
	}

	s.mu.Lock()
	s.listener = listener
	s.server = &http.Server{Handler: mux}
	s.mu.Unlock()

	s.collector.OnEvent(func(event Event) {
		data, err := json.Marshal(event)
		if err != nil {
			return
		}
		s.broadcast(data)
	})

	go func() {
		<-ctx.Done()
		s.server.Close()
	}()

	if err := s.server.Serve(listener); err != http.ErrServerClosed {
		return fmt.Errorf("monitor server: %w", err)
	}
	return nil
}

// Addr returns the bound listen address, useful when the
// configured address used port 0.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.RLock()
	server := s.server
	s.mu.RUnlock()

	if server != nil {
		return server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ch := make(chan []byte, clientBuffer)
	s.mu.Lock()
	s.clients[ch] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, ch)
		s.mu.Unlock()
	}()

	// Send the current aggregate state first so late joiners
	// see where the run stands.
	snap := s.collector.Snapshot()
	if data, err := json.Marshal(snap); err == nil {
		if err := conn.WriteMessage(
			websocket.TextMessage, data,
		); err != nil {
			return
		}
	}

	// Reader goroutine: drain control frames and detect close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case data := <-ch:
			deadline := time.Now().Add(5 * time.Second)
			conn.SetWriteDeadline(deadline)
			if err := conn.WriteMessage(
				websocket.TextMessage, data,
			); err != nil {
				return
			}
		}
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	snap := s.collector.Snapshot()
	json.NewEncoder(w).Encode(snap)
}

func (s *Server) broadcast(data []byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ch := range s.clients {
		select {
		case ch <- data:
		default:
			// Client too slow, skip.
		}
	}
}

package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.assumptions/pkg/testcase"
)

func newCase(id string, tags ...string) *testcase.Case {
	return &testcase.Case{
		ID:   testcase.ID(id),
		Name: id,
		Tags: tags,
		Run:  func(_ context.Context) error { return nil },
	}
}

func TestRegistry_Register_And_Get(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newCase("smoke")))

	c, err := reg.Get("smoke")
	require.NoError(t, err)
	assert.Equal(t, testcase.ID("smoke"), c.ID)
	assert.Equal(t, 1, reg.Count())
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newCase("smoke")))

	err := reg.Register(newCase("smoke"))
	assert.ErrorContains(t, err, "already registered")
}

func TestRegistry_Register_InvalidCase(t *testing.T) {
	reg := NewRegistry()
	err := reg.Register(&testcase.Case{ID: "no-run"})
	assert.ErrorContains(t, err, "invalid case")
}

func TestRegistry_Get_NotFound(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Get("absent")
	assert.ErrorContains(t, err, "case not found")
}

func TestRegistry_List_SortedByID(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newCase("charlie")))
	require.NoError(t, reg.Register(newCase("alpha")))
	require.NoError(t, reg.Register(newCase("bravo")))

	listed := reg.List()
	require.Len(t, listed, 3)
	assert.Equal(t, testcase.ID("alpha"), listed[0].ID)
	assert.Equal(t, testcase.ID("bravo"), listed[1].ID)
	assert.Equal(t, testcase.ID("charlie"), listed[2].ID)
}

func TestRegistry_ListByTag(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newCase("a", "fast")))
	require.NoError(t, reg.Register(newCase("b", "slow")))
	require.NoError(t, reg.Register(newCase("c", "fast", "slow")))

	fast := reg.ListByTag("fast")
	require.Len(t, fast, 2)
	assert.Equal(t, testcase.ID("a"), fast[0].ID)
	assert.Equal(t, testcase.ID("c"), fast[1].ID)
}

func TestRegistry_Select_AllByDefault(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newCase("a")))
	require.NoError(t, reg.Register(newCase("b")))

	selected, err := reg.Select(testcase.NewConfig())
	require.NoError(t, err)
	assert.Len(t, selected, 2)
}

func TestRegistry_Select_ExplicitIDs(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newCase("a")))
	require.NoError(t, reg.Register(newCase("b")))

	cfg := testcase.NewConfig()
	cfg.Cases = []testcase.ID{"b"}

	selected, err := reg.Select(cfg)
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, testcase.ID("b"), selected[0].ID)
}

func TestRegistry_Select_UnknownIDFails(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newCase("a")))

	cfg := testcase.NewConfig()
	cfg.Cases = []testcase.ID{"a", "ghost"}

	_, err := reg.Select(cfg)
	assert.ErrorContains(t, err, "unknown case")
}

func TestRegistry_Select_TagsNarrowSelection(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newCase("a", "fast")))
	require.NoError(t, reg.Register(newCase("b", "slow")))

	cfg := testcase.NewConfig()
	cfg.Tags = []string{"slow"}

	selected, err := reg.Select(cfg)
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, testcase.ID("b"), selected[0].ID)
}

func TestRegistry_Select_TagsApplyAfterIDs(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newCase("a", "fast")))
	require.NoError(t, reg.Register(newCase("b", "fast")))
	require.NoError(t, reg.Register(newCase("c", "slow")))

	cfg := testcase.NewConfig()
	cfg.Cases = []testcase.ID{"a", "c"}
	cfg.Tags = []string{"fast"}

	selected, err := reg.Select(cfg)
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, testcase.ID("a"), selected[0].ID)
}

func TestRegistry_Clear(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(newCase("a")))
	reg.Clear()
	assert.Equal(t, 0, reg.Count())
}

package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry() *CommandRegistry {
	r := NewCommandRegistry()
	SetupStoreCommands(r)
	return r
}

func TestCommandRegistry_StoreCommands(t *testing.T) {
	r := newRegistry()
	s := newTestState()

	res := r.Execute(":category football", s)
	require.NoError(t, res.Err)
	assert.Equal(t, "Category: Football", res.Output)
	assert.Len(t, s.Visible(), 20)

	res = r.Execute("search Real Madrid", s)
	require.NoError(t, res.Err)
	assert.Equal(t, "Real Madrid", s.SearchQuery())

	require.NoError(t, r.Execute("open 3", s).Err)
	require.NoError(t, r.Execute("size xl", s).Err)
	assert.Equal(t, "XL", s.Snapshot().SelectedSize)

	require.NoError(t, r.Execute("buy", s).Err)
	assert.Equal(t, ViewCheckout, s.View())
	require.NoError(t, r.Execute("back", s).Err)
	assert.Equal(t, ViewProduct, s.View())

	require.NoError(t, r.Execute("home", s).Err)
	require.NoError(t, r.Execute("reset", s).Err)
	snap := s.Snapshot()
	assert.Equal(t, "All", snap.SelectedCategory)
	assert.Empty(t, snap.SearchQuery)

	res = r.Execute("chat", s)
	require.NoError(t, res.Err)
	assert.Equal(t, "Stylist opened", res.Output)
}

func TestCommandRegistry_Errors(t *testing.T) {
	r := newRegistry()
	s := newTestState()

	tests := []struct {
		input   string
		errPart string
	}{
		{"dance", "unknown command"},
		{"category", "usage: category"},
		{"category Cricket", "unknown category"},
		{"open 999", "not found"},
		{"size M", "not available"},
		{"buy", "nothing to do"},
		{"back", "nothing to do"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := r.Execute(tt.input, s)
			require.Error(t, res.Err)
			assert.Contains(t, res.Err.Error(), tt.errPart)
		})
	}

	assert.Equal(t, CommandResult{}, r.Execute("   ", s))
}

func TestCommandRegistry_Aliases(t *testing.T) {
	r := newRegistry()
	s := newTestState()

	require.NoError(t, r.Execute("c Classic", s).Err)
	require.NoError(t, r.Execute("s retro", s).Err)
	snap := s.Snapshot()
	assert.Equal(t, "Classic", snap.SelectedCategory)
	assert.Equal(t, "retro", snap.SearchQuery)

	assert.Contains(t, r.GetCommands(), "category")
	res := r.Execute("help", s)
	assert.Contains(t, res.Output, "search")
}

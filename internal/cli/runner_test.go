package cli

import (
	"testing"

	"github.com/ganot/ticklist/internal/domain/todo"
	"github.com/stretchr/testify/require"
)

func TestResolveIndex(t *testing.T) {
	items := []todo.Item{
		{ID: "a", Text: "First"},
		{ID: "b", Text: "Second"},
		{ID: "c", Text: "Third"},
	}

	id, ok := resolveIndex(items, 1)
	require.True(t, ok)
	require.Equal(t, "a", id)

	id, ok = resolveIndex(items, 3)
	require.True(t, ok)
	require.Equal(t, "c", id)

	_, ok = resolveIndex(items, 0)
	require.False(t, ok)

	_, ok = resolveIndex(items, 4)
	require.False(t, ok)

	_, ok = resolveIndex(nil, 1)
	require.False(t, ok)
}

func TestStats(t *testing.T) {
	done, pending := stats([]todo.Item{
		{ID: "a", Done: true},
		{ID: "b"},
		{ID: "c", Done: true},
	})
	require.Equal(t, 2, done)
	require.Equal(t, 1, pending)

	done, pending = stats(nil)
	require.Zero(t, done)
	require.Zero(t, pending)
}

func TestFlatLines(t *testing.T) {
	require.Len(t, flatLines(nil), 1)

	lines := flatLines([]todo.Item{
		{ID: "a", Text: "First", Done: true},
		{ID: "b", Text: "Second"},
	})
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "First")
	require.Contains(t, lines[0], boxChecked)
	require.Contains(t, lines[1], boxUnchecked)
}

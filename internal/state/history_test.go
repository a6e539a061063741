package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strokeOf(pts ...Point) *Path {
	if len(pts) == 0 {
		return nil
	}
	p := NewPath(pts[0], "#000000", 3)
	for _, pt := range pts[1:] {
		p.Append(pt)
	}
	return p
}

func TestCommitRejectsSinglePoint(t *testing.T) {
	var h History
	assert.False(t, h.Commit(strokeOf(Point{X: 1, Y: 1})))
	assert.False(t, h.Commit(nil))
	assert.Equal(t, 0, h.Len())

	assert.True(t, h.Commit(strokeOf(Point{X: 1, Y: 1}, Point{X: 2, Y: 2})))
	assert.Equal(t, 1, h.Len())
}

func TestCommitIsACopy(t *testing.T) {
	var h History
	p := strokeOf(Point{X: 1, Y: 1}, Point{X: 2, Y: 2})
	require.True(t, h.Commit(p))

	// Mutating the original after commit must not reach the history.
	p.Append(Point{X: 99, Y: 99})
	got := h.Paths()
	require.Len(t, got, 1)
	assert.Len(t, got[0].Points, 2)
}

func TestUndoRemovesOnlyTheLast(t *testing.T) {
	var h History
	a := strokeOf(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 2, Y: 0})
	b := strokeOf(Point{X: 0, Y: 5}, Point{X: 1, Y: 5})
	require.True(t, h.Commit(a))
	require.True(t, h.Commit(b))

	assert.True(t, h.Undo())
	got := h.Paths()
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Len(t, got[0].Points, 3)

	assert.True(t, h.Undo())
	assert.False(t, h.Undo(), "undo on empty history is a no-op")
	assert.Equal(t, 0, h.Len())
}

func TestReplaceIsWholesale(t *testing.T) {
	var h History
	require.True(t, h.Commit(strokeOf(Point{X: 0, Y: 0}, Point{X: 1, Y: 1})))

	restored := []Path{
		*strokeOf(Point{X: 3, Y: 3}, Point{X: 4, Y: 4}),
		*strokeOf(Point{X: 5, Y: 5}, Point{X: 6, Y: 6}),
	}
	h.Replace(restored)

	got := h.Paths()
	require.Len(t, got, 2)
	assert.Equal(t, restored[0].ID, got[0].ID)
	assert.Equal(t, restored[1].ID, got[1].ID)
}

func TestPointCount(t *testing.T) {
	var h History
	assert.Equal(t, 0, h.PointCount())
	h.Commit(strokeOf(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 2, Y: 0}))
	h.Commit(strokeOf(Point{X: 0, Y: 5}, Point{X: 1, Y: 5}))
	assert.Equal(t, 5, h.PointCount())
}

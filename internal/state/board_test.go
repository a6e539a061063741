package state

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawStroke(b *Board, start Point, moves ...Point) (Path, bool) {
	b.PointerDown(start)
	for _, m := range moves {
		b.PointerMove(m)
	}
	return b.PointerUp()
}

func TestStrokeCommitsWithAllSamples(t *testing.T) {
	for _, moves := range []int{1, 2, 10} {
		b := NewBoard()
		b.PointerDown(Point{X: 0, Y: 0})
		for i := 0; i < moves; i++ {
			b.PointerMove(Point{X: float32(i + 1), Y: 0})
		}
		p, ok := b.PointerUp()
		require.True(t, ok)
		assert.Len(t, p.Points, moves+1)
		assert.Equal(t, 1, b.HistoryLen())
	}
}

func TestTapIsDiscarded(t *testing.T) {
	b := NewBoard()
	_, ok := drawStroke(b, Point{X: 5, Y: 5})
	assert.False(t, ok)
	assert.Equal(t, 0, b.HistoryLen())
}

func TestMoveWhileIdleIsIgnored(t *testing.T) {
	b := NewBoard()
	b.PointerMove(Point{X: 1, Y: 1})
	assert.False(t, b.Drawing())
	_, ok := b.Current()
	assert.False(t, ok)

	_, committed := b.PointerUp()
	assert.False(t, committed)
	assert.Equal(t, 0, b.HistoryLen())
}

func TestStyleIsCapturedAtStrokeStart(t *testing.T) {
	b := NewBoard()
	b.SetStyle("#ff0000", 5)
	b.PointerDown(Point{X: 0, Y: 0})

	// Changing the pen mid-stroke must not affect the stroke in progress.
	b.SetStyle("#0000ff", 2)
	b.PointerMove(Point{X: 1, Y: 1})
	p, ok := b.PointerUp()
	require.True(t, ok)
	assert.Equal(t, "#ff0000", p.Color)
	assert.Equal(t, float32(5), p.Stroke)

	p2, ok := drawStroke(b, Point{X: 2, Y: 2}, Point{X: 3, Y: 3})
	require.True(t, ok)
	assert.Equal(t, "#0000ff", p2.Color)
}

func TestUndoCancelsStrokeInProgress(t *testing.T) {
	b := NewBoard()
	_, ok := drawStroke(b, Point{X: 0, Y: 0}, Point{X: 1, Y: 1})
	require.True(t, ok)

	b.PointerDown(Point{X: 5, Y: 5})
	b.PointerMove(Point{X: 6, Y: 6})
	assert.True(t, b.Undo(), "undo while drawing cancels the current stroke")

	// The committed stroke is untouched, the in-progress one is gone.
	assert.Equal(t, 1, b.HistoryLen())
	_, drawing := b.Current()
	assert.False(t, drawing)

	// A later pointer-up has nothing left to commit.
	_, committed := b.PointerUp()
	assert.False(t, committed)
	assert.Equal(t, 1, b.HistoryLen())
}

func TestClearResetsEverything(t *testing.T) {
	b := NewBoard()
	drawStroke(b, Point{X: 0, Y: 0}, Point{X: 1, Y: 1})
	b.PointerDown(Point{X: 2, Y: 2})
	b.Clear()

	assert.Equal(t, 0, b.HistoryLen())
	_, ok := b.Current()
	assert.False(t, ok)
	assert.Nil(t, b.BackgroundImage())
}

func TestReplaceHistoryDropsInProgress(t *testing.T) {
	b := NewBoard()
	b.PointerDown(Point{X: 0, Y: 0})

	restored := []Path{*strokeOf(Point{X: 1, Y: 1}, Point{X: 2, Y: 2})}
	b.ReplaceHistory(restored)

	assert.Equal(t, 1, b.HistoryLen())
	_, ok := b.Current()
	assert.False(t, ok)
}

func TestApplyBackgroundImageClearsHistory(t *testing.T) {
	b := NewBoard()
	drawStroke(b, Point{X: 0, Y: 0}, Point{X: 1, Y: 1})

	gen := b.Generation()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.True(t, b.ApplyBackgroundImage(img, gen))

	assert.Equal(t, 0, b.HistoryLen())
	assert.NotNil(t, b.BackgroundImage())
	// The loaded image is not undoable.
	assert.False(t, b.Undo())
}

func TestStaleBackgroundImageIsDiscarded(t *testing.T) {
	b := NewBoard()
	gen := b.Generation()

	// The user draws while the load is outstanding.
	drawStroke(b, Point{X: 0, Y: 0}, Point{X: 1, Y: 1})

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.False(t, b.ApplyBackgroundImage(img, gen))
	assert.Equal(t, 1, b.HistoryLen(), "stale result must not clobber the drawing")
	assert.Nil(t, b.BackgroundImage())

	// With the current generation it applies.
	assert.True(t, b.ApplyBackgroundImage(img, b.Generation()))
	assert.Equal(t, 0, b.HistoryLen())
}

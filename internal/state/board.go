package state

import (
	"image"
	"log"
	"sync"
)

// Board owns everything the drawing surface displays: the committed history,
// the stroke currently being drawn, the style for the next stroke, the
// background fill and an optional background raster image (set by loading an
// external image or by a beautify result).
//
// Input arrives one event at a time from the UI thread; the mutex exists
// because image loads and beautify calls complete on their own goroutines.
type Board struct {
	mu      sync.Mutex
	history History

	current *Path
	drawing bool

	color  string
	stroke float32

	background string
	bgImage    image.Image

	// generation is bumped on every mutation that would make a pending
	// async result stale. Async operations capture the value when they
	// start and hand it back when applying.
	generation uint64
}

// NewBoard returns a board with the default pen (black, width 3) on a white
// background.
func NewBoard() *Board {
	return &Board{
		color:      "#000000",
		stroke:     3.0,
		background: "#ffffff",
	}
}

// SetStyle sets the color and width applied to the next stroke. The stroke
// in progress, if any, keeps the style it started with.
func (b *Board) SetStyle(color string, stroke float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if stroke > 0 {
		b.stroke = stroke
	}
	if color != "" {
		b.color = color
	}
}

// Style returns the current pen color and width.
func (b *Board) Style() (string, float32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.color, b.stroke
}

// Background returns the background fill color.
func (b *Board) Background() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.background
}

// PointerDown starts a new in-progress path seeded with one point and the
// current style.
func (b *Board) PointerDown(pt Point) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.drawing = true
	b.current = NewPath(pt, b.color, b.stroke)
}

// PointerMove appends a sample to the in-progress path. Moves received while
// idle are stray input and ignored.
func (b *Board) PointerMove(pt Point) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.drawing || b.current == nil {
		return
	}
	b.current.Append(pt)
}

// PointerUp ends the stroke: a path with two or more points is committed to
// history, a single-point tap is discarded. Either way the in-progress path
// is gone afterwards. Returns the committed path.
func (b *Board) PointerUp() (Path, bool) {
	b.mu.Lock()
	done := b.current
	b.current = nil
	b.drawing = false
	b.mu.Unlock()

	if done == nil {
		return Path{}, false
	}
	if !b.history.Commit(done) {
		return Path{}, false
	}
	b.bump()
	return done.Clone(), true
}

// Drawing reports whether a stroke is in progress.
func (b *Board) Drawing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.drawing
}

// Current returns a copy of the in-progress path, if any.
func (b *Board) Current() (Path, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return Path{}, false
	}
	return b.current.Clone(), true
}

// Clear empties the history, drops any in-progress stroke and removes the
// background image.
func (b *Board) Clear() {
	b.mu.Lock()
	b.current = nil
	b.drawing = false
	b.bgImage = nil
	b.mu.Unlock()
	b.history.Clear()
	b.bump()
}

// Undo removes the last committed stroke. An undo while drawing cancels the
// stroke in progress instead of touching history.
func (b *Board) Undo() bool {
	b.mu.Lock()
	if b.current != nil {
		b.current = nil
		b.drawing = false
		b.mu.Unlock()
		b.bump()
		return true
	}
	b.mu.Unlock()
	if !b.history.Undo() {
		return false
	}
	b.bump()
	return true
}

// ReplaceHistory restores a previously saved drawing, dropping any stroke in
// progress.
func (b *Board) ReplaceHistory(paths []Path) {
	b.mu.Lock()
	b.current = nil
	b.drawing = false
	b.mu.Unlock()
	b.history.Replace(paths)
	b.bump()
}

// Paths returns a snapshot of the committed history.
func (b *Board) Paths() []Path {
	return b.history.Paths()
}

// HistoryLen returns the number of committed strokes.
func (b *Board) HistoryLen() int {
	return b.history.Len()
}

// PointCount is the total sample count across committed strokes.
func (b *Board) PointCount() int {
	return b.history.PointCount()
}

// BackgroundImage returns the raster image drawn under the strokes, or nil.
func (b *Board) BackgroundImage() image.Image {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bgImage
}

// Generation returns the current state version. An async operation records
// it when it starts and passes it to ApplyBackgroundImage on completion.
func (b *Board) Generation() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.generation
}

// ApplyBackgroundImage installs a loaded or beautified image, clearing the
// vector history: strokes cannot be reconstructed from pixels, so the image
// is not undoable. A result whose generation no longer matches the board is
// stale (the user cleared, drew or loaded something else meanwhile) and is
// dropped.
func (b *Board) ApplyBackgroundImage(img image.Image, gen uint64) bool {
	if img == nil {
		return false
	}
	b.mu.Lock()
	if gen != b.generation {
		b.mu.Unlock()
		log.Printf("[board] discarding stale image result (gen %d, now %d)", gen, b.generation)
		return false
	}
	b.current = nil
	b.drawing = false
	b.bgImage = img
	b.generation++
	b.mu.Unlock()
	b.history.Clear()
	return true
}

func (b *Board) bump() {
	b.mu.Lock()
	b.generation++
	b.mu.Unlock()
}

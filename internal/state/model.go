package state

import (
	"github.com/google/uuid"
)

// Point is a coordinate in surface-local pixels, origin top-left.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Path is one freehand stroke: the points in the order they were sampled,
// plus the style captured when the stroke started. Once a path is committed
// to history it is never mutated again.
type Path struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"`
	Color  string  `json:"color"` // hex, e.g. "#1a1a1a"
	Stroke float32 `json:"stroke"`
}

// NewPath starts a path with a single point and the current style.
func NewPath(start Point, color string, stroke float32) *Path {
	return &Path{
		ID:     uuid.NewString(),
		Points: []Point{start},
		Color:  color,
		Stroke: stroke,
	}
}

// Append adds the next sampled point to the end of the path.
func (p *Path) Append(pt Point) {
	p.Points = append(p.Points, pt)
}

// Clone returns a value copy with its own points slice, so the caller can
// hold it without seeing later mutation of the original.
func (p *Path) Clone() Path {
	c := *p
	c.Points = make([]Point, len(p.Points))
	copy(c.Points, p.Points)
	return c
}

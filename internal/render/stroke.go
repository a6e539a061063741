package render

import (
	"github.com/gogpu/gg"

	"MySketchPad/internal/state"
)

// Canvas is the slice of gg.Context the stroke renderer needs. Tests swap in
// a recorder; everything else passes a real context.
type Canvas interface {
	SetHexColor(hex string)
	SetLineWidth(width float64)
	SetLineCap(cap gg.LineCap)
	SetLineJoin(join gg.LineJoin)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	Stroke() error
}

// DrawPath paints one stroke onto the canvas.
//
// Short paths are special-cased: a single point becomes a zero-length
// segment, which the round cap turns into a dot of diameter Stroke; two
// points are a straight line. From three points on the raw samples are
// smoothed: each curve ends at the midpoint of two neighbouring samples and
// uses the first of them as control point, so the stroke passes through
// every midpoint plus the first and last raw samples, pulled toward the
// pointer trajectory without wobbling through every noisy sample.
func DrawPath(dc Canvas, p state.Path) {
	pts := p.Points
	if len(pts) == 0 {
		return
	}

	dc.SetHexColor(p.Color)
	dc.SetLineWidth(float64(p.Stroke))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	dc.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	switch {
	case len(pts) == 1:
		dc.LineTo(float64(pts[0].X), float64(pts[0].Y))
	case len(pts) == 2:
		dc.LineTo(float64(pts[1].X), float64(pts[1].Y))
	default:
		for i := 1; i <= len(pts)-3; i++ {
			mx := (float64(pts[i].X) + float64(pts[i+1].X)) / 2
			my := (float64(pts[i].Y) + float64(pts[i+1].Y)) / 2
			dc.QuadraticTo(float64(pts[i].X), float64(pts[i].Y), mx, my)
		}
		// Land exactly on the last sample.
		c := pts[len(pts)-2]
		last := pts[len(pts)-1]
		dc.QuadraticTo(float64(c.X), float64(c.Y), float64(last.X), float64(last.Y))
	}
	// A failed stroke leaves this path off the surface; the next redraw
	// retries from the model.
	_ = dc.Stroke()
}

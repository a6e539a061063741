package export

import (
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"MySketchPad/internal/state"
)

// pixels per millimetre on the page; screen strokes land on A4 roughly 1:1
// with what a 96dpi display shows.
const pxPerMM = 3.0

// ExportPDF writes the committed strokes as vector curves on an A4 page,
// using the same midpoint smoothing the screen renderer uses so the print
// matches the screen.
func ExportPDF(path string, paths []state.Path) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	for _, st := range paths {
		if len(st.Points) < 2 {
			continue
		}
		r, g, b := hexToRGB(st.Color)
		p.SetDrawColor(r, g, b)
		p.SetLineWidth(float64(st.Stroke) / pxPerMM)

		pts := st.Points
		p.MoveTo(mm(pts[0].X), mm(pts[0].Y))
		if len(pts) == 2 {
			p.LineTo(mm(pts[1].X), mm(pts[1].Y))
		} else {
			for i := 1; i <= len(pts)-3; i++ {
				mx := (pts[i].X + pts[i+1].X) / 2
				my := (pts[i].Y + pts[i+1].Y) / 2
				p.CurveTo(mm(pts[i].X), mm(pts[i].Y), mm(mx), mm(my))
			}
			c := pts[len(pts)-2]
			last := pts[len(pts)-1]
			p.CurveTo(mm(c.X), mm(c.Y), mm(last.X), mm(last.Y))
		}
		p.DrawPath("D")
	}
	return p.OutputFileAndClose(path)
}

func mm(px float32) float64 {
	return float64(px) / pxPerMM
}

func hexToRGB(hex string) (int, int, int) {
	if len(hex) == 7 && hex[0] == '#' {
		r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
		g, err2 := strconv.ParseUint(hex[3:5], 16, 8)
		b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
		if err1 == nil && err2 == nil && err3 == nil {
			return int(r), int(g), int(b)
		}
	}
	return 0, 0, 0
}

package render

import (
	"image"

	"github.com/gogpu/gg"

	"MySketchPad/internal/state"
)

// DrawBoard repaints the whole surface from the model: background fill,
// then the background image (if one was loaded) scaled to fill, then every
// committed path in z-order, then the in-progress path on top. w and h are
// the surface dimensions in the same coordinate space as the path points;
// the context's matrix maps that space to pixels. Called with a fresh or
// cleared context it always produces the same pixels for the same model.
func DrawBoard(dc *gg.Context, w, h float64, background string, bgImage image.Image, paths []state.Path, current *state.Path) {
	dc.ClearWithColor(gg.Hex(background))

	if bgImage != nil {
		dc.DrawImageEx(gg.ImageBufFromImage(bgImage), gg.DrawImageOptions{
			DstWidth:  w,
			DstHeight: h,
		})
	}

	for i := range paths {
		DrawPath(dc, paths[i])
	}
	if current != nil {
		DrawPath(dc, *current)
	}
}

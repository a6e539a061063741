package ui

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"

	"MySketchPad/internal/render"
	"MySketchPad/internal/state"
)

// SketchWidget is the drawing surface: it feeds pointer and touch input into
// the board state machine and repaints the whole board from the vector model
// on every refresh. Because the raster is regenerated at the widget's current
// pixel size, a resize can never blank the canvas: the strokes are redrawn
// from the model, not kept as pixels.
type SketchWidget struct {
	widget.BaseWidget
	board     *state.Board
	raster    *canvas.Raster
	statusBar *widget.Label

	// OnStroke is called with each committed stroke.
	OnStroke func(p state.Path)
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)
var _ desktop.Hoverable = (*SketchWidget)(nil)
var _ mobile.Touchable = (*SketchWidget)(nil)

func NewSketchWidget() *SketchWidget {
	s := &SketchWidget{
		board:     state.NewBoard(),
		statusBar: widget.NewLabel("Ready"),
	}
	s.raster = canvas.NewRaster(s.draw)
	s.ExtendBaseWidget(s)
	return s
}

// draw renders the full board at the raster's pixel size. w and h are
// physical pixels while events arrive in device-independent units, so the
// context is scaled before any stroke is drawn.
func (s *SketchWidget) draw(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	dc := gg.NewContext(w, h)
	size := s.Size()
	if size.Width > 0 && size.Height > 0 {
		dc.Scale(float64(w)/float64(size.Width), float64(h)/float64(size.Height))
	}

	var current *state.Path
	if cur, ok := s.board.Current(); ok {
		current = &cur
	}
	render.DrawBoard(dc, float64(size.Width), float64(size.Height),
		s.board.Background(), s.board.BackgroundImage(), s.board.Paths(), current)
	return dc.Image()
}

// --- input: mouse and touch feed the same state machine ---

func (s *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.board.PointerDown(state.Point{X: e.Position.X, Y: e.Position.Y})
	s.Refresh()
}

func (s *SketchWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.endStroke()
}

func (s *SketchWidget) Dragged(e *fyne.DragEvent) {
	if !s.board.Drawing() {
		return
	}
	s.board.PointerMove(state.Point{X: e.Position.X, Y: e.Position.Y})
	s.Refresh()
}

func (s *SketchWidget) DragEnd() {}

func (s *SketchWidget) TouchDown(e *mobile.TouchEvent) {
	s.board.PointerDown(state.Point{X: e.Position.X, Y: e.Position.Y})
	s.Refresh()
}

func (s *SketchWidget) TouchUp(e *mobile.TouchEvent) {
	s.endStroke()
}

func (s *SketchWidget) TouchCancel(e *mobile.TouchEvent) {
	s.endStroke()
}

func (s *SketchWidget) MouseIn(*desktop.MouseEvent)    {}
func (s *SketchWidget) MouseMoved(*desktop.MouseEvent) {}

// MouseOut ends the stroke: the pointer left the surface, so there is
// nothing more to sample.
func (s *SketchWidget) MouseOut() {
	s.endStroke()
}

func (s *SketchWidget) endStroke() {
	p, committed := s.board.PointerUp()
	if committed && s.OnStroke != nil {
		s.OnStroke(p)
	}
	s.Refresh()
}

// --- imperative control surface ---

// Clear wipes the board back to the blank background.
func (s *SketchWidget) Clear() {
	s.board.Clear()
	s.SetStatus("Cleared")
	s.Refresh()
}

// Undo removes the last stroke, or cancels the stroke in progress.
func (s *SketchWidget) Undo() {
	if !s.board.Undo() {
		return
	}
	s.Refresh()
}

// ExportImage returns the committed drawing as a PNG data URI. The stroke in
// progress, if any, is not part of the export.
func (s *SketchWidget) ExportImage() (string, error) {
	size := s.Size()
	return render.Snapshot(int(size.Width), int(size.Height),
		s.board.Background(), s.board.BackgroundImage(), s.board.Paths())
}

// ReplaceHistory swaps in a previously saved drawing.
func (s *SketchWidget) ReplaceHistory(paths []state.Path) {
	s.board.ReplaceHistory(paths)
	s.Refresh()
}

// LoadRasterImage fetches an image from a file path or http(s) URL in the
// background and, once decoded, replaces the board content with it. Vector
// history cannot be rebuilt from pixels, so the history is cleared and the
// image is not undoable. A result that arrives after the user has cleared,
// drawn or loaded something else is stale and dropped.
func (s *SketchWidget) LoadRasterImage(source string) {
	gen := s.board.Generation()
	s.SetStatus("Loading image...")
	go func() {
		img, err := fetchImage(source)
		if err != nil {
			log.Printf("LoadRasterImage: %v", err)
			s.SetStatus(fmt.Sprintf("Could not load image: %v", err))
			return
		}
		if !s.board.ApplyBackgroundImage(img, gen) {
			s.SetStatus("Image load discarded (board changed)")
			return
		}
		s.SetStatus("Image loaded")
		fyne.Do(s.Refresh)
	}()
}

// ApplyBeautified installs a beautify result the same way a loaded image is
// installed, honoring the generation captured when the request started.
func (s *SketchWidget) ApplyBeautified(img image.Image, gen uint64) bool {
	if !s.board.ApplyBackgroundImage(img, gen) {
		return false
	}
	fyne.Do(s.Refresh)
	return true
}

// Generation exposes the board version for async operations.
func (s *SketchWidget) Generation() uint64 {
	return s.board.Generation()
}

// Paths returns the committed history.
func (s *SketchWidget) Paths() []state.Path {
	return s.board.Paths()
}

// PointCount is the total sample count across the committed history.
func (s *SketchWidget) PointCount() int {
	return s.board.PointCount()
}

// --- style ---

func (s *SketchWidget) SetColor(c color.Color) {
	s.board.SetStyle(colorToHex(c), 0)
}

func (s *SketchWidget) SetColorHex(hex string) {
	s.board.SetStyle(hex, 0)
}

func (s *SketchWidget) SetStroke(w float32) {
	s.board.SetStyle("", w)
}

// StrokeWidth returns the current pen width.
func (s *SketchWidget) StrokeWidth() float32 {
	_, w := s.board.Style()
	return w
}

// BackgroundHex returns the background color; the eraser draws with it.
func (s *SketchWidget) BackgroundHex() string {
	return s.board.Background()
}

// --- persistence hooks (JSON of the vector history) ---

func (s *SketchWidget) SaveToFile(writer fyne.URIWriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("Error closing writer: %v", err)
		}
	}()

	paths := s.board.Paths()
	jsonData, err := json.MarshalIndent(paths, "", "  ")
	if err != nil {
		log.Printf("SaveToFile: %v", err)
		s.SetStatus("Error saving file")
		return
	}
	if _, err := writer.Write(jsonData); err != nil {
		log.Printf("SaveToFile: %v", err)
		s.SetStatus("Error writing file")
		return
	}
	s.SetStatus(fmt.Sprintf("Saved %d strokes", len(paths)))
}

func (s *SketchWidget) LoadFromFile(reader fyne.URIReadCloser) {
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("Error closing reader: %v", err)
		}
	}()

	jsonData, err := io.ReadAll(reader)
	if err != nil {
		log.Printf("LoadFromFile: %v", err)
		s.SetStatus("Error reading file")
		return
	}
	var loaded []state.Path
	if err := json.Unmarshal(jsonData, &loaded); err != nil {
		log.Printf("LoadFromFile: %v", err)
		s.SetStatus("Error parsing file - invalid format")
		return
	}
	s.ReplaceHistory(loaded)
	s.SetStatus(fmt.Sprintf("Loaded %d strokes", len(loaded)))
}

// --- status ---

func (s *SketchWidget) SetStatus(text string) {
	fyne.Do(func() {
		s.statusBar.SetText(text)
	})
}

// StatusBar returns the label the app shell places under the board.
func (s *SketchWidget) StatusBar() fyne.CanvasObject {
	return s.statusBar
}

// --- renderer ---

func (s *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	return &sketchRenderer{widget: s}
}

type sketchRenderer struct {
	widget *SketchWidget
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.widget.raster}
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	r.widget.raster.Resize(size)
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *sketchRenderer) Refresh() {
	r.widget.raster.Refresh()
}

func (r *sketchRenderer) Destroy() {}

// --- helpers ---

func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

func fetchImage(source string) (image.Image, error) {
	var r io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", source, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetching %s: %s", source, resp.Status)
		}
		r = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		r = f
	}
	defer r.Close()

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", source, err)
	}
	return img, nil
}

package ui

import (
	"encoding/base64"
	"image/color"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MySketchPad/internal/export"
)

// We need to keep track of the last used color when switching back from the eraser.
var lastSelectedColor color.Color = color.Black

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// --- The Main Toolbar ---
func NewToolbar(board *SketchWidget, win fyne.Window, onBeautify func()) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			board.SetColor(lastSelectedColor)
			if board.StrokeWidth() > 10.0 {
				board.SetStroke(2.0)
			}
		}), // Pen
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			// Erasing is drawing with the background color.
			board.SetColorHex(board.BackgroundHex())
			board.SetStroke(20.0)
		}), // Eraser
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() {
			board.Undo()
		}),
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			board.Clear()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			saveJSON(board, win)
		}),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			loadJSON(board, win)
		}),
		widget.NewToolbarAction(theme.MediaPhotoIcon(), func() {
			savePNG(board, win)
		}),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), func() {
			savePDF(board, win)
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ColorPaletteIcon(), func() {
			if onBeautify != nil {
				onBeautify()
			}
		}), // Beautify
	)

	// --- Color Palette ---
	onColorTapped := func(c color.Color) {
		lastSelectedColor = c
		board.SetColor(c)
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.Black, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColorTapped),         // Red
		newColorSwatch(color.NRGBA{G: 255, A: 255}, onColorTapped),         // Green
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColorTapped),         // Blue
		newColorSwatch(color.NRGBA{R: 255, G: 255, A: 255}, onColorTapped), // Yellow
	)

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(1.0, 50.0)
	strokeSlider.SetValue(3.0)
	strokeSlider.OnChanged = func(val float64) {
		board.SetStroke(float32(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
	)
}

func saveJSON(board *SketchWidget, win fyne.Window) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		board.SaveToFile(writer)
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.SetFileName("sketch.json")
	d.Show()
}

func loadJSON(board *SketchWidget, win fyne.Window) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		board.LoadFromFile(reader)
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

func savePNG(board *SketchWidget, win fyne.Window) {
	uri, err := board.ExportImage()
	if err != nil {
		board.SetStatus("Nothing to export yet")
		return
	}
	// The data URI payload after the comma is the PNG itself.
	raw, err := base64.StdEncoding.DecodeString(uri[strings.IndexByte(uri, ',')+1:])
	if err != nil {
		log.Printf("savePNG: %v", err)
		board.SetStatus("Error encoding image")
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		if _, err := writer.Write(raw); err != nil {
			log.Printf("savePNG: %v", err)
			board.SetStatus("Error writing image")
			return
		}
		board.SetStatus("Exported PNG")
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	d.SetFileName("sketch.png")
	d.Show()
}

func savePDF(board *SketchWidget, win fyne.Window) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := export.ExportPDF(path, board.Paths()); err != nil {
			log.Printf("savePDF: %v", err)
			board.SetStatus("Error exporting PDF")
			return
		}
		board.SetStatus("Exported PDF")
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	d.SetFileName("sketch.pdf")
	d.Show()
}

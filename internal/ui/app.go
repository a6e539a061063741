package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"MySketchPad/internal/beautify"
	"MySketchPad/internal/render"
)

// A drawing with fewer samples than this is effectively blank and is not
// worth a round trip to the image generator.
const minBeautifyPoints = 8

// RunApp wires the board, toolbar and beautify flow into a window and
// blocks until the window closes.
func RunApp(board *SketchWidget, client *beautify.Client) {
	myApp := app.New()
	myWindow := myApp.NewWindow("MySketchPad")
	myWindow.Resize(fyne.NewSize(1024, 768))

	toolbar := NewToolbar(board, myWindow, func() {
		requestBeautify(board, client)
	})

	content := container.NewBorder(toolbar, board.StatusBar(), nil, nil, board)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}

// requestBeautify snapshots the committed drawing, guards against sending a
// blank canvas, and applies the service's answer as the new board content.
// The request runs in the background; a reply that arrives after the board
// changed is dropped.
func requestBeautify(board *SketchWidget, client *beautify.Client) {
	if client == nil {
		board.SetStatus("No beautify service configured")
		return
	}
	if board.PointCount() < minBeautifyPoints {
		board.SetStatus("Draw something first - the canvas looks empty")
		return
	}

	snapshot, err := board.ExportImage()
	if err != nil {
		board.SetStatus("Nothing to beautify yet")
		return
	}

	gen := board.Generation()
	board.SetStatus("Beautifying...")
	go func() {
		result, err := client.Beautify(snapshot)
		if err != nil {
			log.Printf("beautify failed: %v", err)
			board.SetStatus(fmt.Sprintf("Beautify failed: %v", err))
			return
		}
		img, err := render.DecodeDataURI(result)
		if err != nil {
			log.Printf("beautify result: %v", err)
			board.SetStatus("Beautify returned a broken image")
			return
		}
		if !board.ApplyBeautified(img, gen) {
			board.SetStatus("Beautify result discarded (board changed)")
			return
		}
		board.SetStatus("Beautified!")
	}()
}

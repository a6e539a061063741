package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/gg"

	"MySketchPad/internal/state"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const pngDataURIPrefix = "data:image/png;base64,"

// ErrNoSurface is returned when a snapshot is requested before the surface
// has a usable size.
var ErrNoSurface = errors.New("render: no drawing surface available")

// Snapshot renders the committed history (never the in-progress path) over
// the background at the given pixel size and returns it as a PNG data URI,
// ready to be used as a link target or sent to the beautify service.
func Snapshot(w, h int, background string, bgImage image.Image, paths []state.Path) (string, error) {
	if w <= 0 || h <= 0 {
		return "", ErrNoSurface
	}

	dc := gg.NewContext(w, h)
	DrawBoard(dc, float64(w), float64(h), background, bgImage, paths, nil)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	return pngDataURIPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeDataURI turns a base64 image data URI back into pixels. PNG, JPEG
// and GIF payloads are accepted; the beautify service answers with PNG.
func DecodeDataURI(uri string) (image.Image, error) {
	comma := strings.IndexByte(uri, ',')
	if !strings.HasPrefix(uri, "data:image/") || comma < 0 {
		return nil, fmt.Errorf("decoding image: not an image data URI")
	}
	raw, err := base64.StdEncoding.DecodeString(uri[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("decoding image payload: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}

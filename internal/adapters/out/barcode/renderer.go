// Package barcode renders shipping codes into PNG barcode images for label
// printing. It implements the code renderer port over the boombuler/barcode
// encoding library.
package barcode

import (
	"bytes"
	"fmt"
	"image/png"

	"shipping/internal/core/ports"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/qr"
)

// Renderer implements ports.CodeRenderer. Rendering is pure computation with
// no shared state, so a single Renderer is safe for concurrent use.
type Renderer struct{}

// NewRenderer creates a barcode renderer.
func NewRenderer() Renderer {
	return Renderer{}
}

// RenderCodeImage encodes code in the given symbology and scales the result
// to the requested pixel dimensions as a PNG.
func (Renderer) RenderCodeImage(code string, symbology ports.Symbology, width, height int) ([]byte, error) {
	if code == "" {
		return nil, fmt.Errorf("empty code")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}

	encoded, err := encode(code, symbology)
	if err != nil {
		return nil, fmt.Errorf("encoding %q as %s: %w", code, symbology, err)
	}

	scaled, err := barcode.Scale(encoded, width, height)
	if err != nil {
		return nil, fmt.Errorf("scaling barcode to %dx%d: %w", width, height, err)
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encoding barcode png: %w", err)
	}

	return buf.Bytes(), nil
}

func encode(code string, symbology ports.Symbology) (barcode.Barcode, error) {
	switch symbology {
	case ports.SymbologyCode128:
		return code128.Encode(code)
	case ports.SymbologyEAN13:
		return ean.Encode(code)
	case ports.SymbologyQRCode:
		return qr.Encode(code, qr.M, qr.Auto)
	default:
		return nil, fmt.Errorf("unsupported symbology %q", symbology)
	}
}

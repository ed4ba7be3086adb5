package ports

// Symbology identifies the barcode format rendered onto labels.
// Values mirror the rendering collaborator's wire vocabulary.
type Symbology string

const (
	SymbologyCode128 Symbology = "CODE128"
	SymbologyEAN13   Symbology = "EAN13"
	SymbologyQRCode  Symbology = "QR_CODE"
)

// CodeRenderer is the contract over the external label-image collaborator.
// Rendering is stateless and idempotent: the output is a pure function of the
// four inputs.
type CodeRenderer interface {
	// RenderCodeImage renders code as a PNG image of the given symbology and
	// pixel dimensions.
	RenderCodeImage(code string, symbology Symbology, width, height int) ([]byte, error)
}

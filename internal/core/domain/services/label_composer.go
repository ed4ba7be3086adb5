package services

import (
	"errors"
	"log/slog"
	"time"

	"shipping/internal/core/domain/model/group"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/ports"

	"github.com/google/uuid"
)

// ErrNoOrdersToCompose is returned when label composition is requested for an
// empty order set.
var ErrNoOrdersToCompose = errors.New("no orders to compose labels for")

// Label rendering defaults. The barcode is a wide flat rectangle so it scans
// reliably on the 100mm label stock.
const (
	DefaultBarcodeWidth  = 350
	DefaultBarcodeHeight = 80
)

// LabelLine is one row of the per-item table printed on a label.
type LabelLine struct {
	Code     string
	Quantity int
}

// LabelPage is the printable content for a single order. One page is produced
// per order, not per group.
type LabelPage struct {
	// PageIndex is the 1-based running index across the whole document.
	PageIndex int

	OrderNumber  string
	CustomerName string
	Address      string
	Brand        string
	TotalItems   int

	// ShippingCode is the value encoded into the barcode. When no usable
	// code exists MissingCode is set and BarcodeImage stays nil; the page is
	// still produced.
	ShippingCode string
	MissingCode  bool
	BarcodeImage []byte

	Items []LabelLine
}

// LabelDocument is the composed printable document: one page per order,
// design target 100mm x 100mm per page. The document carries no state beyond
// its content; whether the physical print actually happened is a best-effort
// signal the caller must not rely on.
type LabelDocument struct {
	ID          uuid.UUID
	GeneratedAt time.Time
	Pages       []LabelPage
}

// TotalPages returns the page count.
func (d *LabelDocument) TotalPages() int {
	return len(d.Pages)
}

// LabelComposer builds printable label documents for selected groups.
// It resolves a shipping code per order and renders its barcode through the
// external label-image collaborator; everything else is pure assembly.
type LabelComposer struct {
	renderer    ports.CodeRenderer
	symbology   ports.Symbology
	width       int
	height      int
	companyName string
	logger      *slog.Logger
}

// NewLabelComposer creates a composer. companyName is printed in the header
// of pages whose order has no customer name of its own.
func NewLabelComposer(
	renderer ports.CodeRenderer,
	symbology ports.Symbology,
	companyName string,
	logger *slog.Logger,
) LabelComposer {
	return LabelComposer{
		renderer:    renderer,
		symbology:   symbology,
		width:       DefaultBarcodeWidth,
		height:      DefaultBarcodeHeight,
		companyName: companyName,
		logger:      logger.With("component", "label_composer"),
	}
}

// ComposeForGroups flattens the member orders of the selected groups and
// composes one page per order, with a running page index across groups.
func (c LabelComposer) ComposeForGroups(groups []*group.Group) (*LabelDocument, error) {
	var orders []*order.Order
	for _, g := range groups {
		orders = append(orders, g.Members()...)
	}
	return c.Compose(orders)
}

// Compose builds the printable document for the given orders.
// A missing shipping code or a renderer failure never aborts the batch: the
// affected page is flagged and produced without a barcode image.
func (c LabelComposer) Compose(orders []*order.Order) (*LabelDocument, error) {
	if len(orders) == 0 {
		return nil, ErrNoOrdersToCompose
	}

	doc := &LabelDocument{
		ID:          uuid.New(),
		GeneratedAt: time.Now(),
		Pages:       make([]LabelPage, 0, len(orders)),
	}

	for i, o := range orders {
		doc.Pages = append(doc.Pages, c.composePage(o, i+1))
	}

	return doc, nil
}

func (c LabelComposer) composePage(o *order.Order, pageIndex int) LabelPage {
	page := LabelPage{
		PageIndex:    pageIndex,
		OrderNumber:  o.Number().String(),
		CustomerName: o.CustomerName(),
		Address:      o.DisplayAddress(),
		Brand:        o.Brand(),
		ShippingCode: o.ShippingCode(),
	}

	if page.CustomerName == "" {
		page.CustomerName = c.companyName
	}

	for _, item := range o.Items() {
		page.TotalItems += item.Quantity()
		page.Items = append(page.Items, LabelLine{
			Code:     item.DisplayCode(),
			Quantity: item.Quantity(),
		})
	}

	if page.ShippingCode == "" {
		page.MissingCode = true
		c.logger.Warn("order has no usable shipping code, label printed without barcode",
			"orderNumber", page.OrderNumber)
		return page
	}

	image, err := c.renderer.RenderCodeImage(page.ShippingCode, c.symbology, c.width, c.height)
	if err != nil {
		page.MissingCode = true
		c.logger.Warn("barcode rendering failed, label printed without barcode",
			"orderNumber", page.OrderNumber, "error", err)
		return page
	}

	page.BarcodeImage = image
	return page
}

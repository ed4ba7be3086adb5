package order

import (
	"fmt"
	"strings"

	"shipping/internal/pkg/errs"
)

// Item is a single line item of an order: a referenced product, an optional
// denormalized stock code, and the ordered quantity with unit price.
type Item struct {
	product   Product
	stockCode string
	quantity  int
	unitPrice float64
}

// NewItem creates a validated line item. Quantity must be positive;
// the stock code may be blank (the product's fields serve as fallbacks).
func NewItem(product Product, stockCode string, quantity int, unitPrice float64) (Item, error) {
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%f is negative", unitPrice),
		)
	}

	return Item{
		product:   product,
		stockCode: stockCode,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// Product returns the referenced product.
func (i Item) Product() Product {
	return i.product
}

// StockCode returns the item's own stock code, possibly blank.
func (i Item) StockCode() string {
	return i.stockCode
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// TotalPrice returns quantity times unit price.
func (i Item) TotalPrice() float64 {
	return float64(i.quantity) * i.unitPrice
}

// DisplayCode returns the value shown in label item tables: the item's stock
// code, falling back to the product name when the code is blank.
func (i Item) DisplayCode() string {
	if strings.TrimSpace(i.stockCode) != "" {
		return i.stockCode
	}
	return i.product.Name()
}

// ResolveCode returns the first non-blank value among the item's stock code,
// the product barcode and the product name. Used by the grouping engine's
// stock-code fallback chain.
func (i Item) ResolveCode() string {
	for _, candidate := range []string{i.stockCode, i.product.Barcode(), i.product.Name()} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}

package order

// Product is the referenced catalog product of an order item.
// All fields are optional: upstream Excel imports frequently leave the stock
// code or barcode blank, and the grouping engine tolerates that by falling
// back through the available fields.
type Product struct {
	name      string
	barcode   string
	stockCode string
}

// NewProduct creates a product reference. Blank fields are allowed.
func NewProduct(name, barcode, stockCode string) Product {
	return Product{
		name:      name,
		barcode:   barcode,
		stockCode: stockCode,
	}
}

// Name returns the product display name.
func (p Product) Name() string {
	return p.name
}

// Barcode returns the product barcode, possibly blank.
func (p Product) Barcode() string {
	return p.barcode
}

// StockCode returns the product stock code, possibly blank.
func (p Product) StockCode() string {
	return p.stockCode
}

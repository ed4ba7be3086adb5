// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the order source port over a relational
// store, converting between the order domain model and its table rows.
package orderrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting orders. The
// status column is indexed because every grouping view filters on it.
type OrderDTO struct {
	ID                int64  `gorm:"primaryKey"`
	Number            string `gorm:"uniqueIndex"`
	CustomerName      string
	Address           string
	DeliveryAddress   string
	Phone             string
	Email             string
	CargoCampaignCode string
	Barcode           string
	StockCode         string
	Brand             string
	TotalItems        int
	TotalAmount       float64
	Status            string    `gorm:"index"`
	CreatedAt         time.Time `gorm:"index"`

	Items []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line item row. The product attributes are
// denormalized into the row because this service only ever reads them
// alongside their order.
type ItemDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	OrderID   int64 `gorm:"index"`
	StockCode string
	Quantity  int
	UnitPrice float64
	Product   ProductDTO `gorm:"embedded;embeddedPrefix:product_"`
}

// TableName overrides GORM's default naming convention to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// ProductDTO holds the product attributes embedded in an item row. Every
// field is optional; the stock code resolution chain tolerates blanks.
type ProductDTO struct {
	Name      string
	Barcode   string
	StockCode string
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                o.ID().Value(),
		Number:            o.Number().String(),
		CustomerName:      o.CustomerName(),
		Address:           o.Address(),
		DeliveryAddress:   o.DeliveryAddress(),
		Phone:             o.Phone(),
		Email:             o.Email(),
		CargoCampaignCode: o.CargoCampaignCode(),
		Barcode:           o.Barcode(),
		StockCode:         o.StockCode(),
		Brand:             o.Brand(),
		TotalItems:        o.TotalItems(),
		TotalAmount:       o.TotalAmount(),
		Status:            string(o.Status()),
		CreatedAt:         o.CreatedAt(),
	}

	for _, item := range o.Items() {
		dto.Items = append(dto.Items, ItemDTO{
			OrderID:   dto.ID,
			StockCode: item.StockCode(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Product: ProductDTO{
				Name:      item.Product().Name(),
				Barcode:   item.Product().Barcode(),
				StockCode: item.Product().StockCode(),
			},
		})
	}

	return dto
}

// toDomain converts a database DTO back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	number, err := kernel.NewOrderNumber(dto.Number)
	if err != nil {
		return nil, err
	}

	status := order.Status(dto.Status)
	if err = status.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(id, number, dto.CustomerName, dto.TotalItems, dto.TotalAmount, status, dto.CreatedAt)
	if err != nil {
		return nil, err
	}

	o.WithAddressing(dto.Address, dto.DeliveryAddress).
		WithContact(dto.Phone, dto.Email).
		WithShipmentCodes(dto.CargoCampaignCode, dto.Barcode, dto.StockCode).
		WithBrand(dto.Brand)

	for _, itemDTO := range dto.Items {
		product := order.NewProduct(itemDTO.Product.Name, itemDTO.Product.Barcode, itemDTO.Product.StockCode)
		item, itemErr := order.NewItem(product, itemDTO.StockCode, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		o.AddItem(item)
	}

	return o, nil
}

package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a shipment order read from the order source. Within this
// core it is read-only except for its status, which the batch transition
// coordinator drives between Pending and Shipped.
//
// Order follows these invariants:
//   - Must have a valid numeric identity and order number
//   - Status is always one of the five valid statuses
//   - Aggregate counters (total items, total amount) are never negative
//   - Can only be created through the NewOrder constructor
//
// The customer name is deliberately NOT validated: upstream Excel imports
// sometimes shift a date or a number into that column, and the grouping
// engine repairs such values from the order number instead of rejecting them.
type Order struct {
	id     kernel.OrderID
	number kernel.OrderNumber

	customerName    string
	address         string
	deliveryAddress string
	phone           string
	email           string

	cargoCampaignCode string
	barcode           string
	stockCode         string
	brand             string

	totalItems  int
	totalAmount float64
	status      Status
	createdAt   time.Time

	items []Item

	isConstructed bool
}

// NewOrder creates a new Order with its required fields validated.
// Optional fields (addressing, shipment codes, contact, brand, items) are
// attached afterwards through the With* methods by the order source adapter.
func NewOrder(
	id kernel.OrderID,
	number kernel.OrderNumber,
	customerName string,
	totalItems int,
	totalAmount float64,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		customerName:  customerName,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setTotals(totalItems, totalAmount),
		o.setStatus(status),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was constructed through NewOrder.
// Called when reconstructing orders from persistence to keep zero-value
// structs out of the domain.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// WithAddressing attaches the delivery address and its fallback address field.
func (o *Order) WithAddressing(address, deliveryAddress string) *Order {
	o.address = address
	o.deliveryAddress = deliveryAddress
	return o
}

// WithShipmentCodes attaches the denormalized shipment fields: the cargo
// campaign code and the order-level barcode and stock code. All may be blank.
func (o *Order) WithShipmentCodes(cargoCampaignCode, barcode, stockCode string) *Order {
	o.cargoCampaignCode = cargoCampaignCode
	o.barcode = barcode
	o.stockCode = stockCode
	return o
}

// WithContact attaches the customer contact fields.
func (o *Order) WithContact(phone, email string) *Order {
	o.phone = phone
	o.email = email
	return o
}

// WithBrand attaches the optional brand line shown on labels.
func (o *Order) WithBrand(brand string) *Order {
	o.brand = brand
	return o
}

// AddItem appends a line item to the order.
func (o *Order) AddItem(item Item) *Order {
	o.items = append(o.items, item)
	return o
}

// ID returns the order's numeric identity.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Number returns the unique order number.
func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// CustomerName returns the raw customer display name, which may be malformed.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Address returns the fallback address field.
func (o *Order) Address() string {
	return o.address
}

// DeliveryAddress returns the delivery address, possibly blank.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Phone returns the customer phone, possibly blank.
func (o *Order) Phone() string {
	return o.phone
}

// Email returns the customer email, possibly blank.
func (o *Order) Email() string {
	return o.email
}

// CargoCampaignCode returns the carrier campaign code, possibly blank.
func (o *Order) CargoCampaignCode() string {
	return o.cargoCampaignCode
}

// Barcode returns the order-level denormalized barcode, possibly blank.
func (o *Order) Barcode() string {
	return o.barcode
}

// StockCode returns the order-level denormalized stock code, possibly blank.
func (o *Order) StockCode() string {
	return o.stockCode
}

// Brand returns the optional brand, possibly blank.
func (o *Order) Brand() string {
	return o.brand
}

// TotalItems returns the aggregate item count.
func (o *Order) TotalItems() int {
	return o.totalItems
}

// TotalAmount returns the aggregate monetary amount.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current shipment status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the ordered sequence of line items.
func (o *Order) Items() []Item {
	return o.items
}

// MarkShipped transitions the order to Shipped.
// Re-shipping an already shipped order is an accepted no-op.
func (o *Order) MarkShipped() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Revert transitions the order back to Pending.
// Reverting an already pending order is an accepted no-op.
func (o *Order) Revert() error {
	newStatus, err := o.status.Revert()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// TransitionTo drives the order to target using the restricted state machine.
// Used by the order source adapter when applying batch transitions.
func (o *Order) TransitionTo(target Status) error {
	if err := o.status.CanBecome(target); err != nil {
		return err
	}
	o.status = target
	return nil
}

// ShippingCode resolves the value encoded into the printed barcode for this
// order: the cargo campaign code, falling back to the denormalized barcode,
// then the stock code. Returns "" when no usable code exists; the label is
// still produced but flagged instead of rendering a barcode.
func (o *Order) ShippingCode() string {
	for _, candidate := range []string{o.cargoCampaignCode, o.barcode, o.stockCode} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return ""
}

// ResolveStockCode resolves the stock code used in the grouping key.
// First non-empty wins: the order's own stock code, then the first resolvable
// code among the line items, then the fragment derived from the order number.
func (o *Order) ResolveStockCode() string {
	if strings.TrimSpace(o.stockCode) != "" {
		return o.stockCode
	}

	for _, item := range o.items {
		if code := item.ResolveCode(); code != "" {
			return code
		}
	}

	return o.number.StockCodePart()
}

// DisplayAddress returns the address printed on labels: the delivery address,
// falling back to the plain address field.
func (o *Order) DisplayAddress() string {
	if strings.TrimSpace(o.deliveryAddress) != "" {
		return o.deliveryAddress
	}
	return o.address
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setTotals(totalItems int, totalAmount float64) error {
	if totalItems < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalItems",
			fmt.Errorf("%d is negative", totalItems),
		)
	}
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("%f is negative", totalAmount),
		)
	}
	o.totalItems = totalItems
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

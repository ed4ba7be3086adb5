package kernel

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// OrderID is a value object that represents the numeric identity of an order.
// Identity is assigned by the order source; this core never generates IDs.
//
// The zero value is invalid and must be constructed via NewOrderID.
// OrderID is immutable and safe for concurrent use.
type OrderID struct {
	value int64
}

// NewOrderID creates an OrderID from its numeric value.
// IDs must be positive; the order source never issues zero or negative IDs.
func NewOrderID(value int64) (OrderID, error) {
	if value <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}
	return OrderID{value: value}, nil
}

// Validate returns an error if the OrderID is the zero value.
func (id OrderID) Validate() error {
	if id.value <= 0 {
		return errs.NewValueIsRequiredError("orderId must be created via NewOrderID")
	}
	return nil
}

// IsEqual compares two order IDs by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Value returns the underlying numeric value.
func (id OrderID) Value() int64 {
	return id.value
}

// String returns the decimal representation of the ID.
func (id OrderID) String() string {
	return fmt.Sprintf("%d", id.value)
}

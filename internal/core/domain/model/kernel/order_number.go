package kernel

import (
	"strings"

	"shipping/internal/pkg/errs"
)

// OrderNumber is a value object for the unique human-facing order number.
// Order numbers come from upstream imports and carry loose structure that the
// grouping engine exploits as a repair source for malformed fields:
//
//   - segments separated by "_" may embed the customer name (second segment)
//   - segments separated by "-" may embed a stock code prefix (first segment)
//
// The zero value is invalid and must be constructed via NewOrderNumber.
type OrderNumber struct {
	value string
}

// NewOrderNumber creates an OrderNumber from its raw string form.
// The value must be non-blank; no further format is enforced because upstream
// imports do not guarantee one.
func NewOrderNumber(value string) (OrderNumber, error) {
	if strings.TrimSpace(value) == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("orderNumber")
	}
	return OrderNumber{value: value}, nil
}

// Validate returns an error if the OrderNumber is the zero value.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return errs.NewValueIsRequiredError("orderNumber must be created via NewOrderNumber")
	}
	return nil
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// String returns the raw order number.
func (n OrderNumber) String() string {
	return n.value
}

// NamePart returns the customer-name fragment embedded in the order number.
// The number is split on "_"; with two or more parts the second part is the
// name, otherwise the whole number is returned as a fallback.
func (n OrderNumber) NamePart() string {
	parts := strings.Split(n.value, "_")
	if len(parts) >= 2 {
		return parts[1]
	}
	return n.value
}

// StockCodePart returns the stock-code fragment embedded in the order number:
// the first "-"-separated segment, or the whole number if no "-" is present.
func (n OrderNumber) StockCodePart() string {
	return strings.Split(n.value, "-")[0]
}

package order

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the shipment lifecycle state of an order.
// It is exchanged with the order source as a plain string and implements the
// restricted state machine this core drives:
//
//	PENDING ──> SHIPPED   (mark as shipped, after or instead of printing)
//	SHIPPED ──> PENDING   (revert, manual correction)
//
// PROCESSING, DELIVERED and CANCELLED are recognized as valid data but are
// never produced or consumed by this core. Re-applying a transition to an
// order already in the target status is accepted as a no-op, which is what
// makes batch transitions idempotent without a local pre-check.
type Status string

const (
	// Unknown represents an invalid or undefined status.
	// The empty string helps catch uninitialized Status values.
	Unknown Status = ""

	// Pending is the initial status of imported orders awaiting a label print.
	Pending Status = "PENDING"

	// Processing is set by other parts of the surrounding system.
	Processing Status = "PROCESSING"

	// Shipped indicates the order's label was printed and the parcel handed
	// to the carrier.
	Shipped Status = "SHIPPED"

	// Delivered is a terminal status set by carrier integrations.
	Delivered Status = "DELIVERED"

	// Cancelled is a terminal status set by upstream order management.
	Cancelled Status = "CANCELLED"
)

// getValidStatusStrings returns the set of valid Status values.
// Unknown is intentionally excluded as it is invalid.
func getValidStatusStrings() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:    {},
		Processing: {},
		Shipped:    {},
		Delivered:  {},
		Cancelled:  {},
	}
}

// Validate checks if the Status value is one of the five valid statuses.
// Values from external sources (database, API) must be validated before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the wire representation of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if _, ok := getValidStatusStrings()[s]; ok {
		return string(s)
	}
	return "Unknown"
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Pending -> Shipped (label printed, parcel handed over)
//   - Shipped -> Shipped (idempotent repeat)
//
// Returns an error for any other source status.
func (s Status) Ship() (Status, error) {
	if s != Pending && s != Shipped {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}
	return Shipped, nil
}

// Revert transitions the status back to Pending.
//
// Valid transitions:
//   - Shipped -> Pending (manual correction)
//   - Pending -> Pending (idempotent repeat)
//
// Returns an error for any other source status.
func (s Status) Revert() (Status, error) {
	if s != Shipped && s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to revert", s.String()),
		)
	}
	return Pending, nil
}

// CanBecome checks whether this core may drive a transition to target.
// Allowed: the two transitions of the state machine and the idempotent
// self-transition. Everything else belongs to other parts of the system.
func (s Status) CanBecome(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if s == target {
		return nil
	}

	if s == Pending && target == Shipped {
		return nil
	}

	if s == Shipped && target == Pending {
		return nil
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("transition %s -> %s is not driven by this service", s.String(), target.String()),
	)
}

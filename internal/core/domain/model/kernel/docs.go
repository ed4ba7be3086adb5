// Package kernel contains the shared value objects used across the domain
// model. These are small immutable types with validated constructors:
//
//   - OrderID: the numeric identity assigned to an order by the order source
//   - OrderNumber: the unique human-facing order number string
//
// Value objects in this package follow the same rules as the rest of the
// domain: the zero value is invalid and must be rejected by Validate, and
// instances are only created through the provided factory functions.
package kernel

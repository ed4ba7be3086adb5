// Package order provides the domain model for shipment orders as this core
// sees them: read-only records owned by the external order source, plus the
// restricted status state machine the batch transition coordinator drives.
//
// The package includes:
//   - Order: the order aggregate with identity, shipment fields and line items
//   - Item / Product: the ordered line items and their catalog references
//   - Status: the five-state shipment status with the Pending<->Shipped pair
//     of transitions this service performs
//
// Key business rules:
//   - Orders are only created through NewOrder and carry validated identity,
//     totals, status and timestamp
//   - Malformed customer names are tolerated here and repaired downstream by
//     the grouping engine
//   - Status transitions are idempotent: re-applying a transition to an order
//     already in the target status is a no-op
package order

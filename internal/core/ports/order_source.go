package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
)

// OrderSource is the narrow contract over the external order persistence API.
// This core only reads the full snapshot and drives single-order status
// updates; order creation and all other maintenance happen elsewhere.
type OrderSource interface {
	// ListOrders returns the full current snapshot of orders with their line
	// items. No pagination is assumed by this core.
	ListOrders(ctx context.Context) ([]*order.Order, error)

	// UpdateOrderStatus applies a single-order status transition and returns
	// the refreshed order. Updating an order already in the target status is
	// an accepted no-op. Errors are opaque (network or validation) and must
	// be catchable independently per call.
	UpdateOrderStatus(ctx context.Context, id kernel.OrderID, status order.Status) (*order.Order, error)
}

package queries

import (
	"context"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// GetOrderGroupsQueryHandler builds the grouping view from the order source.
// Every call reads the full snapshot, applies the view's status/date filter
// and runs the grouping engine and tier classifier from scratch; nothing is
// cached across calls.
type GetOrderGroupsQueryHandler struct {
	orderSource ports.OrderSource
	grouper     services.OrderGrouper
	classifier  services.TierClassifier
	now         func() time.Time
}

// NewGetOrderGroupsQueryHandler creates a handler over the given order source
// and grouping engine.
func NewGetOrderGroupsQueryHandler(
	orderSource ports.OrderSource,
	grouper services.OrderGrouper,
	classifier services.TierClassifier,
) GetOrderGroupsQueryHandler {
	return GetOrderGroupsQueryHandler{
		orderSource: orderSource,
		grouper:     grouper,
		classifier:  classifier,
		now:         time.Now,
	}
}

// WithClock replaces the handler's clock. The shipped view filters on
// "created today", so tests need a fixed reference time.
func (h GetOrderGroupsQueryHandler) WithClock(now func() time.Time) GetOrderGroupsQueryHandler {
	h.now = now
	return h
}

// Handle executes the query: snapshot read, view filter, grouping pass,
// tier classification.
func (h GetOrderGroupsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderGroupsQuery,
) (GetOrderGroupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderGroupsQueryResponse{}, err
	}

	orders, err := h.orderSource.ListOrders(ctx)
	if err != nil {
		return GetOrderGroupsQueryResponse{}, fmt.Errorf("listing orders: %w", err)
	}

	filtered := h.filterView(orders, query.StatusFilter())
	groups := h.grouper.Group(filtered)

	return GetOrderGroupsQueryResponse{
		Groups:  groups,
		Buckets: h.classifier.Classify(groups),
	}, nil
}

// filterView applies the operator-facing view filter: all pending orders, or
// only the shipped orders created today (shipped batches older than the
// current day are no longer revertible from this view).
func (h GetOrderGroupsQueryHandler) filterView(orders []*order.Order, statusFilter order.Status) []*order.Order {
	today := h.now()

	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status() != statusFilter {
			continue
		}
		if statusFilter == order.Shipped && !sameLocalDate(o.CreatedAt(), today) {
			continue
		}
		filtered = append(filtered, o)
	}

	return filtered
}

// sameLocalDate compares the date parts of two timestamps in local time,
// ignoring the time of day.
func sameLocalDate(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

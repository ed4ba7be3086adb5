// Package queries contains the read-side use cases of the batch labeling
// core. Queries never modify order state; they read the order source snapshot
// and derive the ephemeral grouping view from it.
package queries

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/group"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetOrderGroupsQueryIsNotConstructed = errors.New(
		"GetOrderGroupsQuery must be created via NewGetOrderGroupsQuery constructor",
	)
)

// GetOrderGroupsQuery requests the current grouping view for one of the two
// operator-facing status filters:
//
//   - Pending: every pending order, grouped for printing
//   - Shipped: only orders shipped with a creation date of today, grouped for
//     review and possible revert
//
// Example:
//
//	query, err := NewGetOrderGroupsQuery(order.Pending)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetOrderGroupsQuery struct {
	statusFilter order.Status

	guard guard.ConstructorGuard
}

// NewGetOrderGroupsQuery creates a grouping view query.
// Only the Pending and Shipped filters exist; the other statuses have no
// grouping view.
func NewGetOrderGroupsQuery(statusFilter order.Status) (GetOrderGroupsQuery, error) {
	if statusFilter != order.Pending && statusFilter != order.Shipped {
		return GetOrderGroupsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"statusFilter",
			fmt.Errorf("%s has no grouping view", statusFilter.String()),
		)
	}

	return GetOrderGroupsQuery{
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderGroupsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderGroupsQueryIsNotConstructed)
}

// StatusFilter returns the requested view filter.
func (q GetOrderGroupsQuery) StatusFilter() order.Status {
	return q.statusFilter
}

// GetOrderGroupsQueryResponse is the derived grouping view: the tier-sorted
// group sequence plus the same groups distributed into the five fixed tier
// buckets. The view is ephemeral and is rebuilt on every query.
type GetOrderGroupsQueryResponse struct {
	Groups  []*group.Group
	Buckets map[group.Tier][]*group.Group
}

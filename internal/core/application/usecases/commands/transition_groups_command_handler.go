package commands

import (
	"context"
	"fmt"
	"log/slog"

	"shipping/internal/core/domain/model/group"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// OrderTransitionOutcome records the settled result of one per-order status
// update. The outcome list exists for logs and tests; callers outside this
// core only ever see the aggregate counts.
type OrderTransitionOutcome struct {
	OrderID     kernel.OrderID
	OrderNumber string
	Err         error
}

// TransitionReport aggregates one batch transition. Prior updates are never
// rolled back: printed labels are physical artifacts, so the batch favors
// forward progress over atomicity.
type TransitionReport struct {
	// BatchID correlates the batch's log lines.
	BatchID uuid.UUID

	TargetStatus    order.Status
	GroupsProcessed int
	OrdersAttempted int
	OrdersFailed    int

	// Outcomes holds every per-order result, settled, in dispatch order.
	Outcomes []OrderTransitionOutcome

	// Groups is the refreshed pending backlog read back from the order
	// source after all updates settled (the reconciliation pass).
	Groups []*group.Group
}

// TransitionGroupsCommandHandler is the batch transition coordinator.
// It flattens the selected groups' member orders, dispatches one status
// update per order concurrently, waits for every update to settle, and then
// reconciles by re-reading the order source and re-running the grouping
// engine so the caller sees authoritative server state.
//
// Failure isolation: a failed update is logged and counted, and never
// blocks, cancels or rolls back any sibling update. Only a failure of the
// reconciliation read is surfaced to the caller, and by then the transition
// attempts have already happened.
type TransitionGroupsCommandHandler struct {
	orderSource ports.OrderSource
	grouper     services.OrderGrouper
	logger      *slog.Logger
}

// NewTransitionGroupsCommandHandler creates the coordinator.
func NewTransitionGroupsCommandHandler(
	orderSource ports.OrderSource,
	grouper services.OrderGrouper,
	logger *slog.Logger,
) TransitionGroupsCommandHandler {
	return TransitionGroupsCommandHandler{
		orderSource: orderSource,
		grouper:     grouper,
		logger:      logger.With("component", "transition_coordinator"),
	}
}

// Handle executes the batch transition and returns its report.
func (h TransitionGroupsCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionGroupsCommand,
) (*TransitionReport, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	orders := flattenMembers(cmd.Groups())

	report := &TransitionReport{
		BatchID:         uuid.New(),
		TargetStatus:    cmd.TargetStatus(),
		GroupsProcessed: len(cmd.Groups()),
		OrdersAttempted: len(orders),
		Outcomes:        make([]OrderTransitionOutcome, len(orders)),
	}

	h.logger.Info("batch transition started",
		"batchId", report.BatchID,
		"target", cmd.TargetStatus().String(),
		"groups", report.GroupsProcessed,
		"orders", report.OrdersAttempted)

	// Unbounded fan-out with a join that never short-circuits: every task
	// stores its own outcome and returns nil, so Wait settles all updates
	// regardless of individual failures. There is no cancellation; a
	// dispatched update runs to completion or failure on its own.
	var eg errgroup.Group
	for i, o := range orders {
		eg.Go(func() error {
			_, err := h.orderSource.UpdateOrderStatus(ctx, o.ID(), cmd.TargetStatus())
			report.Outcomes[i] = OrderTransitionOutcome{
				OrderID:     o.ID(),
				OrderNumber: o.Number().String(),
				Err:         err,
			}
			return nil
		})
	}
	_ = eg.Wait()

	for _, outcome := range report.Outcomes {
		if outcome.Err != nil {
			report.OrdersFailed++
			h.logger.Error("order status update failed",
				"batchId", report.BatchID,
				"orderNumber", outcome.OrderNumber,
				"target", cmd.TargetStatus().String(),
				"error", outcome.Err)
		}
	}

	groups, err := h.reconcile(ctx)
	if err != nil {
		// Recoverable: the updates above already happened and stand.
		return report, fmt.Errorf("batch %s applied (%d of %d updates failed), reconciliation read failed: %w",
			report.BatchID, report.OrdersFailed, report.OrdersAttempted, err)
	}
	report.Groups = groups

	h.logger.Info("batch transition settled",
		"batchId", report.BatchID,
		"failed", report.OrdersFailed,
		"refreshedGroups", len(groups))

	return report, nil
}

// reconcile re-reads the order source and re-groups the pending backlog so
// the refreshed view reflects authoritative state, not the optimistic local
// one.
func (h TransitionGroupsCommandHandler) reconcile(ctx context.Context) ([]*group.Group, error) {
	orders, err := h.orderSource.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status() == order.Pending {
			pending = append(pending, o)
		}
	}

	return h.grouper.Group(pending), nil
}

// flattenMembers concatenates the member orders of the selected groups.
// The grouping pass partitions orders, so an order cannot genuinely appear
// in two selected groups.
func flattenMembers(groups []*group.Group) []*order.Order {
	var orders []*order.Order
	for _, g := range groups {
		orders = append(orders, g.Members()...)
	}
	return orders
}

package commands

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/group"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrTransitionGroupsCommandIsNotConstructed = errors.New(
		"TransitionGroupsCommand must be created via NewTransitionGroupsCommand constructor",
	)
)

// TransitionGroupsCommand requests a batch status transition over the member
// orders of the selected groups. The only targets this core drives are
// Shipped (mark as shipped, after printing or manually) and Pending (revert).
//
// Example:
//
//	cmd, err := NewTransitionGroupsCommand(selected, order.Shipped)
//	if err != nil {
//	    return err
//	}
//	report, err := handler.Handle(ctx, cmd)
type TransitionGroupsCommand struct {
	groups       []*group.Group
	targetStatus order.Status

	guard guard.ConstructorGuard
}

// NewTransitionGroupsCommand creates a batch transition command.
// An empty selection is rejected here, before any network call; targets
// other than Pending and Shipped are not driven by this core.
func NewTransitionGroupsCommand(
	groups []*group.Group,
	targetStatus order.Status,
) (TransitionGroupsCommand, error) {
	if len(groups) == 0 {
		return TransitionGroupsCommand{}, ErrNoGroupsSelected
	}

	if targetStatus != order.Pending && targetStatus != order.Shipped {
		return TransitionGroupsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"targetStatus",
			fmt.Errorf("%s is not a target this service drives", targetStatus.String()),
		)
	}

	return TransitionGroupsCommand{
		groups:       groups,
		targetStatus: targetStatus,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionGroupsCommand) Validate() error {
	return c.guard.Validate(ErrTransitionGroupsCommandIsNotConstructed)
}

// Groups returns the selected groups.
func (c TransitionGroupsCommand) Groups() []*group.Group {
	return c.groups
}

// TargetStatus returns the requested target status.
func (c TransitionGroupsCommand) TargetStatus() order.Status {
	return c.targetStatus
}

package commands

import (
	"errors"

	"shipping/internal/core/domain/model/group"
	"shipping/internal/pkg/guard"
)

var (
	ErrComposeLabelsCommandIsNotConstructed = errors.New(
		"ComposeLabelsCommand must be created via NewComposeLabelsCommand constructor",
	)
)

// ComposeLabelsCommand requests a printable label document for the member
// orders of the selected groups. Composing labels does not change order
// state; shipping is a separate, explicit transition.
type ComposeLabelsCommand struct {
	groups []*group.Group

	guard guard.ConstructorGuard
}

// NewComposeLabelsCommand creates a label composition command.
func NewComposeLabelsCommand(groups []*group.Group) (ComposeLabelsCommand, error) {
	if len(groups) == 0 {
		return ComposeLabelsCommand{}, ErrNoGroupsSelected
	}

	return ComposeLabelsCommand{
		groups: groups,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ComposeLabelsCommand) Validate() error {
	return c.guard.Validate(ErrComposeLabelsCommandIsNotConstructed)
}

// Groups returns the selected groups.
func (c ComposeLabelsCommand) Groups() []*group.Group {
	return c.groups
}

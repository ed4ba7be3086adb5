package commands

import (
	"context"
	"fmt"

	"shipping/internal/core/domain/services"
)

// ComposeLabelsCommandHandler produces the printable label document for a
// selection of groups by delegating to the label composer.
type ComposeLabelsCommandHandler struct {
	composer services.LabelComposer
}

// NewComposeLabelsCommandHandler creates the handler.
func NewComposeLabelsCommandHandler(composer services.LabelComposer) ComposeLabelsCommandHandler {
	return ComposeLabelsCommandHandler{composer: composer}
}

// Handle composes the document. Orders without a usable shipping code still
// get a page; their pages are flagged instead of failing the batch.
func (h ComposeLabelsCommandHandler) Handle(
	_ context.Context,
	cmd ComposeLabelsCommand,
) (*services.LabelDocument, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	doc, err := h.composer.ComposeForGroups(cmd.Groups())
	if err != nil {
		return nil, fmt.Errorf("composing labels: %w", err)
	}

	return doc, nil
}

package cmd

import (
	"log/slog"

	"shipping/internal/adapters/out/barcode"
	"shipping/internal/adapters/out/postgres/orderrepo"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires the adapters into the application use cases. All
// dependencies flow from here; nothing below resolves its own collaborators.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	orderSource ports.OrderSource
	grouper     services.OrderGrouper
	classifier  services.TierClassifier
	renderer    barcode.Renderer
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:      config,
		logger:      logger,
		orderSource: orderrepo.NewGormOrderRepository(gormDB),
		grouper:     services.NewOrderGrouper(nil),
		classifier:  services.NewTierClassifier(),
		renderer:    barcode.NewRenderer(),
	}
}

func (c *CompositionRoot) CreateGetOrderGroupsQueryHandler() queries.GetOrderGroupsQueryHandler {
	return queries.NewGetOrderGroupsQueryHandler(c.orderSource, c.grouper, c.classifier)
}

func (c *CompositionRoot) CreateComposeLabelsCommandHandler() commands.ComposeLabelsCommandHandler {
	composer := services.NewLabelComposer(c.renderer, ports.SymbologyCode128, c.config.CompanyName, c.logger)
	return commands.NewComposeLabelsCommandHandler(composer)
}

func (c *CompositionRoot) CreateTransitionGroupsCommandHandler() commands.TransitionGroupsCommandHandler {
	return commands.NewTransitionGroupsCommandHandler(c.orderSource, c.grouper, c.logger)
}

func (c *CompositionRoot) CodeRenderer() ports.CodeRenderer {
	return c.renderer
}

package orderrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements the order source port using GORM.
// Each call runs in its own implicit transaction; there is deliberately no
// batch transaction spanning multiple orders, so concurrent status updates
// stay independent and a single failure cannot roll back its siblings.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// ListOrders returns the full order snapshot with line items, newest first.
func (r *GormOrderRepository) ListOrders(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateOrderStatus applies a single-order status transition and returns the
// refreshed order. The transition is validated by the domain model, so an
// update to the current status is an accepted no-op and an impossible
// transition is rejected without touching the row.
func (r *GormOrderRepository) UpdateOrderStatus(
	ctx context.Context,
	id kernel.OrderID,
	status order.Status,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	o, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	if err = o.TransitionTo(status); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", id.Value()).
		Update("status", string(o.Status()))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return o, nil
}

// Add saves a new order with its line items. Orders normally originate in
// the upstream commerce system; this exists for seeding and tests.
func (r *GormOrderRepository) Add(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	dto := fromDomain(o)
	return r.db.WithContext(ctx).Create(&dto).Error
}

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/group"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderSource struct{ mock.Mock }

func (m *MockOrderSource) ListOrders(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderSource) UpdateOrderStatus(
	ctx context.Context, id kernel.OrderID, status order.Status,
) (*order.Order, error) {
	args := m.Called(ctx, id, status)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func makeOrder(t *testing.T, id int64, number, customerName, stockCode string, status order.Status, createdAt time.Time) *order.Order {
	t.Helper()

	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	orderNumber, err := kernel.NewOrderNumber(number)
	require.NoError(t, err)

	o, err := order.NewOrder(orderID, orderNumber, customerName, 1, 10, status, createdAt)
	require.NoError(t, err)
	if stockCode != "" {
		o.WithShipmentCodes("", "", stockCode)
	}
	return o
}

func newHandler(source *MockOrderSource, now func() time.Time) queries.GetOrderGroupsQueryHandler {
	h := queries.NewGetOrderGroupsQueryHandler(
		source,
		services.NewOrderGrouper(nil),
		services.NewTierClassifier(),
	)
	if now != nil {
		h = h.WithClock(now)
	}
	return h
}

func TestNewGetOrderGroupsQuery(t *testing.T) {
	for _, status := range []order.Status{order.Pending, order.Shipped} {
		_, err := queries.NewGetOrderGroupsQuery(status)
		assert.NoError(t, err, status.String())
	}
	for _, status := range []order.Status{order.Processing, order.Delivered, order.Cancelled, order.Unknown} {
		_, err := queries.NewGetOrderGroupsQuery(status)
		assert.Error(t, err, status.String())
	}
}

func TestGetOrderGroupsQueryHandler_Handle_PendingView(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, 5, 12, 14, 0, 0, 0, time.Local)

	source := new(MockOrderSource)
	source.On("ListOrders", mock.Anything).Return([]*order.Order{
		makeOrder(t, 1, "ORD_1", "Ayşe Yılmaz", "ABC1", order.Pending, now),
		makeOrder(t, 2, "ORD_2", "Ayşe Yılmaz", "ABC1", order.Pending, now.AddDate(0, 0, -3)),
		makeOrder(t, 3, "ORD_3", "Mehmet Kaya", "XYZ9", order.Shipped, now),
	}, nil).Once()

	query, err := queries.NewGetOrderGroupsQuery(order.Pending)
	require.NoError(t, err)

	view, err := newHandler(source, func() time.Time { return now }).Handle(ctx, query)
	require.NoError(t, err)

	// The pending view takes every pending order regardless of age; the
	// shipped one is excluded.
	require.Len(t, view.Groups, 1)
	assert.Equal(t, 2, view.Groups[0].Count())
	assert.Equal(t, group.TierDouble, view.Groups[0].Tier())
	assert.Len(t, view.Buckets[group.TierDouble], 1)
	assert.Empty(t, view.Buckets[group.TierSingle])
	source.AssertExpectations(t)
}

func TestGetOrderGroupsQueryHandler_Handle_ShippedViewIsTodayOnly(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, 5, 12, 0, 30, 0, 0, time.Local)

	source := new(MockOrderSource)
	source.On("ListOrders", mock.Anything).Return([]*order.Order{
		makeOrder(t, 1, "ORD_1", "Ayşe Yılmaz", "ABC1", order.Shipped, now.Add(-15*time.Minute)),
		makeOrder(t, 2, "ORD_2", "Ayşe Yılmaz", "ABC1", order.Shipped, now.AddDate(0, 0, -1)),
		makeOrder(t, 3, "ORD_3", "Mehmet Kaya", "XYZ9", order.Pending, now),
	}, nil).Once()

	query, err := queries.NewGetOrderGroupsQuery(order.Shipped)
	require.NoError(t, err)

	view, err := newHandler(source, func() time.Time { return now }).Handle(ctx, query)
	require.NoError(t, err)

	// Only the order created on the current local date survives; yesterday's
	// shipped order is no longer shown even though it is only an hour older.
	require.Len(t, view.Groups, 1)
	assert.Equal(t, 1, view.Groups[0].Count())
	assert.Equal(t, "ORD_1", view.Groups[0].Members()[0].Number().String())
	source.AssertExpectations(t)
}

func TestGetOrderGroupsQueryHandler_Handle_EmptyView(t *testing.T) {
	ctx := t.Context()

	source := new(MockOrderSource)
	source.On("ListOrders", mock.Anything).Return([]*order.Order{}, nil).Once()

	query, err := queries.NewGetOrderGroupsQuery(order.Pending)
	require.NoError(t, err)

	view, err := newHandler(source, nil).Handle(ctx, query)
	require.NoError(t, err)

	assert.Empty(t, view.Groups)
	// The buckets map always carries all five tiers, empty or not.
	assert.Len(t, view.Buckets, 5)
}

func TestGetOrderGroupsQueryHandler_Handle_SourceError(t *testing.T) {
	ctx := t.Context()

	source := new(MockOrderSource)
	source.On("ListOrders", mock.Anything).Return(nil, errors.New("source unavailable")).Once()

	query, err := queries.NewGetOrderGroupsQuery(order.Pending)
	require.NoError(t, err)

	_, err = newHandler(source, nil).Handle(ctx, query)
	require.Error(t, err)
}

func TestGetOrderGroupsQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	source := new(MockOrderSource)
	_, err := newHandler(source, nil).Handle(ctx, queries.GetOrderGroupsQuery{})
	assert.ErrorIs(t, err, queries.ErrGetOrderGroupsQueryIsNotConstructed)
	source.AssertNotCalled(t, "ListOrders")
}

package group_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/group"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrder(t *testing.T, id int64, number string, totalItems int, amount float64) *order.Order {
	t.Helper()

	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	orderNumber, err := kernel.NewOrderNumber(number)
	require.NoError(t, err)

	o, err := order.NewOrder(orderID, orderNumber, "Ayşe Yılmaz", totalItems, amount, order.Pending, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewGroup(t *testing.T) {
	key := group.Key{CustomerName: "Ayşe Yılmaz", StockCode: "ABC1"}

	t.Run("empty_member_set_is_rejected", func(t *testing.T) {
		_, err := group.NewGroup(key, nil)

		require.ErrorIs(t, err, group.ErrGroupHasNoMembers)
	})

	t.Run("aggregates_and_tier", func(t *testing.T) {
		members := []*order.Order{
			buildOrder(t, 1, "ORD-1", 1, 10),
			buildOrder(t, 2, "ORD-2", 2, 20),
		}

		g, err := group.NewGroup(key, members)
		require.NoError(t, err)

		assert.Equal(t, key, g.Key())
		assert.Equal(t, 2, g.Count())
		assert.Equal(t, 3, g.TotalQuantity())
		assert.InDelta(t, 30.0, g.TotalAmount(), 0.001)
		assert.Equal(t, group.TierTriple, g.Tier())
		assert.Equal(t, "3LU - Ayşe Yılmaz - ORD-1", g.Name())
	})

	t.Run("code_sets_keep_first_seen_order_and_deduplicate", func(t *testing.T) {
		first := buildOrder(t, 1, "ORD-1", 1, 10).WithShipmentCodes("", "869001", "ABC1")
		second := buildOrder(t, 2, "ORD-2", 1, 10).WithShipmentCodes("", "869002", "ABC1")

		item, err := order.NewItem(order.NewProduct("Lavender Soap", "", ""), "", 1, 10)
		require.NoError(t, err)
		second.AddItem(item)

		g, err := group.NewGroup(key, []*order.Order{first, second})
		require.NoError(t, err)

		assert.Equal(t, []string{"869001", "869002"}, g.Barcodes())
		assert.Equal(t, "869001, 869002", g.BarcodeList())
		assert.Equal(t, "869001", g.FirstBarcode())

		assert.Equal(t, []string{"ABC1", "Lavender Soap"}, g.StockCodes())
		assert.Equal(t, "ABC1, Lavender Soap", g.StockCodeList())
		assert.Equal(t, "ABC1", g.FirstStockCode())
	})

	t.Run("empty_code_sets_are_tolerated", func(t *testing.T) {
		g, err := group.NewGroup(key, []*order.Order{buildOrder(t, 1, "ORD-1", 1, 10)})
		require.NoError(t, err)

		assert.Empty(t, g.Barcodes())
		assert.Equal(t, "", g.BarcodeList())
		assert.Equal(t, "", g.FirstBarcode())
		assert.Equal(t, "", g.FirstStockCode())
	})
}

// Package ordersvc - Test các hàm thuần của vòng đời đơn hàng.
package ordersvc

import (
	"testing"

	ordermodels "fys_commerce/internal/api/order/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildVariantKey(t *testing.T) {
	id := primitive.NewObjectID()
	key := BuildVariantKey(id, "#1B3A5C", "M")
	assert.Equal(t, id.Hex()+"|#1B3A5C|M", key)

	// Biến thể không màu không size vẫn có key ổn định
	assert.Equal(t, id.Hex()+"||", BuildVariantKey(id, "", ""))
}

func TestPendingDelta(t *testing.T) {
	cases := []struct {
		oldStatus string
		newStatus string
		want      int64
	}{
		{ordermodels.OrderStatusPending, ordermodels.OrderStatusConfirmed, -1},
		{ordermodels.OrderStatusPending, ordermodels.OrderStatusCancelled, -1},
		{ordermodels.OrderStatusConfirmed, ordermodels.OrderStatusPending, 1},
		{ordermodels.OrderStatusConfirmed, ordermodels.OrderStatusShipped, 0},
		{ordermodels.OrderStatusShipped, ordermodels.OrderStatusDelivered, 0},
		{ordermodels.OrderStatusDelivered, ordermodels.OrderStatusCancelled, 0},
	}

	for _, tc := range cases {
		got := pendingDelta(tc.oldStatus, tc.newStatus)
		assert.Equal(t, tc.want, got, "%s -> %s", tc.oldStatus, tc.newStatus)
	}
}

func TestPendingDelta_RoundTripIsNeutral(t *testing.T) {
	// Rời pending rồi quay lại pending phải triệt tiêu nhau
	out := pendingDelta(ordermodels.OrderStatusPending, ordermodels.OrderStatusConfirmed)
	back := pendingDelta(ordermodels.OrderStatusConfirmed, ordermodels.OrderStatusPending)
	assert.Equal(t, int64(0), out+back)
}

func TestSumItems(t *testing.T) {
	cases := []struct {
		name  string
		items []ordermodels.OrderItem
		want  float64
	}{
		{
			name: "nhiều dòng nhiều số lượng",
			items: []ordermodels.OrderItem{
				{Price: 3200, Quantity: 2},
				{Price: 1500, Quantity: 1},
				{Price: 900, Quantity: 3},
			},
			want: 3200*2 + 1500 + 900*3,
		},
		{
			name:  "một dòng",
			items: []ordermodels.OrderItem{{Price: 2500, Quantity: 1}},
			want:  2500,
		},
		{
			name: "dòng số lượng zero không đóng góp",
			items: []ordermodels.OrderItem{
				{Price: 3200, Quantity: 0},
				{Price: 1500, Quantity: 2},
			},
			want: 3000,
		},
		{name: "không có dòng nào", items: nil, want: 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, SumItems(tc.items), tc.name)
	}
}

func TestOrderTotal(t *testing.T) {
	assert.Equal(t, float64(7800), OrderTotal(7400, 400), "total = subtotal + phí ship")
	assert.Equal(t, float64(400), OrderTotal(0, 400))
	assert.Equal(t, SumItems(nil)+400, OrderTotal(SumItems(nil), 400))
}

func TestStatusChangeUpdate_CancelSetsCancelledAt(t *testing.T) {
	update := statusChangeUpdate(ordermodels.OrderStatusCancelled)

	require.Contains(t, update.Set, "cancelledAt")
	assert.NotZero(t, update.Set["cancelledAt"])
	assert.Empty(t, update.Unset, "hủy đơn không unset trường nào")
}

func TestStatusChangeUpdate_RevertClearsCancelledAt(t *testing.T) {
	// Admin revert cancelled -> pending: đơn không được mang dấu hủy cũ
	for _, status := range []string{
		ordermodels.OrderStatusPending,
		ordermodels.OrderStatusConfirmed,
		ordermodels.OrderStatusShipped,
		ordermodels.OrderStatusDelivered,
	} {
		update := statusChangeUpdate(status)

		assert.Equal(t, status, update.Set["status"])
		assert.NotContains(t, update.Set, "cancelledAt", "trạng thái %q không được set cancelledAt", status)
		assert.Contains(t, update.Unset, "cancelledAt", "trạng thái %q phải gỡ cancelledAt", status)
	}
}

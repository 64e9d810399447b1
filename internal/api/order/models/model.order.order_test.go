package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidOrderStatus(t *testing.T) {
	for _, s := range []string{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	} {
		assert.True(t, IsValidOrderStatus(s), "trạng thái %q phải hợp lệ", s)
	}

	for _, s := range []string{"", "PENDING", "refunded", "done"} {
		assert.False(t, IsValidOrderStatus(s), "trạng thái %q phải bị từ chối", s)
	}
}

// Package catalogsvc - Test chuẩn hóa giá trên đường ghi partial update.
package catalogsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcilePricingSet_BasePriceOnly(t *testing.T) {
	// Chỉ sửa basePrice: discountPercent lấy từ document hiện tại
	set := map[string]interface{}{"basePrice": float64(9000)}

	reconcilePricingSet(set, 5000, 20)

	assert.EqualValues(t, 20, set["discountPercent"])
	assert.EqualValues(t, 7200, set["finalPrice"], "finalPrice phải tính lại từ basePrice mới và discount hiện tại")
}

func TestReconcilePricingSet_DiscountOnly(t *testing.T) {
	// Chỉ sửa discountPercent: basePrice lấy từ document hiện tại
	set := map[string]interface{}{"discountPercent": float64(50)}

	reconcilePricingSet(set, 4000, 0)

	assert.EqualValues(t, 2000, set["finalPrice"])
}

func TestReconcilePricingSet_BothFields(t *testing.T) {
	// Cả hai trường giá trong update: không phụ thuộc giá trị hiện tại
	set := map[string]interface{}{
		"basePrice":       float64(10000),
		"discountPercent": float64(150),
	}

	reconcilePricingSet(set, 999, 999)

	assert.EqualValues(t, 100, set["discountPercent"], "discount ngoài khoảng phải bị clamp")
	assert.EqualValues(t, 0, set["finalPrice"])
}

func TestReconcilePricingSet_RejectsClientFinalPrice(t *testing.T) {
	// Update không chạm giá nhưng gửi kèm finalPrice: server phải gỡ ra
	set := map[string]interface{}{
		"name":       "Deep Sea Hoodie",
		"finalPrice": float64(1),
	}

	reconcilePricingSet(set, 4000, 10)

	assert.NotContains(t, set, "finalPrice", "client không được ghi đè finalPrice")
	assert.NotContains(t, set, "discountPercent", "update không chạm giá thì không thêm trường giá")
	assert.Equal(t, "Deep Sea Hoodie", set["name"])
}

func TestReconcilePricingSet_OverwritesClientFinalPrice(t *testing.T) {
	// Update chạm giá và gửi kèm finalPrice giả: giá trị server tính phải thắng
	set := map[string]interface{}{
		"basePrice":  float64(8000),
		"finalPrice": float64(1),
	}

	reconcilePricingSet(set, 8000, 25)

	require.Contains(t, set, "finalPrice")
	assert.EqualValues(t, 6000, set["finalPrice"])
}

func TestSetTouchesPricing(t *testing.T) {
	assert.True(t, setTouchesPricing(map[string]interface{}{"basePrice": 1}))
	assert.True(t, setTouchesPricing(map[string]interface{}{"discountPercent": 1}))
	assert.False(t, setTouchesPricing(map[string]interface{}{"name": "x", "finalPrice": 1}))
}

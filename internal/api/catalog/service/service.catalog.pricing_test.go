// Package catalogsvc - Test các hàm thuần về giá và biến thể.
package catalogsvc

import (
	"encoding/json"
	"testing"

	catalogmodels "fys_commerce/internal/api/catalog/models"

	"github.com/stretchr/testify/assert"
)

func TestClampDiscount(t *testing.T) {
	assert.Equal(t, float64(0), ClampDiscount(-5), "pct âm phải clamp về 0")
	assert.Equal(t, float64(0), ClampDiscount(0))
	assert.Equal(t, float64(35), ClampDiscount(35))
	assert.Equal(t, float64(100), ClampDiscount(100))
	assert.Equal(t, float64(100), ClampDiscount(150), "pct > 100 phải clamp về 100")
}

func TestComputeFinalPrice(t *testing.T) {
	assert.Equal(t, float64(2500), ComputeFinalPrice(2500, 0), "giảm 0% giữ nguyên giá gốc")
	assert.Equal(t, float64(2000), ComputeFinalPrice(2500, 20))
	assert.Equal(t, float64(0), ComputeFinalPrice(2500, 100), "giảm 100% về 0")
	assert.Equal(t, float64(2500), ComputeFinalPrice(2500, -10), "pct âm coi như không giảm")
	assert.Equal(t, float64(0), ComputeFinalPrice(2500, 120), "pct vượt trần coi như giảm 100%")
}

func TestComputeFinalPrice_Monotonic(t *testing.T) {
	// Giảm giá nhiều hơn thì giá cuối không được tăng
	prev := ComputeFinalPrice(3000, 0)
	for pct := float64(10); pct <= 100; pct += 10 {
		current := ComputeFinalPrice(3000, pct)
		assert.LessOrEqual(t, current, prev, "finalPrice phải giảm dần theo pct (pct=%v)", pct)
		prev = current
	}
}

func TestIsVariantAvailable(t *testing.T) {
	p := catalogmodels.Product{
		InStock:       true,
		Sizes:         []string{"S", "M", "L"},
		SoldOutColors: []string{"#1B3A5C"},
		SoldOutSizes:  []string{"M"},
	}

	assert.True(t, IsVariantAvailable(p, "#FFFFFF", "S"))
	assert.False(t, IsVariantAvailable(p, "#1B3A5C", "S"), "màu sold out phải không available")
	assert.False(t, IsVariantAvailable(p, "#1b3a5c", "S"), "so sánh màu không phân biệt hoa thường")
	assert.False(t, IsVariantAvailable(p, "#FFFFFF", "M"), "size sold out phải không available")
	assert.False(t, IsVariantAvailable(p, "#FFFFFF", "m"), "so sánh size không phân biệt hoa thường")

	p.InStock = false
	assert.False(t, IsVariantAvailable(p, "#FFFFFF", "S"), "sản phẩm hết hàng thì mọi biến thể không available")
}

func TestToFloat64(t *testing.T) {
	cases := []struct {
		in   interface{}
		want float64
		ok   bool
	}{
		{float64(2.5), 2.5, true},
		{float32(1.5), 1.5, true},
		{int(7), 7, true},
		{int32(7), 7, true},
		{int64(7), 7, true},
		{json.Number("1250.5"), 1250.5, true},
		{json.Number("abc"), 0, false},
		{"2500", 0, false},
		{nil, 0, false},
	}

	for _, tc := range cases {
		got, ok := toFloat64(tc.in)
		assert.Equal(t, tc.ok, ok, "input %#v", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %#v", tc.in)
		}
	}
}

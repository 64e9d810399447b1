// Package catalogsvc chứa service data access và business rules cho domain Catalog.
package catalogsvc

import (
	"encoding/json"
	"strings"

	catalogmodels "fys_commerce/internal/api/catalog/models"
)

// ClampDiscount giới hạn phần trăm giảm giá trong khoảng [0, 100]
func ClampDiscount(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ComputeFinalPrice tính giá sau giảm từ giá gốc và phần trăm giảm.
// Công thức: basePrice × (1 − pct/100), sàn tại 0.
// Giá trị này luôn được server tính lại khi ghi, không tin client.
func ComputeFinalPrice(basePrice, discountPercent float64) float64 {
	pct := ClampDiscount(discountPercent)
	final := basePrice * (1 - pct/100)
	if final < 0 {
		return 0
	}
	return final
}

// IsVariantAvailable kiểm tra biến thể (màu, size) còn bán được không.
// Biến thể available khi: sản phẩm inStock, mã màu không nằm trong
// soldOutColors và size không nằm trong soldOutSizes.
// So sánh màu không phân biệt hoa thường (hex #FFF và #fff là một).
func IsVariantAvailable(p catalogmodels.Product, colorCode, size string) bool {
	if !p.InStock {
		return false
	}
	for _, c := range p.SoldOutColors {
		if strings.EqualFold(c, colorCode) {
			return false
		}
	}
	for _, s := range p.SoldOutSizes {
		if strings.EqualFold(s, size) {
			return false
		}
	}
	return true
}

// toFloat64 ép kiểu số từ giá trị decode JSON/BSON (json.Number, float64, int...)
func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

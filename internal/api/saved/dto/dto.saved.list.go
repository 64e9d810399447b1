// Package saveddto chứa DTO cho danh sách favorites/wishlist.
package saveddto

// SavedItemInput là payload một item khi toggle hoặc merge
type SavedItemInput struct {
	ProductID string  `json:"productId" validate:"required"`
	Slug      string  `json:"slug,omitempty" validate:"omitempty,slug"`
	Name      string  `json:"name,omitempty" maxLength:"200"`
	Image     string  `json:"image,omitempty" maxLength:"500"`
	Price     float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency  string  `json:"currency,omitempty" maxLength:"10"`
	ColorName string  `json:"colorName,omitempty" maxLength:"50"`
	ColorCode string  `json:"colorCode,omitempty" validate:"omitempty,hex_color"`
	Size      string  `json:"size,omitempty" validate:"omitempty,oneof=S M L XL"`
}

// MergeInput là payload merge danh sách khách vãng lai (giữ ở client) vào server
type MergeInput struct {
	Items []SavedItemInput `json:"items" validate:"required,dive"`
}

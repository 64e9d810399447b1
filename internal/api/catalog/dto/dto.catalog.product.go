// Package catalogdto chứa DTO cho domain Catalog (Product, Category).
package catalogdto

// ProductImagesInput là ảnh sản phẩm trong input
type ProductImagesInput struct {
	Main    string   `json:"main"`
	Gallery []string `json:"gallery,omitempty"`
}

// ProductCreateInput là input để tạo sản phẩm.
// FinalPrice không nhận từ client, server tự tính.
type ProductCreateInput struct {
	Slug            string             `json:"slug" validate:"required,slug"`
	Name            string             `json:"name" validate:"required" maxLength:"200"`
	Description     string             `json:"description,omitempty" validate:"omitempty,no_xss"`
	BasePrice       float64            `json:"basePrice" validate:"gte=0"`
	DiscountPercent float64            `json:"discountPercent,omitempty"`
	Currency        string             `json:"currency,omitempty"`
	Category        string             `json:"category" validate:"required"`
	DesignTheme     string             `json:"designTheme,omitempty"`
	Sizes           []string           `json:"sizes,omitempty" validate:"omitempty,dive,oneof=S M L XL"`
	Colors          []string           `json:"colors,omitempty"`
	SoldOutColors   []string           `json:"soldOutColors,omitempty"`
	SoldOutSizes    []string           `json:"soldOutSizes,omitempty" validate:"omitempty,dive,oneof=S M L XL"`
	Stock           int                `json:"stock,omitempty" validate:"gte=0"`
	InStock         bool               `json:"inStock,omitempty"`
	Images          ProductImagesInput `json:"images,omitempty"`
	Gender          string             `json:"gender,omitempty" validate:"omitempty,oneof=men women unisex"`
	Status          string             `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// ProductUpdateInput là input để cập nhật sản phẩm (partial update, chỉ field non-zero được ghi)
type ProductUpdateInput struct {
	Name            string              `json:"name,omitempty" maxLength:"200"`
	Description     string              `json:"description,omitempty" validate:"omitempty,no_xss"`
	BasePrice       float64             `json:"basePrice,omitempty" validate:"omitempty,gte=0"`
	DiscountPercent float64             `json:"discountPercent,omitempty"`
	Currency        string              `json:"currency,omitempty"`
	Category        string              `json:"category,omitempty"`
	DesignTheme     string              `json:"designTheme,omitempty"`
	Sizes           []string            `json:"sizes,omitempty" validate:"omitempty,dive,oneof=S M L XL"`
	Colors          []string            `json:"colors,omitempty"`
	SoldOutColors   []string            `json:"soldOutColors,omitempty"`
	SoldOutSizes    []string            `json:"soldOutSizes,omitempty" validate:"omitempty,dive,oneof=S M L XL"`
	Stock           int                 `json:"stock,omitempty" validate:"omitempty,gte=0"`
	InStock         bool                `json:"inStock,omitempty"`
	Images          *ProductImagesInput `json:"images,omitempty"`
	Gender          string              `json:"gender,omitempty" validate:"omitempty,oneof=men women unisex"`
	Status          string              `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// StorefrontListParams là query params cho listing storefront
type StorefrontListParams struct {
	Category    string `query:"category"`
	DesignTheme string `query:"designTheme"`
	Gender      string `query:"gender"`
}

// Package models - Product thuộc domain Catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductImages chứa ảnh chính và gallery của sản phẩm
type ProductImages struct {
	Main    string   `json:"main" bson:"main"`                           // URL ảnh chính
	Gallery []string `json:"gallery,omitempty" bson:"gallery,omitempty"` // URL các ảnh phụ
}

// Product - Sản phẩm trong catalog.
// FinalPrice là giá dẫn xuất: luôn được server tính lại từ BasePrice và
// DiscountPercent khi ghi, không bao giờ tin giá trị client gửi lên.
type Product struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Slug            string             `json:"slug" bson:"slug" index:"unique" validate:"required,slug"`
	Name            string             `json:"name" bson:"name" index:"text"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	BasePrice       float64            `json:"basePrice" bson:"basePrice"`
	DiscountPercent float64            `json:"discountPercent" bson:"discountPercent"` // Phần trăm giảm giá, clamp về [0, 100]
	FinalPrice      float64            `json:"finalPrice" bson:"finalPrice"`           // Giá sau giảm, dẫn xuất
	Currency        string             `json:"currency" bson:"currency" default:"DZD"`
	Category        string             `json:"category" bson:"category" index:"single:1"`
	DesignTheme     string             `json:"designTheme,omitempty" bson:"designTheme,omitempty" index:"single:1"`
	Sizes           []string           `json:"sizes,omitempty" bson:"sizes,omitempty"`   // Tập con của {S, M, L, XL}
	Colors          []string           `json:"colors,omitempty" bson:"colors,omitempty"` // Mã hex hoặc tên màu
	SoldOutColors   []string           `json:"soldOutColors,omitempty" bson:"soldOutColors,omitempty"`
	SoldOutSizes    []string           `json:"soldOutSizes,omitempty" bson:"soldOutSizes,omitempty"`
	Stock           int                `json:"stock" bson:"stock"`
	InStock         bool               `json:"inStock" bson:"inStock" default:"true"`
	Images          ProductImages      `json:"images" bson:"images"`
	Gender          string             `json:"gender,omitempty" bson:"gender,omitempty"` // men | women | unisex
	Status          string             `json:"status" bson:"status" index:"single:1" default:"active"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}

// Trạng thái sản phẩm
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

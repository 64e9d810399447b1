// Package models - Category thuộc domain Catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category - Mục chọn được trên storefront (danh mục hoặc chủ đề thiết kế).
// Một tập default cố định luôn tồn tại kể cả khi store rỗng hoặc lỗi;
// entry default không xóa được, entry do admin tạo thì xóa được.
type Category struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Slug      string             `json:"slug" bson:"slug" index:"unique" validate:"required,slug"`
	Label     string             `json:"label" bson:"label"`
	Type      string             `json:"type" bson:"type" index:"single:1" default:"category"` // category | design
	IsDefault bool               `json:"isDefault" bson:"-"`                                   // true với entry thuộc tập default, không lưu DB
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// Loại mục chọn
const (
	CategoryTypeCategory = "category"
	CategoryTypeDesign   = "design"
)

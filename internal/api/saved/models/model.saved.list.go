// Package models - SavedList dùng chung cho favorites và wishlist.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedItem là một biến thể sản phẩm được lưu trong danh sách của user.
// Dữ liệu hiển thị (name, image, price) là snapshot tại thời điểm lưu.
type SavedItem struct {
	ProductID  primitive.ObjectID `json:"productId" bson:"productId"`
	Slug       string             `json:"slug,omitempty" bson:"slug,omitempty"`
	Name       string             `json:"name,omitempty" bson:"name,omitempty"`
	Image      string             `json:"image,omitempty" bson:"image,omitempty"`
	Price      float64            `json:"price,omitempty" bson:"price,omitempty"`
	Currency   string             `json:"currency,omitempty" bson:"currency,omitempty"`
	ColorName  string             `json:"colorName,omitempty" bson:"colorName,omitempty"`
	ColorCode  string             `json:"colorCode,omitempty" bson:"colorCode,omitempty"`
	Size       string             `json:"size,omitempty" bson:"size,omitempty"`
	VariantKey string             `json:"variantKey" bson:"variantKey"` // productId|colorCode|size
	AddedAt    int64              `json:"addedAt" bson:"addedAt"`
}

// IdentityKey trả về key nhận diện item khi toggle/merge.
// Ưu tiên variantKey, fallback về productId cho item cũ chưa có variantKey.
func (i SavedItem) IdentityKey() string {
	if i.VariantKey != "" {
		return i.VariantKey
	}
	return i.ProductID.Hex()
}

// SavedList - Document danh sách lưu của một user (mỗi user một document).
// Cùng một model dùng cho hai collection favorites và wishlists.
type SavedList struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"userId" index:"unique"` // Firebase UID
	Items     []SavedItem        `json:"items" bson:"items"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

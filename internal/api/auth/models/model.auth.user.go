// Package models - User thuộc domain Auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User - Bản ghi người dùng trong store, đồng bộ từ Firebase.
// Nguồn chân lý về quyền admin là custom claim trên Firebase token;
// trường IsAdmin ở đây chỉ để hiển thị ở back-office.
type User struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UID         string             `json:"uid" bson:"uid" index:"unique"` // Firebase UID
	Email       string             `json:"email,omitempty" bson:"email,omitempty" index:"single:1"`
	DisplayName string             `json:"displayName,omitempty" bson:"displayName,omitempty"`
	PhotoURL    string             `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	IsAdmin     bool               `json:"isAdmin" bson:"isAdmin"`
	LastLoginAt int64              `json:"lastLoginAt" bson:"lastLoginAt"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

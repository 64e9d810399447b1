// Package models - ContactMessage thuộc domain Contact.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessage - Tin nhắn từ form liên hệ của storefront
type ContactMessage struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email" index:"single:1"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject   string             `json:"subject,omitempty" bson:"subject,omitempty"`
	Message   string             `json:"message" bson:"message"`
	Read      bool               `json:"read" bson:"read" index:"single:1"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

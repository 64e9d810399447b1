// Package models - Order và AdminStats thuộc domain Order.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem là snapshot denormalized của một sản phẩm tại thời điểm đặt hàng.
// Giá là finalPrice của sản phẩm lúc checkout, không thay đổi theo catalog sau đó.
type OrderItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Slug      string             `json:"slug" bson:"slug"`
	Name      string             `json:"name" bson:"name"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	Price     float64            `json:"price" bson:"price"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	ColorName string             `json:"colorName,omitempty" bson:"colorName,omitempty"`
	ColorCode string             `json:"colorCode,omitempty" bson:"colorCode,omitempty"`
	Size      string             `json:"size,omitempty" bson:"size,omitempty"`
	VariantKey string            `json:"variantKey" bson:"variantKey"` // productId|colorCode|size
}

// ShippingInfo là thông tin giao hàng của đơn
type ShippingInfo struct {
	CustomerName string  `json:"customerName" bson:"customerName"`
	Phone        string  `json:"phone" bson:"phone"`
	Wilaya       string  `json:"wilaya" bson:"wilaya"`
	Address      string  `json:"address,omitempty" bson:"address,omitempty"`
	Mode         string  `json:"mode" bson:"mode"` // home | desk
	Price        float64 `json:"price" bson:"price"`
}

// Order - Đơn hàng COD.
// Subtotal, ShippingCost, Total luôn do server tính lại lúc checkout:
// subtotal = Σ(price × quantity), total = subtotal + shippingCost.
type Order struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID        string             `json:"userId,omitempty" bson:"userId,omitempty" index:"single:1"` // Firebase UID, rỗng với khách vãng lai
	CustomerEmail string             `json:"customerEmail,omitempty" bson:"customerEmail,omitempty"`
	Items         []OrderItem        `json:"items" bson:"items"`
	Shipping      ShippingInfo       `json:"shipping" bson:"shipping"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	Subtotal      float64            `json:"subtotal" bson:"subtotal"`
	ShippingCost  float64            `json:"shippingCost" bson:"shippingCost"`
	Total         float64            `json:"total" bson:"total"`
	PaymentMethod string             `json:"paymentMethod" bson:"paymentMethod" default:"COD"`
	Status        string             `json:"status" bson:"status" index:"single:1" default:"pending"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
	CancelledAt   *int64             `json:"cancelledAt,omitempty" bson:"cancelledAt,omitempty"`
}

// Trạng thái đơn hàng
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// validOrderStatuses là tập trạng thái hợp lệ của đơn
var validOrderStatuses = map[string]bool{
	OrderStatusPending:   true,
	OrderStatusConfirmed: true,
	OrderStatusShipped:   true,
	OrderStatusDelivered: true,
	OrderStatusCancelled: true,
}

// IsValidOrderStatus kiểm tra status có thuộc tập trạng thái hợp lệ không
func IsValidOrderStatus(status string) bool {
	return validOrderStatuses[status]
}

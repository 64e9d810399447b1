package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminStatsKey là key của document thống kê duy nhất trong collection admin_stats
const AdminStatsKey = "global"

// AdminStats - Document thống kê denormalized duy nhất cho back-office.
// Được cập nhật trong cùng transaction với thao tác đơn hàng và có endpoint
// recompute để đối soát lại từ collection orders (eventually consistent).
type AdminStats struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Key            string             `json:"key" bson:"key" index:"unique"`
	TotalOrders    int64              `json:"totalOrders" bson:"totalOrders"`
	TotalRevenue   float64            `json:"totalRevenue" bson:"totalRevenue"`
	PendingOrders  int64              `json:"pendingOrders" bson:"pendingOrders"` // Không bao giờ âm
	OrdersToday    int64              `json:"ordersToday" bson:"ordersToday"`
	OrdersThisWeek int64              `json:"ordersThisWeek" bson:"ordersThisWeek"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// Package ordersvc chứa service cho domain Order: checkout, lifecycle và thống kê.
package ordersvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "fys_commerce/internal/api/base/service"
	ordermodels "fys_commerce/internal/api/order/models"
	"fys_commerce/internal/common"
	"fys_commerce/internal/global"
	"fys_commerce/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdminStatsService quản lý document thống kê denormalized duy nhất (key = "global").
// Các thao tác tăng/giảm được gọi trong cùng transaction với thao tác đơn hàng.
type AdminStatsService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.AdminStats]
}

// NewAdminStatsService tạo mới AdminStatsService
func NewAdminStatsService() (*AdminStatsService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AdminStats)
	if !exist {
		return nil, fmt.Errorf("failed to get admin_stats collection: %v", common.ErrNotFound)
	}

	return &AdminStatsService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.AdminStats](collection),
	}, nil
}

// GetSummary trả về document thống kê. Chưa có document thì trả về bản rỗng.
func (s *AdminStatsService) GetSummary(ctx context.Context) (ordermodels.AdminStats, error) {
	stats, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"key": ordermodels.AdminStatsKey}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return ordermodels.AdminStats{Key: ordermodels.AdminStatsKey}, nil
		}
		return ordermodels.AdminStats{}, err
	}
	return stats, nil
}

// ApplyOrderCreated tăng các counter khi một đơn mới được tạo (status pending).
// Gọi bên trong transaction của checkout.
func (s *AdminStatsService) ApplyOrderCreated(ctx context.Context, orderTotal float64) error {
	update := &basesvc.UpdateData{
		Inc: map[string]interface{}{
			"totalOrders":    int64(1),
			"totalRevenue":   orderTotal,
			"pendingOrders":  int64(1),
			"ordersToday":    int64(1),
			"ordersThisWeek": int64(1),
		},
	}

	_, err := s.BaseServiceMongoImpl.UpdateOne(ctx, bson.M{"key": ordermodels.AdminStatsKey}, update, options.Update().SetUpsert(true))
	return err
}

// AdjustPendingOrders tăng/giảm counter pendingOrders theo delta (±1).
// Khi giảm, filter thêm điều kiện pendingOrders > 0 để counter không bao giờ âm;
// counter đã ở 0 thì coi như no-op (recompute sẽ đối soát lại).
func (s *AdminStatsService) AdjustPendingOrders(ctx context.Context, delta int64) error {
	if delta == 0 {
		return nil
	}

	filter := bson.M{"key": ordermodels.AdminStatsKey}
	opts := options.Update()
	if delta > 0 {
		opts.SetUpsert(true)
	} else {
		filter["pendingOrders"] = bson.M{"$gt": 0}
	}

	update := &basesvc.UpdateData{
		Inc: map[string]interface{}{"pendingOrders": delta},
	}

	_, err := s.BaseServiceMongoImpl.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if delta < 0 && errors.Is(err, common.ErrNotFound) {
			logger.GetAppLogger().Warn("pendingOrders đã ở 0, bỏ qua lần giảm counter")
			return nil
		}
		return err
	}
	return nil
}

// ReplaceSummary ghi đè toàn bộ document thống kê (dùng bởi recompute)
func (s *AdminStatsService) ReplaceSummary(ctx context.Context, stats ordermodels.AdminStats) (ordermodels.AdminStats, error) {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"totalOrders":    stats.TotalOrders,
			"totalRevenue":   stats.TotalRevenue,
			"pendingOrders":  stats.PendingOrders,
			"ordersToday":    stats.OrdersToday,
			"ordersThisWeek": stats.OrdersThisWeek,
		},
	}
	return s.BaseServiceMongoImpl.Upsert(ctx, bson.M{"key": ordermodels.AdminStatsKey}, update)
}

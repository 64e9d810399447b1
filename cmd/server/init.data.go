package main

import (
	"context"
	"errors"

	ordermodels "fys_commerce/internal/api/order/models"
	ordersvc "fys_commerce/internal/api/order/service"
	"fys_commerce/internal/common"
	"fys_commerce/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	// 1. Seed document thống kê admin (key = "global") nếu chưa có.
	// Các counter bắt đầu từ 0, checkout/recompute sẽ cập nhật dần.
	log.Info("🔄 [INIT] Step 1: Seeding admin stats document...")
	statsService, err := ordersvc.NewAdminStatsService()
	if err != nil {
		log.Fatalf("Failed to initialize admin stats service: %v", err)
	}

	ctx := context.TODO()
	_, err = statsService.FindOne(ctx, bson.M{"key": ordermodels.AdminStatsKey}, nil)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			log.Fatalf("Failed to check admin stats document: %v", err)
		}
		if _, err := statsService.InsertOne(ctx, ordermodels.AdminStats{Key: ordermodels.AdminStatsKey}); err != nil {
			log.WithError(err).Error("❌ [INIT] Step 1: Failed to seed admin stats document")
		} else {
			log.Info("✅ [INIT] Step 1: Admin stats document seeded")
		}
	} else {
		log.Info("✅ [INIT] Step 1: Admin stats document already exists")
	}

	// Categories mặc định không cần seed: service catalog merge tập default
	// vào kết quả đọc, store chỉ giữ các mục admin thêm thủ công.

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}

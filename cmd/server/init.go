package main

import (
	"context"

	"fys_commerce/config"
	authmodels "fys_commerce/internal/api/auth/models"
	catalogmodels "fys_commerce/internal/api/catalog/models"
	contactmodels "fys_commerce/internal/api/contact/models"
	ordermodels "fys_commerce/internal/api/order/models"
	savedmodels "fys_commerce/internal/api/saved/models"
	"fys_commerce/internal/database"
	"fys_commerce/internal/global"
	"fys_commerce/internal/utility"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initFirebase()         // Khởi tạo Firebase
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Products = "products"
	global.MongoDB_ColNames.Categories = "categories"
	global.MongoDB_ColNames.Orders = "orders"
	global.MongoDB_ColNames.Favorites = "favorites"
	global.MongoDB_ColNames.Wishlists = "wishlists"
	global.MongoDB_ColNames.ContactMessages = "contact_messages"
	global.MongoDB_ColNames.AdminStats = "admin_stats"
	global.MongoDB_ColNames.Users = "users"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, slug, hex_color)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection theo tag `index` trên model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Products), catalogmodels.Product{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Categories), catalogmodels.Category{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Orders), ordermodels.Order{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Favorites), savedmodels.SavedList{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Wishlists), savedmodels.SavedList{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.ContactMessages), contactmodels.ContactMessage{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.AdminStats), ordermodels.AdminStats{})
	database.CreateIndexes(context.TODO(), db.Collection(global.MongoDB_ColNames.Users), authmodels.User{})
}

// initFirebase khởi tạo Firebase Admin SDK.
// Thiếu config thì chỉ warn và bỏ qua: các route public vẫn chạy được,
// route yêu cầu đăng nhập sẽ trả lỗi xác thực.
func initFirebase() {
	cfg := global.MongoDB_ServerConfig

	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Firebase config không đầy đủ, bỏ qua khởi tạo Firebase")
		return
	}

	err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath)
	if err != nil {
		logrus.Errorf("Failed to initialize Firebase: %v", err)
		// Không fatal, chỉ log warning để hệ thống vẫn chạy được
		return
	}

	logrus.Info("Firebase initialized successfully")
}

package global

import (
	"fys_commerce/config"
	"fys_commerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Store_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Store_CollectionName struct {
	Products        string // Tên collection cho sản phẩm
	Categories      string // Tên collection cho danh mục sản phẩm
	Orders          string // Tên collection cho đơn hàng
	Favorites       string // Tên collection cho danh sách yêu thích
	Wishlists       string // Tên collection cho wishlist
	ContactMessages string // Tên collection cho tin nhắn liên hệ
	AdminStats      string // Tên collection cho thống kê admin
	Users           string // Tên collection cho người dùng
}

// Các biến toàn cục
var Validate *validator.Validate                                                      // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                     // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                        // Cấu hình của server
var MongoDB_ColNames MongoDB_Store_CollectionName = *new(MongoDB_Store_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases

// Package router đăng ký các route thuộc domain Catalog: Product, Category.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "fys_commerce/internal/api/catalog/handler"
	"fys_commerce/internal/api/middleware"
	apirouter "fys_commerce/internal/api/router"
)

// Register đăng ký tất cả route Catalog lên v1.
// Storefront đọc công khai (chỉ sản phẩm active); back-office nằm dưới
// prefix /admin riêng vì middleware của Fiber áp theo prefix path:
// gắn RequireAdmin lên /products sẽ chặn luôn các route public cùng prefix.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("create product handler: %w", err)
	}
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("create category handler: %w", err)
	}

	adminMiddleware := []fiber.Handler{middleware.RequireAdmin()}

	// Storefront (public): chỉ đọc sản phẩm active
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "GET", "/storefront", nil, productHandler.HandleStorefrontList)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "GET", "/find-by-slug/:slug", nil, productHandler.HandleFindBySlug)

	// Categories (public đọc)
	apirouter.RegisterRouteWithMiddleware(v1, "/categories", "GET", "/list", nil, categoryHandler.HandleList)

	// Back-office (admin)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/categories", "POST", "/insert-one", adminMiddleware, categoryHandler.InsertOne)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/categories", "DELETE", "/delete-by-id/:id", adminMiddleware, categoryHandler.DeleteById)
	r.RegisterCRUDRoutes(v1, "/admin/products", productHandler, apirouter.ReadWriteConfig, adminMiddleware)

	return nil
}

// Package router đăng ký các route favorites và wishlist.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"fys_commerce/internal/api/middleware"
	savedhdl "fys_commerce/internal/api/saved/handler"
	apirouter "fys_commerce/internal/api/router"
)

// Register đăng ký route cho hai danh sách lưu. Tất cả yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	favoriteHandler, err := savedhdl.NewFavoriteHandler()
	if err != nil {
		return fmt.Errorf("create favorite handler: %w", err)
	}
	wishlistHandler, err := savedhdl.NewWishlistHandler()
	if err != nil {
		return fmt.Errorf("create wishlist handler: %w", err)
	}

	authMiddleware := []fiber.Handler{middleware.RequireAuth()}

	for prefix, handler := range map[string]*savedhdl.SavedListHandler{
		"/favorites": favoriteHandler,
		"/wishlists": wishlistHandler,
	} {
		apirouter.RegisterRouteWithMiddleware(v1, prefix, "GET", "/my-list", authMiddleware, handler.HandleMyList)
		apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/toggle", authMiddleware, handler.HandleToggle)
		apirouter.RegisterRouteWithMiddleware(v1, prefix, "POST", "/merge", authMiddleware, handler.HandleMerge)
	}

	return nil
}

// Package router đăng ký các route thuộc domain Auth.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "fys_commerce/internal/api/auth/handler"
	"fys_commerce/internal/api/middleware"
	apirouter "fys_commerce/internal/api/router"
)

// Register đăng ký route Auth lên v1.
// set-admin-claim chỉ yêu cầu RequireAuth: việc kiểm tra caller là admin
// hay super-admin bootstrap nằm trong service (admin đầu tiên chưa có claim).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("create user handler: %w", err)
	}

	authMiddleware := []fiber.Handler{middleware.RequireAuth()}
	adminMiddleware := []fiber.Handler{middleware.RequireAdmin()}

	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/me", authMiddleware, userHandler.HandleMe)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/set-admin-claim", authMiddleware, userHandler.HandleSetAdminClaim)

	// Back-office (admin): danh sách user
	r.RegisterCRUDRoutes(v1, "/admin/users", userHandler, apirouter.ReadOnlyConfig, adminMiddleware)

	return nil
}

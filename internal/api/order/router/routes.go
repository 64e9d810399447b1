// Package router đăng ký các route thuộc domain Order.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"fys_commerce/internal/api/middleware"
	orderhdl "fys_commerce/internal/api/order/handler"
	apirouter "fys_commerce/internal/api/router"
	"fys_commerce/internal/global"
	"fys_commerce/internal/notification"
)

// Register đăng ký tất cả route Order lên v1.
// Checkout public (kèm OptionalAuth để gắn UID nếu có token); các route
// self-service yêu cầu đăng nhập; back-office nằm dưới prefix /admin riêng.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	notifier := notification.NewTelegramNotifier(
		global.MongoDB_ServerConfig.TelegramBotToken,
		global.MongoDB_ServerConfig.TelegramChatIDs,
	)

	orderHandler, err := orderhdl.NewOrderHandler(notifier)
	if err != nil {
		return fmt.Errorf("create order handler: %w", err)
	}

	optionalAuth := []fiber.Handler{middleware.OptionalAuth()}
	authMiddleware := []fiber.Handler{middleware.RequireAuth()}
	adminMiddleware := []fiber.Handler{middleware.RequireAdmin()}

	// Checkout (public, UID gắn vào đơn nếu có token)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/checkout", optionalAuth, orderHandler.HandleCheckout)

	// Self-service (yêu cầu đăng nhập)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/my-orders", authMiddleware, orderHandler.HandleMyOrders)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/cancel/:id", authMiddleware, orderHandler.HandleCancel)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "PUT", "/edit/:id", authMiddleware, orderHandler.HandleEdit)

	// Back-office (admin)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/orders", "POST", "/change-status/:id", adminMiddleware, orderHandler.HandleChangeStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin-stats", "GET", "/summary", adminMiddleware, orderHandler.HandleStatsSummary)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin-stats", "POST", "/recompute", adminMiddleware, orderHandler.HandleRecomputeStats)
	r.RegisterCRUDRoutes(v1, "/admin/orders", orderHandler, apirouter.ReadOnlyConfig, adminMiddleware)

	return nil
}

// Package router đăng ký các route thuộc domain Contact.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contacthdl "fys_commerce/internal/api/contact/handler"
	"fys_commerce/internal/api/middleware"
	apirouter "fys_commerce/internal/api/router"
)

// Register đăng ký route Contact lên v1.
// Gửi tin nhắn là public, đọc và quản lý là admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	contactHandler, err := contacthdl.NewContactMessageHandler()
	if err != nil {
		return fmt.Errorf("create contact message handler: %w", err)
	}

	adminMiddleware := []fiber.Handler{middleware.RequireAdmin()}

	// Form liên hệ (public)
	apirouter.RegisterRouteWithMiddleware(v1, "/contact-messages", "POST", "/insert-one", nil, contactHandler.InsertOne)

	// Back-office (admin)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/contact-messages", "PUT", "/mark-read/:id", adminMiddleware, contactHandler.HandleMarkRead)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/contact-messages", "GET", "/count-unread", adminMiddleware, contactHandler.HandleCountUnread)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/contact-messages", "DELETE", "/delete-by-id/:id", adminMiddleware, contactHandler.DeleteById)
	r.RegisterCRUDRoutes(v1, "/admin/contact-messages", contactHandler, apirouter.ReadOnlyConfig, adminMiddleware)

	return nil
}

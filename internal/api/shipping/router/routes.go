// Package router đăng ký các route thuộc domain Shipping.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	shippinghdl "fys_commerce/internal/api/shipping/handler"
	apirouter "fys_commerce/internal/api/router"
)

// Register đăng ký tất cả route Shipping lên v1 (public).
func Register(v1 fiber.Router, r *apirouter.Router) error {
	shippingHandler, err := shippinghdl.NewShippingHandler()
	if err != nil {
		return fmt.Errorf("create shipping handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/shipping", "GET", "/quote", nil, shippingHandler.HandleQuote)
	apirouter.RegisterRouteWithMiddleware(v1, "/shipping", "GET", "/wilayas", nil, shippingHandler.HandleWilayas)
	return nil
}

// Package shippinghdl chứa HTTP handler cho domain Shipping.
package shippinghdl

import (
	basehdl "fys_commerce/internal/api/base/handler"
	shippingsvc "fys_commerce/internal/api/shipping/service"
	"fys_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
)

// ShippingHandler xử lý các request tra cứu giá giao hàng
type ShippingHandler struct{}

// NewShippingHandler tạo mới ShippingHandler
func NewShippingHandler() (*ShippingHandler, error) {
	return &ShippingHandler{}, nil
}

// handleResponse trả response theo envelope chuẩn (handler này không embed BaseHandler vì không có collection)
func handleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return basehdl.SafeHandlerWrapper(c, func() error {
			basehdl.JSONResponse(c, errStatusCode(err), errBody(err))
			return nil
		})
	}
	return basehdl.JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

func errStatusCode(err error) int {
	if customErr, ok := err.(*common.Error); ok {
		return customErr.StatusCode
	}
	return common.StatusInternalServerError
}

func errBody(err error) fiber.Map {
	if customErr, ok := err.(*common.Error); ok {
		return fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
			"status":  "error",
		}
	}
	return fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": err.Error(),
		"status":  "error",
	}
}

// HandleQuote tra giá giao hàng cho cặp (wilaya, mode).
// Query params: wilaya (bắt buộc), mode (home|desk, mặc định home).
func (h *ShippingHandler) HandleQuote(c fiber.Ctx) error {
	wilaya := c.Query("wilaya")
	if wilaya == "" {
		return handleResponse(c, nil, common.NewError(
			common.ErrCodeValidationInput,
			"Thiếu tham số wilaya",
			common.StatusBadRequest,
			nil,
		))
	}
	mode := c.Query("mode", shippingsvc.ModeHome)

	price, err := shippingsvc.Quote(wilaya, mode)
	if err != nil {
		return handleResponse(c, nil, err)
	}

	return handleResponse(c, fiber.Map{
		"wilaya":   wilaya,
		"mode":     mode,
		"price":    price,
		"currency": "DZD",
	}, nil)
}

// HandleWilayas trả về toàn bộ bảng giá giao hàng
func (h *ShippingHandler) HandleWilayas(c fiber.Ctx) error {
	return handleResponse(c, shippingsvc.Wilayas(), nil)
}

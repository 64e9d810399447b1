// Package orderhdl chứa HTTP handler cho domain Order.
package orderhdl

import (
	"fmt"
	"strconv"

	basehdl "fys_commerce/internal/api/base/handler"
	orderdto "fys_commerce/internal/api/order/dto"
	ordermodels "fys_commerce/internal/api/order/models"
	ordersvc "fys_commerce/internal/api/order/service"
	"fys_commerce/internal/common"
	"fys_commerce/internal/notification"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderHandler xử lý các request liên quan đến đơn hàng
type OrderHandler struct {
	basehdl.BaseHandler[ordermodels.Order, orderdto.CheckoutInput, orderdto.OrderEditInput]
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo mới OrderHandler
func NewOrderHandler(notifier *notification.TelegramNotifier) (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService(notifier)
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[ordermodels.Order, orderdto.CheckoutInput, orderdto.OrderEditInput](orderService)
	h := &OrderHandler{
		BaseHandler:  *baseHandler,
		orderService: orderService,
	}
	return h, nil
}

// parseOrderID đọc và validate :id từ URL params
func (h *OrderHandler) parseOrderID(c fiber.Ctx) (primitive.ObjectID, error) {
	idStr := c.Params("id")
	if idStr == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID không được để trống trong URL params",
			common.StatusBadRequest,
			nil,
		)
	}

	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng ObjectID", idStr),
			common.StatusBadRequest,
			err,
		)
	}
	return id, nil
}

// currentUID đọc Firebase UID từ Locals (được middleware auth gán)
func currentUID(c fiber.Ctx) string {
	if uid, ok := c.Locals("uid").(string); ok {
		return uid
	}
	return ""
}

// HandleCheckout tạo đơn hàng COD mới.
// Endpoint public: khách vãng lai đặt được, có token thì đơn gắn với UID.
func (h *OrderHandler) HandleCheckout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		input := new(orderdto.CheckoutInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.orderService.Checkout(c.Context(), currentUID(c), input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleMyOrders trả về đơn hàng của user đang đăng nhập, có phân trang
func (h *OrderHandler) HandleMyOrders(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		uid := currentUID(c)
		if uid == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
		if err != nil || limit <= 0 {
			limit = 10
		}

		data, err := h.orderService.FindMyOrders(c.Context(), uid, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleCancel hủy đơn pending của chính user đang đăng nhập
func (h *OrderHandler) HandleCancel(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseOrderID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.orderService.Cancel(c.Context(), id, currentUID(c))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleEdit sửa đơn pending của chính user đang đăng nhập
func (h *OrderHandler) HandleEdit(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseOrderID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(orderdto.OrderEditInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.orderService.EditPending(c.Context(), id, currentUID(c), input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleChangeStatus đổi trạng thái đơn (admin)
func (h *OrderHandler) HandleChangeStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.parseOrderID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(orderdto.ChangeStatusInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.orderService.ChangeStatus(c.Context(), id, input.Status)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleStatsSummary trả về document thống kê denormalized (admin)
func (h *OrderHandler) HandleStatsSummary(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.orderService.StatsService().GetSummary(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleRecomputeStats đối soát lại thống kê từ collection orders (admin)
func (h *OrderHandler) HandleRecomputeStats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.orderService.RecomputeStats(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

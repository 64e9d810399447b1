// Package contacthdl chứa HTTP handler cho domain Contact.
package contacthdl

import (
	"fmt"

	basehdl "fys_commerce/internal/api/base/handler"
	contactdto "fys_commerce/internal/api/contact/dto"
	contactmodels "fys_commerce/internal/api/contact/models"
	contactsvc "fys_commerce/internal/api/contact/service"
	"fys_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessageHandler xử lý request tin nhắn liên hệ
type ContactMessageHandler struct {
	basehdl.BaseHandler[contactmodels.ContactMessage, contactdto.ContactMessageCreateInput, contactdto.ContactMessageUpdateInput]
	contactService *contactsvc.ContactMessageService
}

// NewContactMessageHandler tạo mới ContactMessageHandler
func NewContactMessageHandler() (*ContactMessageHandler, error) {
	contactService, err := contactsvc.NewContactMessageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create contact message service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[contactmodels.ContactMessage, contactdto.ContactMessageCreateInput, contactdto.ContactMessageUpdateInput](contactService)
	h := &ContactMessageHandler{
		BaseHandler:    *baseHandler,
		contactService: contactService,
	}
	return h, nil
}

// HandleMarkRead đánh dấu tin nhắn đã đọc (admin)
func (h *ContactMessageHandler) HandleMarkRead(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		idStr := c.Params("id")
		id, err := primitive.ObjectIDFromHex(idStr)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng ObjectID", idStr),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		input := new(contactdto.ContactMessageUpdateInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.contactService.MarkRead(c.Context(), id, input.Read)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleCountUnread trả về số tin nhắn chưa đọc (admin)
func (h *ContactMessageHandler) HandleCountUnread(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		count, err := h.contactService.CountUnread(c.Context())
		h.HandleResponse(c, fiber.Map{"unread": count}, err)
		return nil
	})
}

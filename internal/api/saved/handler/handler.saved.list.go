// Package savedhdl chứa HTTP handler cho favorites và wishlist.
package savedhdl

import (
	"fmt"

	basehdl "fys_commerce/internal/api/base/handler"
	saveddto "fys_commerce/internal/api/saved/dto"
	savedmodels "fys_commerce/internal/api/saved/models"
	savedsvc "fys_commerce/internal/api/saved/service"
	"fys_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
)

// SavedListHandler xử lý request danh sách lưu. Một instance cho favorites,
// một instance cho wishlist, khác nhau ở service bên trong.
type SavedListHandler struct {
	basehdl.BaseHandler[savedmodels.SavedList, saveddto.SavedItemInput, saveddto.SavedItemInput]
	savedService *savedsvc.SavedListService
}

func newSavedListHandler(savedService *savedsvc.SavedListService) *SavedListHandler {
	baseHandler := basehdl.NewBaseHandler[savedmodels.SavedList, saveddto.SavedItemInput, saveddto.SavedItemInput](savedService)
	return &SavedListHandler{
		BaseHandler:  *baseHandler,
		savedService: savedService,
	}
}

// NewFavoriteHandler tạo handler cho danh sách yêu thích
func NewFavoriteHandler() (*SavedListHandler, error) {
	savedService, err := savedsvc.NewFavoriteService()
	if err != nil {
		return nil, fmt.Errorf("failed to create favorite service: %v", err)
	}
	return newSavedListHandler(savedService), nil
}

// NewWishlistHandler tạo handler cho wishlist
func NewWishlistHandler() (*SavedListHandler, error) {
	savedService, err := savedsvc.NewWishlistService()
	if err != nil {
		return nil, fmt.Errorf("failed to create wishlist service: %v", err)
	}
	return newSavedListHandler(savedService), nil
}

// requireUID đọc UID từ Locals, middleware RequireAuth phải chạy trước
func requireUID(c fiber.Ctx) (string, error) {
	uid, ok := c.Locals("uid").(string)
	if !ok || uid == "" {
		return "", common.ErrTokenMissing
	}
	return uid, nil
}

// HandleMyList trả về danh sách lưu của user đang đăng nhập
func (h *SavedListHandler) HandleMyList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		uid, err := requireUID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.savedService.GetByUser(c.Context(), uid)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleToggle thêm/gỡ một item trong danh sách của user.
// Response data gồm danh sách sau thao tác và cờ added.
func (h *SavedListHandler) HandleToggle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		uid, err := requireUID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(saveddto.SavedItemInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		list, added, err := h.savedService.Toggle(c.Context(), uid, *input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, fiber.Map{"list": list, "added": added}, nil)
		return nil
	})
}

// HandleMerge hợp nhất danh sách khách vãng lai vào danh sách server của user
func (h *SavedListHandler) HandleMerge(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		uid, err := requireUID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(saveddto.MergeInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.savedService.Merge(c.Context(), uid, input.Items)
		h.HandleResponse(c, data, err)
		return nil
	})
}

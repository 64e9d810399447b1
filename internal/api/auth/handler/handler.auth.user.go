// Package authhdl chứa HTTP handler cho domain Auth.
package authhdl

import (
	"fmt"

	"firebase.google.com/go/v4/auth"

	authdto "fys_commerce/internal/api/auth/dto"
	authmodels "fys_commerce/internal/api/auth/models"
	authsvc "fys_commerce/internal/api/auth/service"
	basehdl "fys_commerce/internal/api/base/handler"
	"fys_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
)

// UserHandler xử lý request liên quan đến user và quyền admin
type UserHandler struct {
	basehdl.BaseHandler[authmodels.User, authdto.SetAdminClaimInput, authdto.SetAdminClaimInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo mới UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[authmodels.User, authdto.SetAdminClaimInput, authdto.SetAdminClaimInput](userService)
	h := &UserHandler{
		BaseHandler: *baseHandler,
		userService: userService,
	}
	return h, nil
}

// currentToken đọc decoded token từ Locals (middleware auth gán)
func currentToken(c fiber.Ctx) (*auth.Token, error) {
	token, ok := c.Locals("firebase_token").(*auth.Token)
	if !ok || token == nil {
		return nil, common.ErrTokenMissing
	}
	return token, nil
}

// HandleMe upsert và trả về bản ghi user của token đang đăng nhập
func (h *UserHandler) HandleMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		token, err := currentToken(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.userService.UpsertFromToken(c.Context(), token)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleSetAdminClaim cấp/thu hồi custom claim admin theo email.
// Chỉ admin hiện tại hoặc super-admin bootstrap được phép gọi.
func (h *UserHandler) HandleSetAdminClaim(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		token, err := currentToken(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := new(authdto.SetAdminClaimInput)
		if err := h.ParseRequestBody(c, input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.userService.SetAdminByEmail(c.Context(), token, input.Email, input.IsAdmin)
		h.HandleResponse(c, data, err)
		return nil
	})
}

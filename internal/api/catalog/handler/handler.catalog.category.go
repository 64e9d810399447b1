package cataloghdl

import (
	"fmt"

	basehdl "fys_commerce/internal/api/base/handler"
	catalogdto "fys_commerce/internal/api/catalog/dto"
	catalogmodels "fys_commerce/internal/api/catalog/models"
	catalogsvc "fys_commerce/internal/api/catalog/service"

	"github.com/gofiber/fiber/v3"
)

// CategoryHandler xử lý các request liên quan đến danh mục và chủ đề thiết kế.
// DeleteById đi qua CategoryService nên entry thuộc tập default tự động bị từ chối.
type CategoryHandler struct {
	basehdl.BaseHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
	categoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo mới CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](categoryService)
	h := &CategoryHandler{
		BaseHandler:     *baseHandler,
		categoryService: categoryService,
	}
	return h, nil
}

// HandleList trả về toàn bộ mục chọn (tập default union entry trong store).
// Store lỗi thì vẫn trả về tập default, không fail request.
func (h *CategoryHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data := h.categoryService.List(c.Context())
		h.HandleResponse(c, data, nil)
		return nil
	})
}

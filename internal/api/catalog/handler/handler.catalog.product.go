// Package cataloghdl chứa HTTP handler cho domain Catalog (Product, Category).
package cataloghdl

import (
	"fmt"
	"strconv"

	basehdl "fys_commerce/internal/api/base/handler"
	catalogdto "fys_commerce/internal/api/catalog/dto"
	catalogmodels "fys_commerce/internal/api/catalog/models"
	catalogsvc "fys_commerce/internal/api/catalog/service"
	"fys_commerce/internal/common"

	"github.com/gofiber/fiber/v3"
)

// ProductHandler xử lý các request liên quan đến sản phẩm
type ProductHandler struct {
	basehdl.BaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	productService *catalogsvc.ProductService
}

// NewProductHandler tạo mới ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService)
	h := &ProductHandler{
		BaseHandler:    *baseHandler,
		productService: productService,
	}
	return h, nil
}

// HandleFindBySlug tìm sản phẩm active theo slug (đường đọc storefront).
// Sản phẩm inactive trả về 404 như không tồn tại.
func (h *ProductHandler) HandleFindBySlug(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		slug := c.Params("slug")
		if slug == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"Slug không được để trống trong URL params",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.productService.FindBySlug(c.Context(), slug)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleStorefrontList trả về danh sách sản phẩm active có phân trang.
// Query params: page, limit, category, designTheme, gender.
func (h *ProductHandler) HandleStorefrontList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		if err != nil || page < 1 {
			page = 1
		}
		limit, err := strconv.ParseInt(c.Query("limit", "20"), 10, 64)
		if err != nil || limit <= 0 {
			limit = 20
		}

		extraFilter := make(map[string]interface{})
		if category := c.Query("category"); category != "" {
			extraFilter["category"] = category
		}
		if designTheme := c.Query("designTheme"); designTheme != "" {
			extraFilter["designTheme"] = designTheme
		}
		if gender := c.Query("gender"); gender != "" {
			extraFilter["gender"] = gender
		}

		data, err := h.productService.FindStorefront(c.Context(), extraFilter, page, limit)
		h.HandleResponse(c, data, err)
		return nil
	})
}

package catalogsvc

import (
	"context"
	"fmt"

	basesvc "fys_commerce/internal/api/base/service"
	catalogmodels "fys_commerce/internal/api/catalog/models"
	"fys_commerce/internal/common"
	"fys_commerce/internal/global"
	"fys_commerce/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// defaultCategories là tập mục chọn cố định của storefront.
// Tập này luôn tồn tại kể cả khi collection rỗng hoặc store lỗi,
// và không xóa được qua API.
var defaultCategories = []catalogmodels.Category{
	{Slug: "t-shirts", Label: "T-Shirts", Type: catalogmodels.CategoryTypeCategory, IsDefault: true},
	{Slug: "hoodies", Label: "Hoodies", Type: catalogmodels.CategoryTypeCategory, IsDefault: true},
	{Slug: "sweatshirts", Label: "Sweatshirts", Type: catalogmodels.CategoryTypeCategory, IsDefault: true},
	{Slug: "caps", Label: "Caps", Type: catalogmodels.CategoryTypeCategory, IsDefault: true},
	{Slug: "accessories", Label: "Accessories", Type: catalogmodels.CategoryTypeCategory, IsDefault: true},
	{Slug: "deep-sea", Label: "Deep Sea", Type: catalogmodels.CategoryTypeDesign, IsDefault: true},
	{Slug: "freshwater", Label: "Freshwater", Type: catalogmodels.CategoryTypeDesign, IsDefault: true},
	{Slug: "minimal", Label: "Minimal", Type: catalogmodels.CategoryTypeDesign, IsDefault: true},
	{Slug: "vintage", Label: "Vintage", Type: catalogmodels.CategoryTypeDesign, IsDefault: true},
}

// CategoryService là service quản lý danh mục và chủ đề thiết kế
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Category]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Category](collection),
	}, nil
}

// DefaultCategories trả về bản copy của tập default (tránh caller sửa slice gốc)
func DefaultCategories() []catalogmodels.Category {
	out := make([]catalogmodels.Category, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

// MergeWithDefaults hợp nhất tập default với entry trong store, union theo slug.
// Entry trong store trùng slug với default sẽ được giữ label/type của store
// nhưng vẫn đánh dấu IsDefault (vẫn không xóa được).
func MergeWithDefaults(stored []catalogmodels.Category) []catalogmodels.Category {
	merged := DefaultCategories()
	defaultSlugs := make(map[string]int, len(merged))
	for i, c := range merged {
		defaultSlugs[c.Slug] = i
	}

	for _, c := range stored {
		if idx, ok := defaultSlugs[c.Slug]; ok {
			c.IsDefault = true
			merged[idx] = c
			continue
		}
		merged = append(merged, c)
	}

	return merged
}

// IsDefaultSlug kiểm tra slug có thuộc tập default không
func IsDefaultSlug(slug string) bool {
	for _, c := range defaultCategories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

// List trả về toàn bộ mục chọn: tập default union với entry trong store.
// Store lỗi thì fallback về tập default (resilience, không fail request).
func (s *CategoryService) List(ctx context.Context) []catalogmodels.Category {
	stored, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{}, nil)
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("Không đọc được categories từ store, fallback về tập default")
		return DefaultCategories()
	}
	return MergeWithDefaults(stored)
}

// DeleteById xóa một entry do admin tạo. Entry thuộc tập default bị từ chối.
func (s *CategoryService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return err
	}

	if IsDefaultSlug(existing.Slug) {
		return common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Mục '%s' thuộc tập mặc định, không thể xóa", existing.Slug),
			common.StatusBadRequest,
			nil,
		)
	}

	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

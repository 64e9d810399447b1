// Package savedsvc chứa service dùng chung cho favorites và wishlist.
package savedsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	basesvc "fys_commerce/internal/api/base/service"
	saveddto "fys_commerce/internal/api/saved/dto"
	savedmodels "fys_commerce/internal/api/saved/models"
	"fys_commerce/internal/common"
	"fys_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedListService quản lý danh sách lưu per-user trên một collection cụ thể.
// Favorites và wishlist chỉ khác nhau ở collection, toàn bộ logic dùng chung.
type SavedListService struct {
	*basesvc.BaseServiceMongoImpl[savedmodels.SavedList]
}

func newSavedListService(collectionName string) (*SavedListService, error) {
	collection, exist := global.RegistryCollections.Get(collectionName)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection: %v", collectionName, common.ErrNotFound)
	}

	return &SavedListService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[savedmodels.SavedList](collection),
	}, nil
}

// NewFavoriteService tạo service cho danh sách yêu thích
func NewFavoriteService() (*SavedListService, error) {
	return newSavedListService(global.MongoDB_ColNames.Favorites)
}

// NewWishlistService tạo service cho wishlist
func NewWishlistService() (*SavedListService, error) {
	return newSavedListService(global.MongoDB_ColNames.Wishlists)
}

// BuildSavedItem chuyển input thành SavedItem, tính variantKey và gán addedAt
func BuildSavedItem(input saveddto.SavedItemInput) (savedmodels.SavedItem, error) {
	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		return savedmodels.SavedItem{}, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("productId '%s' không đúng định dạng ObjectID", input.ProductID),
			common.StatusBadRequest,
			err,
		)
	}

	return savedmodels.SavedItem{
		ProductID:  productID,
		Slug:       input.Slug,
		Name:       input.Name,
		Image:      input.Image,
		Price:      input.Price,
		Currency:   input.Currency,
		ColorName:  input.ColorName,
		ColorCode:  input.ColorCode,
		Size:       input.Size,
		VariantKey: fmt.Sprintf("%s|%s|%s", productID.Hex(), input.ColorCode, input.Size),
		AddedAt:    time.Now().UnixMilli(),
	}, nil
}

// ToggleItem thêm item nếu chưa có, gỡ ra nếu đã có (so theo identity key).
// Trả về danh sách mới và cờ added. Hàm thuần, không chạm DB.
func ToggleItem(items []savedmodels.SavedItem, item savedmodels.SavedItem) ([]savedmodels.SavedItem, bool) {
	key := item.IdentityKey()
	result := make([]savedmodels.SavedItem, 0, len(items)+1)

	found := false
	for _, existing := range items {
		if existing.IdentityKey() == key {
			found = true
			continue
		}
		result = append(result, existing)
	}

	if found {
		return result, false
	}
	return append(result, item), true
}

// MergeItems hợp nhất danh sách incoming vào existing theo identity key.
// Union last-write-wins: trùng key thì bản incoming (ghi sau, snapshot mới hơn)
// thay bản server nhưng giữ vị trí cũ, item mới nối vào cuối theo thứ tự gửi lên.
func MergeItems(existing, incoming []savedmodels.SavedItem) []savedmodels.SavedItem {
	latest := make(map[string]savedmodels.SavedItem, len(incoming))
	for _, item := range incoming {
		latest[item.IdentityKey()] = item
	}

	seen := make(map[string]bool, len(existing))
	result := make([]savedmodels.SavedItem, 0, len(existing)+len(incoming))

	for _, item := range existing {
		key := item.IdentityKey()
		seen[key] = true
		if replacement, ok := latest[key]; ok {
			item = replacement
		}
		result = append(result, item)
	}
	for _, item := range incoming {
		key := item.IdentityKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, item)
	}
	return result
}

// GetByUser trả về danh sách của user. Chưa có document thì trả về danh sách rỗng.
func (s *SavedListService) GetByUser(ctx context.Context, uid string) (savedmodels.SavedList, error) {
	list, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"userId": uid}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return savedmodels.SavedList{UserID: uid, Items: []savedmodels.SavedItem{}}, nil
		}
		return savedmodels.SavedList{}, err
	}
	if list.Items == nil {
		list.Items = []savedmodels.SavedItem{}
	}
	return list, nil
}

// Toggle thêm/gỡ một item trong danh sách của user và lưu lại.
// Trả về danh sách sau thao tác và cờ added.
func (s *SavedListService) Toggle(ctx context.Context, uid string, input saveddto.SavedItemInput) (savedmodels.SavedList, bool, error) {
	item, err := BuildSavedItem(input)
	if err != nil {
		return savedmodels.SavedList{}, false, err
	}

	list, err := s.GetByUser(ctx, uid)
	if err != nil {
		return savedmodels.SavedList{}, false, err
	}

	items, added := ToggleItem(list.Items, item)
	updated, err := s.saveItems(ctx, uid, items)
	if err != nil {
		return savedmodels.SavedList{}, false, err
	}
	return updated, added, nil
}

// Merge hợp nhất danh sách client gửi lên vào danh sách server của user
func (s *SavedListService) Merge(ctx context.Context, uid string, inputs []saveddto.SavedItemInput) (savedmodels.SavedList, error) {
	incoming := make([]savedmodels.SavedItem, 0, len(inputs))
	for _, input := range inputs {
		item, err := BuildSavedItem(input)
		if err != nil {
			return savedmodels.SavedList{}, err
		}
		incoming = append(incoming, item)
	}

	list, err := s.GetByUser(ctx, uid)
	if err != nil {
		return savedmodels.SavedList{}, err
	}

	return s.saveItems(ctx, uid, MergeItems(list.Items, incoming))
}

// saveItems upsert document của user với danh sách items mới
func (s *SavedListService) saveItems(ctx context.Context, uid string, items []savedmodels.SavedItem) (savedmodels.SavedList, error) {
	update := &basesvc.UpdateData{
		Set:         map[string]interface{}{"items": items},
		SetOnInsert: map[string]interface{}{"userId": uid},
	}
	return s.BaseServiceMongoImpl.Upsert(ctx, bson.M{"userId": uid}, update)
}

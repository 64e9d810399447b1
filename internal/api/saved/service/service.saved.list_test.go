// Package savedsvc - Test toggle và merge danh sách lưu (hàm thuần).
package savedsvc

import (
	"testing"

	saveddto "fys_commerce/internal/api/saved/dto"
	savedmodels "fys_commerce/internal/api/saved/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func savedItem(variantKey string) savedmodels.SavedItem {
	return savedmodels.SavedItem{
		ProductID:  primitive.NewObjectID(),
		VariantKey: variantKey,
	}
}

func TestToggleItem_AddThenRemove(t *testing.T) {
	item := savedItem("p1|#FFF|M")

	items, added := ToggleItem(nil, item)
	assert.True(t, added, "toggle lần đầu phải thêm")
	require.Len(t, items, 1)

	items, added = ToggleItem(items, item)
	assert.False(t, added, "toggle lần hai phải gỡ")
	assert.Empty(t, items, "round-trip toggle phải trả về danh sách ban đầu")
}

func TestToggleItem_DifferentVariantsCoexist(t *testing.T) {
	m := savedItem("p1|#FFF|M")
	l := savedItem("p1|#FFF|L")

	items, _ := ToggleItem(nil, m)
	items, added := ToggleItem(items, l)
	assert.True(t, added, "biến thể khác size là item khác")
	assert.Len(t, items, 2)
}

func TestToggleItem_FallbackToProductID(t *testing.T) {
	// Item cũ chưa có variantKey thì so theo productId
	old := savedmodels.SavedItem{ProductID: primitive.NewObjectID()}
	same := savedmodels.SavedItem{ProductID: old.ProductID}

	items, added := ToggleItem([]savedmodels.SavedItem{old}, same)
	assert.False(t, added)
	assert.Empty(t, items)
}

func TestMergeItems_UnionByKey(t *testing.T) {
	a := savedItem("k1")
	b := savedItem("k2")
	c := savedItem("k3")
	bDup := savedItem("k2")
	bDup.Name = "Bản client"

	merged := MergeItems([]savedmodels.SavedItem{a, b}, []savedmodels.SavedItem{bDup, c})
	require.Len(t, merged, 3, "merge phải union theo key, không nhân đôi")

	assert.Equal(t, "k1", merged[0].VariantKey, "item server giữ nguyên thứ tự")
	assert.Equal(t, "k2", merged[1].VariantKey, "item trùng key giữ vị trí cũ")
	assert.Equal(t, "k3", merged[2].VariantKey, "item mới nối vào cuối")
	assert.Equal(t, "Bản client", merged[1].Name, "trùng key thì bản client (ghi sau) thắng")
}

func TestMergeItems_LastWriteWinsSnapshot(t *testing.T) {
	// Snapshot client mới hơn phải thay toàn bộ trường của bản server
	old := savedItem("k1")
	old.Name = "Tên cũ"
	old.Price = 2000

	fresh := savedItem("k1")
	fresh.Name = "Tên mới"
	fresh.Price = 1500

	merged := MergeItems([]savedmodels.SavedItem{old}, []savedmodels.SavedItem{fresh})
	require.Len(t, merged, 1)
	assert.Equal(t, "Tên mới", merged[0].Name)
	assert.EqualValues(t, 1500, merged[0].Price)
}

func TestMergeItems_EmptyInputs(t *testing.T) {
	a := savedItem("k1")

	assert.Len(t, MergeItems([]savedmodels.SavedItem{a}, nil), 1)
	assert.Len(t, MergeItems(nil, []savedmodels.SavedItem{a}), 1)
	assert.Empty(t, MergeItems(nil, nil))
}

func TestBuildSavedItem(t *testing.T) {
	productID := primitive.NewObjectID()
	input := saveddto.SavedItemInput{
		ProductID: productID.Hex(),
		Slug:      "deep-sea-hoodie",
		ColorCode: "#1B3A5C",
		Size:      "L",
		Price:     3200,
	}

	item, err := BuildSavedItem(input)
	require.NoError(t, err)
	assert.Equal(t, productID, item.ProductID)
	assert.Equal(t, productID.Hex()+"|#1B3A5C|L", item.VariantKey)
	assert.NotZero(t, item.AddedAt)
}

func TestBuildSavedItem_InvalidObjectID(t *testing.T) {
	_, err := BuildSavedItem(saveddto.SavedItemInput{ProductID: "not-an-oid"})
	assert.Error(t, err)
}

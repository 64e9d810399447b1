// Package catalogsvc - Test overlay tập danh mục default với store.
package catalogsvc

import (
	"testing"

	catalogmodels "fys_commerce/internal/api/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategories_ReturnsCopy(t *testing.T) {
	first := DefaultCategories()
	first[0].Label = "Đã sửa"

	second := DefaultCategories()
	assert.NotEqual(t, "Đã sửa", second[0].Label, "DefaultCategories phải trả về bản copy")
}

func TestMergeWithDefaults_EmptyStore(t *testing.T) {
	merged := MergeWithDefaults(nil)
	assert.Len(t, merged, len(DefaultCategories()), "store rỗng thì kết quả là đúng tập default")
	for _, c := range merged {
		assert.True(t, c.IsDefault, "mục default %q phải có IsDefault", c.Slug)
	}
}

func TestMergeWithDefaults_StoreOverridesLabel(t *testing.T) {
	stored := []catalogmodels.Category{
		{Slug: "hoodies", Label: "Hoodies & Zips", Type: catalogmodels.CategoryTypeCategory},
	}

	merged := MergeWithDefaults(stored)
	assert.Len(t, merged, len(DefaultCategories()), "override theo slug không được tạo thêm mục")

	var hoodies *catalogmodels.Category
	for i := range merged {
		if merged[i].Slug == "hoodies" {
			hoodies = &merged[i]
			break
		}
	}
	require.NotNil(t, hoodies)
	assert.Equal(t, "Hoodies & Zips", hoodies.Label, "label của store phải thắng label default")
	assert.True(t, hoodies.IsDefault, "mục default bị override vẫn phải giữ IsDefault")
}

func TestMergeWithDefaults_AppendsCustomEntries(t *testing.T) {
	stored := []catalogmodels.Category{
		{Slug: "limited-drop", Label: "Limited Drop", Type: catalogmodels.CategoryTypeCategory},
		{Slug: "retro-bait", Label: "Retro Bait", Type: catalogmodels.CategoryTypeDesign},
	}

	merged := MergeWithDefaults(stored)
	assert.Len(t, merged, len(DefaultCategories())+2)

	slugs := make(map[string]catalogmodels.Category, len(merged))
	for _, c := range merged {
		slugs[c.Slug] = c
	}
	require.Contains(t, slugs, "limited-drop")
	require.Contains(t, slugs, "retro-bait")
	assert.False(t, slugs["limited-drop"].IsDefault, "mục admin thêm không phải default")
}

func TestIsDefaultSlug(t *testing.T) {
	assert.True(t, IsDefaultSlug("t-shirts"))
	assert.True(t, IsDefaultSlug("deep-sea"))
	assert.False(t, IsDefaultSlug("limited-drop"))
	assert.False(t, IsDefaultSlug(""))
}

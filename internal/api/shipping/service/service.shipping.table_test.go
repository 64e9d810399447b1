// Package shippingsvc - Test bảng giá ship tĩnh theo wilaya.
package shippingsvc

import (
	"errors"
	"sort"
	"testing"

	"fys_commerce/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote_Alger(t *testing.T) {
	home, err := Quote("Alger", ModeHome)
	require.NoError(t, err)
	assert.Equal(t, float64(400), home, "Giá ship home cho Alger phải là 400 DZD")

	desk, err := Quote("Alger", ModeDesk)
	require.NoError(t, err)
	assert.Equal(t, float64(400), desk, "Giá ship desk cho Alger phải là 400 DZD")
}

func TestQuote_CaseInsensitive(t *testing.T) {
	base, err := Quote("oran", ModeHome)
	require.NoError(t, err)

	for _, variant := range []string{"Oran", "ORAN", "  oran  ", "OrAn"} {
		price, err := Quote(variant, ModeHome)
		require.NoError(t, err, "wilaya %q phải được nhận diện", variant)
		assert.Equal(t, base, price, "wilaya %q phải cùng giá với 'oran'", variant)
	}
}

func TestQuote_UnknownWilaya(t *testing.T) {
	_, err := Quote("atlantis", ModeHome)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrShippingUnavailable), "wilaya lạ phải trả ErrShippingUnavailable")

	_, err = Quote("", ModeDesk)
	assert.True(t, errors.Is(err, common.ErrShippingUnavailable), "wilaya rỗng phải trả ErrShippingUnavailable")
}

func TestQuote_InvalidMode(t *testing.T) {
	_, err := Quote("Alger", "drone")
	require.Error(t, err)
	assert.False(t, errors.Is(err, common.ErrShippingUnavailable), "mode sai không phải lỗi khu vực")
}

func TestQuote_DeskNeverAboveHome(t *testing.T) {
	// Stop desk luôn rẻ hơn hoặc bằng giao tận nhà
	for _, row := range Wilayas() {
		assert.LessOrEqual(t, row.Desk, row.Home, "wilaya %q: desk phải <= home", row.Wilaya)
	}
}

func TestWilayas_SortedAndComplete(t *testing.T) {
	rows := Wilayas()
	assert.True(t, sort.SliceIsSorted(rows, func(i, j int) bool { return rows[i].Wilaya < rows[j].Wilaya }),
		"danh sách wilaya phải được sort theo tên")
	assert.GreaterOrEqual(t, len(rows), 40, "bảng giá phải phủ các wilaya chính")

	names := make(map[string]bool, len(rows))
	for _, row := range rows {
		names[row.Wilaya] = true
	}
	assert.True(t, names["alger"], "bảng giá phải có alger")
}

// Package shippingsvc chứa bảng giá giao hàng tĩnh theo wilaya (tỉnh của Algérie).
package shippingsvc

import (
	"sort"
	"strings"

	"fys_commerce/internal/common"
)

// Chế độ giao hàng
const (
	ModeHome = "home" // Giao tận nhà
	ModeDesk = "desk" // Nhận tại điểm giao (stop desk)
)

// Rate là giá giao hàng cố định cho một wilaya theo từng chế độ (đơn vị DZD)
type Rate struct {
	Home float64 `json:"home"`
	Desk float64 `json:"desk"`
}

// WilayaRate là một dòng trong bảng giá trả về cho client
type WilayaRate struct {
	Wilaya string  `json:"wilaya"`
	Home   float64 `json:"home"`
	Desk   float64 `json:"desk"`
}

// wilayaTable là bảng giá tĩnh, key là tên wilaya viết thường.
// Không có interpolation hay dynamic pricing: wilaya không có trong bảng
// nghĩa là chưa hỗ trợ giao hàng đến đó.
var wilayaTable = map[string]Rate{
	"adrar":           {Home: 1200, Desk: 900},
	"chlef":           {Home: 600, Desk: 450},
	"laghouat":        {Home: 800, Desk: 600},
	"oum el bouaghi":  {Home: 700, Desk: 500},
	"batna":           {Home: 700, Desk: 500},
	"bejaia":          {Home: 600, Desk: 450},
	"biskra":          {Home: 800, Desk: 600},
	"bechar":          {Home: 1100, Desk: 800},
	"blida":           {Home: 500, Desk: 400},
	"bouira":          {Home: 600, Desk: 450},
	"tamanrasset":     {Home: 1400, Desk: 1000},
	"tebessa":         {Home: 800, Desk: 600},
	"tlemcen":         {Home: 700, Desk: 500},
	"tiaret":          {Home: 700, Desk: 500},
	"tizi ouzou":      {Home: 600, Desk: 450},
	"alger":           {Home: 400, Desk: 400},
	"djelfa":          {Home: 800, Desk: 600},
	"jijel":           {Home: 700, Desk: 500},
	"setif":           {Home: 650, Desk: 450},
	"saida":           {Home: 800, Desk: 600},
	"skikda":          {Home: 700, Desk: 500},
	"sidi bel abbes":  {Home: 700, Desk: 500},
	"annaba":          {Home: 700, Desk: 500},
	"guelma":          {Home: 700, Desk: 500},
	"constantine":     {Home: 650, Desk: 450},
	"medea":           {Home: 600, Desk: 450},
	"mostaganem":      {Home: 650, Desk: 500},
	"msila":           {Home: 750, Desk: 550},
	"mascara":         {Home: 700, Desk: 500},
	"ouargla":         {Home: 950, Desk: 700},
	"oran":            {Home: 600, Desk: 450},
	"el bayadh":       {Home: 950, Desk: 700},
	"illizi":          {Home: 1400, Desk: 1000},
	"bordj bou arreridj": {Home: 700, Desk: 500},
	"boumerdes":       {Home: 500, Desk: 400},
	"el tarf":         {Home: 750, Desk: 550},
	"tindouf":         {Home: 1400, Desk: 1000},
	"tissemsilt":      {Home: 700, Desk: 520},
	"el oued":         {Home: 900, Desk: 650},
	"khenchela":       {Home: 750, Desk: 550},
	"souk ahras":      {Home: 750, Desk: 550},
	"tipaza":          {Home: 500, Desk: 400},
	"mila":            {Home: 700, Desk: 500},
	"ain defla":       {Home: 600, Desk: 450},
	"naama":           {Home: 1000, Desk: 750},
	"ain temouchent":  {Home: 700, Desk: 500},
	"ghardaia":        {Home: 900, Desk: 650},
	"relizane":        {Home: 650, Desk: 500},
}

// normalizeWilaya chuẩn hóa tên wilaya để tra bảng (lowercase, bỏ khoảng trắng thừa)
func normalizeWilaya(wilaya string) string {
	return strings.ToLower(strings.TrimSpace(wilaya))
}

// Quote trả về giá giao hàng cho cặp (wilaya, mode).
// Tên wilaya match không phân biệt hoa thường. Wilaya không có trong bảng
// trả về ErrShippingUnavailable; mode ngoài home|desk trả về lỗi validate.
func Quote(wilaya, mode string) (float64, error) {
	rate, ok := wilayaTable[normalizeWilaya(wilaya)]
	if !ok {
		return 0, common.ErrShippingUnavailable
	}

	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeHome:
		return rate.Home, nil
	case ModeDesk:
		return rate.Desk, nil
	default:
		return 0, common.NewError(
			common.ErrCodeValidationInput,
			"Chế độ giao hàng phải là 'home' hoặc 'desk'",
			common.StatusBadRequest,
			nil,
		)
	}
}

// Wilayas trả về toàn bộ bảng giá, sắp xếp theo tên wilaya
func Wilayas() []WilayaRate {
	out := make([]WilayaRate, 0, len(wilayaTable))
	for name, rate := range wilayaTable {
		out = append(out, WilayaRate{Wilaya: name, Home: rate.Home, Desk: rate.Desk})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Wilaya < out[j].Wilaya })
	return out
}

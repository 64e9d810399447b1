// Package orderdto chứa DTO cho domain Order.
package orderdto

// CheckoutItemInput là một dòng hàng trong giỏ khi checkout.
// Client không gửi giá: server đọc finalPrice từ catalog.
type CheckoutItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1" max:"100"`
	ColorName string `json:"colorName,omitempty"`
	ColorCode string `json:"colorCode,omitempty" validate:"omitempty,hex_color"`
	Size      string `json:"size,omitempty" validate:"omitempty,oneof=S M L XL"`
}

// CheckoutShippingInput là thông tin giao hàng khi checkout
type CheckoutShippingInput struct {
	CustomerName string `json:"customerName" validate:"required" maxLength:"100"`
	Phone        string `json:"phone" validate:"required" maxLength:"20"`
	Wilaya       string `json:"wilaya" validate:"required" maxLength:"50"`
	Address      string `json:"address,omitempty" maxLength:"300"`
	Mode         string `json:"mode" validate:"required,oneof=home desk"`
}

// CheckoutInput là payload tạo đơn hàng COD
type CheckoutInput struct {
	CustomerEmail string                `json:"customerEmail,omitempty" validate:"omitempty,email"`
	Items         []CheckoutItemInput   `json:"items" validate:"required,min=1,dive"`
	Shipping      CheckoutShippingInput `json:"shipping" validate:"required"`
	Notes         string                `json:"notes,omitempty" validate:"omitempty,no_xss" maxLength:"500"`
}

// ChangeStatusInput là payload đổi trạng thái đơn (admin)
type ChangeStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed shipped delivered cancelled"`
}

// OrderEditInput là payload sửa đơn khi còn pending.
// Items/Shipping gửi lên thì được thay thế toàn bộ và tiền được tính lại;
// bỏ trống thì giữ nguyên.
type OrderEditInput struct {
	Items    []CheckoutItemInput    `json:"items,omitempty" validate:"omitempty,min=1,dive"`
	Shipping *CheckoutShippingInput `json:"shipping,omitempty"`
	Notes    *string                `json:"notes,omitempty"`
}

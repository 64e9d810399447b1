// Package contactdto chứa DTO cho domain Contact.
package contactdto

// ContactMessageCreateInput là payload gửi tin nhắn liên hệ (public)
type ContactMessageCreateInput struct {
	Name    string `json:"name" validate:"required,no_xss" maxLength:"100"`
	Email   string `json:"email" validate:"required,email" maxLength:"100"`
	Phone   string `json:"phone,omitempty" maxLength:"20"`
	Subject string `json:"subject,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	Message string `json:"message" validate:"required,no_xss" maxLength:"2000"`
}

// ContactMessageUpdateInput là payload cập nhật tin nhắn (admin, đánh dấu đã đọc)
type ContactMessageUpdateInput struct {
	Read bool `json:"read"`
}

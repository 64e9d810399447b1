package catalogdto

// CategoryCreateInput là input để tạo mục chọn (danh mục hoặc chủ đề thiết kế)
type CategoryCreateInput struct {
	Slug  string `json:"slug" validate:"required,slug"`
	Label string `json:"label" validate:"required" maxLength:"100"`
	Type  string `json:"type,omitempty" validate:"omitempty,oneof=category design"`
}

// CategoryUpdateInput là input để cập nhật mục chọn
type CategoryUpdateInput struct {
	Label string `json:"label,omitempty" maxLength:"100"`
	Type  string `json:"type,omitempty" validate:"omitempty,oneof=category design"`
}

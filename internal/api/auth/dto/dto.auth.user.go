// Package authdto chứa DTO cho domain Auth.
package authdto

// SetAdminClaimInput là payload cấp/thu hồi quyền admin theo email
type SetAdminClaimInput struct {
	Email   string `json:"email" validate:"required,email" maxLength:"100"`
	IsAdmin bool   `json:"isAdmin"`
}

package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("slug", validateSlug)
	_ = Validate.RegisterValidation("hex_color", validateHexColor)
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"fromCharCode",
		"window.location",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateSlug kiểm tra slug hợp lệ (chữ thường, số, dấu gạch ngang)
// Ví dụ hợp lệ: "ao-thun-ca-koi", "tui-tote"
func validateSlug(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Empty = optional, dùng kèm required nếu bắt buộc
	}
	return slugRegex.MatchString(value)
}

// validateHexColor kiểm tra mã màu hex (#RGB hoặc #RRGGBB)
func validateHexColor(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return hexColorRegex.MatchString(value)
}

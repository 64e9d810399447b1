package middleware

import (
	"strings"

	"fys_commerce/internal/common"
	"fys_commerce/internal/logger"
	"fys_commerce/internal/utility"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// extractBearerToken lấy ID token từ header Authorization (định dạng "Bearer <token>")
func extractBearerToken(c fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", common.ErrTokenMissing
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", common.ErrTokenInvalid
	}

	return parts[1], nil
}

// RequireAuth middleware xác thực Firebase ID token cho Fiber.
// Token hợp lệ thì lưu uid và decoded token vào context để handler sử dụng.
func RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		idToken, err := extractBearerToken(c)
		if err != nil {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing or malformed Authorization header")
			HandleErrorResponse(c, err)
			return nil
		}

		token, err := utility.VerifyIDToken(c.Context(), idToken)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Firebase ID token verification failed")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("uid", token.UID)
		c.Locals("firebase_token", token)

		return c.Next()
	}
}

// OptionalAuth middleware xác thực Firebase ID token nếu có, không chặn request.
// Có token hợp lệ thì lưu uid vào context; không có hoặc token hỏng thì đi tiếp
// như khách vãng lai. Dùng cho checkout: khách không đăng nhập vẫn đặt được hàng.
func OptionalAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		idToken, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}

		token, err := utility.VerifyIDToken(c.Context(), idToken)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path": c.Path(),
			}).Debug("Token kèm theo không hợp lệ, xử lý như khách vãng lai")
			return c.Next()
		}

		c.Locals("uid", token.UID)
		c.Locals("firebase_token", token)

		return c.Next()
	}
}

// RequireAdmin middleware xác thực và yêu cầu custom claim admin=true.
// Dùng cho toàn bộ route back-office. Token không có claim admin sẽ bị từ chối với 403.
func RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		idToken, err := extractBearerToken(c)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing or malformed Authorization header")
			HandleErrorResponse(c, err)
			return nil
		}

		token, err := utility.VerifyIDToken(c.Context(), idToken)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Firebase ID token verification failed")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if !utility.IsAdminToken(token) {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"uid":  token.UID,
				"path": c.Path(),
			}).Warn("❌ [AUTH] User does not have admin claim, denying access")
			HandleErrorResponse(c, common.ErrNotAdmin)
			return nil
		}

		c.Locals("uid", token.UID)
		c.Locals("firebase_token", token)
		c.Locals("is_admin", true)

		return c.Next()
	}
}

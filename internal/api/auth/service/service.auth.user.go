// Package authsvc chứa service cho domain Auth.
package authsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"

	authmodels "fys_commerce/internal/api/auth/models"
	basesvc "fys_commerce/internal/api/base/service"
	"fys_commerce/internal/common"
	"fys_commerce/internal/global"
	"fys_commerce/internal/logger"
	"fys_commerce/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// UserService quản lý bản ghi người dùng và việc cấp quyền admin
type UserService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.User](collection),
	}, nil
}

// tokenEmail đọc email từ claims của decoded token
func tokenEmail(token *auth.Token) string {
	if email, ok := token.Claims["email"].(string); ok {
		return email
	}
	return ""
}

// UpsertFromToken đồng bộ bản ghi user từ decoded token ở lần gọi đã xác thực.
// Gọi mỗi lần user đụng endpoint /auth/me nên lastLoginAt luôn tươi.
func (s *UserService) UpsertFromToken(ctx context.Context, token *auth.Token) (authmodels.User, error) {
	set := map[string]interface{}{
		"email":       tokenEmail(token),
		"isAdmin":     utility.IsAdminToken(token),
		"lastLoginAt": time.Now().UnixMilli(),
	}
	if name, ok := token.Claims["name"].(string); ok && name != "" {
		set["displayName"] = name
	}
	if picture, ok := token.Claims["picture"].(string); ok && picture != "" {
		set["photoUrl"] = picture
	}

	update := &basesvc.UpdateData{
		Set:         set,
		SetOnInsert: map[string]interface{}{"uid": token.UID},
	}
	return s.BaseServiceMongoImpl.Upsert(ctx, bson.M{"uid": token.UID}, update)
}

// isBootstrapAdmin kiểm tra email có phải super-admin bootstrap cấu hình qua env không
func isBootstrapAdmin(email string) bool {
	configured := global.MongoDB_ServerConfig.FirebaseAdminEmail
	return configured != "" && strings.EqualFold(email, configured)
}

// SetAdminByEmail cấp/thu hồi custom claim admin cho user theo email.
// Caller phải đang là admin, hoặc là email super-admin bootstrap từ config
// (để cấp được quyền admin đầu tiên khi hệ thống chưa có admin nào).
func (s *UserService) SetAdminByEmail(ctx context.Context, callerToken *auth.Token, email string, isAdmin bool) (authmodels.User, error) {
	var zero authmodels.User

	if !utility.IsAdminToken(callerToken) && !isBootstrapAdmin(tokenEmail(callerToken)) {
		return zero, common.ErrNotAdmin
	}

	target, err := utility.GetUserByEmail(ctx, email)
	if err != nil {
		return zero, common.NewError(
			common.ErrCodeDatabaseQuery,
			fmt.Sprintf("Không tìm thấy user Firebase với email '%s'", email),
			common.StatusNotFound,
			err,
		)
	}

	if err := utility.SetAdminClaim(ctx, target.UID, isAdmin); err != nil {
		return zero, common.NewError(
			common.ErrCodeDatabaseQuery,
			"Cập nhật custom claim trên Firebase thất bại",
			common.StatusInternalServerError,
			err,
		)
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"caller":  callerToken.UID,
		"target":  target.UID,
		"isAdmin": isAdmin,
	}).Info("Đã cập nhật quyền admin")

	// Đồng bộ cờ hiển thị trong store, claim trên Firebase mới là nguồn chân lý
	update := &basesvc.UpdateData{
		Set:         map[string]interface{}{"email": email, "isAdmin": isAdmin},
		SetOnInsert: map[string]interface{}{"uid": target.UID},
	}
	return s.BaseServiceMongoImpl.Upsert(ctx, bson.M{"uid": target.UID}, update)
}

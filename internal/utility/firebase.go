package utility

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var (
	firebaseApp  *firebase.App
	firebaseAuth *auth.Client
)

// findProjectDir tìm thư mục gốc của project (thư mục chứa config/env)
func findProjectDir() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return currentDir, nil
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", fmt.Errorf("không tìm thấy thư mục gốc của project")
		}
		currentDir = parentDir
	}
}

// InitFirebase khởi tạo Firebase Admin SDK
func InitFirebase(projectID, credentialsPath string) error {
	// Resolve đường dẫn credentials: absolute dùng trực tiếp,
	// relative resolve từ thư mục gốc của project (nơi có config/)
	if !filepath.IsAbs(credentialsPath) {
		projectDir, err := findProjectDir()
		if err != nil {
			return fmt.Errorf("không tìm thấy thư mục gốc của project: %v", err)
		}
		credentialsPath = filepath.Join(projectDir, credentialsPath)
	}

	// Kiểm tra file credentials tồn tại
	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return fmt.Errorf("firebase credentials file not found: %s", credentialsPath)
	}

	// Tạo Firebase app
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(context.Background(), &firebase.Config{
		ProjectID: projectID,
	}, opt)
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase app: %v", err)
	}

	firebaseApp = app

	// Tạo Auth client
	authClient, err := app.Auth(context.Background())
	if err != nil {
		return fmt.Errorf("failed to get Firebase Auth client: %v", err)
	}

	firebaseAuth = authClient
	return nil
}

// GetFirebaseAuth trả về Firebase Auth client
func GetFirebaseAuth() *auth.Client {
	return firebaseAuth
}

// VerifyIDToken verify Firebase ID token và trả về user info
func VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if firebaseAuth == nil {
		return nil, fmt.Errorf("firebase auth not initialized")
	}

	token, err := firebaseAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %v", err)
	}

	return token, nil
}

// GetUserByUID lấy thông tin user từ Firebase bằng UID
func GetUserByUID(ctx context.Context, uid string) (*auth.UserRecord, error) {
	if firebaseAuth == nil {
		return nil, fmt.Errorf("firebase auth not initialized")
	}

	user, err := firebaseAuth.GetUser(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	return user, nil
}

// GetUserByEmail lấy thông tin user từ Firebase bằng email
func GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error) {
	if firebaseAuth == nil {
		return nil, fmt.Errorf("firebase auth not initialized")
	}

	user, err := firebaseAuth.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %v", err)
	}

	return user, nil
}

// SetAdminClaim gán custom claim admin=true cho user.
// Claim chỉ có hiệu lực khi client refresh ID token.
func SetAdminClaim(ctx context.Context, uid string, isAdmin bool) error {
	if firebaseAuth == nil {
		return fmt.Errorf("firebase auth not initialized")
	}

	claims := map[string]interface{}{
		"admin": isAdmin,
	}
	if err := firebaseAuth.SetCustomUserClaims(ctx, uid, claims); err != nil {
		return fmt.Errorf("failed to set custom claims: %v", err)
	}

	return nil
}

// IsAdminToken kiểm tra token đã verify có custom claim admin=true hay không
func IsAdminToken(token *auth.Token) bool {
	if token == nil {
		return false
	}
	if isAdmin, ok := token.Claims["admin"].(bool); ok {
		return isAdmin
	}
	return false
}

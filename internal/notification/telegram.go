package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fys_commerce/internal/logger"
)

// TelegramNotifier gửi thông báo qua Telegram Bot API.
// Notifier là best-effort: lỗi gửi chỉ được log, không làm fail nghiệp vụ.
type TelegramNotifier struct {
	botToken string
	chatIDs  []string
	client   *http.Client
}

// NewTelegramNotifier tạo notifier mới từ bot token và danh sách chat ID.
// chatIDs là chuỗi phân tách bằng dấu phẩy (từ config).
func NewTelegramNotifier(botToken string, chatIDs string) *TelegramNotifier {
	var ids []string
	for _, id := range strings.Split(chatIDs, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			ids = append(ids, id)
		}
	}

	return &TelegramNotifier{
		botToken: botToken,
		chatIDs:  ids,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled kiểm tra notifier có được cấu hình đầy đủ hay không
func (n *TelegramNotifier) Enabled() bool {
	return n != nil && n.botToken != "" && len(n.chatIDs) > 0
}

// SendMessage gửi text message tới tất cả chat IDs đã cấu hình.
// Trả về lỗi cuối cùng gặp phải (nếu có), các chat khác vẫn được gửi.
func (n *TelegramNotifier) SendMessage(ctx context.Context, text string) error {
	if !n.Enabled() {
		return nil
	}

	var lastErr error
	for _, chatID := range n.chatIDs {
		if err := n.sendToChat(ctx, chatID, text); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// sendToChat gửi một message tới một chat ID
func (n *TelegramNotifier) sendToChat(ctx context.Context, chatID, text string) error {
	log := logger.GetAppLogger()

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", n.botToken)

	payload := map[string]interface{}{
		"chat_id": chatID,
		"text":    text,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		log.WithError(err).WithFields(map[string]interface{}{
			"chatID": chatID,
		}).Error("📱 [TELEGRAM] Lỗi khi gọi Telegram API")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Đọc response body để xem lỗi chi tiết
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.WithFields(map[string]interface{}{
			"chatID":     chatID,
			"statusCode": resp.StatusCode,
			"response":   string(bodyBytes),
		}).Error("📱 [TELEGRAM] Telegram API trả về lỗi")
		return fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	log.WithFields(map[string]interface{}{
		"chatID": chatID,
	}).Info("📱 [TELEGRAM] Gửi Telegram message thành công")
	return nil
}

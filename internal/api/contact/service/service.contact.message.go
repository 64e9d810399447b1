// Package contactsvc chứa service cho domain Contact.
package contactsvc

import (
	"context"
	"fmt"

	basesvc "fys_commerce/internal/api/base/service"
	contactmodels "fys_commerce/internal/api/contact/models"
	"fys_commerce/internal/common"
	"fys_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactMessageService quản lý tin nhắn liên hệ
type ContactMessageService struct {
	*basesvc.BaseServiceMongoImpl[contactmodels.ContactMessage]
}

// NewContactMessageService tạo mới ContactMessageService
func NewContactMessageService() (*ContactMessageService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ContactMessages)
	if !exist {
		return nil, fmt.Errorf("failed to get contact_messages collection: %v", common.ErrNotFound)
	}

	return &ContactMessageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contactmodels.ContactMessage](collection),
	}, nil
}

// MarkRead đánh dấu tin nhắn đã đọc/chưa đọc
func (s *ContactMessageService) MarkRead(ctx context.Context, id primitive.ObjectID, read bool) (contactmodels.ContactMessage, error) {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"read": read},
	}
	return s.BaseServiceMongoImpl.UpdateOne(ctx, bson.M{"_id": id}, update, nil)
}

// CountUnread đếm số tin nhắn chưa đọc (hiển thị badge ở back-office)
func (s *ContactMessageService) CountUnread(ctx context.Context) (int64, error) {
	return s.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{"read": false})
}

package ordersvc

import (
	"context"
	"fmt"
	"time"

	basemodels "fys_commerce/internal/api/base/models"
	basesvc "fys_commerce/internal/api/base/service"
	catalogmodels "fys_commerce/internal/api/catalog/models"
	catalogsvc "fys_commerce/internal/api/catalog/service"
	orderdto "fys_commerce/internal/api/order/dto"
	ordermodels "fys_commerce/internal/api/order/models"
	shippingsvc "fys_commerce/internal/api/shipping/service"
	"fys_commerce/internal/common"
	"fys_commerce/internal/global"
	"fys_commerce/internal/logger"
	"fys_commerce/internal/notification"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderService quản lý vòng đời đơn hàng COD.
// Mọi thao tác chạm vào counter pendingOrders (checkout, cancel, đổi trạng thái)
// đều chạy trong transaction MongoDB để hai request đồng thời không làm lệch counter.
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.Order]
	productService *catalogsvc.ProductService
	statsService   *AdminStatsService
	notifier       *notification.TelegramNotifier
}

// NewOrderService tạo mới OrderService. notifier có thể nil (tắt thông báo Telegram).
func NewOrderService(notifier *notification.TelegramNotifier) (*OrderService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}

	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}

	statsService, err := NewAdminStatsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin stats service: %v", err)
	}

	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.Order](collection),
		productService:       productService,
		statsService:         statsService,
		notifier:             notifier,
	}, nil
}

// StatsService trả về service thống kê (dùng bởi handler admin-stats)
func (s *OrderService) StatsService() *AdminStatsService {
	return s.statsService
}

// BuildVariantKey tạo identity key cho biến thể sản phẩm trong đơn
func BuildVariantKey(productID primitive.ObjectID, colorCode, size string) string {
	return fmt.Sprintf("%s|%s|%s", productID.Hex(), colorCode, size)
}

// SumItems tính subtotal từ các dòng hàng đã snapshot giá
func SumItems(items []ordermodels.OrderItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal
}

// OrderTotal tính tổng phải thu COD của đơn
func OrderTotal(subtotal, shippingCost float64) float64 {
	return subtotal + shippingCost
}

// buildOrderItems đọc catalog để dựng snapshot các dòng hàng và tính subtotal.
// Giá lấy từ finalPrice hiện tại của sản phẩm, không tin giá client gửi.
func (s *OrderService) buildOrderItems(ctx context.Context, inputs []orderdto.CheckoutItemInput) ([]ordermodels.OrderItem, float64, error) {
	items := make([]ordermodels.OrderItem, 0, len(inputs))

	for i, input := range inputs {
		productID, err := primitive.ObjectIDFromHex(input.ProductID)
		if err != nil {
			return nil, 0, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("productId '%s' tại dòng %d không đúng định dạng ObjectID", input.ProductID, i+1),
				common.StatusBadRequest,
				err,
			)
		}

		product, err := s.productService.FindOneById(ctx, productID)
		if err != nil {
			return nil, 0, err
		}

		if product.Status != catalogmodels.ProductStatusActive {
			return nil, 0, common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Sản phẩm '%s' hiện không còn bán", product.Name),
				common.StatusBadRequest,
				nil,
			)
		}

		if !catalogsvc.IsVariantAvailable(product, input.ColorCode, input.Size) {
			return nil, 0, common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Biến thể (màu %s, size %s) của sản phẩm '%s' đã hết hàng", input.ColorCode, input.Size, product.Name),
				common.StatusBadRequest,
				nil,
			)
		}

		item := ordermodels.OrderItem{
			ProductID:  product.ID,
			Slug:       product.Slug,
			Name:       product.Name,
			Image:      product.Images.Main,
			Price:      product.FinalPrice,
			Quantity:   input.Quantity,
			ColorName:  input.ColorName,
			ColorCode:  input.ColorCode,
			Size:       input.Size,
			VariantKey: BuildVariantKey(product.ID, input.ColorCode, input.Size),
		}
		items = append(items, item)
	}

	return items, SumItems(items), nil
}

// runInTransaction chạy fn trong một transaction MongoDB
func runInTransaction(ctx context.Context, fn func(sc mongo.SessionContext) (interface{}, error)) (interface{}, error) {
	session, err := global.MongoDB_Session.StartSession()
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, fn)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return result, nil
}

// Checkout tạo đơn hàng mới ở trạng thái pending.
// Tiền (subtotal, shippingCost, total) được server tính lại toàn bộ;
// tạo đơn và tăng counter thống kê trong cùng transaction;
// thông báo Telegram là best-effort sau khi commit.
func (s *OrderService) Checkout(ctx context.Context, uid string, input *orderdto.CheckoutInput) (ordermodels.Order, error) {
	var zero ordermodels.Order

	shippingCost, err := shippingsvc.Quote(input.Shipping.Wilaya, input.Shipping.Mode)
	if err != nil {
		return zero, err
	}

	items, subtotal, err := s.buildOrderItems(ctx, input.Items)
	if err != nil {
		return zero, err
	}

	order := ordermodels.Order{
		UserID:        uid,
		CustomerEmail: input.CustomerEmail,
		Items:         items,
		Shipping: ordermodels.ShippingInfo{
			CustomerName: input.Shipping.CustomerName,
			Phone:        input.Shipping.Phone,
			Wilaya:       input.Shipping.Wilaya,
			Address:      input.Shipping.Address,
			Mode:         input.Shipping.Mode,
			Price:        shippingCost,
		},
		Notes:         input.Notes,
		Subtotal:      subtotal,
		ShippingCost:  shippingCost,
		Total:         OrderTotal(subtotal, shippingCost),
		PaymentMethod: "COD",
		Status:        ordermodels.OrderStatusPending,
	}

	result, err := runInTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		created, err := s.BaseServiceMongoImpl.InsertOne(sc, order)
		if err != nil {
			return nil, err
		}
		if err := s.statsService.ApplyOrderCreated(sc, created.Total); err != nil {
			return nil, err
		}
		return created, nil
	})
	if err != nil {
		return zero, err
	}

	created := result.(ordermodels.Order)
	s.notifyNewOrder(created)
	return created, nil
}

// notifyNewOrder gửi thông báo Telegram best-effort, lỗi chỉ log không fail checkout
func (s *OrderService) notifyNewOrder(order ordermodels.Order) {
	if !s.notifier.Enabled() {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		text := fmt.Sprintf(
			"🛒 Đơn hàng mới #%s\nKhách: %s (%s)\nWilaya: %s (%s)\nSố món: %d\nTổng: %.0f DZD (COD)",
			order.ID.Hex(),
			order.Shipping.CustomerName,
			order.Shipping.Phone,
			order.Shipping.Wilaya,
			order.Shipping.Mode,
			len(order.Items),
			order.Total,
		)

		if err := s.notifier.SendMessage(ctx, text); err != nil {
			logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
				"orderId": order.ID.Hex(),
			}).Warn("Gửi thông báo Telegram cho đơn mới thất bại")
		}
	}()
}

// pendingDelta tính mức điều chỉnh counter pendingOrders khi đổi trạng thái
func pendingDelta(oldStatus, newStatus string) int64 {
	switch {
	case oldStatus == ordermodels.OrderStatusPending && newStatus != ordermodels.OrderStatusPending:
		return -1
	case oldStatus != ordermodels.OrderStatusPending && newStatus == ordermodels.OrderStatusPending:
		return 1
	default:
		return 0
	}
}

// statusChangeUpdate dựng update đổi trạng thái đơn.
// Chuyển sang trạng thái khác cancelled (vd admin revert về pending) thì
// gỡ luôn cancelledAt để đơn không mang dấu hủy cũ.
func statusChangeUpdate(newStatus string) *basesvc.UpdateData {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{"status": newStatus},
	}
	if newStatus == ordermodels.OrderStatusCancelled {
		update.Set["cancelledAt"] = time.Now().UnixMilli()
	} else {
		update.Unset = map[string]interface{}{"cancelledAt": ""}
	}
	return update
}

// applyStatusChange đổi trạng thái đơn và điều chỉnh counter trong cùng transaction
func (s *OrderService) applyStatusChange(ctx context.Context, order ordermodels.Order, newStatus string) (ordermodels.Order, error) {
	var zero ordermodels.Order

	update := statusChangeUpdate(newStatus)
	delta := pendingDelta(order.Status, newStatus)

	result, err := runInTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		// Filter kèm status cũ: request đồng thời đã đổi trạng thái thì transaction này fail
		updated, err := s.BaseServiceMongoImpl.UpdateOne(sc, bson.M{"_id": order.ID, "status": order.Status}, update, nil)
		if err != nil {
			return nil, err
		}
		if err := s.statsService.AdjustPendingOrders(sc, delta); err != nil {
			return nil, err
		}
		return updated, nil
	})
	if err != nil {
		return zero, err
	}

	return result.(ordermodels.Order), nil
}

// ChangeStatus đổi trạng thái đơn (admin). Trạng thái đích phải thuộc tập hợp lệ.
func (s *OrderService) ChangeStatus(ctx context.Context, id primitive.ObjectID, newStatus string) (ordermodels.Order, error) {
	var zero ordermodels.Order

	if !ordermodels.IsValidOrderStatus(newStatus) {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Trạng thái '%s' không hợp lệ", newStatus),
			common.StatusBadRequest,
			nil,
		)
	}

	order, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	if order.Status == newStatus {
		return order, nil
	}

	return s.applyStatusChange(ctx, order, newStatus)
}

// Cancel hủy đơn self-service: chỉ chủ đơn và chỉ khi đơn còn pending.
// Đơn đã rời pending thì trả lỗi trạng thái không hợp lệ.
func (s *OrderService) Cancel(ctx context.Context, id primitive.ObjectID, uid string) (ordermodels.Order, error) {
	var zero ordermodels.Order

	order, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	if order.UserID != "" && order.UserID != uid {
		return zero, common.NewError(
			common.ErrCodeAuthRole,
			"Bạn không có quyền hủy đơn hàng này",
			common.StatusForbidden,
			nil,
		)
	}

	if order.Status != ordermodels.OrderStatusPending {
		return zero, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Đơn ở trạng thái '%s', chỉ hủy được đơn đang pending", order.Status),
			common.StatusBadRequest,
			nil,
		)
	}

	return s.applyStatusChange(ctx, order, ordermodels.OrderStatusCancelled)
}

// EditPending sửa đơn khi còn pending (items/shipping/notes).
// Items hoặc shipping thay đổi thì toàn bộ tiền được tính lại như checkout.
func (s *OrderService) EditPending(ctx context.Context, id primitive.ObjectID, uid string, input *orderdto.OrderEditInput) (ordermodels.Order, error) {
	var zero ordermodels.Order

	order, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}

	if order.UserID != "" && order.UserID != uid {
		return zero, common.NewError(
			common.ErrCodeAuthRole,
			"Bạn không có quyền sửa đơn hàng này",
			common.StatusForbidden,
			nil,
		)
	}

	if order.Status != ordermodels.OrderStatusPending {
		return zero, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Đơn ở trạng thái '%s', chỉ sửa được đơn đang pending", order.Status),
			common.StatusBadRequest,
			nil,
		)
	}

	update := &basesvc.UpdateData{Set: map[string]interface{}{}}

	subtotal := order.Subtotal
	shippingCost := order.ShippingCost

	if len(input.Items) > 0 {
		items, newSubtotal, err := s.buildOrderItems(ctx, input.Items)
		if err != nil {
			return zero, err
		}
		subtotal = newSubtotal
		update.Set["items"] = items
	}

	if input.Shipping != nil {
		newCost, err := shippingsvc.Quote(input.Shipping.Wilaya, input.Shipping.Mode)
		if err != nil {
			return zero, err
		}
		shippingCost = newCost
		update.Set["shipping"] = ordermodels.ShippingInfo{
			CustomerName: input.Shipping.CustomerName,
			Phone:        input.Shipping.Phone,
			Wilaya:       input.Shipping.Wilaya,
			Address:      input.Shipping.Address,
			Mode:         input.Shipping.Mode,
			Price:        newCost,
		}
	}

	if input.Notes != nil {
		update.Set["notes"] = *input.Notes
	}

	update.Set["subtotal"] = subtotal
	update.Set["shippingCost"] = shippingCost
	update.Set["total"] = OrderTotal(subtotal, shippingCost)

	// Filter kèm status pending: đơn bị confirm đồng thời thì update không match
	return s.BaseServiceMongoImpl.UpdateOne(ctx, bson.M{"_id": id, "status": ordermodels.OrderStatusPending}, update, nil)
}

// FindMyOrders trả về đơn hàng của một user, mới nhất trước, có phân trang
func (s *OrderService) FindMyOrders(ctx context.Context, uid string, page, limit int64) (*basemodels.PaginateResult[ordermodels.Order], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, bson.M{"userId": uid}, page, limit, opts)
}

// RecomputeStats đối soát lại document thống kê từ collection orders.
// Counter denormalized là eventually consistent, endpoint này là nguồn chân lý.
func (s *OrderService) RecomputeStats(ctx context.Context) (ordermodels.AdminStats, error) {
	var zero ordermodels.AdminStats

	totalOrders, err := s.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{})
	if err != nil {
		return zero, err
	}

	pendingOrders, err := s.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{"status": ordermodels.OrderStatusPending})
	if err != nil {
		return zero, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Tuần bắt đầu từ thứ Hai
	weekdayOffset := (int(now.Weekday()) + 6) % 7
	startOfWeek := startOfDay.AddDate(0, 0, -weekdayOffset)

	ordersToday, err := s.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": startOfDay.UnixMilli()}})
	if err != nil {
		return zero, err
	}

	ordersThisWeek, err := s.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": startOfWeek.UnixMilli()}})
	if err != nil {
		return zero, err
	}

	// Doanh thu: tổng total của các đơn không bị hủy
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": bson.M{"$ne": ordermodels.OrderStatusCancelled}}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "totalRevenue": bson.M{"$sum": "$total"}}}},
	}

	cursor, err := s.Collection().Aggregate(ctx, pipeline)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var totalRevenue float64
	if cursor.Next(ctx) {
		var row struct {
			TotalRevenue float64 `bson:"totalRevenue"`
		}
		if err := cursor.Decode(&row); err != nil {
			return zero, common.ConvertMongoError(err)
		}
		totalRevenue = row.TotalRevenue
	}

	return s.statsService.ReplaceSummary(ctx, ordermodels.AdminStats{
		Key:            ordermodels.AdminStatsKey,
		TotalOrders:    totalOrders,
		TotalRevenue:   totalRevenue,
		PendingOrders:  pendingOrders,
		OrdersToday:    ordersToday,
		OrdersThisWeek: ordersThisWeek,
	})
}

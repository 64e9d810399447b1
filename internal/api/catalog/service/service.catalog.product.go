package catalogsvc

import (
	"context"
	"errors"
	"fmt"

	basemodels "fys_commerce/internal/api/base/models"
	basesvc "fys_commerce/internal/api/base/service"
	catalogmodels "fys_commerce/internal/api/catalog/models"
	"fys_commerce/internal/common"
	"fys_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductService là service quản lý sản phẩm.
// Mọi đường ghi (insert/update/upsert) đều đi qua bước chuẩn hóa giá:
// clamp discountPercent và tính lại finalPrice từ basePrice.
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](collection),
	}, nil
}

// applyPricing chuẩn hóa các trường giá trên model trước khi ghi
func applyPricing(p *catalogmodels.Product) {
	p.DiscountPercent = ClampDiscount(p.DiscountPercent)
	p.FinalPrice = ComputeFinalPrice(p.BasePrice, p.DiscountPercent)
}

// InsertOne tạo mới sản phẩm, tính lại finalPrice trước khi ghi
func (s *ProductService) InsertOne(ctx context.Context, data catalogmodels.Product) (catalogmodels.Product, error) {
	applyPricing(&data)
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// InsertMany tạo nhiều sản phẩm, tính lại finalPrice cho từng sản phẩm
func (s *ProductService) InsertMany(ctx context.Context, data []catalogmodels.Product) ([]catalogmodels.Product, error) {
	for i := range data {
		applyPricing(&data[i])
	}
	return s.BaseServiceMongoImpl.InsertMany(ctx, data)
}

// setTouchesPricing báo $set có chạm vào trường giá đầu vào không
func setTouchesPricing(set map[string]interface{}) bool {
	_, hasBase := set["basePrice"]
	_, hasPct := set["discountPercent"]
	return hasBase || hasPct
}

// reconcilePricingSet chuẩn hóa các trường giá trong một $set map.
// existingBase/existingPct là giá hiện tại của document, dùng cho trường
// không có trong update (vd: chỉ sửa discountPercent thì basePrice lấy từ DB).
// Không chạm vào giá thì chỉ gỡ finalPrice client gửi lên: trường này
// do server tính, không nhận từ ngoài.
func reconcilePricingSet(set map[string]interface{}, existingBase, existingPct float64) {
	if !setTouchesPricing(set) {
		delete(set, "finalPrice")
		return
	}

	base := existingBase
	pct := existingPct
	if v, ok := set["basePrice"]; ok {
		if f, ok := toFloat64(v); ok {
			base = f
		}
	}
	if v, ok := set["discountPercent"]; ok {
		if f, ok := toFloat64(v); ok {
			pct = f
		}
	}

	set["discountPercent"] = ClampDiscount(pct)
	set["finalPrice"] = ComputeFinalPrice(base, pct)
}

// reconcilePricingUpdate tính lại finalPrice trong $set khi update chạm vào
// basePrice hoặc discountPercent, đọc document hiện tại cho trường còn thiếu
func (s *ProductService) reconcilePricingUpdate(ctx context.Context, filter interface{}, update interface{}) (*basesvc.UpdateData, error) {
	data, err := basesvc.ToUpdateData(update)
	if err != nil {
		return nil, err
	}
	if data.Set == nil {
		return data, nil
	}

	if !setTouchesPricing(data.Set) {
		delete(data.Set, "finalPrice")
		return data, nil
	}

	existing, err := s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
	if err != nil {
		return nil, err
	}

	reconcilePricingSet(data.Set, existing.BasePrice, existing.DiscountPercent)
	return data, nil
}

// UpdateById cập nhật sản phẩm theo ID, tính lại finalPrice nếu giá thay đổi
func (s *ProductService) UpdateById(ctx context.Context, id primitive.ObjectID, update interface{}) (catalogmodels.Product, error) {
	data, err := s.reconcilePricingUpdate(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return *new(catalogmodels.Product), err
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
}

// UpdateOne cập nhật một sản phẩm theo filter, tính lại finalPrice nếu giá thay đổi
func (s *ProductService) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (catalogmodels.Product, error) {
	data, err := s.reconcilePricingUpdate(ctx, filter, update)
	if err != nil {
		return *new(catalogmodels.Product), err
	}
	return s.BaseServiceMongoImpl.UpdateOne(ctx, filter, data, opts)
}

// FindOneAndUpdate tìm và cập nhật một sản phẩm, tính lại finalPrice nếu giá thay đổi
func (s *ProductService) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (catalogmodels.Product, error) {
	data, err := s.reconcilePricingUpdate(ctx, filter, update)
	if err != nil {
		return *new(catalogmodels.Product), err
	}
	return s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, filter, data, opts)
}

// UpdateMany cập nhật nhiều sản phẩm theo filter.
// Update chạm cả basePrice lẫn discountPercent thì finalPrice giống nhau cho
// mọi document nên tính một lần. Chỉ chạm một trường giá thì mỗi document
// phải đọc trường còn lại riêng nên cập nhật lần lượt từng document.
func (s *ProductService) UpdateMany(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (int64, error) {
	data, err := basesvc.ToUpdateData(update)
	if err != nil {
		return 0, err
	}
	if data.Set == nil {
		return s.BaseServiceMongoImpl.UpdateMany(ctx, filter, data, opts)
	}

	_, hasBase := data.Set["basePrice"]
	_, hasPct := data.Set["discountPercent"]
	if hasBase == hasPct {
		// Cả hai trường giá hoặc không trường nào: không cần đọc document
		reconcilePricingSet(data.Set, 0, 0)
		return s.BaseServiceMongoImpl.UpdateMany(ctx, filter, data, opts)
	}

	docs, err := s.BaseServiceMongoImpl.Find(ctx, filter, nil)
	if err != nil {
		return 0, err
	}

	var modified int64
	for _, doc := range docs {
		set := make(map[string]interface{}, len(data.Set)+1)
		for k, v := range data.Set {
			set[k] = v
		}
		reconcilePricingSet(set, doc.BasePrice, doc.DiscountPercent)

		perDoc := *data
		perDoc.Set = set
		if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, doc.ID, &perDoc); err != nil {
			return modified, err
		}
		modified++
	}
	return modified, nil
}

// Upsert upsert một sản phẩm theo filter, tính lại finalPrice nếu giá thay đổi.
// Nhánh insert của upsert chưa có document nên baseline giá là zero.
func (s *ProductService) Upsert(ctx context.Context, filter interface{}, data interface{}) (catalogmodels.Product, error) {
	var zero catalogmodels.Product

	update, err := basesvc.ToUpdateData(data)
	if err != nil {
		return zero, err
	}

	if update.Set != nil {
		var base, pct float64
		existing, err := s.BaseServiceMongoImpl.FindOne(ctx, filter, nil)
		if err == nil {
			base = existing.BasePrice
			pct = existing.DiscountPercent
		} else if !errors.Is(err, common.ErrNotFound) {
			return zero, err
		}
		reconcilePricingSet(update.Set, base, pct)
	}

	return s.BaseServiceMongoImpl.Upsert(ctx, filter, update)
}

// UpsertMany upsert nhiều sản phẩm, chuẩn hóa giá cho từng model trước khi ghi
func (s *ProductService) UpsertMany(ctx context.Context, filter interface{}, data []catalogmodels.Product) ([]catalogmodels.Product, error) {
	for i := range data {
		applyPricing(&data[i])
	}
	return s.BaseServiceMongoImpl.UpsertMany(ctx, filter, data)
}

// FindBySlug tìm sản phẩm active theo slug (đường đọc của storefront).
// Sản phẩm inactive coi như không tồn tại với storefront.
func (s *ProductService) FindBySlug(ctx context.Context, slug string) (catalogmodels.Product, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{
		"slug":   slug,
		"status": catalogmodels.ProductStatusActive,
	}, nil)
}

// FindStorefront trả về danh sách sản phẩm active có phân trang cho storefront.
// extraFilter cho phép lọc thêm theo category/designTheme/gender.
func (s *ProductService) FindStorefront(ctx context.Context, extraFilter map[string]interface{}, page, limit int64) (*basemodels.PaginateResult[catalogmodels.Product], error) {
	filter := bson.M{"status": catalogmodels.ProductStatusActive}
	for k, v := range extraFilter {
		filter[k] = v
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, page, limit, opts)
}

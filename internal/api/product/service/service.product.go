// Package productsvc - service cho domain product.
//
// Mọi thao tác ghi đều kiểm tra tham chiếu facet trước khi chạm database:
// mười tham chiếu bắt buộc và ba tham chiếu sub-facet tùy chọn phải trỏ đến
// document tồn tại tại thời điểm ghi.
package productsvc

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	basesvc "github.com/amritage/fabric-shop-backend/internal/api/base/service"
	catalogmodels "github.com/amritage/fabric-shop-backend/internal/api/catalog/models"
	productmodels "github.com/amritage/fabric-shop-backend/internal/api/product/models"
	"github.com/amritage/fabric-shop-backend/internal/common"
	"github.com/amritage/fabric-shop-backend/internal/global"
	"github.com/amritage/fabric-shop-backend/internal/logger"
	"github.com/amritage/fabric-shop-backend/internal/media"
	"github.com/amritage/fabric-shop-backend/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxKeywords là số từ khóa tối đa trong trường keywords (phân cách dấu phẩy)
const MaxKeywords = 20

// DefaultMediaFolder là folder Cloudinary khi không suy ra được từ category
const DefaultMediaFolder = "product"

// refCollectionNames ánh xạ trường khóa ngoại trên product sang tên collection
// chứa facet đích. Dựng tại thời điểm gọi vì tên collection chỉ có sau init.
func refCollectionNames() map[string]string {
	col := global.MongoDB_ColNames
	return map[string]string{
		"newCategoryId":  col.Categories,
		"structureId":    col.Structures,
		"contentId":      col.Contents,
		"finishId":       col.Finishes,
		"designId":       col.Designs,
		"colorId":        col.Colors,
		"motifsizeId":    col.Motifsizes,
		"suitableforId":  col.Suitablefors,
		"vendorId":       col.Vendors,
		"groupcodeId":    col.GroupCodes,
		"substructureId": col.SubStructures,
		"subfinishId":    col.SubFinishes,
		"subsuitableId":  col.SubSuitables,
	}
}

// rangeFields là các trường số được phép lọc theo dải ±15%
var rangeFields = map[string]bool{
	"gsm":           true,
	"oz":            true,
	"cm":            true,
	"inch":          true,
	"salesPrice":    true,
	"purchasePrice": true,
	"quantity":      true,
}

// facetFilterFields là các trường khóa ngoại được phép lọc exact-match
var facetFilterFields = map[string]bool{
	"newCategoryId": true,
	"structureId":   true,
	"contentId":     true,
	"finishId":      true,
	"designId":      true,
	"colorId":       true,
	"motifsizeId":   true,
	"suitableforId": true,
	"vendorId":      true,
	"groupcodeId":   true,
}

// flagFields là các cờ hiển thị, giá trị "yes" nghĩa là bật
var flagFields = map[string]bool{
	"popularproduct":  true,
	"productoffer":    true,
	"topratedproduct": true,
}

// ProductService quản lý aggregate Product
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[productmodels.Product]
	categories *basesvc.BaseServiceMongoImpl[catalogmodels.Facet]
}

// NewProductService tạo ProductService từ registry collection
func NewProductService() (*ProductService, error) {
	productCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Products, common.ErrNotFound)
	}
	categoryCol, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Categories, common.ErrNotFound)
	}

	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[productmodels.Product](productCol),
		categories:           basesvc.NewBaseServiceMongo[catalogmodels.Facet](categoryCol),
	}, nil
}

// CountKeywords đếm số từ khóa khác rỗng trong chuỗi phân cách dấu phẩy
func CountKeywords(raw string) int {
	count := 0
	for _, kw := range strings.Split(raw, ",") {
		if strings.TrimSpace(kw) != "" {
			count++
		}
	}
	return count
}

// validateKeywords giới hạn tối đa MaxKeywords từ khóa
func validateKeywords(raw string) error {
	if CountKeywords(raw) > MaxKeywords {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Trường keywords chỉ chấp nhận tối đa %d từ khóa phân cách dấu phẩy", MaxKeywords),
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}

// CheckReferences kiểm tra từng khóa ngoại trong refs có trỏ đến document
// tồn tại hay không. Tham chiếu hỏng trả về lỗi 400 kèm tên trường vi phạm.
func (s *ProductService) CheckReferences(ctx context.Context, refs map[string]primitive.ObjectID) error {
	colNames := refCollectionNames()
	for field, id := range refs {
		colName, ok := colNames[field]
		if !ok {
			return common.NewError(
				common.ErrCodeValidationReference,
				fmt.Sprintf("Trường '%s' không phải khóa ngoại của product", field),
				common.StatusBadRequest,
				nil,
			)
		}

		col, exist := global.RegistryCollections.Get(colName)
		if !exist {
			return fmt.Errorf("không tìm thấy collection %s: %w", colName, common.ErrNotFound)
		}

		count, err := col.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count == 0 {
			return common.NewError(
				common.ErrCodeValidationReference,
				fmt.Sprintf("%s không trỏ đến dữ liệu tồn tại", field),
				common.StatusBadRequest,
				nil,
			)
		}
	}
	return nil
}

// ResolveMediaFolder suy ra folder Cloudinary từ tên category.
// Lỗi tra cứu không làm hỏng pipeline, chỉ hạ xuống folder mặc định.
func (s *ProductService) ResolveMediaFolder(ctx context.Context, categoryID *primitive.ObjectID) string {
	if categoryID == nil {
		return DefaultMediaFolder
	}

	category, err := s.categories.FindOneById(ctx, *categoryID)
	if err != nil {
		logger.WithModule("product").WithError(err).Warn("Không tra cứu được category, dùng folder mặc định")
		return DefaultMediaFolder
	}
	if category.Name == "" {
		return DefaultMediaFolder
	}
	return media.FolderFromName(category.Name)
}

// applyDefaults điền giá trị mặc định cho khối metadata SEO khi client bỏ trống
func applyDefaults(p *productmodels.Product) {
	if p.Charset == "" {
		p.Charset = "UTF-8"
	}
	if p.XUaCompatible == "" {
		p.XUaCompatible = "IE=edge"
	}
	if p.Viewport == "" {
		p.Viewport = "width=device-width, initial-scale=1.0"
	}
	if p.Robots == "" {
		p.Robots = "index, follow"
	}
	if p.ContentLanguage == "" {
		p.ContentLanguage = "en"
	}
	if p.ThemeColor == "" {
		p.ThemeColor = "#ffffff"
	}
	if p.AppleStatusBarStyle == "" {
		p.AppleStatusBarStyle = "default"
	}
	if p.FormatDetection == "" {
		p.FormatDetection = "telephone=no"
	}
	if p.OgLocale == "" {
		p.OgLocale = "en_US"
	}
	if p.OgType == "" {
		p.OgType = "product"
	}
	if p.TwitterCard == "" {
		p.TwitterCard = "summary_large_image"
	}
}

// requiredRefs gom mười khóa ngoại bắt buộc của một product
func requiredRefs(p *productmodels.Product) map[string]primitive.ObjectID {
	return map[string]primitive.ObjectID{
		"newCategoryId": p.NewCategoryID,
		"structureId":   p.StructureID,
		"contentId":     p.ContentID,
		"finishId":      p.FinishID,
		"designId":      p.DesignID,
		"colorId":       p.ColorID,
		"motifsizeId":   p.MotifsizeID,
		"suitableforId": p.SuitableforID,
		"vendorId":      p.VendorID,
		"groupcodeId":   p.GroupcodeID,
	}
}

// Create kiểm tra từ khóa và toàn bộ tham chiếu rồi insert product mới
func (s *ProductService) Create(ctx context.Context, product productmodels.Product) (productmodels.Product, error) {
	var zero productmodels.Product

	if err := validateKeywords(product.Keywords); err != nil {
		return zero, err
	}
	applyDefaults(&product)

	refs := requiredRefs(&product)
	if product.SubstructureID != nil {
		refs["substructureId"] = *product.SubstructureID
	}
	if product.SubfinishID != nil {
		refs["subfinishId"] = *product.SubfinishID
	}
	if product.SubsuitableID != nil {
		refs["subsuitableId"] = *product.SubsuitableID
	}
	if err := s.CheckReferences(ctx, refs); err != nil {
		return zero, err
	}

	return s.InsertOne(ctx, product)
}

// Update ghi đè các trường trong set lên product hiện có.
// refs chứa các khóa ngoại xuất hiện trong set, được kiểm tra trước khi ghi.
func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, set bson.M, refs map[string]primitive.ObjectID) (productmodels.Product, error) {
	var zero productmodels.Product

	if keywords, ok := set["keywords"].(string); ok {
		if err := validateKeywords(keywords); err != nil {
			return zero, err
		}
	}
	if err := s.CheckReferences(ctx, refs); err != nil {
		return zero, err
	}

	return s.UpdateById(ctx, id, bson.M{"$set": set})
}

// List trả về toàn bộ sản phẩm, mới nhất trước
func (s *ProductService) List(ctx context.Context) ([]productmodels.Product, error) {
	products, err := s.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []productmodels.Product{}
	}
	return products, nil
}

// Search tìm sản phẩm theo chuỗi con của name hoặc keywords,
// không phân biệt hoa thường. Ký tự đặc biệt của regex được escape.
func (s *ProductService) Search(ctx context.Context, q string) ([]productmodels.Product, error) {
	pattern := regexp.QuoteMeta(q)
	filter := bson.M{"$or": bson.A{
		bson.M{"name": primitive.Regex{Pattern: pattern, Options: "i"}},
		bson.M{"keywords": primitive.Regex{Pattern: pattern, Options: "i"}},
	}}

	results, err := s.Find(ctx, filter, nil)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []productmodels.Product{}
	}
	return results, nil
}

// FindByFacet lọc sản phẩm theo một khóa ngoại facet.
// Không có kết quả trả về 404 thay vì danh sách rỗng.
func (s *ProductService) FindByFacet(ctx context.Context, field string, id primitive.ObjectID) ([]productmodels.Product, error) {
	if !facetFilterFields[field] {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Trường '%s' không hỗ trợ lọc theo facet", field),
			common.StatusBadRequest,
			nil,
		)
	}

	products, err := s.Find(ctx, bson.M{field: id}, nil)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, common.NewError(
			common.ErrCodeDatabaseQuery,
			fmt.Sprintf("Không tìm thấy sản phẩm nào theo %s", field),
			common.StatusNotFound,
			nil,
		)
	}
	return products, nil
}

// RangeBounds tính biên dưới và biên trên của dải ±15% quanh value
func RangeBounds(value float64) (min float64, max float64) {
	band := value * 0.15
	return value - band, value + band
}

// identifierExpansionFilter dựng filter mở rộng từ các bản ghi khớp dải:
// gom productIdentifier của chúng, khử trùng lặp giữ thứ tự, rồi trả về
// filter $in để lấy mọi biến thể cùng identifier
func identifierExpansionFilter(matched []productmodels.Product) bson.M {
	identifiers := make([]string, 0, len(matched))
	for _, p := range matched {
		identifiers = append(identifiers, p.ProductIdentifier)
	}
	identifiers = utility.Unique(identifiers)
	return bson.M{"productIdentifier": bson.M{"$in": identifiers}}
}

// FindByRange lọc sản phẩm theo dải ±15% của một trường số, sau đó mở rộng
// kết quả sang mọi sản phẩm cùng productIdentifier với các bản ghi khớp dải.
// Bước mở rộng cố ý trả về cả các biến thể có giá trị nằm ngoài dải.
func (s *ProductService) FindByRange(ctx context.Context, field string, value float64) ([]productmodels.Product, error) {
	if !rangeFields[field] {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Trường '%s' không hỗ trợ lọc theo dải giá trị", field),
			common.StatusBadRequest,
			nil,
		)
	}

	min, max := RangeBounds(value)
	matched, err := s.Find(ctx, bson.M{field: bson.M{"$gte": min, "$lte": max}}, nil)
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, common.NewError(
			common.ErrCodeDatabaseQuery,
			fmt.Sprintf("Không tìm thấy sản phẩm nào trong dải ±15%% của %s = %g", field, value),
			common.StatusNotFound,
			nil,
		)
	}

	return s.Find(ctx, identifierExpansionFilter(matched), nil)
}

// FindByFlag trả về các sản phẩm có cờ hiển thị bật ("yes").
// Khác với lọc facet, danh sách rỗng là kết quả hợp lệ.
func (s *ProductService) FindByFlag(ctx context.Context, field string) ([]productmodels.Product, error) {
	if !flagFields[field] {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Trường '%s' không phải cờ hiển thị", field),
			common.StatusBadRequest,
			nil,
		)
	}

	products, err := s.Find(ctx, bson.M{field: "yes"}, nil)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []productmodels.Product{}
	}
	return products, nil
}

// BySlug tìm một sản phẩm theo slug
func (s *ProductService) BySlug(ctx context.Context, slug string) (productmodels.Product, error) {
	return s.FindOne(ctx, bson.M{"slug": slug}, nil)
}

// ByIdentifier tìm một sản phẩm theo productIdentifier
func (s *ProductService) ByIdentifier(ctx context.Context, identifier string) (productmodels.Product, error) {
	return s.FindOne(ctx, bson.M{"productIdentifier": identifier}, nil)
}

// Delete xóa một sản phẩm và trả về document vừa xóa.
// Media trên Cloudinary được giữ nguyên, không xóa kèm.
func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) (productmodels.Product, error) {
	var zero productmodels.Product

	product, err := s.FindOneById(ctx, id)
	if err != nil {
		return zero, err
	}
	if err := s.DeleteById(ctx, id); err != nil {
		return zero, err
	}
	return product, nil
}

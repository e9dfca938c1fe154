// Package catalogsvc - service cho domain catalog.
//
// IntegrityGuard là chốt chặn toàn vẹn tham chiếu: mọi thao tác xóa facet
// hoặc sub-facet đều phải đi qua guard trước. Guard giữ một registry tĩnh
// kind -> danh sách (collection phụ thuộc, khóa ngoại), xây một lần lúc
// khởi động chứ không resolve tại thời điểm gọi.
package catalogsvc

import (
	"context"
	"fmt"

	"github.com/amritage/fabric-shop-backend/internal/common"
	"github.com/amritage/fabric-shop-backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DependentRule mô tả một collection phụ thuộc và khóa ngoại trỏ về entity
type DependentRule struct {
	Kind           string // tên kind phụ thuộc, xuất hiện trên wire là "<kind>Count"
	CollectionName string
	ForeignKey     string
}

// Blocker là một kind phụ thuộc đang giữ tham chiếu đến entity cần xóa
type Blocker struct {
	Kind  string
	Count int64
}

// DeleteCheck là kết quả kiểm tra trước khi xóa
type DeleteCheck struct {
	Allowed  bool
	Blockers []Blocker
}

// IntegrityGuard chặn xóa facet/sub-facet còn đang được tham chiếu.
// Kiểm tra rồi mới xóa không atomic với ghi đồng thời, đây là race window
// hẹp được chấp nhận thay vì dùng transaction.
type IntegrityGuard struct {
	ownCollections map[string]string          // kind -> collection chứa chính entity đó
	rules          map[string][]DependentRule // kind -> các collection phụ thuộc
}

// NewIntegrityGuard xây registry tĩnh cho mười facet và ba sub-facet.
// Mọi facet đều bị product chặn; finish/structure/suitablefor còn bị
// sub-facet tương ứng chặn; sub-facet bị các tham chiếu optional trên
// product chặn.
func NewIntegrityGuard() *IntegrityGuard {
	col := global.MongoDB_ColNames

	productRule := func(fk string) DependentRule {
		return DependentRule{Kind: "product", CollectionName: col.Products, ForeignKey: fk}
	}

	rules := map[string][]DependentRule{
		"category":    {productRule("newCategoryId")},
		"structure":   {productRule("structureId"), {Kind: "substructure", CollectionName: col.SubStructures, ForeignKey: "structureId"}},
		"content":     {productRule("contentId")},
		"finish":      {productRule("finishId"), {Kind: "subfinish", CollectionName: col.SubFinishes, ForeignKey: "finishId"}},
		"design":      {productRule("designId")},
		"color":       {productRule("colorId")},
		"motifsize":   {productRule("motifsizeId")},
		"suitablefor": {productRule("suitableforId"), {Kind: "subsuitable", CollectionName: col.SubSuitables, ForeignKey: "suitableforId"}},
		"vendor":      {productRule("vendorId")},
		"groupcode":   {productRule("groupcodeId")},

		"subfinish":    {productRule("subfinishId")},
		"substructure": {productRule("substructureId")},
		"subsuitable":  {productRule("subsuitableId")},
	}

	ownCollections := map[string]string{
		"category":    col.Categories,
		"structure":   col.Structures,
		"content":     col.Contents,
		"finish":      col.Finishes,
		"design":      col.Designs,
		"color":       col.Colors,
		"motifsize":   col.Motifsizes,
		"suitablefor": col.Suitablefors,
		"vendor":      col.Vendors,
		"groupcode":   col.GroupCodes,

		"subfinish":    col.SubFinishes,
		"substructure": col.SubStructures,
		"subsuitable":  col.SubSuitables,
	}

	return &IntegrityGuard{
		ownCollections: ownCollections,
		rules:          rules,
	}
}

// Rules trả về danh sách rule của một kind (phục vụ kiểm thử wiring)
func (g *IntegrityGuard) Rules(kind string) []DependentRule {
	return g.rules[kind]
}

// Kinds trả về các kind được guard quản lý
func (g *IntegrityGuard) Kinds() []string {
	kinds := make([]string, 0, len(g.rules))
	for kind := range g.rules {
		kinds = append(kinds, kind)
	}
	return kinds
}

// CanDelete kiểm tra một entity có thể xóa hay không.
// Entity không tồn tại -> ErrNotFound. Còn tham chiếu -> Allowed=false kèm
// đầy đủ các blocker khác 0 (không dừng ở blocker đầu tiên). Guard chỉ đọc,
// không bao giờ tự xóa.
func (g *IntegrityGuard) CanDelete(ctx context.Context, kind string, id primitive.ObjectID) (*DeleteCheck, error) {
	ownColName, ok := g.ownCollections[kind]
	if !ok {
		return nil, common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Loại entity '%s' không được guard quản lý", kind),
			common.StatusBadRequest,
			nil,
		)
	}

	ownCol, exist := global.RegistryCollections.Get(ownColName)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", ownColName, common.ErrNotFound)
	}

	err := ownCol.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, common.ErrNotFound
		}
		return nil, common.ConvertMongoError(err)
	}

	check := &DeleteCheck{Allowed: true}
	for _, rule := range g.rules[kind] {
		depCol, exist := global.RegistryCollections.Get(rule.CollectionName)
		if !exist {
			return nil, fmt.Errorf("không tìm thấy collection %s: %w", rule.CollectionName, common.ErrNotFound)
		}

		count, err := depCol.CountDocuments(ctx, bson.M{rule.ForeignKey: id})
		if err != nil {
			return nil, common.ConvertMongoError(err)
		}
		if count > 0 {
			check.Allowed = false
			check.Blockers = append(check.Blockers, Blocker{Kind: rule.Kind, Count: count})
		}
	}

	return check, nil
}

// InUseError dựng lỗi 400 theo đúng wire shape khi xóa bị chặn:
// {"error": ..., "inUse": true, "productCount": n, "subfinishCount": n, ...}
func InUseError(kind string, blockers []Blocker) error {
	details := map[string]interface{}{"inUse": true}
	for _, b := range blockers {
		details[b.Kind+"Count"] = b.Count
	}
	return common.NewError(
		common.ErrCodeBusinessReference,
		fmt.Sprintf("Không thể xóa %s vì đang được tham chiếu", kind),
		common.StatusBadRequest,
		details,
	)
}

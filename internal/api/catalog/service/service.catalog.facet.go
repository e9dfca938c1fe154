// Package catalogsvc - service CRUD cho mười loại facet.
package catalogsvc

import (
	"context"
	"fmt"

	basesvc "github.com/amritage/fabric-shop-backend/internal/api/base/service"
	catalogmodels "github.com/amritage/fabric-shop-backend/internal/api/catalog/models"
	"github.com/amritage/fabric-shop-backend/internal/common"
	"github.com/amritage/fabric-shop-backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// FacetService xử lý CRUD cho một loại facet cụ thể.
// Mười loại facet dùng chung service này, mỗi instance gắn với một collection.
type FacetService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Facet]
	kind  catalogmodels.FacetKind
	guard *IntegrityGuard
}

// facetCollectionName ánh xạ kind sang tên collection đã đăng ký
func facetCollectionName(kind catalogmodels.FacetKind) string {
	col := global.MongoDB_ColNames
	switch kind {
	case catalogmodels.KindCategory:
		return col.Categories
	case catalogmodels.KindStructure:
		return col.Structures
	case catalogmodels.KindContent:
		return col.Contents
	case catalogmodels.KindFinish:
		return col.Finishes
	case catalogmodels.KindDesign:
		return col.Designs
	case catalogmodels.KindColor:
		return col.Colors
	case catalogmodels.KindMotifsize:
		return col.Motifsizes
	case catalogmodels.KindSuitablefor:
		return col.Suitablefors
	case catalogmodels.KindVendor:
		return col.Vendors
	case catalogmodels.KindGroupCode:
		return col.GroupCodes
	}
	return ""
}

// NewFacetService tạo FacetService cho một kind.
func NewFacetService(kind catalogmodels.FacetKind, guard *IntegrityGuard) (*FacetService, error) {
	colName := facetCollectionName(kind)
	coll, exist := global.RegistryCollections.Get(colName)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", colName, common.ErrNotFound)
	}
	return &FacetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Facet](coll),
		kind:                 kind,
		guard:                guard,
	}, nil
}

// Kind trả về loại facet của service
func (s *FacetService) Kind() catalogmodels.FacetKind {
	return s.kind
}

// Create tạo facet mới. Name trùng sẽ bị unique index chặn (ErrDuplicate).
func (s *FacetService) Create(ctx context.Context, name, image, video string) (*catalogmodels.Facet, error) {
	doc := catalogmodels.Facet{
		Name:  name,
		Image: image,
		Video: video,
	}
	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// List trả về toàn bộ facet của kind, mới tạo trước
func (s *FacetService) List(ctx context.Context) ([]catalogmodels.Facet, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	items, err := s.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []catalogmodels.Facet{}
	}
	return items, nil
}

// Update cập nhật các trường có giá trị trong set
func (s *FacetService) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*catalogmodels.Facet, error) {
	if len(set) == 0 {
		return nil, common.ErrInvalidInput
	}
	updated, err := s.UpdateById(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa facet sau khi qua IntegrityGuard.
// Còn tham chiếu -> lỗi 400 kèm chi tiết blocker, document giữ nguyên.
func (s *FacetService) Delete(ctx context.Context, id primitive.ObjectID) error {
	check, err := s.guard.CanDelete(ctx, string(s.kind), id)
	if err != nil {
		return err
	}
	if !check.Allowed {
		return InUseError(string(s.kind), check.Blockers)
	}
	return s.DeleteById(ctx, id)
}

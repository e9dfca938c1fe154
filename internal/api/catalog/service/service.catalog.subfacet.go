// Package catalogsvc - service CRUD cho ba loại sub-facet.
package catalogsvc

import (
	"context"
	"fmt"

	basesvc "github.com/amritage/fabric-shop-backend/internal/api/base/service"
	"github.com/amritage/fabric-shop-backend/internal/common"
	"github.com/amritage/fabric-shop-backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"
)

// SubFacetService xử lý CRUD cho một loại sub-facet.
// T là model cụ thể (SubFinish, SubStructure, SubSuitable). Mỗi instance gắn
// với collection của nó và collection facet cha để kiểm tra tồn tại trước khi ghi.
type SubFacetService[T any] struct {
	*basesvc.BaseServiceMongoImpl[T]
	kind       string
	parentCol  *mongo.Collection
	parentKind string
	guard      *IntegrityGuard
}

// NewSubFacetService tạo SubFacetService cho một kind.
func NewSubFacetService[T any](kind, colName, parentKind, parentColName string, guard *IntegrityGuard) (*SubFacetService[T], error) {
	coll, exist := global.RegistryCollections.Get(colName)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", colName, common.ErrNotFound)
	}
	parentColl, exist := global.RegistryCollections.Get(parentColName)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", parentColName, common.ErrNotFound)
	}
	return &SubFacetService[T]{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[T](coll),
		kind:                 kind,
		parentCol:            parentColl,
		parentKind:           parentKind,
		guard:                guard,
	}, nil
}

// Kind trả về loại sub-facet của service
func (s *SubFacetService[T]) Kind() string {
	return s.kind
}

// CheckParentExists kiểm tra facet cha tồn tại tại thời điểm ghi.
// Đây là bước pipeline tường minh, không phải validation ngầm trong schema.
func (s *SubFacetService[T]) CheckParentExists(ctx context.Context, parentID primitive.ObjectID) error {
	err := s.parentCol.FindOne(ctx, bson.M{"_id": parentID},
		mongoopts.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return common.NewError(
				common.ErrCodeValidationReference,
				fmt.Sprintf("%sId không trỏ đến %s tồn tại", s.parentKind, s.parentKind),
				common.StatusBadRequest,
				nil,
			)
		}
		return common.ConvertMongoError(err)
	}
	return nil
}

// Create kiểm tra facet cha rồi chèn sub-facet mới
func (s *SubFacetService[T]) Create(ctx context.Context, doc T, parentID primitive.ObjectID) (*T, error) {
	if err := s.CheckParentExists(ctx, parentID); err != nil {
		return nil, err
	}
	created, err := s.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// List trả về toàn bộ sub-facet, mới tạo trước
func (s *SubFacetService[T]) List(ctx context.Context) ([]T, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	items, err := s.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Update cập nhật các trường trong set; nếu đổi facet cha thì kiểm tra tồn tại trước
func (s *SubFacetService[T]) Update(ctx context.Context, id primitive.ObjectID, set bson.M, newParentID *primitive.ObjectID) (*T, error) {
	if len(set) == 0 {
		return nil, common.ErrInvalidInput
	}
	if newParentID != nil {
		if err := s.CheckParentExists(ctx, *newParentID); err != nil {
			return nil, err
		}
	}
	updated, err := s.UpdateById(ctx, id, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa sub-facet sau khi qua IntegrityGuard
func (s *SubFacetService[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	check, err := s.guard.CanDelete(ctx, s.kind, id)
	if err != nil {
		return err
	}
	if !check.Allowed {
		return InUseError(s.kind, check.Blockers)
	}
	return s.DeleteById(ctx, id)
}

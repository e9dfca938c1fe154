// Package models - các sub-facet (biến thể con) của catalog.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubFacetKind phân biệt ba loại sub-facet
type SubFacetKind string

const (
	KindSubFinish    SubFacetKind = "subfinish"
	KindSubStructure SubFacetKind = "substructure"
	KindSubSuitable  SubFacetKind = "subsuitable"
)

// SubFinish là kiểu hoàn thiện con, tham chiếu bắt buộc đến một Finish (subfinishes).
// FinishID phải trỏ đến document tồn tại tại thời điểm ghi.
type SubFinish struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name" index:"unique"`
	FinishID primitive.ObjectID `json:"finishId" bson:"finishId" index:"single:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// SubStructure là cấu trúc con, tham chiếu bắt buộc đến một Structure (substructures).
type SubStructure struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"unique"`
	StructureID primitive.ObjectID `json:"structureId" bson:"structureId" index:"single:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// SubSuitable là mục đích sử dụng con, tham chiếu bắt buộc đến một Suitablefor (subsuitables).
type SubSuitable struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name" index:"unique"`
	SuitableforID primitive.ObjectID `json:"suitableforId" bson:"suitableforId" index:"single:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

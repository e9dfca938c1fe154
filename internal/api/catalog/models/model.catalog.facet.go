// Package models - các entity taxonomy của catalog.
// Mười loại facet dùng chung một cấu trúc document, mỗi loại một collection riêng.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FacetKind phân biệt mười loại facet của catalog
type FacetKind string

const (
	KindCategory    FacetKind = "category"
	KindStructure   FacetKind = "structure"
	KindContent     FacetKind = "content"
	KindFinish      FacetKind = "finish"
	KindDesign      FacetKind = "design"
	KindColor       FacetKind = "color"
	KindMotifsize   FacetKind = "motifsize"
	KindSuitablefor FacetKind = "suitablefor"
	KindVendor      FacetKind = "vendor"
	KindGroupCode   FacetKind = "groupcode"
)

// AllFacetKinds liệt kê mười loại facet theo thứ tự cố định
var AllFacetKinds = []FacetKind{
	KindCategory, KindStructure, KindContent, KindFinish, KindDesign,
	KindColor, KindMotifsize, KindSuitablefor, KindVendor, KindGroupCode,
}

// Facet là document dùng chung cho mười collection facet.
// Name là duy nhất trong từng collection. Image/Video chỉ dùng cho
// category và groupcode, các loại còn lại để trống.
type Facet struct {
	ID    primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name" index:"unique"`
	Image string             `json:"image,omitempty" bson:"image,omitempty"`
	Video string             `json:"video,omitempty" bson:"video,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

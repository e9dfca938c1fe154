// Package dto - DTO cho domain catalog (facet và sub-facet).
package dto

// FacetCreateInput dữ liệu tạo facet mới.
// Image/Video nhận URL trực tiếp; file nhị phân đi qua multipart và được
// handler xử lý riêng trước khi gọi service.
type FacetCreateInput struct {
	Name  string `json:"name" form:"name" validate:"required,no_xss"`
	Image string `json:"image,omitempty" form:"image"`
	Video string `json:"video,omitempty" form:"video"`
}

// FacetUpdateInput dữ liệu cập nhật facet. Chỉ các trường có giá trị mới được ghi đè.
type FacetUpdateInput struct {
	Name  string `json:"name,omitempty" form:"name" validate:"omitempty,no_xss"`
	Image string `json:"image,omitempty" form:"image"`
	Video string `json:"video,omitempty" form:"video"`
}

// SubFinishCreateInput dữ liệu tạo kiểu hoàn thiện con.
// FinishID là id (hex) của finish cha, bắt buộc tồn tại tại thời điểm ghi.
type SubFinishCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss"`
	FinishID string `json:"finishId" validate:"required,len=24,hexadecimal"`
}

// SubFinishUpdateInput dữ liệu cập nhật kiểu hoàn thiện con.
type SubFinishUpdateInput struct {
	Name     string `json:"name,omitempty" validate:"omitempty,no_xss"`
	FinishID string `json:"finishId,omitempty" validate:"omitempty,len=24,hexadecimal"`
}

// SubStructureCreateInput dữ liệu tạo cấu trúc con.
type SubStructureCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	StructureID string `json:"structureId" validate:"required,len=24,hexadecimal"`
}

// SubStructureUpdateInput dữ liệu cập nhật cấu trúc con.
type SubStructureUpdateInput struct {
	Name        string `json:"name,omitempty" validate:"omitempty,no_xss"`
	StructureID string `json:"structureId,omitempty" validate:"omitempty,len=24,hexadecimal"`
}

// SubSuitableCreateInput dữ liệu tạo mục đích sử dụng con.
type SubSuitableCreateInput struct {
	Name          string `json:"name" validate:"required,no_xss"`
	SuitableforID string `json:"suitableforId" validate:"required,len=24,hexadecimal"`
}

// SubSuitableUpdateInput dữ liệu cập nhật mục đích sử dụng con.
type SubSuitableUpdateInput struct {
	Name          string `json:"name,omitempty" validate:"omitempty,no_xss"`
	SuitableforID string `json:"suitableforId,omitempty" validate:"omitempty,len=24,hexadecimal"`
}

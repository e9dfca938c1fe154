// Package dto - test validate của DTO sản phẩm.
package dto

import (
	"testing"

	"github.com/amritage/fabric-shop-backend/internal/global"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// validCreateInput dựng một input tạo sản phẩm hợp lệ tối thiểu
func validCreateInput() ProductCreateInput {
	hexID := "507f1f77bcf86cd799439011"
	return ProductCreateInput{
		Name:            "Cotton Twill",
		PopularProduct:  "no",
		ProductOffer:    "no",
		TopRatedProduct: "no",

		NewCategoryID: hexID,
		StructureID:   hexID,
		ContentID:     hexID,
		FinishID:      hexID,
		DesignID:      hexID,
		ColorID:       hexID,
		MotifsizeID:   hexID,
		SuitableforID: hexID,
		VendorID:      hexID,
		GroupcodeID:   hexID,

		Gsm:      floatPtr(180),
		Oz:       floatPtr(5.3),
		Cm:       floatPtr(150),
		Inch:     floatPtr(59),
		Quantity: intPtr(25),
		Um:       "m",
		Currency: "USD",
		Css:      "#ffffff",

		Title:         "Cotton Twill",
		Description:   "Vải cotton twill",
		Keywords:      "cotton,twill",
		OgTitle:       "Cotton Twill",
		OgDescription: "Vải cotton twill",
		OgURL:         "https://shop.example.com/cotton-twill",

		Sku:               "SKU-001",
		Slug:              "cotton-twill",
		PurchasePrice:     floatPtr(10),
		SalesPrice:        floatPtr(15),
		LocationCode:      "A1",
		ProductIdentifier: "FAB-001",
	}
}

func TestCreateInputAcceptsZeroNumerics(t *testing.T) {
	global.InitValidator()

	// Giá trị 0 là hợp lệ cho mọi trường số bắt buộc
	// (vd: quantity=0 khi hết hàng)
	input := validCreateInput()
	input.Gsm = floatPtr(0)
	input.Oz = floatPtr(0)
	input.Cm = floatPtr(0)
	input.Inch = floatPtr(0)
	input.Quantity = intPtr(0)
	input.PurchasePrice = floatPtr(0)
	input.SalesPrice = floatPtr(0)

	if err := global.Validate.Struct(&input); err != nil {
		t.Errorf("input với các trường số bằng 0 phải hợp lệ, lỗi: %v", err)
	}
}

func TestCreateInputRejectsMissingNumerics(t *testing.T) {
	global.InitValidator()

	input := validCreateInput()
	input.Quantity = nil
	if err := global.Validate.Struct(&input); err == nil {
		t.Error("thiếu quantity phải bị từ chối")
	}

	input = validCreateInput()
	input.SalesPrice = nil
	if err := global.Validate.Struct(&input); err == nil {
		t.Error("thiếu salesPrice phải bị từ chối")
	}
}

func TestCreateInputRejectsNegativeNumerics(t *testing.T) {
	global.InitValidator()

	input := validCreateInput()
	input.Quantity = intPtr(-1)
	if err := global.Validate.Struct(&input); err == nil {
		t.Error("quantity âm phải bị từ chối")
	}

	input = validCreateInput()
	input.Gsm = floatPtr(-5)
	if err := global.Validate.Struct(&input); err == nil {
		t.Error("gsm âm phải bị từ chối")
	}
}

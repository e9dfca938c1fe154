package basehdl

import (
	"fmt"
	"strconv"

	"github.com/amritage/fabric-shop-backend/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseIDParam đọc và validate một ObjectID từ URL params
func ParseIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id := c.Params(name)
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Tham số '%s' không được để trống trong URL", name),
			common.StatusBadRequest,
			nil,
		)
	}
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.ErrInvalidFormat
	}
	return objID, nil
}

// ParseFloatParam đọc một giá trị số thực từ URL params (dùng cho lọc theo khoảng)
func ParseFloatParam(c fiber.Ctx, name string) (float64, error) {
	raw := c.Params(name)
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Giá trị '%s' không phải là số hợp lệ", raw),
			common.StatusBadRequest,
			err,
		)
	}
	return value, nil
}

// ParsePagination đọc page và limit từ query string với giá trị mặc định an toàn
func ParsePagination(c fiber.Ctx) (page, limit int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err = strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}
	return page, limit
}

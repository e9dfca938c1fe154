// Package basehdl cung cấp các tiện ích chung cho handler: chuẩn hóa response
// và wrapper bắt panic. Mọi handler của catalog đều trả response qua package này
// để giữ format thống nhất.
package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/amritage/fabric-shop-backend/internal/common"
	"github.com/amritage/fabric-shop-backend/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleResponse chuẩn hóa response trả về cho client.
// Thành công: {"status": 1, "data": ...}
// Lỗi: HTTP status theo lỗi, body {"status": 0, "error": "..."} kèm các chi tiết
// bổ sung từ Error.Details (ví dụ inUse, productCount khi chặn xóa facet).
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			body := fiber.Map{
				"status": 0,
				"error":  customErr.Message,
			}
			if details, ok := customErr.Details.(map[string]interface{}); ok {
				for k, v := range details {
					body[k] = v
				}
			}
			return JSONResponse(c, customErr.StatusCode, body)
		}
		return JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"status": 0,
			"error":  err.Error(),
		})
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"status": 1,
		"data":   data,
	})
}

// SafeHandlerWrapper bọc handler với recover để bắt panic.
// Đảm bảo server luôn trả về response cho client kể cả khi có panic xảy ra.
func SafeHandlerWrapper(c fiber.Ctx, fn func() error) error {
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				logger.GetErrorLogger().
					WithField("path", c.Path()).
					WithField("stack", string(debug.Stack())).
					Errorf("Panic trong handler: %v", r)
				err = HandleResponse(c, nil, common.NewError(
					common.ErrCodeInternalServer,
					fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
					common.StatusInternalServerError,
					nil,
				))
			}
		}()
		err = fn()
	}()
	return err
}

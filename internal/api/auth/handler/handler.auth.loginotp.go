// Package authhdl - handler đăng nhập OTP.
package authhdl

import (
	"fmt"

	authdto "github.com/amritage/fabric-shop-backend/internal/api/auth/dto"
	authsvc "github.com/amritage/fabric-shop-backend/internal/api/auth/service"
	basehdl "github.com/amritage/fabric-shop-backend/internal/api/base/handler"
	"github.com/amritage/fabric-shop-backend/internal/common"
	"github.com/amritage/fabric-shop-backend/internal/global"

	"github.com/gofiber/fiber/v3"
)

// LoginOtpHandler xử lý hai bước của OTP Login Gate
type LoginOtpHandler struct {
	OtpService *authsvc.OtpService
}

// NewLoginOtpHandler tạo LoginOtpHandler mới
func NewLoginOtpHandler(otpSvc *authsvc.OtpService) *LoginOtpHandler {
	return &LoginOtpHandler{OtpService: otpSvc}
}

// bindAndValidate parse body và chạy validator
func bindAndValidate(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().Body(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Dữ liệu không hợp lệ: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	return nil
}

// HandleRequestOtp xử lý POST /loginotp/request
func (h *LoginOtpHandler) HandleRequestOtp(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input authdto.RequestOtpInput
		if err := bindAndValidate(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		if err := h.OtpService.Request(c.Context(), input.Email); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		return basehdl.HandleResponse(c, fiber.Map{"message": "Đã gửi mã OTP qua email"}, nil)
	})
}

// HandleVerifyOtp xử lý POST /loginotp/verify
func (h *LoginOtpHandler) HandleVerifyOtp(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input authdto.VerifyOtpInput
		if err := bindAndValidate(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		result, err := h.OtpService.Verify(c.Context(), input.Email, input.Otp)
		return basehdl.HandleResponse(c, result, err)
	})
}

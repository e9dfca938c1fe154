// Package router đăng ký các route thuộc domain auth: đăng nhập OTP.
package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "github.com/amritage/fabric-shop-backend/internal/api/auth/handler"
	authsvc "github.com/amritage/fabric-shop-backend/internal/api/auth/service"
	apirouter "github.com/amritage/fabric-shop-backend/internal/api/router"
)

// Register trả về hàm đăng ký route auth. OtpService được khởi tạo lúc boot
// với allow-list và mailer đã cấu hình.
func Register(otpSvc *authsvc.OtpService) apirouter.RegisterFunc {
	return func(api fiber.Router, r *apirouter.Router) error {
		h := authhdl.NewLoginOtpHandler(otpSvc)

		apirouter.RegisterRouteWithMiddleware(api, "/loginotp", "POST", "/request", nil, h.HandleRequestOtp)
		apirouter.RegisterRouteWithMiddleware(api, "/loginotp", "POST", "/verify", nil, h.HandleVerifyOtp)

		return nil
	}
}

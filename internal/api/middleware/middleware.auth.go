// Package middleware chứa các middleware xác thực JWT cho Fiber.
package middleware

import (
	"strings"

	authsvc "github.com/amritage/fabric-shop-backend/internal/api/auth/service"
	basehdl "github.com/amritage/fabric-shop-backend/internal/api/base/handler"
	"github.com/amritage/fabric-shop-backend/internal/common"
	"github.com/amritage/fabric-shop-backend/internal/global"

	"github.com/gofiber/fiber/v3"
)

// bearerToken tách token từ header Authorization dạng "Bearer <token>"
func bearerToken(c fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AuthMiddleware yêu cầu JWT hợp lệ, từ chối request khi thiếu hoặc sai token
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		}

		claims, err := authsvc.VerifyToken(token, global.MongoDB_ServerConfig.JwtSecret)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		c.Locals("user_email", claims.Email)
		return c.Next()
	}
}

// OptionalAuthMiddleware gắn thông tin user khi có token hợp lệ.
// Token thiếu hoặc không hợp lệ đều bị bỏ qua, request tiếp tục ở trạng thái
// chưa xác thực.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := bearerToken(c)
		if token != "" {
			if claims, err := authsvc.VerifyToken(token, global.MongoDB_ServerConfig.JwtSecret); err == nil {
				c.Locals("user_email", claims.Email)
			}
		}
		return c.Next()
	}
}

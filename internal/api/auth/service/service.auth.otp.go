package authsvc

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	authmodels "github.com/amritage/fabric-shop-backend/internal/api/auth/models"
	basesvc "github.com/amritage/fabric-shop-backend/internal/api/base/service"
	"github.com/amritage/fabric-shop-backend/internal/common"
	"github.com/amritage/fabric-shop-backend/internal/delivery/channels"
	"github.com/amritage/fabric-shop-backend/internal/global"
	"github.com/amritage/fabric-shop-backend/internal/logger"
	"github.com/amritage/fabric-shop-backend/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// VerifyResult là kết quả verify OTP thành công
type VerifyResult struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// OtpService quản lý vòng đời OTP đăng nhập.
// Allow-list được parse một lần từ cấu hình lúc khởi tạo và inject vào đây,
// không đọc lại env mỗi request.
type OtpService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.LoginOtp]
	allowed   map[string]struct{}
	mailer    *channels.EmailSender
	jwtSecret string
}

// ParseAllowList tách danh sách email được phép từ chuỗi cấu hình
// (phân cách dấu phẩy, trim, lowercase, bỏ phần tử rỗng)
func ParseAllowList(raw string) []string {
	parts := strings.Split(raw, ",")
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		email := strings.ToLower(strings.TrimSpace(p))
		if email != "" {
			emails = append(emails, email)
		}
	}
	return emails
}

// NewOtpService tạo OtpService từ allow-list đã parse, mailer và JWT secret
func NewOtpService(allowEmails []string, mailer *channels.EmailSender, jwtSecret string) (*OtpService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.LoginOtps)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.LoginOtps, common.ErrNotFound)
	}

	allowed := make(map[string]struct{}, len(allowEmails))
	for _, email := range allowEmails {
		allowed[strings.ToLower(strings.TrimSpace(email))] = struct{}{}
	}

	return &OtpService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.LoginOtp](coll),
		allowed:              allowed,
		mailer:               mailer,
		jwtSecret:            jwtSecret,
	}, nil
}

// IsAllowed kiểm tra email có trong allow-list hay không
func (s *OtpService) IsAllowed(email string) bool {
	_, ok := s.allowed[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

// GenerateOtp sinh mã OTP 6 chữ số trong khoảng 100000..999999
func GenerateOtp() string {
	return fmt.Sprintf("%d", 100000+rand.Intn(900000))
}

// Request sinh và gửi OTP cho một email trong allow-list.
// Email ngoài allow-list -> 403, không tạo bản ghi. Bản ghi được lưu TRƯỚC
// khi gửi mail; lỗi gửi mail trả về 500 nhưng không xóa bản ghi đã lưu.
func (s *OtpService) Request(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := utility.ValidateEmail(email); err != nil {
		return common.NewError(
			common.ErrCodeValidationInput,
			"Email không đúng định dạng",
			common.StatusBadRequest,
			nil,
		)
	}
	if !s.IsAllowed(email) {
		return common.ErrEmailNotAllowed
	}

	otp := GenerateOtp()
	if _, err := s.InsertOne(ctx, authmodels.LoginOtp{Email: email, Otp: otp}); err != nil {
		return err
	}

	if err := s.mailer.SendOtpEmail(ctx, email, otp); err != nil {
		logger.WithModule("auth").WithError(err).Error("Không thể gửi email OTP")
		return common.NewError(
			common.ErrCodeBusinessOperation,
			"Không thể gửi email OTP",
			common.StatusInternalServerError,
			err,
		)
	}
	return nil
}

// Verify so khớp chính xác cặp (email, otp).
// Không khớp -> 403, state giữ nguyên. Khớp -> xóa TẤT CẢ bản ghi OTP của
// email đó rồi phát hành JWT. Không kiểm tra tuổi của OTP tại bước này.
func (s *OtpService) Verify(ctx context.Context, email, otp string) (*VerifyResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !s.IsAllowed(email) {
		return nil, common.ErrEmailNotAllowed
	}

	_, err := s.FindOne(ctx, bson.M{"email": email, "otp": otp}, nil)
	if err != nil {
		return nil, common.ErrInvalidOtp
	}

	if _, err := s.DeleteMany(ctx, bson.M{"email": email}); err != nil {
		return nil, err
	}

	token, err := GenerateToken(email, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	return &VerifyResult{Email: email, Token: token}, nil
}

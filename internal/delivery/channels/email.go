// Package channels chứa các kênh gửi thông báo ra ngoài hệ thống.
package channels

import (
	"context"
	"fmt"

	"github.com/amritage/fabric-shop-backend/config"

	"gopkg.in/gomail.v2"
)

// EmailSender gửi email qua SMTP với cấu hình từ Configuration
type EmailSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewEmailSender tạo EmailSender từ cấu hình server
func NewEmailSender(cfg *config.Configuration) *EmailSender {
	return &EmailSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
	}
}

// SendOtpEmail gửi email chứa mã OTP đăng nhập cho người dùng
func (s *EmailSender) SendOtpEmail(ctx context.Context, recipient string, otp string) error {
	htmlContent := fmt.Sprintf(`
		<div style="font-family:Arial,sans-serif;max-width:480px;margin:0 auto;">
			<h2 style="color:#333;">Mã đăng nhập của bạn</h2>
			<p>Sử dụng mã dưới đây để đăng nhập vào hệ thống quản trị:</p>
			<p style="font-size:32px;font-weight:bold;letter-spacing:8px;color:#007bff;">%s</p>
			<p style="color:#888;font-size:12px;">Nếu bạn không yêu cầu mã này, hãy bỏ qua email.</p>
		</div>`, otp)

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", "Mã OTP đăng nhập")
	msg.SetBody("text/html", htmlContent)

	dialer := gomail.NewDialer(s.host, s.port, s.username, s.password)

	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

package notifications

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/karthikc1125/simple-login/domain"
)

// SMTPMailerImpl implements domain.Mailer over plain SMTP
type SMTPMailerImpl struct {
	host   string
	port   int
	user   string
	pass   string
	from   string
	logger *zap.Logger
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(host string, port int, user, pass, from string, logger *zap.Logger) domain.Mailer {
	if from == "" {
		from = "no-reply@cityinfo.local"
	}
	return &SMTPMailerImpl{
		host:   host,
		port:   port,
		user:   user,
		pass:   pass,
		from:   from,
		logger: logger,
	}
}

// SendOTP implements domain.Mailer
func (m *SMTPMailerImpl) SendOTP(ctx context.Context, email, code string) error {
	// If SMTP is not configured, log instead of sending
	if m.host == "" || m.user == "" {
		m.logger.Info("mock email: otp delivery",
			zap.String("to", email),
			zap.String("code", code))
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Password Reset OTP\r\n\r\n"+
		"Your OTP for password reset is: %s. It expires in 10 minutes.\r\n",
		m.from, email, code)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := smtp.SendMail(addr, auth, m.from, []string{email}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}

	m.logger.Info("otp email sent", zap.String("to", email))
	return nil
}

package mailer

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/GenKoKo/culture-quest/pkg/config"
	"github.com/GenKoKo/culture-quest/pkg/logger"
)

// Sender delivers account emails. Delivery is fire-and-forget; a failed send
// never fails the request that triggered it.
type Sender interface {
	SendVerificationCode(email, code string) error
	SendVerified(email string) error
}

// FromConfig returns an SMTP sender when credentials are configured, and a
// log-only sender otherwise.
func FromConfig(cfg config.SMTP) Sender {
	if cfg.Host == "" || cfg.Username == "" {
		return LogSender{}
	}
	return &SMTPSender{cfg: cfg}
}

// LogSender logs the code instead of sending mail; used in development.
type LogSender struct{}

func (LogSender) SendVerificationCode(email, code string) error {
	logger.Info("email sending disabled, verification code logged",
		zap.String("email", email),
		zap.String("code", code),
	)
	return nil
}

func (LogSender) SendVerified(email string) error {
	logger.Info("email sending disabled, verification success",
		zap.String("email", email),
	)
	return nil
}

// SMTPSender sends account mail over plain SMTP with auth.
type SMTPSender struct {
	cfg config.SMTP
}

func (s *SMTPSender) SendVerificationCode(email, code string) error {
	subject := "Verify Your Email Address for Culture Quest"
	body := fmt.Sprintf("Your verification code is: %s\r\n", code)
	return s.send(email, subject, body)
}

func (s *SMTPSender) SendVerified(email string) error {
	subject := "Email Verification Successful - Culture Quest"
	body := "Your email address has been successfully verified. Welcome to Culture Quest!\r\n"
	return s.send(email, subject, body)
}

func (s *SMTPSender) send(to, subject, body string) error {
	addr := s.cfg.Host + ":" + s.cfg.Port
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", s.cfg.From, to, subject, body))

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		logger.Error("failed to send email",
			zap.String("to", to),
			zap.Error(err),
		)
		return err
	}
	return nil
}

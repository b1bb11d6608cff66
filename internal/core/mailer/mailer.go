package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"car-rental-backend/internal/core/config"
)

// Mailer 验证码/确认邮件。SMTP 未配置时降级为空操作，
// 调用方把发送失败当 warning 记日志，不向上抛
type Mailer struct {
	cfg    config.SMTP
	dialer *gomail.Dialer
	log    *zap.Logger
}

func New(cfg config.SMTP, log *zap.Logger) *Mailer {
	m := &Mailer{cfg: cfg, log: log}
	if cfg.Host != "" {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return m
}

func (m *Mailer) send(to, subject, body string) error {
	if m.dialer == nil {
		m.log.Debug("mailer disabled, skipping", zap.String("to", to), zap.String("subject", subject))
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

func (m *Mailer) SendVerificationCode(email, firstName, code string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour verification code is: %s\n", firstName, code)
	return m.send(email, "Verify your account", body)
}

func (m *Mailer) SendVerified(email, firstName string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour account has been verified. Welcome aboard!\n", firstName)
	return m.send(email, "Account verified", body)
}

package mailer

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/translationbridge/request-service/internal/config"
	"github.com/translationbridge/request-service/internal/domain"
)

// sendTimeout bounds one SMTP send so a slow mail transport cannot
// stall the request that triggered it.
const sendTimeout = 5 * time.Second

// SMTPSender delivers transactional emails over SMTP. It implements
// domain.Notifier: any transport failure comes back as a NotifyError
// for the caller to downgrade to a warning.
type SMTPSender struct {
	pool *email.Pool
	from string
}

func NewSMTPSender(cfg *config.SMTP) (*SMTPSender, error) {
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	pool, err := email.NewPool(addr, 4, auth)
	if err != nil {
		return nil, fmt.Errorf("failed to init smtp pool: %w", err)
	}
	return &SMTPSender{pool: pool, from: cfg.From}, nil
}

func (s *SMTPSender) Send(to, subject, body string) error {
	msg := email.NewEmail()
	msg.From = s.from
	msg.To = []string{to}
	msg.Subject = subject
	msg.Text = []byte(body)
	if err := s.pool.Send(msg, sendTimeout); err != nil {
		return domain.NewNotifyError(err)
	}
	return nil
}

package mailer

import (
	"context"
	"fmt"
	"strings"
)

// LogSender пишет письма в лог вместо отправки (локальная разработка)
type LogSender struct {
	logger Logger
}

// NewLogSender создает отправителя в лог
func NewLogSender(logger Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, email Email) error {
	if strings.TrimSpace(email.To) == "" {
		return fmt.Errorf("%w: empty recipient", ErrInvalidMessage)
	}
	s.logger.Info("Mailer: email to=%s subject=%q", email.To, email.Subject)
	return nil
}

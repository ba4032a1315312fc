package mailer

import (
	"context"
	"errors"
)

var (
	// ErrInvalidMessage возвращается при некорректном адресе или пустой теме
	ErrInvalidMessage = errors.New("mailer: invalid message")

	// ErrSend возвращается при ошибке отправки письма
	ErrSend = errors.New("mailer: failed to send email")
)

// Email письмо
type Email struct {
	To      string
	Subject string
	Body    string
	HTML    bool
}

// Sender стратегия отправки писем
type Sender interface {
	Send(ctx context.Context, email Email) error
}

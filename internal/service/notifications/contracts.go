package notifications

import (
	"context"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/infra/events"
	"github.com/m04kA/TableBookingService/internal/infra/mailer"
)

// NotificationRepository интерфейс хранилища уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	UpdateStatus(ctx context.Context, id int64, status domain.NotificationStatus, at time.Time) error
}

// Cache интерфейс кеша настроек получателей
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// EmailSender интерфейс отправки писем
type EmailSender interface {
	Send(ctx context.Context, email mailer.Email) error
}

// EventPublisher интерфейс публикации realtime-событий
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Metrics счётчики отправки
type Metrics interface {
	IncNotification(channel, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

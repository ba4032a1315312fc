package auto_cancel_overdue

import (
	"context"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/infra/events"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListConfirmedUpTo(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	MarkNoShowBulk(ctx context.Context, ids []int64, at time.Time) ([]*domain.Booking, error)
	AddHistory(ctx context.Context, entry *domain.BookingHistory) error
}

// CustomerService интерфейс пересчёта статистики клиента
type CustomerService interface {
	UpdateStats(ctx context.Context, customerID int64) (*domain.Customer, error)
}

// TimelineRecorder интерфейс записи истории клиента
type TimelineRecorder interface {
	Record(ctx context.Context, entry timeline.Entry) error
}

// ReminderCanceller интерфейс отмены напоминаний
type ReminderCanceller interface {
	CancelReminders(bookingID int64)
}

// EventPublisher интерфейс публикации realtime-событий
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	AddSweepNoShows(n int)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

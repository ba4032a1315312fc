package automation

import (
	"context"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/infra/events"
	"github.com/m04kA/TableBookingService/internal/infra/scheduler"
	"github.com/m04kA/TableBookingService/internal/service/availability"
	"github.com/m04kA/TableBookingService/internal/service/notifications"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// Calendar интерфейс подбора столов
type Calendar interface {
	GetAvailableTables(ctx context.Context, branchID int64, date time.Time, t types.TimeString, partySize int) ([]*domain.Table, error)
	CountActiveTables(ctx context.Context, branchID int64) (int, error)
}

// AvailabilityChecker интерфейс проверки доступности
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, q availability.Query) (bool, error)
}

// WaitlistRepository интерфейс репозитория листа ожидания
type WaitlistRepository interface {
	Create(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error)
	PromoteNext(ctx context.Context, branchID int64, date time.Time, at types.TimeString, now time.Time) (*domain.WaitlistEntry, error)
}

// CustomerRepository интерфейс чтения клиента
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// TimelineRecorder интерфейс записи истории клиента
type TimelineRecorder interface {
	Record(ctx context.Context, entry timeline.Entry) error
}

// Notifier интерфейс отправки уведомлений
type Notifier interface {
	Send(ctx context.Context, msg notifications.Message) (domain.Delivery, error)
}

// Scheduler интерфейс отменяемых таймеров
type Scheduler interface {
	ScheduleOnce(key string, runAt time.Time, task scheduler.Task, tags ...string) error
	CancelByTag(tag string)
}

// EventPublisher интерфейс публикации realtime-событий
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

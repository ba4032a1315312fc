package bookings

import (
	"context"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/TableBookingService/internal/infra/storage/booking"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) (*domain.BookingsPage, error)
	GetUpcoming(ctx context.Context, branchID int64, from time.Time, limit int) ([]*domain.Booking, error)
	TransitionStatus(ctx context.Context, id int64, change bookingRepo.StatusChange) error
	AddHistory(ctx context.Context, entry *domain.BookingHistory) error
	ListHistory(ctx context.Context, bookingID int64) ([]*domain.BookingHistory, error)
}

// CustomerService интерфейс сервиса клиентов
type CustomerService interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	UpdateStats(ctx context.Context, customerID int64) (*domain.Customer, error)
}

// LoyaltyService интерфейс программы лояльности
type LoyaltyService interface {
	AwardPoints(ctx context.Context, customerID int64, base int, bookingID *int64, reason string) (int, error)
	AdjustTier(ctx context.Context, customerID int64) (domain.LoyaltyTier, error)
}

// TimelineRecorder интерфейс записи истории клиента
type TimelineRecorder interface {
	Record(ctx context.Context, entry timeline.Entry) error
}

// Automation интерфейс напоминаний и листа ожидания
type Automation interface {
	ScheduleReminders(ctx context.Context, booking *domain.Booking) error
	CancelReminders(bookingID int64)
	PromoteWaitlist(ctx context.Context, branchID int64, date time.Time, t types.TimeString) (*domain.WaitlistEntry, error)
}

// EmailNotifier интерфейс отправки писем
type EmailNotifier interface {
	SendEmail(ctx context.Context, to, subject, body string)
}

// PermissionChecker интерфейс проверки прав
type PermissionChecker interface {
	AssertAllowed(actor domain.Actor, resource permission.Resource, action permission.Action, branchID *int64) error
	AccessibleBranches(actor domain.Actor) []int64
}

// EventPublisher интерфейс публикации realtime-событий
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчики переходов
type Metrics interface {
	IncTransition(status string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

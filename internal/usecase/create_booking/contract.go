package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/TableBookingService/internal/infra/storage/booking"
	"github.com/m04kA/TableBookingService/internal/service/automation"
	"github.com/m04kA/TableBookingService/internal/service/availability"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	LockBranchDate(ctx context.Context, branchID int64, date time.Time) error
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	TransitionStatus(ctx context.Context, id int64, change bookingRepo.StatusChange) error
	AddHistory(ctx context.Context, entry *domain.BookingHistory) error
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
}

// Calendar интерфейс календаря филиала
type Calendar interface {
	IsOpen(ctx context.Context, branchID int64, date time.Time, t types.TimeString) (bool, error)
	GetAvailableTables(ctx context.Context, branchID int64, date time.Time, t types.TimeString, partySize int) ([]*domain.Table, error)
}

// AvailabilityChecker интерфейс проверки пересечений
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, q availability.Query) (bool, error)
}

// CustomerService интерфейс сервиса клиентов
type CustomerService interface {
	ResolveOrCreate(ctx context.Context, ref *domain.CustomerRef) (*domain.Customer, error)
	UpdateStats(ctx context.Context, customerID int64) (*domain.Customer, error)
	CalculateTier(ctx context.Context, customerID int64) (domain.CustomerTier, error)
}

// LoyaltyService интерфейс программы лояльности
type LoyaltyService interface {
	EnsureAccount(ctx context.Context, customerID int64) (*domain.LoyaltyAccount, error)
}

// Automation интерфейс автоподтверждения, листа ожидания и напоминаний
type Automation interface {
	ShouldAutoConfirm(ctx context.Context, in automation.ConfirmInput) (bool, error)
	SuggestAlternativeSlots(ctx context.Context, branchID int64, date time.Time, t types.TimeString, partySize int) ([]types.TimeString, error)
	AddToWaitlist(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error)
	ScheduleReminders(ctx context.Context, booking *domain.Booking) error
}

// CodeGenerator интерфейс генератора кодов брони
type CodeGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// TimelineRecorder интерфейс записи истории клиента
type TimelineRecorder interface {
	Record(ctx context.Context, entry timeline.Entry) error
}

// EmailNotifier интерфейс отправки писем
type EmailNotifier interface {
	SendEmail(ctx context.Context, to, subject, body string)
}

// PermissionChecker интерфейс проверки прав
type PermissionChecker interface {
	AssertAllowed(actor domain.Actor, resource permission.Resource, action permission.Action, branchID *int64) error
}

// Locker быстрая блокировка (branch, date) до открытия транзакции
type Locker interface {
	AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
}

// EventPublisher интерфейс публикации realtime-событий
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Metrics счётчики результатов создания
type Metrics interface {
	IncBookingOutcome(outcome string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// HoursRepository интерфейс репозитория часов работы
type HoursRepository interface {
	// GetOperatingHours часы работы на день недели (0 - воскресенье)
	GetOperatingHours(ctx context.Context, branchID int64, dayOfWeek int) (*domain.OperatingHour, error)
}

// Calendar интерфейс календаря филиала
type Calendar interface {
	IsOpen(ctx context.Context, branchID int64, date time.Time, t types.TimeString) (bool, error)
	GetAvailableTables(ctx context.Context, branchID int64, date time.Time, t types.TimeString, partySize int) ([]*domain.Table, error)
}

// AlternativeSuggester интерфейс подбора альтернативного времени
type AlternativeSuggester interface {
	SuggestAlternativeSlots(ctx context.Context, branchID int64, date time.Time, t types.TimeString, partySize int) ([]types.TimeString, error)
}

// PermissionChecker интерфейс проверки прав
type PermissionChecker interface {
	AssertAllowed(actor domain.Actor, resource permission.Resource, action permission.Action, branchID *int64) error
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

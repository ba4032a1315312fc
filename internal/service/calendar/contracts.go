package calendar

import (
	"context"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/availability"
)

// BranchRepository интерфейс репозитория часов работы
type BranchRepository interface {
	GetOperatingHours(ctx context.Context, branchID int64, dayOfWeek int) (*domain.OperatingHour, error)
}

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	ListFitting(ctx context.Context, branchID int64, partySize int) ([]*domain.Table, error)
}

// AvailabilityChecker интерфейс проверки доступности
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, q availability.Query) (bool, error)
}

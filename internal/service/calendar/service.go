package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	branchRepo "github.com/m04kA/TableBookingService/internal/infra/storage/branch"
	"github.com/m04kA/TableBookingService/internal/service/availability"
	"github.com/m04kA/TableBookingService/pkg/ptr"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// Service часы работы филиала и подбор свободных столов
type Service struct {
	branchRepo   BranchRepository
	tableRepo    TableRepository
	availability AvailabilityChecker
	duration     int
}

// NewService создает сервис календаря
func NewService(branchRepo BranchRepository, tableRepo TableRepository, availability AvailabilityChecker, defaultDuration int) *Service {
	if defaultDuration <= 0 {
		defaultDuration = domain.DefaultDurationMinutes
	}
	return &Service{
		branchRepo:   branchRepo,
		tableRepo:    tableRepo,
		availability: availability,
		duration:     defaultDuration,
	}
}

// IsOpen филиал открыт в дату date во время t
// Отсутствие часов работы на день недели означает "закрыто"
func (s *Service) IsOpen(ctx context.Context, branchID int64, date time.Time, t types.TimeString) (bool, error) {
	hours, err := s.branchRepo.GetOperatingHours(ctx, branchID, int(date.Weekday()))
	if err != nil {
		if errors.Is(err, branchRepo.ErrOperatingHoursNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: IsOpen - get operating hours: %w", ErrInternal, err)
	}

	return hours.IsOpenAt(t), nil
}

// GetAvailableTables активные столы, вмещающие компанию и свободные в это время,
// от меньшего к большему
func (s *Service) GetAvailableTables(ctx context.Context, branchID int64, date time.Time, t types.TimeString, partySize int) ([]*domain.Table, error) {
	tables, err := s.tableRepo.ListFitting(ctx, branchID, partySize)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailableTables - list tables: %w", ErrInternal, err)
	}

	available := make([]*domain.Table, 0, len(tables))
	for _, table := range tables {
		free, err := s.availability.CheckAvailability(ctx, availability.Query{
			BranchID:        branchID,
			TableID:         ptr.Ptr(table.ID),
			Date:            date,
			Time:            t,
			DurationMinutes: s.duration,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: GetAvailableTables - check table id=%d: %w", ErrInternal, table.ID, err)
		}
		if free {
			available = append(available, table)
		}
	}

	return available, nil
}

// CountActiveTables количество активных столов филиала
func (s *Service) CountActiveTables(ctx context.Context, branchID int64) (int, error) {
	tables, err := s.tableRepo.ListFitting(ctx, branchID, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveTables - list tables: %w", ErrInternal, err)
	}
	return len(tables), nil
}

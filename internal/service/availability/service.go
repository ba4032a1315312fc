package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	bookingRepo "github.com/m04kA/TableBookingService/internal/infra/storage/booking"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// Query проверяемый интервал
type Query struct {
	BranchID         int64
	TableID          *int64 // nil - проверка по всему залу
	Date             time.Time
	Time             types.TimeString
	DurationMinutes  int    // <= 0 - длительность по умолчанию
	ExcludeBookingID *int64 // бронь, которая переносится
}

// Service проверка пересечений с бронями и блокировками
type Service struct {
	bookingRepo     BookingRepository
	blockedRepo     BlockedSlotRepository
	defaultDuration int
}

// NewService создает сервис проверки доступности
func NewService(bookingRepo BookingRepository, blockedRepo BlockedSlotRepository, defaultDuration int) *Service {
	if defaultDuration <= 0 {
		defaultDuration = domain.DefaultDurationMinutes
	}
	return &Service{
		bookingRepo:     bookingRepo,
		blockedRepo:     blockedRepo,
		defaultDuration: defaultDuration,
	}
}

// CheckAvailability true, если интервал [time, time+duration) не пересекается
// ни с одной занимающей бронью (стола или зала) и ни с одной блокировкой филиала
func (s *Service) CheckAvailability(ctx context.Context, q Query) (bool, error) {
	duration := q.DurationMinutes
	if duration <= 0 {
		duration = s.defaultDuration
	}

	candidate, err := domain.NewInterval(q.Date, q.Time, duration)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	// 1. Брони
	bookings, err := s.bookingRepo.GetOccupying(ctx, bookingRepo.OccupancyFilter{
		BranchID:  q.BranchID,
		Date:      q.Date,
		TableID:   q.TableID,
		ExcludeID: q.ExcludeBookingID,
	})
	if err != nil {
		return false, fmt.Errorf("%w: CheckAvailability - get bookings: %w", ErrInternal, err)
	}

	for _, b := range bookings {
		if q.ExcludeBookingID != nil && b.ID == *q.ExcludeBookingID {
			continue
		}
		// Длительность существующей брони по умолчанию равна длительности кандидата
		existing, err := b.Interval(duration)
		if err != nil {
			return false, fmt.Errorf("%w: CheckAvailability - booking id=%d interval: %v", ErrInternal, b.ID, err)
		}
		if existing.Overlaps(candidate) {
			return false, nil
		}
	}

	// 2. Блокировки (для любого стола)
	slots, err := s.blockedRepo.ListBlockedSlots(ctx, q.BranchID, q.Date)
	if err != nil {
		return false, fmt.Errorf("%w: CheckAvailability - get blocked slots: %w", ErrInternal, err)
	}

	for _, slot := range slots {
		blocked, err := slot.Interval()
		if err != nil {
			return false, fmt.Errorf("%w: CheckAvailability - blocked slot id=%d interval: %v", ErrInternal, slot.ID, err)
		}
		if blocked.Overlaps(candidate) {
			return false, nil
		}
	}

	return true, nil
}

package auto_cancel_overdue

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/infra/events"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
)

// Dependencies зависимости use case
type Dependencies struct {
	Bookings  BookingRepository
	Customers CustomerService
	Timeline  TimelineRecorder
	Reminders ReminderCanceller
	Publisher EventPublisher
	Metrics   Metrics
	TxManager TransactionManager
	Logger    Logger
}

// Response итог прохода
type Response struct {
	Candidates int
	NoShowIDs  []int64
}

// UseCase перевод просроченных подтверждённых броней в NO_SHOW
type UseCase struct {
	bookingRepo  BookingRepository
	customers    CustomerService
	timeline     TimelineRecorder
	reminders    ReminderCanceller
	publisher    EventPublisher
	metrics      Metrics
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger

	grace time.Duration
	loc   *time.Location
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(deps Dependencies, graceMinutes int, loc *time.Location) *UseCase {
	if graceMinutes <= 0 {
		graceMinutes = domain.DefaultAutoCancelGraceMinutes
	}
	if loc == nil {
		loc = time.UTC
	}

	return &UseCase{
		bookingRepo:  deps.Bookings,
		customers:    deps.Customers,
		timeline:     deps.Timeline,
		reminders:    deps.Reminders,
		publisher:    deps.Publisher,
		metrics:      deps.Metrics,
		txManager:    deps.TxManager,
		timeProvider: &RealTimeProvider{},
		logger:       deps.Logger,
		grace:        time.Duration(graceMinutes) * time.Minute,
		loc:          loc,
	}
}

// Execute один проход: CONFIRMED брони, чьё начало + grace уже прошло, становятся NO_SHOW.
// Повторный или параллельный проход ничего не меняет повторно
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now().In(uc.loc)

	// 1. Кандидаты: подтверждённые брони до сегодняшнего дня включительно
	confirmed, err := uc.bookingRepo.ListConfirmedUpTo(ctx, domain.DateOnly(now))
	if err != nil {
		uc.logger.Error("AutoCancelOverdue: failed to list confirmed bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list confirmed bookings: %w", ErrInternal, err)
	}

	// 2. Отбираем просроченные
	ids := make([]int64, 0, len(confirmed))
	for _, b := range confirmed {
		startsAt, err := b.StartsAt(uc.loc)
		if err != nil {
			uc.logger.Warn("AutoCancelOverdue: booking id=%d has invalid start: %v", b.ID, err)
			continue
		}
		if startsAt.Add(uc.grace).Before(now) {
			ids = append(ids, b.ID)
		}
	}

	resp := &Response{Candidates: len(ids), NoShowIDs: []int64{}}
	if len(ids) == 0 {
		return resp, nil
	}

	// 3. Одна транзакция: условный массовый UPDATE + история
	var changed []*domain.Booking
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		changed, err = uc.bookingRepo.MarkNoShowBulk(txCtx, ids, now)
		if err != nil {
			return fmt.Errorf("%w: failed to mark no-show: %w", ErrInternal, err)
		}

		notes := fmt.Sprintf("No check-in within %d minutes of start", int(uc.grace.Minutes()))
		oldStatus := domain.StatusConfirmed
		newStatus := domain.StatusNoShow
		for _, b := range changed {
			if err := uc.bookingRepo.AddHistory(txCtx, &domain.BookingHistory{
				BookingID: b.ID,
				Action:    domain.ActionNoShow,
				OldStatus: &oldStatus,
				NewStatus: &newStatus,
				Notes:     &notes,
			}); err != nil {
				return fmt.Errorf("%w: failed to add history for booking id=%d: %w", ErrInternal, b.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("AutoCancelOverdue: sweep failed: %v", err)
		return nil, err
	}

	// 4. Последствия по каждой брони, ошибки не прерывают проход
	for _, b := range changed {
		resp.NoShowIDs = append(resp.NoShowIDs, b.ID)
		uc.reminders.CancelReminders(b.ID)
		uc.afterNoShow(ctx, b, now)
	}

	uc.metrics.AddSweepNoShows(len(changed))
	uc.logger.Info("AutoCancelOverdue: %d of %d overdue bookings marked NO_SHOW", len(changed), len(ids))
	return resp, nil
}

func (uc *UseCase) afterNoShow(ctx context.Context, b *domain.Booking, now time.Time) {
	if b.CustomerID != nil {
		if err := uc.timeline.Record(ctx, timeline.Entry{
			CustomerID:  *b.CustomerID,
			Type:        domain.EventNoShow,
			Description: fmt.Sprintf("Booking %s marked as no-show", b.Code),
			Metadata: map[string]interface{}{
				"booking_id":   b.ID,
				"booking_code": b.Code,
				"auto":         true,
			},
		}); err != nil {
			uc.logger.Error("AutoCancelOverdue: failed to record timeline for booking id=%d: %v", b.ID, err)
		}

		if _, err := uc.customers.UpdateStats(ctx, *b.CustomerID); err != nil {
			uc.logger.Error("AutoCancelOverdue: failed to update stats for customer id=%d: %v", *b.CustomerID, err)
		}
	}

	if err := uc.publisher.Publish(ctx, events.Event{
		Type:      events.BookingStatusChanged,
		BranchID:  b.BranchID,
		BookingID: b.ID,
		Payload: map[string]interface{}{
			"code":   b.Code,
			"status": string(domain.StatusNoShow),
		},
		OccurredAt: now,
	}); err != nil {
		uc.logger.Warn("AutoCancelOverdue: failed to publish event for booking id=%d: %v", b.ID, err)
	}
}

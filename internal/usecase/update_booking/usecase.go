package update_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/TableBookingService/internal/infra/storage/booking"
	tableRepo "github.com/m04kA/TableBookingService/internal/infra/storage/table"
	"github.com/m04kA/TableBookingService/internal/service/availability"
	"github.com/m04kA/TableBookingService/internal/service/bookings/models"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
)

// Dependencies зависимости use case
type Dependencies struct {
	Bookings     BookingRepository
	Tables       TableRepository
	Calendar     Calendar
	Availability AvailabilityChecker
	Timeline     TimelineRecorder
	Reminders    ReminderScheduler
	Permissions  PermissionChecker
	Publisher    EventPublisher
	TxManager    TransactionManager
	Logger       Logger
}

// Settings параметры бронирования
type Settings struct {
	MaxAdvanceDays         int
	DefaultDurationMinutes int
	Location               *time.Location
}

// UseCase use case для изменения бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	tableRepo    TableRepository
	calendar     Calendar
	availability AvailabilityChecker
	timeline     TimelineRecorder
	reminders    ReminderScheduler
	permissions  PermissionChecker
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger

	settings Settings
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(deps Dependencies, settings Settings) *UseCase {
	if settings.MaxAdvanceDays <= 0 {
		settings.MaxAdvanceDays = domain.DefaultMaxAdvanceDays
	}
	if settings.DefaultDurationMinutes <= 0 {
		settings.DefaultDurationMinutes = domain.DefaultDurationMinutes
	}
	if settings.Location == nil {
		settings.Location = time.UTC
	}

	return &UseCase{
		bookingRepo:  deps.Bookings,
		tableRepo:    deps.Tables,
		calendar:     deps.Calendar,
		availability: deps.Availability,
		timeline:     deps.Timeline,
		reminders:    deps.Reminders,
		permissions:  deps.Permissions,
		publisher:    deps.Publisher,
		txManager:    deps.TxManager,
		timeProvider: &RealTimeProvider{},
		logger:       deps.Logger,
		settings:     settings,
	}
}

// Execute выполняет use case изменения бронирования.
// Новое состояние проверяется на пересечения без учёта самой брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking id=%d by user=%d", req.BookingID, req.Actor.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now().In(uc.settings.Location)

	var (
		result      *domain.Booking
		rescheduled bool
	)

	// 2. Изменение в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Текущая бронь (строка блокируется)
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 2.2. Права в филиале брони
		if err := uc.permissions.AssertAllowed(req.Actor, permission.Bookings, permission.Update, &current.BranchID); err != nil {
			return err
		}

		// 2.3. Менять можно только PENDING/CONFIRMED
		if !current.CanBeUpdated() {
			uc.logger.Warn("UpdateBooking: booking id=%d is %s", current.ID, current.Status)
			return ErrNotUpdatable
		}

		// 2.4. Новое состояние
		updated, changes := merge(current, req)
		if len(changes) == 0 {
			return ErrNoChanges
		}
		rescheduled = !updated.BookingDate.Equal(current.BookingDate) || updated.StartTime != current.StartTime
		slotChanged := rescheduled ||
			updated.DurationOr(uc.settings.DefaultDurationMinutes) != current.DurationOr(uc.settings.DefaultDurationMinutes) ||
			!sameTable(updated.TableID, current.TableID)

		// 2.5. Правила даты и часов работы
		if rescheduled {
			if err := validateDate(updated.BookingDate, now, uc.settings.MaxAdvanceDays); err != nil {
				return err
			}
			open, err := uc.calendar.IsOpen(txCtx, updated.BranchID, updated.BookingDate, updated.StartTime)
			if err != nil {
				return fmt.Errorf("%w: failed to check operating hours: %w", ErrInternal, err)
			}
			if !open {
				return ErrBranchClosed
			}
		}

		// 2.6. Стол
		if updated.TableID != nil && (!sameTable(updated.TableID, current.TableID) || updated.PartySize != current.PartySize) {
			if err := uc.checkTable(txCtx, *updated.TableID, updated.BranchID, updated.PartySize); err != nil {
				return err
			}
		}

		// 2.7. Пересечения без учёта самой брони
		if slotChanged {
			if err := uc.bookingRepo.LockBranchDate(txCtx, updated.BranchID, updated.BookingDate); err != nil {
				return fmt.Errorf("%w: failed to lock branch date: %w", ErrInternal, err)
			}

			available, err := uc.availability.CheckAvailability(txCtx, availability.Query{
				BranchID:         updated.BranchID,
				TableID:          updated.TableID,
				Date:             updated.BookingDate,
				Time:             updated.StartTime,
				DurationMinutes:  updated.DurationOr(uc.settings.DefaultDurationMinutes),
				ExcludeBookingID: &updated.ID,
			})
			if err != nil {
				return fmt.Errorf("%w: failed to check availability: %w", ErrInternal, err)
			}
			if !available {
				uc.logger.Warn("UpdateBooking: new slot for booking id=%d is not available", updated.ID)
				return ErrSlotNotAvailable
			}
		}

		// 2.8. Сохраняем
		if err := uc.bookingRepo.Update(txCtx, updated); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}
		updated.UpdatedAt = now

		// 2.9. Журнал и история клиента
		notes := strings.Join(changes, ", ")
		status := updated.Status
		if err := uc.bookingRepo.AddHistory(txCtx, &domain.BookingHistory{
			BookingID: updated.ID,
			Action:    domain.ActionUpdated,
			OldStatus: &status,
			NewStatus: &status,
			ChangedBy: req.Actor.ActorID(),
			Notes:     &notes,
		}); err != nil {
			return fmt.Errorf("%w: failed to add history: %w", ErrInternal, err)
		}

		if updated.CustomerID != nil {
			if err := uc.timeline.Record(txCtx, timeline.Entry{
				CustomerID:  *updated.CustomerID,
				Type:        domain.EventBookingUpdated,
				Description: fmt.Sprintf("Booking %s updated: %s", updated.Code, notes),
				Metadata: map[string]interface{}{
					"booking_id":   updated.ID,
					"booking_code": updated.Code,
					"changes":      changes,
				},
				ActorID: req.Actor.ActorID(),
			}); err != nil {
				return err
			}
		}

		result = updated
		return nil
	})
	if err != nil {
		uc.logger.Warn("UpdateBooking: booking id=%d failed: %v", req.BookingID, err)
		return nil, err
	}

	// 3. Перенос напоминаний для подтверждённой брони
	if rescheduled && result.Status == domain.StatusConfirmed {
		if err := uc.reminders.ScheduleReminders(ctx, result); err != nil {
			uc.logger.Error("UpdateBooking: failed to reschedule reminders for booking id=%d: %v", result.ID, err)
		}
	}

	// 4. Событие
	if err := uc.publisher.Publish(ctx, events.Event{
		Type:      events.BookingUpdated,
		BranchID:  result.BranchID,
		BookingID: result.ID,
		Payload: map[string]interface{}{
			"code":   result.Code,
			"status": string(result.Status),
			"date":   result.BookingDate.Format(domain.DateFormat),
			"time":   result.StartTime.String(),
		},
		OccurredAt: now,
	}); err != nil {
		uc.logger.Warn("UpdateBooking: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	uc.logger.Info("UpdateBooking: booking id=%d updated, rescheduled=%t", result.ID, rescheduled)
	return &Response{
		Booking:     models.FromDomainBooking(result),
		Rescheduled: rescheduled,
	}, nil
}

func (uc *UseCase) checkTable(ctx context.Context, tableID, branchID int64, partySize int) error {
	table, err := uc.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			return ErrTableNotFound
		}
		return fmt.Errorf("%w: failed to get table: %w", ErrInternal, err)
	}
	return validateTable(table, branchID, partySize)
}

// merge применяет запрос к копии брони и возвращает список изменённых полей
func merge(current *domain.Booking, req *Request) (*domain.Booking, []string) {
	updated := *current
	var changes []string

	if req.Date != nil {
		date := domain.DateOnly(*req.Date)
		if !date.Equal(current.BookingDate) {
			updated.BookingDate = date
			changes = append(changes, "date")
		}
	}
	if req.Time != nil && *req.Time != current.StartTime {
		updated.StartTime = *req.Time
		changes = append(changes, "time")
	}
	if req.PartySize != nil && *req.PartySize != current.PartySize {
		updated.PartySize = *req.PartySize
		changes = append(changes, "partySize")
	}
	if req.DurationMinutes != nil && *req.DurationMinutes != current.DurationMinutes {
		updated.DurationMinutes = *req.DurationMinutes
		changes = append(changes, "duration")
	}
	if req.ClearTable && current.TableID != nil {
		updated.TableID = nil
		changes = append(changes, "table")
	}
	if req.TableID != nil && !sameTable(req.TableID, current.TableID) {
		id := *req.TableID
		updated.TableID = &id
		changes = append(changes, "table")
	}
	if req.SpecialRequests != nil {
		updated.SpecialRequests = trimmed(req.SpecialRequests)
		changes = append(changes, "specialRequests")
	}
	if req.InternalNotes != nil {
		updated.InternalNotes = trimmed(req.InternalNotes)
		changes = append(changes, "internalNotes")
	}

	return &updated, changes
}

func sameTable(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// trimmed пустая строка очищает поле
func trimmed(s *string) *string {
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

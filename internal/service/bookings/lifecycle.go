package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/TableBookingService/internal/infra/storage/booking"
	"github.com/m04kA/TableBookingService/internal/service/bookings/models"
	"github.com/m04kA/TableBookingService/internal/service/notifications"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
)

// Confirm PENDING -> CONFIRMED. Повторное подтверждение ничего не меняет
func (s *Service) Confirm(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error) {
	return s.transition(ctx, actor, id, domain.StatusConfirmed, nil)
}

// Cancel PENDING/CONFIRMED -> CANCELLED
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, id int64, reason *string) (*models.BookingResponse, error) {
	return s.transition(ctx, actor, id, domain.StatusCancelled, reason)
}

// MarkNoShow PENDING/CONFIRMED -> NO_SHOW
func (s *Service) MarkNoShow(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error) {
	return s.transition(ctx, actor, id, domain.StatusNoShow, nil)
}

// CheckIn CONFIRMED -> CHECKED_IN
func (s *Service) CheckIn(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error) {
	return s.transition(ctx, actor, id, domain.StatusCheckedIn, nil)
}

// Complete CHECKED_IN -> COMPLETED с начислением баллов лояльности
func (s *Service) Complete(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error) {
	return s.transition(ctx, actor, id, domain.StatusCompleted, nil)
}

// ChangeStatus переход по имени статуса (PATCH /bookings/{id}/status)
func (s *Service) ChangeStatus(ctx context.Context, actor domain.Actor, id int64, req *models.ChangeStatusRequest) (*models.BookingResponse, error) {
	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil || status == domain.StatusPending {
		return nil, ErrInvalidStatus
	}
	return s.transition(ctx, actor, id, status, req.Reason)
}

// transition общий переход статуса: условный UPDATE и журнал в одной транзакции,
// уведомления и таймеры после фиксации
func (s *Service) transition(ctx context.Context, actor domain.Actor, id int64, to domain.BookingStatus, reason *string) (*models.BookingResponse, error) {
	s.logger.Info("ChangeStatus: booking id=%d -> %s by user=%d", id, to, actor.UserID)

	reason = normalizeReason(reason)
	if reason != nil && len([]rune(*reason)) > domain.MaxCancelReasonLength {
		return nil, ErrReasonTooLong
	}

	var (
		booking *domain.Booking
		changed bool
	)

	// 1. Переход в транзакции
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.load(txCtx, id)
		if err != nil {
			return err
		}

		if err := s.permissions.AssertAllowed(actor, permission.Bookings, permission.Update, &booking.BranchID); err != nil {
			return err
		}

		// 1.1. Подтверждение идемпотентно
		if to == domain.StatusConfirmed && booking.Status == domain.StatusConfirmed {
			return nil
		}

		from := booking.Status
		if !domain.CanTransition(from, to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
		}

		// 1.2. Условный UPDATE
		at := s.now()
		change := bookingRepo.StatusChange{
			To:     to,
			From:   []domain.BookingStatus{from},
			At:     at,
			By:     actor.ActorID(),
			Reason: reason,
		}
		if err := s.bookingRepo.TransitionStatus(txCtx, id, change); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
			}
			return fmt.Errorf("%w: TransitionStatus - repository error: %w", ErrInternal, err)
		}
		applyChange(booking, change)

		// 1.3. Журнал
		if err := s.bookingRepo.AddHistory(txCtx, &domain.BookingHistory{
			BookingID: id,
			Action:    domain.HistoryActionFor(to),
			OldStatus: &from,
			NewStatus: &to,
			ChangedBy: actor.ActorID(),
			Notes:     reason,
		}); err != nil {
			return fmt.Errorf("%w: AddHistory - repository error: %w", ErrInternal, err)
		}

		// 1.4. Клиент: история, статистика, лояльность
		if booking.CustomerID != nil {
			if err := s.applyCustomerEffects(txCtx, actor, booking, from, reason); err != nil {
				return err
			}
		}

		changed = true
		return nil
	})
	if err != nil {
		s.logger.Warn("ChangeStatus: booking id=%d -> %s failed: %v", id, to, err)
		return nil, err
	}

	// 2. Побочные эффекты после фиксации
	if changed {
		s.afterCommit(ctx, booking)
	}

	s.logger.Info("ChangeStatus: booking id=%d is %s", id, booking.Status)
	return models.FromDomainBooking(booking), nil
}

func (s *Service) applyCustomerEffects(ctx context.Context, actor domain.Actor, booking *domain.Booking, from domain.BookingStatus, reason *string) error {
	customerID := *booking.CustomerID
	to := booking.Status

	metadata := map[string]interface{}{
		"booking_id":   booking.ID,
		"booking_code": booking.Code,
		"old_status":   string(from),
		"new_status":   string(to),
	}
	if reason != nil {
		metadata["reason"] = *reason
	}

	if err := s.timeline.Record(ctx, timeline.Entry{
		CustomerID:  customerID,
		Type:        domain.TimelineEventFor(to),
		Description: fmt.Sprintf("Booking %s is now %s", booking.Code, to),
		Metadata:    metadata,
		ActorID:     actor.ActorID(),
	}); err != nil {
		return err
	}

	if to == domain.StatusCompleted {
		reasonText := fmt.Sprintf("Booking %s completed", booking.Code)
		if _, err := s.loyalty.AwardPoints(ctx, customerID, domain.CompletionPoints, &booking.ID, reasonText); err != nil {
			return err
		}
	}

	if to == domain.StatusCheckedIn {
		return nil
	}

	if _, err := s.customers.UpdateStats(ctx, customerID); err != nil {
		return err
	}

	if to == domain.StatusCompleted {
		if _, err := s.loyalty.AdjustTier(ctx, customerID); err != nil {
			return err
		}
	}

	return nil
}

// afterCommit таймеры, лист ожидания, письма и события. Ошибки только логируются
func (s *Service) afterCommit(ctx context.Context, booking *domain.Booking) {
	s.metrics.IncTransition(string(booking.Status))

	switch booking.Status {
	case domain.StatusConfirmed:
		if err := s.automation.ScheduleReminders(ctx, booking); err != nil {
			s.logger.Error("ChangeStatus: schedule reminders for booking id=%d: %v", booking.ID, err)
		}
		s.sendConfirmation(ctx, booking)
	case domain.StatusCancelled:
		s.automation.CancelReminders(booking.ID)
		if _, err := s.automation.PromoteWaitlist(ctx, booking.BranchID, booking.BookingDate, booking.StartTime); err != nil {
			s.logger.Error("ChangeStatus: promote waitlist after booking id=%d: %v", booking.ID, err)
		}
	case domain.StatusNoShow:
		s.automation.CancelReminders(booking.ID)
	}

	err := s.publisher.Publish(ctx, events.Event{
		Type:      events.BookingStatusChanged,
		BranchID:  booking.BranchID,
		BookingID: booking.ID,
		Payload: map[string]interface{}{
			"code":   booking.Code,
			"status": string(booking.Status),
		},
		OccurredAt: s.now(),
	})
	if err != nil {
		s.logger.Warn("ChangeStatus: publish event for booking id=%d: %v", booking.ID, err)
	}
}

func (s *Service) sendConfirmation(ctx context.Context, booking *domain.Booking) {
	if booking.CustomerID == nil {
		return
	}

	customer, err := s.customers.GetByID(ctx, *booking.CustomerID)
	if err != nil {
		s.logger.Error("ChangeStatus: get customer=%d for confirmation: %v", *booking.CustomerID, err)
		return
	}
	if !customer.HasEmail() {
		return
	}

	subject, body := notifications.BookingConfirmedEmail(booking, customer.FullName)
	s.notifier.SendEmail(ctx, *customer.Email, subject, body)
}

// applyChange отражает переход в загруженной брони
func applyChange(booking *domain.Booking, change bookingRepo.StatusChange) {
	at := change.At
	booking.Status = change.To
	booking.UpdatedAt = at

	switch change.To {
	case domain.StatusConfirmed:
		booking.ConfirmedAt = &at
	case domain.StatusCheckedIn:
		booking.CheckedInAt = &at
	case domain.StatusCompleted:
		booking.CompletedAt = &at
	case domain.StatusCancelled:
		booking.CancelledAt = &at
		booking.CancelledBy = change.By
		booking.CancellationReason = change.Reason
	}
}

func normalizeReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	v := strings.TrimSpace(*reason)
	if v == "" {
		return nil
	}
	return &v
}

package automation

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/notifications"
)

type reminder struct {
	kind   string
	offset time.Duration
	title  string
	body   string
}

var reminders = []reminder{
	{kind: "24h", offset: -24 * time.Hour, title: "Booking reminder", body: "Your table is booked for tomorrow at %s. Booking code: %s"},
	{kind: "2h", offset: -2 * time.Hour, title: "Booking reminder", body: "See you soon! Your table is booked for today at %s. Booking code: %s"},
	{kind: "thankyou", offset: 3 * time.Hour, title: "Thank you for visiting", body: "Thank you for dining with us at %s. Booking code: %s"},
}

// ReminderKey ключ таймера напоминания
func ReminderKey(bookingID int64, kind string) string {
	return fmt.Sprintf("booking:%d:%s", bookingID, kind)
}

// ReminderTag общий тег таймеров брони
func ReminderTag(bookingID int64) string {
	return fmt.Sprintf("booking:%d", bookingID)
}

// ScheduleReminders ставит напоминания за 24 и 2 часа и благодарность через 3 часа после начала.
// Только для клиентов с email. Повторный вызов заменяет таймеры
func (s *Service) ScheduleReminders(ctx context.Context, booking *domain.Booking) error {
	if booking.CustomerID == nil {
		return nil
	}

	customer, err := s.customers.GetByID(ctx, *booking.CustomerID)
	if err != nil {
		return fmt.Errorf("%w: ScheduleReminders - get customer: %w", ErrInternal, err)
	}
	if !customer.HasEmail() {
		return nil
	}

	startsAt, err := booking.StartsAt(s.loc)
	if err != nil {
		return fmt.Errorf("%w: ScheduleReminders - start time: %v", ErrInternal, err)
	}

	for _, r := range reminders {
		task := s.reminderTask(booking, *customer.Email, r)
		if err := s.scheduler.ScheduleOnce(ReminderKey(booking.ID, r.kind), startsAt.Add(r.offset), task, ReminderTag(booking.ID)); err != nil {
			return fmt.Errorf("%w: ScheduleReminders - %s: %w", ErrInternal, r.kind, err)
		}
	}

	s.logger.Info("ScheduleReminders: booking id=%d starts at %s", booking.ID, startsAt.Format(time.RFC3339))
	return nil
}

// CancelReminders снимает все таймеры брони
func (s *Service) CancelReminders(bookingID int64) {
	s.scheduler.CancelByTag(ReminderTag(bookingID))
}

func (s *Service) reminderTask(booking *domain.Booking, email string, r reminder) func(ctx context.Context) {
	bookingID := booking.ID
	customerID := *booking.CustomerID
	branchID := booking.BranchID
	body := fmt.Sprintf(r.body, booking.StartTime, booking.Code)

	return func(ctx context.Context) {
		_, err := s.notifier.Send(ctx, notifications.Message{
			RecipientType: domain.RecipientCustomer,
			RecipientID:   customerID,
			Channel:       domain.ChannelEmail,
			Title:         r.title,
			Body:          body,
			Data:          map[string]interface{}{"booking_id": bookingID, "kind": r.kind},
			Email:         email,
			BranchID:      branchID,
		})
		if err != nil {
			s.logger.Error("Reminder: booking id=%d kind=%s: %v", bookingID, r.kind, err)
		}
	}
}

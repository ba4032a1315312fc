package automation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/infra/events"
	waitlistRepo "github.com/m04kA/TableBookingService/internal/infra/storage/waitlist"
	"github.com/m04kA/TableBookingService/internal/service/notifications"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// AddToWaitlist ставит запрос в лист ожидания
func (s *Service) AddToWaitlist(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	if entry.BranchID <= 0 || entry.PartySize < domain.MinPartySize || entry.Time.Validate() != nil {
		return nil, ErrInvalidWaitlistEntry
	}

	created, err := s.waitlist.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("%w: AddToWaitlist - create entry: %w", ErrInternal, err)
	}

	if created.CustomerID != nil {
		err := s.timeline.Record(ctx, timeline.Entry{
			CustomerID:  *created.CustomerID,
			Type:        domain.EventWaitlistJoined,
			Description: fmt.Sprintf("Joined waitlist for %s %s", created.Date.Format(domain.DateFormat), created.Time),
			Metadata: map[string]interface{}{
				"waitlist_id": created.ID,
				"branch_id":   created.BranchID,
				"party_size":  created.PartySize,
			},
		})
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info("AddToWaitlist: entry id=%d branch=%d date=%s time=%s",
		created.ID, created.BranchID, created.Date.Format(domain.DateFormat), created.Time)
	return created, nil
}

// PromoteWaitlist уведомляет самую раннюю запись, ожидающую освободившийся слот.
// nil без ошибки - ожидающих нет
func (s *Service) PromoteWaitlist(ctx context.Context, branchID int64, date time.Time, t types.TimeString) (*domain.WaitlistEntry, error) {
	entry, err := s.waitlist.PromoteNext(ctx, branchID, date, t, s.now())
	if err != nil {
		if errors.Is(err, waitlistRepo.ErrEntryNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: PromoteWaitlist - promote: %w", ErrInternal, err)
	}

	s.logger.Info("PromoteWaitlist: entry id=%d promoted for branch=%d date=%s time=%s",
		entry.ID, branchID, date.Format(domain.DateFormat), t)

	if entry.CustomerID != nil {
		s.notifyPromoted(ctx, entry)
	}

	err = s.publisher.Publish(ctx, events.Event{
		Type:     events.WaitlistPromoted,
		BranchID: branchID,
		Payload: map[string]interface{}{
			"waitlist_id": entry.ID,
			"date":        entry.Date.Format(domain.DateFormat),
			"time":        entry.Time.String(),
			"party_size":  entry.PartySize,
		},
		OccurredAt: s.now(),
	})
	if err != nil {
		s.logger.Warn("PromoteWaitlist: failed to publish event: %v", err)
	}

	return entry, nil
}

// notifyPromoted история и уведомления клиенту. Ошибки только логируются:
// запись уже переведена в NOTIFIED
func (s *Service) notifyPromoted(ctx context.Context, entry *domain.WaitlistEntry) {
	customerID := *entry.CustomerID
	when := fmt.Sprintf("%s %s", entry.Date.Format(domain.DateFormat), entry.Time)

	err := s.timeline.Record(ctx, timeline.Entry{
		CustomerID:  customerID,
		Type:        domain.EventWaitlistPromoted,
		Description: fmt.Sprintf("Table became available for %s", when),
		Metadata:    map[string]interface{}{"waitlist_id": entry.ID},
	})
	if err != nil {
		s.logger.Error("PromoteWaitlist: timeline for customer=%d: %v", customerID, err)
	}

	msg := notifications.Message{
		RecipientType: domain.RecipientCustomer,
		RecipientID:   customerID,
		Channel:       domain.ChannelInApp,
		Title:         "Table available",
		Body:          fmt.Sprintf("A table for %d is now available on %s", entry.PartySize, when),
		Data:          map[string]interface{}{"waitlist_id": entry.ID},
		BranchID:      entry.BranchID,
	}
	if _, err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.Error("PromoteWaitlist: in-app notification for customer=%d: %v", customerID, err)
	}

	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		s.logger.Error("PromoteWaitlist: get customer=%d: %v", customerID, err)
		return
	}
	if !customer.HasEmail() {
		return
	}

	msg.Channel = domain.ChannelEmail
	msg.Email = *customer.Email
	if _, err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.Error("PromoteWaitlist: email for customer=%d: %v", customerID, err)
	}
}

package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/TableBookingService/internal/domain"
	customerRepo "github.com/m04kA/TableBookingService/internal/infra/storage/customer"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
)

// Dependencies зависимости сервиса клиентов
type Dependencies struct {
	Customers   CustomerRepository
	Bookings    BookingRepository
	TimelineDB  TimelineRepository
	Waitlist    WaitlistRepository
	Timeline    TimelineRecorder
	Loyalty     LoyaltyService
	Permissions PermissionChecker
	TxManager   TransactionManager
	Logger      Logger
}

// Service профили клиентов: статистика, уровень, блокировки, слияние
type Service struct {
	customers     CustomerRepository
	bookings      BookingRepository
	timelineDB    TimelineRepository
	waitlist      WaitlistRepository
	timeline      TimelineRecorder
	loyalty       LoyaltyService
	permissions   PermissionChecker
	txManager     TransactionManager
	logger        Logger
	tierThreshold int
}

// NewService создает сервис клиентов
func NewService(deps Dependencies, tierThreshold int) *Service {
	if tierThreshold <= 0 {
		tierThreshold = domain.DefaultTierThreshold
	}
	return &Service{
		customers:     deps.Customers,
		bookings:      deps.Bookings,
		timelineDB:    deps.TimelineDB,
		waitlist:      deps.Waitlist,
		timeline:      deps.Timeline,
		loyalty:       deps.Loyalty,
		permissions:   deps.Permissions,
		txManager:     deps.TxManager,
		logger:        deps.Logger,
		tierThreshold: tierThreshold,
	}
}

// GetByID получает клиента
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - get customer: %w", ErrInternal, err)
	}
	return customer, nil
}

// UpdateStats пересчитывает счётчики по бронированиям клиента, уровень и автоблокировку.
// Блокировка автоматически не снимается
func (s *Service) UpdateStats(ctx context.Context, customerID int64) (*domain.Customer, error) {
	var result *domain.Customer
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		customer, err := s.GetByID(txCtx, customerID)
		if err != nil {
			return err
		}

		counts, err := s.bookings.CountByStatusForCustomer(txCtx, customerID)
		if err != nil {
			return fmt.Errorf("%w: UpdateStats - count bookings: %w", ErrInternal, err)
		}

		wasBlacklisted := customer.IsBlacklisted
		customer.ApplyStats(counts.Stats(), s.tierThreshold)

		if err := s.customers.SaveStats(txCtx, customer); err != nil {
			return fmt.Errorf("%w: UpdateStats - save stats: %w", ErrInternal, err)
		}

		if customer.IsBlacklisted && !wasBlacklisted {
			s.logger.Warn("UpdateStats: customer=%d auto-blacklisted (no-shows=%d, cancellations=%d)",
				customerID, customer.NoShowCount, customer.CancelledBookings)
			err := s.timeline.Record(txCtx, timeline.Entry{
				CustomerID:  customerID,
				Type:        domain.EventBlacklisted,
				Description: *customer.BlacklistReason,
				Metadata:    map[string]interface{}{"automatic": true},
			})
			if err != nil {
				return err
			}
		}

		result = customer
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CalculateTier уровень по сохранённому числу успешных визитов
func (s *Service) CalculateTier(ctx context.Context, customerID int64) (domain.CustomerTier, error) {
	customer, err := s.GetByID(ctx, customerID)
	if err != nil {
		return "", err
	}
	return domain.TierFor(customer.SuccessfulBookings, s.tierThreshold), nil
}

// Blacklist ручная блокировка клиента сотрудником
func (s *Service) Blacklist(ctx context.Context, actor domain.Actor, customerID int64, reason string) error {
	return s.setBlacklist(ctx, actor, customerID, true, reason)
}

// RemoveBlacklist ручное снятие блокировки
func (s *Service) RemoveBlacklist(ctx context.Context, actor domain.Actor, customerID int64, reason string) error {
	return s.setBlacklist(ctx, actor, customerID, false, reason)
}

func (s *Service) setBlacklist(ctx context.Context, actor domain.Actor, customerID int64, blacklisted bool, reason string) error {
	if err := s.permissions.AssertAllowed(actor, permission.Customers, permission.Blacklist, nil); err != nil {
		return err
	}

	reason = strings.TrimSpace(reason)
	if len([]rune(reason)) < domain.MinBlacklistReasonLength {
		return ErrInvalidReason
	}

	eventType := domain.EventBlacklisted
	var storedReason *string
	if blacklisted {
		storedReason = &reason
	} else {
		eventType = domain.EventBlacklistRemoved
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.GetByID(txCtx, customerID); err != nil {
			return err
		}

		if err := s.customers.SetBlacklist(txCtx, customerID, blacklisted, storedReason); err != nil {
			return fmt.Errorf("%w: setBlacklist - update customer: %w", ErrInternal, err)
		}

		return s.timeline.Record(txCtx, timeline.Entry{
			CustomerID:  customerID,
			Type:        eventType,
			Description: reason,
			Metadata:    map[string]interface{}{"reason": reason},
			ActorID:     actor.ActorID(),
		})
	})
	if err != nil {
		s.logger.Error("Blacklist: customer=%d blacklisted=%t: %v", customerID, blacklisted, err)
		return err
	}

	s.logger.Info("Blacklist: customer=%d blacklisted=%t by user=%d", customerID, blacklisted, actor.UserID)
	return nil
}

// ResolveOrCreate находит клиента по ID или контактам, иначе создаёт нового.
// Пустая ссылка означает гостя без профиля: возвращается nil
func (s *Service) ResolveOrCreate(ctx context.Context, ref *domain.CustomerRef) (*domain.Customer, error) {
	if ref.IsEmpty() {
		return nil, nil
	}

	if ref.ID != nil {
		customer, err := s.GetByID(ctx, *ref.ID)
		if err != nil {
			return nil, err
		}
		if !customer.IsActive {
			return nil, ErrCustomerInactive
		}
		return customer, nil
	}

	customer, err := s.customers.FindActiveByContact(ctx, ref.Email, ref.Phone)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		return nil, fmt.Errorf("%w: ResolveOrCreate - find by contact: %w", ErrInternal, err)
	}

	name := strings.TrimSpace(ref.FullName)
	if name == "" {
		return nil, ErrNameRequired
	}

	created, err := s.customers.Create(ctx, &domain.Customer{
		FullName: name,
		Email:    trimmed(ref.Email),
		Phone:    trimmed(ref.Phone),
		Tier:     domain.TierRegular,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: ResolveOrCreate - create customer: %w", ErrInternal, err)
	}

	s.logger.Info("ResolveOrCreate: created customer id=%d", created.ID)
	return created, nil
}

// Merge переносит бронирования, историю и лист ожидания дубликата на основной профиль
// и деактивирует дубликат. Выполняется одной транзакцией
func (s *Service) Merge(ctx context.Context, actor domain.Actor, primaryID, duplicateID int64) (*domain.Customer, error) {
	s.logger.Info("Merge: primary=%d duplicate=%d by user=%d", primaryID, duplicateID, actor.UserID)

	if err := s.permissions.AssertAllowed(actor, permission.Customers, permission.Merge, nil); err != nil {
		return nil, err
	}
	if primaryID == duplicateID {
		return nil, ErrMergeSameCustomer
	}

	var result *domain.Customer
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Блокируем оба профиля
		primary, err := s.GetByID(txCtx, primaryID)
		if err != nil {
			return err
		}
		duplicate, err := s.GetByID(txCtx, duplicateID)
		if err != nil {
			return err
		}
		if !primary.IsActive || !duplicate.IsActive {
			return ErrCustomerInactive
		}

		// 2. Переносим связанные записи
		moved, err := s.bookings.ReassignCustomer(txCtx, duplicateID, primaryID)
		if err != nil {
			return fmt.Errorf("%w: Merge - reassign bookings: %w", ErrInternal, err)
		}
		if err := s.timelineDB.ReassignCustomer(txCtx, duplicateID, primaryID); err != nil {
			return fmt.Errorf("%w: Merge - reassign timeline: %w", ErrInternal, err)
		}
		if err := s.waitlist.ReassignCustomer(txCtx, duplicateID, primaryID); err != nil {
			return fmt.Errorf("%w: Merge - reassign waitlist: %w", ErrInternal, err)
		}

		// 3. Деактивируем дубликат
		if err := s.customers.MarkMerged(txCtx, duplicateID, primaryID); err != nil {
			return fmt.Errorf("%w: Merge - mark merged: %w", ErrInternal, err)
		}

		// 4. Пересчитываем статистику и уровень лояльности основного профиля
		result, err = s.UpdateStats(txCtx, primaryID)
		if err != nil {
			return err
		}
		if _, err := s.loyalty.AdjustTier(txCtx, primaryID); err != nil {
			return err
		}

		// 5. Событие в истории
		return s.timeline.Record(txCtx, timeline.Entry{
			CustomerID:  primaryID,
			Type:        domain.EventMerged,
			Description: fmt.Sprintf("Merged duplicate customer %d", duplicateID),
			Metadata: map[string]interface{}{
				"duplicate_id":   duplicateID,
				"moved_bookings": moved,
			},
			ActorID: actor.ActorID(),
		})
	})
	if err != nil {
		s.logger.Error("Merge: primary=%d duplicate=%d: %v", primaryID, duplicateID, err)
		return nil, err
	}

	s.logger.Info("Merge: duplicate=%d merged into primary=%d", duplicateID, primaryID)
	return result, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

package loyalty

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
	customerRepo "github.com/m04kA/TableBookingService/internal/infra/storage/customer"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
)

const recentTransactionsLimit = 20

// Service программа лояльности: счёт, начисления, списания, уровни
type Service struct {
	accountRepo  AccountRepository
	customerRepo CustomerRepository
	timeline     TimelineRecorder
	txManager    TransactionManager
	logger       Logger
}

// NewService создает сервис лояльности
func NewService(
	accountRepo AccountRepository,
	customerRepo CustomerRepository,
	timeline TimelineRecorder,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		timeline:     timeline,
		txManager:    txManager,
		logger:       logger,
	}
}

// Status счёт клиента и последние операции
type Status struct {
	Account      *domain.LoyaltyAccount
	Transactions []*domain.LoyaltyTransaction
}

// EnsureAccount возвращает счёт клиента, создавая его при отсутствии
func (s *Service) EnsureAccount(ctx context.Context, customerID int64) (*domain.LoyaltyAccount, error) {
	if err := s.accountRepo.CreateIfMissing(ctx, customerID); err != nil {
		return nil, fmt.Errorf("%w: EnsureAccount - create account: %w", ErrInternal, err)
	}

	account, err := s.accountRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: EnsureAccount - get account: %w", ErrInternal, err)
	}

	return account, nil
}

// AwardPoints начисляет base баллов с множителем уровня (округление вниз)
func (s *Service) AwardPoints(ctx context.Context, customerID int64, base int, bookingID *int64, reason string) (int, error) {
	if base <= 0 {
		return 0, ErrInvalidPoints
	}

	var awarded int
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		account, err := s.EnsureAccount(txCtx, customerID)
		if err != nil {
			return err
		}

		awarded = account.Tier.PointsFor(base)
		account.PointsBalance += awarded

		return s.apply(txCtx, account, domain.LoyaltyEarn, awarded, reason, bookingID)
	})
	if err != nil {
		s.logger.Error("AwardPoints: customer=%d: %v", customerID, err)
		return 0, err
	}

	s.logger.Info("AwardPoints: customer=%d awarded=%d", customerID, awarded)
	return awarded, nil
}

// AdjustPoints ручная корректировка баланса на delta (может быть отрицательной)
func (s *Service) AdjustPoints(ctx context.Context, customerID int64, delta int, reason string) (*domain.LoyaltyAccount, error) {
	var result *domain.LoyaltyAccount
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		account, err := s.EnsureAccount(txCtx, customerID)
		if err != nil {
			return err
		}

		if account.PointsBalance+delta < 0 {
			return ErrNegativeBalance
		}
		account.PointsBalance += delta

		if err := s.apply(txCtx, account, domain.LoyaltyAdjust, delta, reason, nil); err != nil {
			return err
		}
		result = account
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("AdjustPoints: customer=%d delta=%d balance=%d", customerID, delta, result.PointsBalance)
	return result, nil
}

// Redeem списывает баллы
func (s *Service) Redeem(ctx context.Context, customerID int64, points int, reason string) (*domain.LoyaltyAccount, error) {
	if points <= 0 {
		return nil, ErrInvalidPoints
	}

	var result *domain.LoyaltyAccount
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		account, err := s.EnsureAccount(txCtx, customerID)
		if err != nil {
			return err
		}

		if account.PointsBalance < points {
			return ErrInsufficientPoints
		}
		account.PointsBalance -= points

		if err := s.apply(txCtx, account, domain.LoyaltyRedeem, -points, reason, nil); err != nil {
			return err
		}
		result = account
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Redeem: customer=%d points=%d balance=%d", customerID, points, result.PointsBalance)
	return result, nil
}

// RecordReferral начисляет бонус рефереру и увеличивает счётчик приглашённых
func (s *Service) RecordReferral(ctx context.Context, referrerID, referredID int64) error {
	if referrerID == referredID {
		return ErrSelfReferral
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		account, err := s.EnsureAccount(txCtx, referrerID)
		if err != nil {
			return err
		}

		account.PointsBalance += domain.ReferralBonusPoints
		account.TotalReferrals++

		reason := fmt.Sprintf("Referral bonus for customer %d", referredID)
		return s.apply(txCtx, account, domain.LoyaltyBonus, domain.ReferralBonusPoints, reason, nil)
	})
	if err != nil {
		s.logger.Error("RecordReferral: referrer=%d referred=%d: %v", referrerID, referredID, err)
		return err
	}

	s.logger.Info("RecordReferral: referrer=%d referred=%d", referrerID, referredID)
	return nil
}

// AdjustTier пересчитывает уровень лояльности по общему числу бронирований клиента
func (s *Service) AdjustTier(ctx context.Context, customerID int64) (domain.LoyaltyTier, error) {
	var tier domain.LoyaltyTier
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		customer, err := s.customerRepo.GetByID(txCtx, customerID)
		if err != nil {
			if errors.Is(err, customerRepo.ErrCustomerNotFound) {
				return ErrCustomerNotFound
			}
			return fmt.Errorf("%w: AdjustTier - get customer: %w", ErrInternal, err)
		}

		account, err := s.EnsureAccount(txCtx, customerID)
		if err != nil {
			return err
		}

		tier = domain.LoyaltyTierFor(customer.TotalBookings)
		if tier == account.Tier {
			return nil
		}

		oldTier := account.Tier
		account.Tier = tier
		if err := s.accountRepo.Update(txCtx, account); err != nil {
			return fmt.Errorf("%w: AdjustTier - update account: %w", ErrInternal, err)
		}

		return s.timeline.Record(txCtx, timeline.Entry{
			CustomerID:  customerID,
			Type:        domain.EventLoyaltyUpdated,
			Description: fmt.Sprintf("Loyalty tier changed from %s to %s", oldTier, tier),
			Metadata: map[string]interface{}{
				"old_tier": string(oldTier),
				"new_tier": string(tier),
			},
		})
	})
	if err != nil {
		return "", err
	}

	return tier, nil
}

// GetStatus счёт клиента с последними операциями
func (s *Service) GetStatus(ctx context.Context, customerID int64) (*Status, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("%w: GetStatus - get customer: %w", ErrInternal, err)
	}

	account, err := s.EnsureAccount(ctx, customerID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.accountRepo.ListTransactions(ctx, account.ID, recentTransactionsLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStatus - list transactions: %w", ErrInternal, err)
	}

	return &Status{Account: account, Transactions: transactions}, nil
}

// apply сохраняет счёт и добавляет запись в журнал
func (s *Service) apply(ctx context.Context, account *domain.LoyaltyAccount, kind domain.LoyaltyTransactionType, points int, reason string, bookingID *int64) error {
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return fmt.Errorf("%w: update account: %w", ErrInternal, err)
	}

	err := s.accountRepo.AddTransaction(ctx, &domain.LoyaltyTransaction{
		AccountID: account.ID,
		Type:      kind,
		Points:    points,
		Reason:    reason,
		BookingID: bookingID,
	})
	if err != nil {
		return fmt.Errorf("%w: add transaction: %w", ErrInternal, err)
	}

	return nil
}

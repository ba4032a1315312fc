package blockedslots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	branchRepo "github.com/m04kA/TableBookingService/internal/infra/storage/branch"
	"github.com/m04kA/TableBookingService/internal/service/blockedslots/models"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// Service сервис блокировок времени филиала (частные мероприятия, обслуживание)
type Service struct {
	repo        BlockedSlotRepository
	permissions PermissionChecker
	logger      Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(repo BlockedSlotRepository, permissions PermissionChecker, logger Logger) *Service {
	return &Service{
		repo:        repo,
		permissions: permissions,
		logger:      logger,
	}
}

// Create блокирует интервал [start, end) на дату. Блокировки неизменяемы
func (s *Service) Create(ctx context.Context, actor domain.Actor, req *models.CreateBlockedSlotRequest) (*models.BlockedSlotResponse, error) {
	s.logger.Info("Create: blocking branch=%d on %s %s-%s by user=%d",
		req.BranchID, req.Date, req.StartTime, req.EndTime, actor.UserID)

	// 1. Проверяем права в филиале
	if err := s.permissions.AssertAllowed(actor, permission.BlockedSlots, permission.Create, &req.BranchID); err != nil {
		s.logger.Warn("Create: user=%d has no access to branch=%d", actor.UserID, req.BranchID)
		return nil, err
	}

	// 2. Разбираем дату и интервал
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}
	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}
	if !end.IsAfter(start) {
		return nil, ErrInvalidInterval
	}

	// 3. Сохраняем
	created, err := s.repo.CreateBlockedSlot(ctx, &domain.BlockedSlot{
		BranchID:  req.BranchID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Reason:    req.Reason,
		CreatedBy: actor.ActorID(),
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: blocked slot id=%d created", created.ID)
	return models.FromDomainBlockedSlot(created), nil
}

// Delete снимает блокировку филиала
func (s *Service) Delete(ctx context.Context, actor domain.Actor, branchID, id int64) error {
	if err := s.permissions.AssertAllowed(actor, permission.BlockedSlots, permission.Delete, &branchID); err != nil {
		return err
	}

	slot, err := s.repo.GetBlockedSlot(ctx, id)
	if err != nil {
		if errors.Is(err, branchRepo.ErrBlockedSlotNotFound) {
			return ErrBlockedSlotNotFound
		}
		return fmt.Errorf("%w: Delete - get blocked slot: %v", ErrInternal, err)
	}
	if slot.BranchID != branchID {
		return ErrBlockedSlotNotFound
	}

	if err := s.repo.DeleteBlockedSlot(ctx, id); err != nil {
		if errors.Is(err, branchRepo.ErrBlockedSlotNotFound) {
			return ErrBlockedSlotNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: blocked slot id=%d removed by user=%d", id, actor.UserID)
	return nil
}

// List блокировки филиала на дату
func (s *Service) List(ctx context.Context, actor domain.Actor, branchID int64, date time.Time) ([]models.BlockedSlotResponse, error) {
	if err := s.permissions.AssertAllowed(actor, permission.BlockedSlots, permission.Read, &branchID); err != nil {
		return nil, err
	}

	slots, err := s.repo.ListBlockedSlots(ctx, branchID, domain.DateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedSlots(slots), nil
}

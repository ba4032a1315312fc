package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	bookingRepo "github.com/m04kA/TableBookingService/internal/infra/storage/booking"
	"github.com/m04kA/TableBookingService/internal/service/bookings/models"
	"github.com/m04kA/TableBookingService/internal/service/permission"
)

const defaultUpcomingLimit = 20

// Dependencies зависимости сервиса бронирований
type Dependencies struct {
	Bookings    BookingRepository
	Customers   CustomerService
	Loyalty     LoyaltyService
	Timeline    TimelineRecorder
	Automation  Automation
	Notifier    EmailNotifier
	Permissions PermissionChecker
	Publisher   EventPublisher
	TxManager   TransactionManager
	Metrics     Metrics
	Logger      Logger
}

// Service сервис для работы с бронированиями: переходы статусов и чтение
type Service struct {
	bookingRepo BookingRepository
	customers   CustomerService
	loyalty     LoyaltyService
	timeline    TimelineRecorder
	automation  Automation
	notifier    EmailNotifier
	permissions PermissionChecker
	publisher   EventPublisher
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger

	loc *time.Location
	now func() time.Time
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(deps Dependencies, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		bookingRepo: deps.Bookings,
		customers:   deps.Customers,
		loyalty:     deps.Loyalty,
		timeline:    deps.Timeline,
		automation:  deps.Automation,
		notifier:    deps.Notifier,
		permissions: deps.Permissions,
		publisher:   deps.Publisher,
		txManager:   deps.TxManager,
		metrics:     deps.Metrics,
		logger:      deps.Logger,
		loc:         loc,
		now:         time.Now,
	}
}

// GetByID получает бронирование по ID в пределах доступных сотруднику филиалов
func (s *Service) GetByID(ctx context.Context, actor domain.Actor, id int64) (*models.BookingResponse, error) {
	booking, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.permissions.AssertAllowed(actor, permission.Bookings, permission.Read, &booking.BranchID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetByCode получает бронирование по коду (без учёта регистра)
func (s *Service) GetByCode(ctx context.Context, actor domain.Actor, code string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %w", ErrInternal, err)
	}

	if err := s.permissions.AssertAllowed(actor, permission.Bookings, permission.Read, &booking.BranchID); err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// List бронирования филиала с фильтрацией и пагинацией
func (s *Service) List(ctx context.Context, actor domain.Actor, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: branch=%d user=%d status=%v search=%q", req.BranchID, actor.UserID, req.Status, req.Search)

	if err := s.permissions.AssertAllowed(actor, permission.Bookings, permission.Read, &req.BranchID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, ErrInvalidStatus
	}
	filter.BranchIDs = s.permissions.AccessibleBranches(actor)

	page, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for branch=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainBookingList(page.Items, page.Total), nil
}

// GetUpcoming ближайшие PENDING/CONFIRMED брони филиала начиная с сегодняшнего дня
func (s *Service) GetUpcoming(ctx context.Context, actor domain.Actor, branchID int64, limit int) (*models.BookingListResponse, error) {
	if err := s.permissions.AssertAllowed(actor, permission.Bookings, permission.Read, &branchID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}

	today := domain.DateOnly(s.now().In(s.loc))
	items, err := s.bookingRepo.GetUpcoming(ctx, branchID, today, limit)
	if err != nil {
		s.logger.Error("GetUpcoming: repository error for branch=%d: %v", branchID, err)
		return nil, fmt.Errorf("%w: GetUpcoming - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainBookingList(items, len(items)), nil
}

// History журнал изменений бронирования
func (s *Service) History(ctx context.Context, actor domain.Actor, id int64) ([]models.HistoryEntryResponse, error) {
	booking, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.permissions.AssertAllowed(actor, permission.Bookings, permission.Read, &booking.BranchID); err != nil {
		return nil, err
	}

	entries, err := s.bookingRepo.ListHistory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: History - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainHistory(entries), nil
}

func (s *Service) load(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("load: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %w", ErrInternal, err)
	}
	return booking, nil
}

package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	branchRepo "github.com/m04kA/TableBookingService/internal/infra/storage/branch"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// UseCase use case проверки свободных столов
type UseCase struct {
	hoursRepo    HoursRepository
	calendar     Calendar
	suggester    AlternativeSuggester
	permissions  PermissionChecker
	timeProvider TimeProvider
	logger       Logger

	maxAdvanceDays int
	loc            *time.Location
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hoursRepo HoursRepository,
	calendar Calendar,
	suggester AlternativeSuggester,
	permissions PermissionChecker,
	maxAdvanceDays int,
	loc *time.Location,
	logger Logger,
) *UseCase {
	if maxAdvanceDays <= 0 {
		maxAdvanceDays = domain.DefaultMaxAdvanceDays
	}
	if loc == nil {
		loc = time.UTC
	}

	return &UseCase{
		hoursRepo:      hoursRepo,
		calendar:       calendar,
		suggester:      suggester,
		permissions:    permissions,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
		maxAdvanceDays: maxAdvanceDays,
		loc:            loc,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: user=%d, branch=%d, date=%s, party=%d",
		req.Actor.UserID, req.BranchID, req.Date.Format(domain.DateFormat), req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Права на чтение броней филиала
	if err := uc.permissions.AssertAllowed(req.Actor, permission.Bookings, permission.Read, &req.BranchID); err != nil {
		uc.logger.Warn("CheckAvailability: user=%d denied for branch=%d", req.Actor.UserID, req.BranchID)
		return nil, err
	}

	// 3. Горизонт бронирования
	now := uc.timeProvider.Now().In(uc.loc)
	date := domain.DateOnly(req.Date)
	if err := validateDate(date, now, uc.maxAdvanceDays); err != nil {
		uc.logger.Warn("CheckAvailability: date validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		BranchID:    req.BranchID,
		Date:        date,
		PartySize:   req.PartySize,
		Time:        req.Time,
		Tables:      []TableInfo{},
		Suggestions: []types.TimeString{},
		Slots:       []Slot{},
	}

	if req.Time != nil {
		if err := uc.checkTime(ctx, req, date, resp); err != nil {
			return nil, err
		}
		return resp, nil
	}

	if err := uc.buildGrid(ctx, req, date, now, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// checkTime свободные столы на конкретное время, при их отсутствии - альтернативы
func (uc *UseCase) checkTime(ctx context.Context, req *Request, date time.Time, resp *Response) error {
	// 4. Часы работы
	open, err := uc.calendar.IsOpen(ctx, req.BranchID, date, *req.Time)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to check operating hours: %v", err)
		return fmt.Errorf("%w: failed to check operating hours: %v", ErrInternal, err)
	}
	resp.Open = open
	if !open {
		uc.logger.Info("CheckAvailability: branch=%d is closed at %s %s", req.BranchID, date.Format(domain.DateFormat), *req.Time)
		return nil
	}

	// 5. Свободные столы
	tables, err := uc.calendar.GetAvailableTables(ctx, req.BranchID, date, *req.Time, req.PartySize)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get available tables: %v", err)
		return fmt.Errorf("%w: failed to get available tables: %v", ErrInternal, err)
	}
	resp.AvailableTables = len(tables)
	resp.Tables = fromDomainTables(tables)

	// 6. Альтернативы
	if len(tables) == 0 {
		suggestions, err := uc.suggester.SuggestAlternativeSlots(ctx, req.BranchID, date, *req.Time, req.PartySize)
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to suggest alternatives: %v", err)
			return fmt.Errorf("%w: failed to suggest alternatives: %v", ErrInternal, err)
		}
		resp.Suggestions = suggestions
	}

	uc.logger.Info("CheckAvailability: branch=%d %s %s available=%d suggestions=%d",
		req.BranchID, date.Format(domain.DateFormat), *req.Time, resp.AvailableTables, len(resp.Suggestions))
	return nil
}

// buildGrid сетка слотов на весь день
func (uc *UseCase) buildGrid(ctx context.Context, req *Request, date, now time.Time, resp *Response) error {
	// 4. Часы работы на день недели
	hours, err := uc.hoursRepo.GetOperatingHours(ctx, req.BranchID, int(date.Weekday()))
	if err != nil {
		if errors.Is(err, branchRepo.ErrOperatingHoursNotFound) {
			uc.logger.Info("CheckAvailability: branch=%d has no hours on %s", req.BranchID, date.Format(domain.DateFormat))
			return nil
		}
		uc.logger.Error("CheckAvailability: failed to get operating hours: %v", err)
		return fmt.Errorf("%w: failed to get operating hours: %v", ErrInternal, err)
	}

	// 5. Времена начала
	step := req.StepMinutes
	if step == 0 {
		step = defaultStepMinutes
	}
	times, err := generateTimeSlots(hours, step, date, now)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to generate time slots: %v", err)
		return fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}
	resp.Open = !hours.IsClosed && !hours.OpenTime.IsZero() && !hours.CloseTime.IsZero()

	// 6. Свободные столы на каждый слот
	for _, t := range times {
		tables, err := uc.calendar.GetAvailableTables(ctx, req.BranchID, date, t, req.PartySize)
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to get available tables at %s: %v", t, err)
			return fmt.Errorf("%w: failed to get available tables: %v", ErrInternal, err)
		}
		resp.Slots = append(resp.Slots, Slot{StartTime: t, AvailableTables: len(tables)})
	}

	uc.logger.Info("CheckAvailability: generated %d slots for branch=%d, date=%s",
		len(resp.Slots), req.BranchID, date.Format(domain.DateFormat))
	return nil
}

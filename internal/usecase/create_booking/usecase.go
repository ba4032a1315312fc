package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/infra/cache"
	"github.com/m04kA/TableBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/TableBookingService/internal/infra/storage/booking"
	tableRepo "github.com/m04kA/TableBookingService/internal/infra/storage/table"
	"github.com/m04kA/TableBookingService/internal/service/automation"
	"github.com/m04kA/TableBookingService/internal/service/availability"
	"github.com/m04kA/TableBookingService/internal/service/bookings/models"
	"github.com/m04kA/TableBookingService/internal/service/notifications"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
)

const lockPollInterval = 50 * time.Millisecond

// Dependencies зависимости use case
type Dependencies struct {
	Bookings     BookingRepository
	Tables       TableRepository
	Calendar     Calendar
	Availability AvailabilityChecker
	Customers    CustomerService
	Loyalty      LoyaltyService
	Automation   Automation
	Codes        CodeGenerator
	Timeline     TimelineRecorder
	Notifier     EmailNotifier
	Permissions  PermissionChecker
	Locker       Locker // nil - только блокировка в БД
	Publisher    EventPublisher
	Metrics      Metrics
	TxManager    TransactionManager
	Logger       Logger
}

// Settings параметры бронирования
type Settings struct {
	MaxAdvanceDays         int
	DefaultDurationMinutes int
	LockTTL                time.Duration
	// LockWait сколько ждать блокировку стола, занятую параллельным запросом
	LockWait time.Duration
	Location               *time.Location
}

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	tableRepo    TableRepository
	calendar     Calendar
	availability AvailabilityChecker
	customers    CustomerService
	loyalty      LoyaltyService
	automation   Automation
	codes        CodeGenerator
	timeline     TimelineRecorder
	notifier     EmailNotifier
	permissions  PermissionChecker
	locker       Locker
	publisher    EventPublisher
	metrics      Metrics
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
	if settings.LockTTL <= 0 {
		settings.LockTTL = 10 * time.Second
	}
	if settings.LockWait <= 0 {
		settings.LockWait = 2 * time.Second
	}
	if settings.Location == nil {
		settings.Location = time.UTC
	}

	return &UseCase{
		bookingRepo:  deps.Bookings,
		tableRepo:    deps.Tables,
		calendar:     deps.Calendar,
		availability: deps.Availability,
		customers:    deps.Customers,
		loyalty:      deps.Loyalty,
		automation:   deps.Automation,
		codes:        deps.Codes,
		timeline:     deps.Timeline,
		notifier:     deps.Notifier,
		permissions:  deps.Permissions,
		locker:       deps.Locker,
		publisher:    deps.Publisher,
		metrics:      deps.Metrics,
		txManager:    deps.TxManager,
		timeProvider: &RealTimeProvider{},
		logger:       deps.Logger,
		settings:     settings,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции
// под advisory lock на (branch, date)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: branch=%d, table=%v, date=%s, time=%s, party=%d by user=%d",
		req.BranchID, req.TableID, req.Date.Format(domain.DateFormat), req.Time, req.PartySize, req.Actor.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Права на создание в филиале
	if err := uc.permissions.AssertAllowed(req.Actor, permission.Bookings, permission.Create, &req.BranchID); err != nil {
		uc.logger.Warn("CreateBooking: user=%d has no access to branch=%d", req.Actor.UserID, req.BranchID)
		return nil, err
	}

	// 3. Горизонт бронирования
	now := uc.timeProvider.Now().In(uc.settings.Location)
	date := domain.DateOnly(req.Date)
	if err := validateDate(date, now, uc.settings.MaxAdvanceDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 4. Филиал работает
	open, err := uc.calendar.IsOpen(ctx, req.BranchID, date, req.Time)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check operating hours: %v", err)
		return nil, fmt.Errorf("%w: failed to check operating hours: %w", ErrInternal, err)
	}
	if !open {
		uc.logger.Warn("CreateBooking: branch=%d is closed on %s at %s", req.BranchID, date.Format(domain.DateFormat), req.Time)
		return nil, ErrBranchClosed
	}

	// 5. Клиент
	customer, err := uc.customers.ResolveOrCreate(ctx, req.Customer)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to resolve customer: %v", err)
		return nil, err
	}
	if customer != nil && customer.IsBlacklisted {
		uc.logger.Warn("CreateBooking: customer id=%d is blacklisted", customer.ID)
		return nil, ErrCustomerBlacklisted
	}

	// 6. Запрошенный стол
	if req.TableID != nil {
		if err := uc.checkTable(ctx, *req.TableID, req.BranchID, req.PartySize); err != nil {
			uc.logger.Warn("CreateBooking: table id=%d rejected: %v", *req.TableID, err)
			return nil, err
		}
	}

	// 7. Блокировка стола в кэше, без стола на весь день филиала
	if uc.locker != nil {
		release, err := uc.lock(ctx, req.BranchID, date, req.TableID)
		if err != nil {
			return nil, err
		}
		defer release()
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = uc.settings.DefaultDurationMinutes
	}

	resp := &Response{}
	var result *domain.Booking

	// 8. Проверка доступности и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		resp = &Response{}
		result = nil

		// 8.1. Блокировка дня филиала до конца транзакции
		if err := uc.bookingRepo.LockBranchDate(txCtx, req.BranchID, date); err != nil {
			return fmt.Errorf("%w: failed to lock branch date: %w", ErrInternal, err)
		}

		// 8.2. Автоподбор стола
		tableID := req.TableID
		if tableID == nil && req.AutoAssignTable {
			tables, err := uc.calendar.GetAvailableTables(txCtx, req.BranchID, date, req.Time, req.PartySize)
			if err != nil {
				return fmt.Errorf("%w: failed to get available tables: %w", ErrInternal, err)
			}
			if len(tables) > 0 {
				tableID = &tables[0].ID
				uc.logger.Info("CreateBooking: auto-assigned table id=%d", *tableID)
			}
		}

		// 8.3. Проверка пересечений
		available, err := uc.availability.CheckAvailability(txCtx, availability.Query{
			BranchID:        req.BranchID,
			TableID:         tableID,
			Date:            date,
			Time:            req.Time,
			DurationMinutes: duration,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to check availability: %w", ErrInternal, err)
		}

		// 8.4. Мест нет: альтернативы и лист ожидания
		if !available {
			return uc.handleUnavailable(txCtx, req, customer, date, resp)
		}

		// 8.5. Код брони
		code, err := uc.codes.Generate(txCtx)
		if err != nil {
			return err
		}

		// 8.6. Создаём бронь в PENDING
		source := req.Source
		if source == "" {
			source = domain.SourceAdmin
		}
		booking := &domain.Booking{
			Code:            code,
			BranchID:        req.BranchID,
			TableID:         tableID,
			BookingDate:     date,
			StartTime:       req.Time,
			DurationMinutes: duration,
			PartySize:       req.PartySize,
			Status:          domain.StatusPending,
			Source:          source,
			SpecialRequests: normalize(req.SpecialRequests),
			InternalNotes:   normalize(req.InternalNotes),
			CreatedBy:       req.Actor.ActorID(),
		}
		if customer != nil {
			booking.CustomerID = &customer.ID
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		// 8.7. Журнал и история клиента
		pending := domain.StatusPending
		if err := uc.bookingRepo.AddHistory(txCtx, &domain.BookingHistory{
			BookingID: created.ID,
			Action:    domain.ActionCreated,
			NewStatus: &pending,
			ChangedBy: req.Actor.ActorID(),
		}); err != nil {
			return fmt.Errorf("%w: failed to add history: %w", ErrInternal, err)
		}

		if customer != nil {
			if err := uc.timeline.Record(txCtx, timeline.Entry{
				CustomerID:  customer.ID,
				Type:        domain.EventBookingCreated,
				Description: fmt.Sprintf("Booking %s created for %s at %s", created.Code, date.Format(domain.DateFormat), req.Time),
				Metadata: map[string]interface{}{
					"booking_id":   created.ID,
					"booking_code": created.Code,
					"party_size":   created.PartySize,
				},
				ActorID: req.Actor.ActorID(),
			}); err != nil {
				return err
			}
			if _, err := uc.loyalty.EnsureAccount(txCtx, customer.ID); err != nil {
				return err
			}
		}

		// 8.8. Автоподтверждение
		tier := domain.TierRegular
		if customer != nil {
			tier, err = uc.customers.CalculateTier(txCtx, customer.ID)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to calculate tier for customer id=%d: %v", customer.ID, err)
				return fmt.Errorf("%w: failed to calculate tier: %w", ErrInternal, err)
			}
		}
		autoConfirm, err := uc.automation.ShouldAutoConfirm(txCtx, automation.ConfirmInput{
			BranchID:           req.BranchID,
			Date:               date,
			Time:               req.Time,
			PartySize:          req.PartySize,
			Tier:               tier,
			HasSpecialRequests: created.HasSpecialRequests(),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to evaluate auto-confirmation: %w", ErrInternal, err)
		}
		if autoConfirm {
			if err := uc.autoConfirm(txCtx, created, now); err != nil {
				return err
			}
		}

		// 8.9. Статистика клиента
		if customer != nil {
			if _, err := uc.customers.UpdateStats(txCtx, customer.ID); err != nil {
				return err
			}
		}

		result = created
		return nil
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: failed: %v", err)
		return nil, err
	}

	// 9. Побочные эффекты после фиксации
	if result == nil {
		uc.metrics.IncBookingOutcome(string(resp.Outcome))
		uc.logger.Info("CreateBooking: slot unavailable, outcome=%s, suggestions=%v", resp.Outcome, resp.Suggestions)
		return resp, nil
	}

	resp.Outcome = OutcomePending
	if result.Status == domain.StatusConfirmed {
		resp.Outcome = OutcomeConfirmed
		uc.afterConfirm(ctx, result, customer)
	}
	resp.Booking = models.FromDomainBooking(result)

	uc.metrics.IncBookingOutcome(string(resp.Outcome))
	uc.publish(ctx, result)

	uc.logger.Info("CreateBooking: successfully created booking id=%d code=%s status=%s", result.ID, result.Code, result.Status)
	return resp, nil
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

func (uc *UseCase) lock(ctx context.Context, branchID int64, date time.Time, tableID *int64) (func(), error) {
	key := cache.SlotLockKey(branchID, date, tableID)

	deadline := time.NewTimer(uc.settings.LockWait)
	defer deadline.Stop()
	for {
		ok, err := uc.locker.AcquireLock(ctx, key, uc.settings.LockTTL)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to acquire lock %s: %v", key, err)
			return nil, fmt.Errorf("%w: failed to acquire lock: %w", ErrInternal, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			uc.logger.Warn("CreateBooking: lock %s is still held after %s", key, uc.settings.LockWait)
			return nil, ErrSlotLocked
		case <-time.After(lockPollInterval):
		}
	}

	return func() {
		if err := uc.locker.ReleaseLock(context.WithoutCancel(ctx), key); err != nil {
			uc.logger.Warn("CreateBooking: failed to release lock %s: %v", key, err)
		}
	}, nil
}

func (uc *UseCase) handleUnavailable(ctx context.Context, req *Request, customer *domain.Customer, date time.Time, resp *Response) error {
	suggestions, err := uc.automation.SuggestAlternativeSlots(ctx, req.BranchID, date, req.Time, req.PartySize)
	if err != nil {
		return fmt.Errorf("%w: failed to suggest alternatives: %w", ErrInternal, err)
	}
	resp.Suggestions = make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		resp.Suggestions = append(resp.Suggestions, s.String())
	}

	resp.Outcome = OutcomeWaitlisted
	if !req.JoinWaitlist {
		return nil
	}

	entry := &domain.WaitlistEntry{
		BranchID:  req.BranchID,
		Date:      date,
		Time:      req.Time,
		PartySize: req.PartySize,
		Status:    domain.WaitlistPending,
		Notes:     normalize(req.SpecialRequests),
	}
	if customer != nil {
		entry.CustomerID = &customer.ID
	}

	created, err := uc.automation.AddToWaitlist(ctx, entry)
	if err != nil {
		return err
	}

	resp.WaitlistEntryID = &created.ID
	return nil
}

func (uc *UseCase) autoConfirm(ctx context.Context, booking *domain.Booking, now time.Time) error {
	from := domain.StatusPending
	to := domain.StatusConfirmed

	if err := uc.bookingRepo.TransitionStatus(ctx, booking.ID, bookingRepo.StatusChange{
		To:   to,
		From: []domain.BookingStatus{from},
		At:   now,
	}); err != nil {
		return fmt.Errorf("%w: failed to auto-confirm: %w", ErrInternal, err)
	}
	booking.Status = to
	booking.ConfirmedAt = &now

	if err := uc.bookingRepo.AddHistory(ctx, &domain.BookingHistory{
		BookingID: booking.ID,
		Action:    domain.ActionAutoConfirmed,
		OldStatus: &from,
		NewStatus: &to,
	}); err != nil {
		return fmt.Errorf("%w: failed to add history: %w", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: booking id=%d auto-confirmed", booking.ID)
	return nil
}

// afterConfirm напоминания и письмо. Ошибки только логируются
func (uc *UseCase) afterConfirm(ctx context.Context, booking *domain.Booking, customer *domain.Customer) {
	if err := uc.automation.ScheduleReminders(ctx, booking); err != nil {
		uc.logger.Error("CreateBooking: failed to schedule reminders for booking id=%d: %v", booking.ID, err)
	}

	if customer == nil || !customer.HasEmail() {
		return
	}
	subject, body := notifications.BookingConfirmedEmail(booking, customer.FullName)
	uc.notifier.SendEmail(ctx, *customer.Email, subject, body)
}

func (uc *UseCase) publish(ctx context.Context, booking *domain.Booking) {
	err := uc.publisher.Publish(ctx, events.Event{
		Type:      events.BookingCreated,
		BranchID:  booking.BranchID,
		BookingID: booking.ID,
		Payload: map[string]interface{}{
			"code":   booking.Code,
			"status": string(booking.Status),
			"date":   booking.BookingDate.Format(domain.DateFormat),
			"time":   booking.StartTime.String(),
		},
		OccurredAt: uc.timeProvider.Now(),
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", booking.ID, err)
	}
}

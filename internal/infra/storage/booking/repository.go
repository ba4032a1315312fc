package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/pkg/dbmetrics"
	"github.com/m04kA/TableBookingService/pkg/pgerrors"
	"github.com/m04kA/TableBookingService/pkg/psqlbuilder"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// bookingColumns порядок колонок совпадает с порядком в scanBooking
var bookingColumns = []string{
	"id",
	"code",
	"branch_id",
	"table_id",
	"customer_id",
	"booking_date",
	"start_time",
	"duration_minutes",
	"party_size",
	"status",
	"source",
	"special_requests",
	"internal_notes",
	"created_by",
	"cancelled_by",
	"cancellation_reason",
	"confirmed_at",
	"cancelled_at",
	"checked_in_at",
	"completed_at",
	"created_at",
	"updated_at",
}

// columns возвращает колонки бронирования с префиксом алиаса таблицы
func columns(alias string) []string {
	if alias == "" {
		return bookingColumns
	}
	out := make([]string, len(bookingColumns))
	for i, c := range bookingColumns {
		out[i] = alias + "." + c
	}
	return out
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте есть транзакция, запрос выполняется в ней.
// Нарушение ограничения bookings_no_table_overlap возвращается как ErrSlotNotAvailable
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"code",
			"branch_id",
			"table_id",
			"customer_id",
			"booking_date",
			"start_time",
			"duration_minutes",
			"party_size",
			"status",
			"source",
			"special_requests",
			"internal_notes",
			"created_by",
			"confirmed_at",
		).
		Values(
			booking.Code,
			booking.BranchID,
			booking.TableID,
			booking.CustomerID,
			booking.BookingDate.Format(domain.DateFormat),
			booking.StartTime,
			booking.DurationMinutes,
			booking.PartySize,
			booking.Status,
			booking.Source,
			booking.SpecialRequests,
			booking.InternalNotes,
			booking.CreatedBy,
			booking.ConfirmedAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		switch {
		case pgerrors.IsExclusionViolation(err):
			return nil, ErrSlotNotAvailable
		case pgerrors.IsUniqueViolation(err):
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByCode получает бронирование по коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByCode", squirrel.Eq{"code": strings.ToUpper(code)})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns("")...).
		From("bookings").
		Where(where)

	// Внутри транзакции блокируем строку до конца перехода статуса
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %w", ErrScanRow, op, err)
	}

	return booking, nil
}

// CodeExists проверяет, занят ли код бронирования
func (r *Repository) CodeExists(ctx context.Context, code string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"code": code}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: CodeExists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: CodeExists - execute query: %w", ErrExecQuery, err)
	}

	return true, nil
}

// OccupancyFilter выборка броней, занимающих слоты на дату
type OccupancyFilter struct {
	BranchID  int64
	Date      time.Time
	TableID   *int64 // nil - все брони филиала (проверка по залу)
	ExcludeID *int64 // исключить бронь (перенос самой себя)
}

// GetOccupying получает брони в статусах PENDING/CONFIRMED/CHECKED_IN на дату
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) GetOccupying(ctx context.Context, filter OccupancyFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns("")...).
		From("bookings").
		Where(squirrel.Eq{"branch_id": filter.BranchID}).
		Where(squirrel.Eq{"booking_date": filter.Date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"status": statusStrings(domain.OccupyingStatuses)}).
		OrderBy("start_time ASC")

	if filter.TableID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"table_id": *filter.TableID})
	}
	if filter.ExcludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *filter.ExcludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupying - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupying - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// LockBranchDate берёт транзакционный advisory lock на (филиал, дата)
// Сериализует проверку доступности и вставку для одного дня филиала
func (r *Repository) LockBranchDate(ctx context.Context, branchID int64, date time.Time) error {
	tx, ok := dbmetrics.GetTx(ctx)
	if !ok {
		return ErrNotInTransaction
	}

	dayKey := int32(domain.DateOnly(date).Unix() / 86400)
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1, $2)", int32(branchID), dayKey); err != nil {
		return fmt.Errorf("%w: LockBranchDate - execute lock: %w", ErrExecQuery, err)
	}

	return nil
}

// List получает страницу бронирований по фильтру
// Поиск (Search) идёт по коду брони и по имени/телефону/email клиента
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) (*domain.BookingsPage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where := squirrel.And{}
	if filter.BranchID != nil {
		where = append(where, squirrel.Eq{"b.branch_id": *filter.BranchID})
	}
	if filter.BranchIDs != nil {
		where = append(where, squirrel.Eq{"b.branch_id": filter.BranchIDs})
	}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"b.status": string(*filter.Status)})
	}
	if filter.CustomerID != nil {
		where = append(where, squirrel.Eq{"b.customer_id": *filter.CustomerID})
	}
	if filter.DateFrom != nil {
		where = append(where, squirrel.GtOrEq{"b.booking_date": filter.DateFrom.Format(domain.DateFormat)})
	}
	if filter.DateTo != nil {
		where = append(where, squirrel.LtOrEq{"b.booking_date": filter.DateTo.Format(domain.DateFormat)})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"b.code": pattern},
			squirrel.ILike{"c.full_name": pattern},
			squirrel.ILike{"c.phone": pattern},
			squirrel.ILike{"c.email": pattern},
		})
	}

	// 1. Общее количество
	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From("bookings b").
		LeftJoin("customers c ON c.id = b.customer_id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("%w: List - execute count: %w", ErrExecQuery, err)
	}

	// 2. Страница
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query, args, err := psqlbuilder.Select(columns("b")...).
		From("bookings b").
		LeftJoin("customers c ON c.id = b.customer_id").
		Where(where).
		OrderBy("b.booking_date DESC", "b.start_time DESC", "b.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	items, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	return &domain.BookingsPage{Items: items, Total: total}, nil
}

// GetUpcoming получает ближайшие PENDING/CONFIRMED брони филиала начиная с даты from
func (r *Repository) GetUpcoming(ctx context.Context, branchID int64, from time.Time, limit int) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}

	query, args, err := psqlbuilder.Select(columns("")...).
		From("bookings").
		Where(squirrel.Eq{"branch_id": branchID}).
		Where(squirrel.GtOrEq{"booking_date": from.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"status": []string{string(domain.StatusPending), string(domain.StatusConfirmed)}}).
		OrderBy("booking_date ASC", "start_time ASC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUpcoming - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListConfirmedUpTo получает CONFIRMED брони с датой не позже date (кандидаты на NO_SHOW)
func (r *Repository) ListConfirmedUpTo(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns("")...).
		From("bookings").
		Where(squirrel.Eq{"status": string(domain.StatusConfirmed)}).
		Where(squirrel.LtOrEq{"booking_date": date.Format(domain.DateFormat)}).
		OrderBy("booking_date ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedUpTo - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedUpTo - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Update сохраняет изменяемые поля брони (перенос, состав, заметки)
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("table_id", booking.TableID).
		Set("booking_date", booking.BookingDate.Format(domain.DateFormat)).
		Set("start_time", booking.StartTime).
		Set("duration_minutes", booking.DurationMinutes).
		Set("party_size", booking.PartySize).
		Set("special_requests", booking.SpecialRequests).
		Set("internal_notes", booking.InternalNotes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerrors.IsExclusionViolation(err) {
			return ErrSlotNotAvailable
		}
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// StatusChange параметры условного перехода статуса
type StatusChange struct {
	To     domain.BookingStatus
	From   []domain.BookingStatus // допустимые исходные статусы
	At     time.Time
	By     *int64
	Reason *string
}

// TransitionStatus переводит бронь в новый статус, только если текущий статус входит в From
// Если ни одна строка не изменилась, возвращает ErrStatusConflict
func (r *Repository) TransitionStatus(ctx context.Context, id int64, change StatusChange) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", string(change.To)).
		Set("updated_at", change.At).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": statusStrings(change.From)})

	// Отметка времени для целевого статуса
	switch change.To {
	case domain.StatusConfirmed:
		updateBuilder = updateBuilder.Set("confirmed_at", change.At)
	case domain.StatusCheckedIn:
		updateBuilder = updateBuilder.Set("checked_in_at", change.At)
	case domain.StatusCompleted:
		updateBuilder = updateBuilder.Set("completed_at", change.At)
	case domain.StatusCancelled:
		updateBuilder = updateBuilder.
			Set("cancelled_at", change.At).
			Set("cancelled_by", change.By).
			Set("cancellation_reason", change.Reason)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: TransitionStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: TransitionStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: TransitionStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// MarkNoShowBulk переводит CONFIRMED брони из ids в NO_SHOW одним запросом
// Брони, уже вышедшие из CONFIRMED, пропускаются. Возвращает реально изменённые брони
func (r *Repository) MarkNoShowBulk(ctx context.Context, ids []int64, at time.Time) ([]*domain.Booking, error) {
	if len(ids) == 0 {
		return []*domain.Booking{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", string(domain.StatusNoShow)).
		Set("updated_at", at).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"status": string(domain.StatusConfirmed)}).
		Suffix("RETURNING " + strings.Join(columns(""), ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: MarkNoShowBulk - build update query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: MarkNoShowBulk - execute update: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// CountByStatusForCustomer группирует брони клиента по статусам
func (r *Repository) CountByStatusForCustomer(ctx context.Context, customerID int64) (domain.StatusCounts, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"customer_id": customerID}).
		GroupBy("status").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatusForCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatusForCustomer - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(domain.StatusCounts)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatusForCustomer - scan row: %w", ErrScanRow, err)
		}
		counts[domain.BookingStatus(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatusForCustomer - rows error: %w", ErrScanRow, err)
	}

	return counts, nil
}

// ReassignCustomer переносит все брони клиента from на клиента to (слияние профилей)
func (r *Repository) ReassignCustomer(ctx context.Context, from, to int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("customer_id", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"customer_id": from}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: ReassignCustomer - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ReassignCustomer - execute update: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ReassignCustomer - get rows affected: %w", ErrExecQuery, err)
	}

	return affected, nil
}

// AddHistory добавляет запись в журнал бронирования
func (r *Repository) AddHistory(ctx context.Context, entry *domain.BookingHistory) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_history").
		Columns("booking_id", "action", "old_status", "new_status", "changed_by", "notes").
		Values(entry.BookingID, string(entry.Action), entry.OldStatus, entry.NewStatus, entry.ChangedBy, entry.Notes).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddHistory - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return fmt.Errorf("%w: AddHistory - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// ListHistory получает журнал бронирования в хронологическом порядке
func (r *Repository) ListHistory(ctx context.Context, bookingID int64) ([]*domain.BookingHistory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "action", "old_status", "new_status", "changed_by", "notes", "created_at").
		From("booking_history").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListHistory - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListHistory - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	history := make([]*domain.BookingHistory, 0)
	for rows.Next() {
		var (
			h                    domain.BookingHistory
			action               string
			oldStatus, newStatus sql.NullString
		)
		if err := rows.Scan(&h.ID, &h.BookingID, &action, &oldStatus, &newStatus, &h.ChangedBy, &h.Notes, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListHistory - scan row: %w", ErrScanRow, err)
		}
		h.Action = domain.HistoryAction(action)
		if oldStatus.Valid {
			s := domain.BookingStatus(oldStatus.String)
			h.OldStatus = &s
		}
		if newStatus.Valid {
			s := domain.BookingStatus(newStatus.String)
			h.NewStatus = &s
		}
		history = append(history, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListHistory - rows error: %w", ErrScanRow, err)
	}

	return history, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking              domain.Booking
		status, source       string
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.Code,
		&booking.BranchID,
		&booking.TableID,
		&booking.CustomerID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.DurationMinutes,
		&booking.PartySize,
		&status,
		&source,
		&booking.SpecialRequests,
		&booking.InternalNotes,
		&booking.CreatedBy,
		&booking.CancelledBy,
		&booking.CancellationReason,
		&booking.ConfirmedAt,
		&booking.CancelledAt,
		&booking.CheckedInAt,
		&booking.CompletedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Code = strings.TrimSpace(booking.Code)
	booking.BookingDate = domain.DateOnly(booking.BookingDate)
	booking.Status = domain.BookingStatus(status)
	booking.Source = domain.BookingSource(source)
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

package branch

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/pkg/dbmetrics"
	"github.com/m04kA/TableBookingService/pkg/psqlbuilder"
)

// Repository репозиторий филиалов, часов работы и блокировок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория филиалов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает филиал по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Branch, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "address", "phone", "email", "is_active").
		From("branches").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var branch domain.Branch
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&branch.ID,
		&branch.Name,
		&branch.Address,
		&branch.Phone,
		&branch.Email,
		&branch.IsActive,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBranchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan branch: %w", ErrScanRow, err)
	}

	return &branch, nil
}

// GetOperatingHours получает часы работы филиала на день недели (0 - воскресенье)
func (r *Repository) GetOperatingHours(ctx context.Context, branchID int64, dayOfWeek int) (*domain.OperatingHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"branch_id",
		"day_of_week",
		"open_time",
		"close_time",
		"break_start",
		"break_end",
		"is_closed",
	).
		From("operating_hours").
		Where(squirrel.Eq{"branch_id": branchID}).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOperatingHours - build select query: %v", ErrBuildQuery, err)
	}

	var hours domain.OperatingHour
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.ID,
		&hours.BranchID,
		&hours.DayOfWeek,
		&hours.OpenTime,
		&hours.CloseTime,
		&hours.BreakStart,
		&hours.BreakEnd,
		&hours.IsClosed,
	)

	if err == sql.ErrNoRows {
		return nil, ErrOperatingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOperatingHours - scan operating hours: %w", ErrScanRow, err)
	}

	return &hours, nil
}

// UpsertOperatingHours создает или заменяет часы работы на день недели
func (r *Repository) UpsertOperatingHours(ctx context.Context, hours *domain.OperatingHour) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("operating_hours").
		Columns("branch_id", "day_of_week", "open_time", "close_time", "break_start", "break_end", "is_closed").
		Values(hours.BranchID, hours.DayOfWeek, hours.OpenTime, hours.CloseTime, hours.BreakStart, hours.BreakEnd, hours.IsClosed).
		Suffix(`ON CONFLICT (branch_id, day_of_week) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			break_start = EXCLUDED.break_start,
			break_end = EXCLUDED.break_end,
			is_closed = EXCLUDED.is_closed
			RETURNING id`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertOperatingHours - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&hours.ID); err != nil {
		return fmt.Errorf("%w: UpsertOperatingHours - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

var blockedSlotColumns = []string{"id", "branch_id", "date", "start_time", "end_time", "reason", "created_by", "created_at"}

// CreateBlockedSlot создает блокировку времени
func (r *Repository) CreateBlockedSlot(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns("branch_id", "date", "start_time", "end_time", "reason", "created_by").
		Values(
			slot.BranchID,
			slot.Date.Format(domain.DateFormat),
			slot.StartTime,
			slot.EndTime,
			slot.Reason,
			slot.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedSlot - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &slot.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedSlot - execute insert: %w", ErrExecQuery, err)
	}

	return slot, nil
}

// GetBlockedSlot получает блокировку по ID
func (r *Repository) GetBlockedSlot(ctx context.Context, id int64) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedSlotColumns...).
		From("blocked_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedSlot - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanBlockedSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBlockedSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedSlot - scan blocked slot: %w", ErrScanRow, err)
	}

	return slot, nil
}

// ListBlockedSlots получает блокировки филиала на дату
func (r *Repository) ListBlockedSlots(ctx context.Context, branchID int64, date time.Time) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockedSlotColumns...).
		From("blocked_slots").
		Where(squirrel.Eq{"branch_id": branchID}).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedSlots - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.BlockedSlot, 0)
	for rows.Next() {
		slot, err := scanBlockedSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBlockedSlots - scan row: %w", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedSlots - rows error: %w", ErrScanRow, err)
	}

	return slots, nil
}

// DeleteBlockedSlot удаляет блокировку
func (r *Repository) DeleteBlockedSlot(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedSlot - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedSlot - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedSlot - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedSlotNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlockedSlot(row rowScanner) (*domain.BlockedSlot, error) {
	var slot domain.BlockedSlot
	err := row.Scan(
		&slot.ID,
		&slot.BranchID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Reason,
		&slot.CreatedBy,
		&slot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	slot.Date = domain.DateOnly(slot.Date)
	return &slot, nil
}

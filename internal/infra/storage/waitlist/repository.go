package waitlist

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/pkg/dbmetrics"
	"github.com/m04kA/TableBookingService/pkg/psqlbuilder"
	"github.com/m04kA/TableBookingService/pkg/types"
)

var entryColumns = []string{"id", "branch_id", "customer_id", "date", "time", "party_size", "status", "notes", "notified_at", "created_at"}

// Repository репозиторий листа ожидания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория листа ожидания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись в лист ожидания со статусом PENDING
func (r *Repository) Create(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("waitlist_entries").
		Columns("branch_id", "customer_id", "date", "time", "party_size", "status", "notes").
		Values(
			entry.BranchID,
			entry.CustomerID,
			entry.Date.Format(domain.DateFormat),
			entry.Time,
			entry.PartySize,
			string(domain.WaitlistPending),
			entry.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	entry.Status = domain.WaitlistPending

	return entry, nil
}

// PromoteNext переводит самую раннюю PENDING запись точного слота в NOTIFIED
// Записи, заблокированные параллельной транзакцией, пропускаются (SKIP LOCKED).
// Если подходящей записи нет, возвращает ErrEntryNotFound
func (r *Repository) PromoteNext(ctx context.Context, branchID int64, date time.Time, at types.TimeString, now time.Time) (*domain.WaitlistEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	next := psqlbuilder.Subquery("id").
		From("waitlist_entries").
		Where(squirrel.Eq{"branch_id": branchID}).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"time": at}).
		Where(squirrel.Eq{"status": string(domain.WaitlistPending)}).
		OrderBy("created_at ASC", "id ASC").
		Limit(1).
		Suffix("FOR UPDATE SKIP LOCKED")

	query, args, err := psqlbuilder.Update("waitlist_entries").
		Set("status", string(domain.WaitlistNotified)).
		Set("notified_at", now).
		Where(squirrel.Expr("id = (?)", next)).
		Suffix("RETURNING " + strings.Join(entryColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: PromoteNext - build update query: %v", ErrBuildQuery, err)
	}

	entry, err := scanEntry(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: PromoteNext - scan entry: %w", ErrScanRow, err)
	}

	return entry, nil
}

// ReassignCustomer переносит записи клиента from на клиента to
func (r *Repository) ReassignCustomer(ctx context.Context, from, to int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("waitlist_entries").
		Set("customer_id", to).
		Where(squirrel.Eq{"customer_id": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReassignCustomer - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReassignCustomer - execute update: %w", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row rowScanner) (*domain.WaitlistEntry, error) {
	var (
		entry  domain.WaitlistEntry
		status string
	)
	err := row.Scan(
		&entry.ID,
		&entry.BranchID,
		&entry.CustomerID,
		&entry.Date,
		&entry.Time,
		&entry.PartySize,
		&status,
		&entry.Notes,
		&entry.NotifiedAt,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	entry.Status = domain.WaitlistStatus(status)
	entry.Date = domain.DateOnly(entry.Date)
	return &entry, nil
}

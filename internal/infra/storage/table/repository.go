package table

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/pkg/dbmetrics"
	"github.com/m04kA/TableBookingService/pkg/psqlbuilder"
)

var tableColumns = []string{
	"id",
	"branch_id",
	"number",
	"capacity",
	"min_capacity",
	"type",
	"position_x",
	"position_y",
	"floor",
	"is_combinable",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий столов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает стол по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	table, err := scanTable(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan table: %w", ErrScanRow, err)
	}

	return table, nil
}

// ListFitting получает активные столы филиала, вмещающие компанию, от меньшего к большему
func (r *Repository) ListFitting(ctx context.Context, branchID int64, partySize int) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"branch_id": branchID}).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.GtOrEq{"capacity": partySize}).
		OrderBy("capacity ASC", "number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListFitting - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFitting - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	tables := make([]*domain.Table, 0)
	for rows.Next() {
		table, err := scanTable(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListFitting - scan row: %w", ErrScanRow, err)
		}
		tables = append(tables, table)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListFitting - rows error: %w", ErrScanRow, err)
	}

	return tables, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTable(row rowScanner) (*domain.Table, error) {
	var (
		table     domain.Table
		tableType string
	)
	err := row.Scan(
		&table.ID,
		&table.BranchID,
		&table.Number,
		&table.Capacity,
		&table.MinCapacity,
		&tableType,
		&table.PositionX,
		&table.PositionY,
		&table.Floor,
		&table.IsCombinable,
		&table.IsActive,
		&table.CreatedAt,
		&table.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	table.Type = domain.TableType(tableType)
	return &table, nil
}

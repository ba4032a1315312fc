package loyalty

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/pkg/dbmetrics"
	"github.com/m04kA/TableBookingService/pkg/psqlbuilder"
)

var accountColumns = []string{"id", "customer_id", "points_balance", "tier", "total_referrals", "created_at", "updated_at"}

// Repository репозиторий счетов лояльности и журнала операций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория лояльности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCustomer получает счёт клиента. Внутри транзакции строка блокируется
func (r *Repository) GetByCustomer(ctx context.Context, customerID int64) (*domain.LoyaltyAccount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(accountColumns...).
		From("loyalty_accounts").
		Where(squirrel.Eq{"customer_id": customerID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	var (
		account domain.LoyaltyAccount
		tier    string
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&account.ID,
		&account.CustomerID,
		&account.PointsBalance,
		&tier,
		&account.TotalReferrals,
		&account.CreatedAt,
		&account.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - scan account: %w", ErrScanRow, err)
	}
	account.Tier = domain.LoyaltyTier(tier)

	return &account, nil
}

// CreateIfMissing создает счёт клиента, если его ещё нет. Повторный вызов ничего не меняет
func (r *Repository) CreateIfMissing(ctx context.Context, customerID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("loyalty_accounts").
		Columns("customer_id", "points_balance", "tier").
		Values(customerID, 0, string(domain.LoyaltyRegular)).
		Suffix("ON CONFLICT (customer_id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateIfMissing - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateIfMissing - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// Update сохраняет баланс, уровень и количество рефералов
func (r *Repository) Update(ctx context.Context, account *domain.LoyaltyAccount) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("loyalty_accounts").
		Set("points_balance", account.PointsBalance).
		Set("tier", string(account.Tier)).
		Set("total_referrals", account.TotalReferrals).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": account.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// AddTransaction добавляет запись в журнал операций
func (r *Repository) AddTransaction(ctx context.Context, tx *domain.LoyaltyTransaction) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("loyalty_transactions").
		Columns("account_id", "type", "points", "reason", "booking_id").
		Values(tx.AccountID, string(tx.Type), tx.Points, tx.Reason, tx.BookingID).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddTransaction - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&tx.ID, &tx.CreatedAt); err != nil {
		return fmt.Errorf("%w: AddTransaction - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// ListTransactions получает последние операции по счёту
func (r *Repository) ListTransactions(ctx context.Context, accountID int64, limit int) ([]*domain.LoyaltyTransaction, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if limit <= 0 {
		limit = 20
	}

	query, args, err := psqlbuilder.Select("id", "account_id", "type", "points", "reason", "booking_id", "created_at").
		From("loyalty_transactions").
		Where(squirrel.Eq{"account_id": accountID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListTransactions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTransactions - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	transactions := make([]*domain.LoyaltyTransaction, 0)
	for rows.Next() {
		var (
			tx     domain.LoyaltyTransaction
			txType string
		)
		if err := rows.Scan(&tx.ID, &tx.AccountID, &txType, &tx.Points, &tx.Reason, &tx.BookingID, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListTransactions - scan row: %w", ErrScanRow, err)
		}
		tx.Type = domain.LoyaltyTransactionType(txType)
		transactions = append(transactions, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTransactions - rows error: %w", ErrScanRow, err)
	}

	return transactions, nil
}

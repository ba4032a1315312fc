package customer

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/pkg/dbmetrics"
	"github.com/m04kA/TableBookingService/pkg/psqlbuilder"
)

var customerColumns = []string{
	"id",
	"full_name",
	"email",
	"phone",
	"tier",
	"is_blacklisted",
	"blacklist_reason",
	"total_bookings",
	"successful_bookings",
	"cancelled_bookings",
	"no_show_count",
	"preferences",
	"referred_by",
	"is_active",
	"merged_into_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает профиль клиента
func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	preferences, err := encodePreferences(customer.Preferences)
	if err != nil {
		return nil, err
	}

	tier := customer.Tier
	if tier == "" {
		tier = domain.TierRegular
	}

	query, args, err := psqlbuilder.Insert("customers").
		Columns("full_name", "email", "phone", "tier", "preferences", "referred_by").
		Values(customer.FullName, customer.Email, customer.Phone, string(tier), preferences, customer.ReferredBy).
		Suffix("RETURNING id, is_active, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.IsActive,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	customer.Tier = tier

	return customer, nil
}

// GetByID получает клиента по ID. Внутри транзакции строка блокируется
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	customer, err := scanCustomer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan customer: %w", ErrScanRow, err)
	}

	return customer, nil
}

// FindActiveByContact ищет активного клиента по email (без учёта регистра) или телефону
func (r *Repository) FindActiveByContact(ctx context.Context, email, phone *string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	contact := squirrel.Or{}
	if email != nil && strings.TrimSpace(*email) != "" {
		contact = append(contact, squirrel.Expr("LOWER(email) = LOWER(?)", strings.TrimSpace(*email)))
	}
	if phone != nil && strings.TrimSpace(*phone) != "" {
		contact = append(contact, squirrel.Eq{"phone": strings.TrimSpace(*phone)})
	}
	if len(contact) == 0 {
		return nil, ErrCustomerNotFound
	}

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(squirrel.Eq{"is_active": true}).
		Where(contact).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveByContact - build select query: %v", ErrBuildQuery, err)
	}

	customer, err := scanCustomer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveByContact - scan customer: %w", ErrScanRow, err)
	}

	return customer, nil
}

// SaveStats сохраняет пересчитанные счётчики, уровень и блокировку
func (r *Repository) SaveStats(ctx context.Context, customer *domain.Customer) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("total_bookings", customer.TotalBookings).
		Set("successful_bookings", customer.SuccessfulBookings).
		Set("cancelled_bookings", customer.CancelledBookings).
		Set("no_show_count", customer.NoShowCount).
		Set("tier", string(customer.Tier)).
		Set("is_blacklisted", customer.IsBlacklisted).
		Set("blacklist_reason", customer.BlacklistReason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": customer.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SaveStats - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "SaveStats", query, args)
}

// SetBlacklist включает или снимает блокировку клиента
func (r *Repository) SetBlacklist(ctx context.Context, id int64, blacklisted bool, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("is_blacklisted", blacklisted).
		Set("blacklist_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetBlacklist - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "SetBlacklist", query, args)
}

// MarkMerged деактивирует дубликат и связывает его с основным профилем
func (r *Repository) MarkMerged(ctx context.Context, id, intoID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("is_active", false).
		Set("merged_into_id", intoID).
		Set("is_blacklisted", true).
		Set("blacklist_reason", domain.MergedDuplicateReason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkMerged - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "MarkMerged", query, args)
}

// UpdatePreferences заменяет предпочтения клиента
func (r *Repository) UpdatePreferences(ctx context.Context, id int64, preferences map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	encoded, err := encodePreferences(preferences)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update("customers").
		Set("preferences", encoded).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePreferences - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "UpdatePreferences", query, args)
}

func (r *Repository) execOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var (
		customer    domain.Customer
		tier        string
		preferences []byte
	)

	err := row.Scan(
		&customer.ID,
		&customer.FullName,
		&customer.Email,
		&customer.Phone,
		&tier,
		&customer.IsBlacklisted,
		&customer.BlacklistReason,
		&customer.TotalBookings,
		&customer.SuccessfulBookings,
		&customer.CancelledBookings,
		&customer.NoShowCount,
		&preferences,
		&customer.ReferredBy,
		&customer.IsActive,
		&customer.MergedIntoID,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	customer.Tier = domain.CustomerTier(tier)
	customer.Preferences = map[string]interface{}{}
	if len(preferences) > 0 {
		if err := json.Unmarshal(preferences, &customer.Preferences); err != nil {
			return nil, err
		}
	}

	return &customer, nil
}

func encodePreferences(preferences map[string]interface{}) ([]byte, error) {
	if preferences == nil {
		return []byte("{}"), nil
	}
	encoded, err := json.Marshal(preferences)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodePreferences, err)
	}
	return encoded, nil
}

package timeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/pkg/dbmetrics"
	"github.com/m04kA/TableBookingService/pkg/psqlbuilder"
)

const defaultListLimit = 100

// Repository репозиторий истории клиента
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория истории клиента
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Add добавляет событие в историю клиента
func (r *Repository) Add(ctx context.Context, event *domain.TimelineEvent) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	metadata := []byte("{}")
	if event.Metadata != nil {
		encoded, err := json.Marshal(event.Metadata)
		if err != nil {
			return fmt.Errorf("%w: Add - encode metadata: %v", ErrBuildQuery, err)
		}
		metadata = encoded
	}

	query, args, err := psqlbuilder.Insert("customer_timeline").
		Columns("customer_id", "event_type", "description", "metadata", "actor_id").
		Values(event.CustomerID, string(event.EventType), event.Description, metadata, event.ActorID).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&event.ID, &event.CreatedAt); err != nil {
		return fmt.Errorf("%w: Add - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// ListByCustomer получает историю клиента, новые события первыми
func (r *Repository) ListByCustomer(ctx context.Context, customerID int64, limit int) ([]*domain.TimelineEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if limit <= 0 {
		limit = defaultListLimit
	}

	query, args, err := psqlbuilder.Select("id", "customer_id", "event_type", "description", "metadata", "actor_id", "created_at").
		From("customer_timeline").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	events := make([]*domain.TimelineEvent, 0)
	for rows.Next() {
		var (
			event     domain.TimelineEvent
			eventType string
			metadata  []byte
		)
		if err := rows.Scan(&event.ID, &event.CustomerID, &eventType, &event.Description, &metadata, &event.ActorID, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByCustomer - scan row: %w", ErrScanRow, err)
		}
		event.EventType = domain.TimelineEventType(eventType)
		event.Metadata = map[string]interface{}{}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &event.Metadata); err != nil {
				return nil, fmt.Errorf("%w: ListByCustomer - decode metadata: %w", ErrScanRow, err)
			}
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - rows error: %w", ErrScanRow, err)
	}

	return events, nil
}

// ReassignCustomer переносит историю клиента from на клиента to
func (r *Repository) ReassignCustomer(ctx context.Context, from, to int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customer_timeline").
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

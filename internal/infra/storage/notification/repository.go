package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/pkg/dbmetrics"
	"github.com/m04kA/TableBookingService/pkg/psqlbuilder"
)

// Repository репозиторий уведомлений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет уведомление
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	data := []byte("{}")
	if n.Data != nil {
		encoded, err := json.Marshal(n.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: Create - encode data: %v", ErrBuildQuery, err)
		}
		data = encoded
	}

	status := n.Status
	if status == "" {
		status = domain.NotificationPending
	}

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("recipient_type", "recipient_id", "channel", "title", "message", "data", "status", "sent_at").
		Values(string(n.RecipientType), n.RecipientID, string(n.Channel), n.Title, n.Message, data, string(status), n.SentAt).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &n.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	n.Status = status

	return n, nil
}

// UpdateStatus меняет статус уведомления; для SENT проставляет sent_at
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.NotificationStatus, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("notifications").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id})

	if status == domain.NotificationSent {
		updateBuilder = updateBuilder.Set("sent_at", at)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// ListByRecipient получает уведомления получателя, новые первыми
func (r *Repository) ListByRecipient(ctx context.Context, recipientType domain.RecipientType, recipientID int64, limit int) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if limit <= 0 {
		limit = 50
	}

	query, args, err := psqlbuilder.Select("id", "recipient_type", "recipient_id", "channel", "title", "message", "data", "status", "sent_at", "created_at").
		From("notifications").
		Where(squirrel.Eq{"recipient_type": string(recipientType)}).
		Where(squirrel.Eq{"recipient_id": recipientID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByRecipient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRecipient - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var (
			n                       domain.Notification
			rType, channel, nStatus string
			data                    []byte
		)
		if err := rows.Scan(&n.ID, &rType, &n.RecipientID, &channel, &n.Title, &n.Message, &data, &nStatus, &n.SentAt, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByRecipient - scan row: %w", ErrScanRow, err)
		}
		n.RecipientType = domain.RecipientType(rType)
		n.Channel = domain.NotificationChannel(channel)
		n.Status = domain.NotificationStatus(nStatus)
		if len(data) > 0 {
			if err := json.Unmarshal(data, &n.Data); err != nil {
				return nil, fmt.Errorf("%w: ListByRecipient - decode data: %w", ErrScanRow, err)
			}
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRecipient - rows error: %w", ErrScanRow, err)
	}

	return notifications, nil
}

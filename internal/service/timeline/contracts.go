package timeline

import (
	"context"

	"github.com/m04kA/TableBookingService/internal/domain"
)

// TimelineRepository интерфейс репозитория истории клиента
type TimelineRepository interface {
	Add(ctx context.Context, event *domain.TimelineEvent) error
	ListByCustomer(ctx context.Context, customerID int64, limit int) ([]*domain.TimelineEvent, error)
}

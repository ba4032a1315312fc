package timeline

import (
	"context"
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
)

const defaultListLimit = 100

// Service журнал событий клиента
type Service struct {
	repo TimelineRepository
}

// NewService создает сервис истории клиента
func NewService(repo TimelineRepository) *Service {
	return &Service{repo: repo}
}

// Entry данные события
type Entry struct {
	CustomerID  int64
	Type        domain.TimelineEventType
	Description string
	Metadata    map[string]interface{}
	ActorID     *int64
}

// Record добавляет событие в историю клиента
func (s *Service) Record(ctx context.Context, entry Entry) error {
	if entry.CustomerID <= 0 || entry.Type == "" {
		return ErrInvalidEvent
	}

	err := s.repo.Add(ctx, &domain.TimelineEvent{
		CustomerID:  entry.CustomerID,
		EventType:   entry.Type,
		Description: entry.Description,
		Metadata:    entry.Metadata,
		ActorID:     entry.ActorID,
	})
	if err != nil {
		return fmt.Errorf("%w: Record - add event: %w", ErrInternal, err)
	}

	return nil
}

// List последние события клиента, новые первыми
func (s *Service) List(ctx context.Context, customerID int64, limit int) ([]*domain.TimelineEvent, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	events, err := s.repo.ListByCustomer(ctx, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: List - list events: %w", ErrInternal, err)
	}

	return events, nil
}

package events

import (
	"context"
	"time"
)

// Type тип события realtime-потока
type Type string

const (
	BookingCreated       Type = "BOOKING_CREATED"
	BookingUpdated       Type = "BOOKING_UPDATED"
	BookingStatusChanged Type = "BOOKING_STATUS_CHANGED"
	WaitlistPromoted     Type = "WAITLIST_PROMOTED"
	NotificationSent     Type = "NOTIFICATION"
)

// Event событие для подписчиков (панели филиалов, внешние консьюмеры)
type Event struct {
	Type       Type                   `json:"type"`
	BranchID   int64                  `json:"branch_id,omitempty"`
	BookingID  int64                  `json:"booking_id,omitempty"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// Publisher стратегия публикации событий
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

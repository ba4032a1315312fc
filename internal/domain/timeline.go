package domain

import "time"

// TimelineEventType тип события в истории клиента
type TimelineEventType string

const (
	EventBookingCreated   TimelineEventType = "BOOKING_CREATED"
	EventBookingUpdated   TimelineEventType = "BOOKING_UPDATED"
	EventBookingConfirmed TimelineEventType = "BOOKING_CONFIRMED"
	EventBookingCancelled TimelineEventType = "BOOKING_CANCELLED"
	EventCheckedIn        TimelineEventType = "CHECKED_IN"
	EventCompleted        TimelineEventType = "COMPLETED"
	EventNoShow           TimelineEventType = "NO_SHOW"
	EventWaitlistJoined   TimelineEventType = "WAITLIST_JOINED"
	EventWaitlistPromoted TimelineEventType = "WAITLIST_PROMOTED"
	EventBlacklisted      TimelineEventType = "BLACKLISTED"
	EventBlacklistRemoved TimelineEventType = "BLACKLIST_REMOVED"
	EventLoyaltyUpdated   TimelineEventType = "LOYALTY_UPDATED"
	EventMerged           TimelineEventType = "MERGED"
)

// TimelineEventFor событие истории клиента для перехода брони в статус
func TimelineEventFor(to BookingStatus) TimelineEventType {
	switch to {
	case StatusConfirmed:
		return EventBookingConfirmed
	case StatusCancelled:
		return EventBookingCancelled
	case StatusCheckedIn:
		return EventCheckedIn
	case StatusCompleted:
		return EventCompleted
	case StatusNoShow:
		return EventNoShow
	default:
		return EventBookingUpdated
	}
}

// TimelineEvent запись истории клиента (только добавление)
type TimelineEvent struct {
	ID          int64
	CustomerID  int64
	EventType   TimelineEventType
	Description string
	Metadata    map[string]interface{}
	ActorID     *int64
	CreatedAt   time.Time
}

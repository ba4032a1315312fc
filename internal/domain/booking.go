package domain

import (
	"strings"
	"time"

	"github.com/m04kA/TableBookingService/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCheckedIn BookingStatus = "CHECKED_IN"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusNoShow    BookingStatus = "NO_SHOW"
)

// OccupyingStatuses статусы, при которых бронирование занимает стол/зал
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
}

// AllStatuses все статусы бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// ParseBookingStatus парсит статус без учёта регистра
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, st := range AllStatuses {
		if st == status {
			return status, true
		}
	}
	return "", false
}

// IsOccupying возвращает true для статусов, занимающих слот
func (s BookingStatus) IsOccupying() bool {
	for _, st := range OccupyingStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// BookingSource канал, через который создано бронирование
type BookingSource string

const (
	SourceAdmin   BookingSource = "ADMIN"
	SourceWebsite BookingSource = "WEBSITE"
	SourcePhone   BookingSource = "PHONE"
	SourceWalkIn  BookingSource = "WALK_IN"
)

// IsValid проверяет, что источник известен
func (s BookingSource) IsValid() bool {
	switch s {
	case SourceAdmin, SourceWebsite, SourcePhone, SourceWalkIn:
		return true
	}
	return false
}

// Booking бронирование стола (или зала, если стол не указан) в филиале
type Booking struct {
	ID              int64
	Code            string
	BranchID        int64
	TableID         *int64 // nil - бронь без стола, проверяется по всему залу
	CustomerID      *int64 // nil - гость без профиля (walk-in)
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	PartySize       int
	Status          BookingStatus
	Source          BookingSource

	SpecialRequests *string
	InternalNotes   *string

	CreatedBy          *int64
	CancelledBy        *int64
	CancellationReason *string

	ConfirmedAt *time.Time
	CancelledAt *time.Time
	CheckedInAt *time.Time
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationOr возвращает длительность брони или fallback, если она не задана
func (b *Booking) DurationOr(fallback int) int {
	if b.DurationMinutes > 0 {
		return b.DurationMinutes
	}
	return fallback
}

// Interval интервал, который занимает бронь
func (b *Booking) Interval(fallbackDuration int) (Interval, error) {
	return NewInterval(b.BookingDate, b.StartTime, b.DurationOr(fallbackDuration))
}

// StartsAt момент начала брони в указанной локации
func (b *Booking) StartsAt(loc *time.Location) (time.Time, error) {
	return b.StartTime.On(DateIn(b.BookingDate, loc))
}

// HasSpecialRequests возвращает true, если гость оставил пожелания
func (b *Booking) HasSpecialRequests() bool {
	return b.SpecialRequests != nil && strings.TrimSpace(*b.SpecialRequests) != ""
}

// IsOccupying возвращает true, если бронь занимает слот
func (b *Booking) IsOccupying() bool {
	return b.Status.IsOccupying()
}

// BookingsFilter фильтр списка бронирований
type BookingsFilter struct {
	BranchID   *int64
	BranchIDs  []int64 // ограничение доступных филиалов (для не-master ролей)
	Status     *BookingStatus
	CustomerID *int64
	DateFrom   *time.Time
	DateTo     *time.Time
	Search     string // по коду, имени, телефону, email клиента
	Limit      int
	Offset     int
}

// BookingsPage страница списка бронирований
type BookingsPage struct {
	Items []*Booking
	Total int
}

// HistoryAction действие в журнале бронирования
type HistoryAction string

const (
	ActionCreated       HistoryAction = "BOOKING_CREATED"
	ActionAutoConfirmed HistoryAction = "AUTO_CONFIRMED"
	ActionConfirmed     HistoryAction = "BOOKING_CONFIRMED"
	ActionUpdated       HistoryAction = "BOOKING_UPDATED"
	ActionCancelled     HistoryAction = "BOOKING_CANCELLED"
	ActionNoShow        HistoryAction = "BOOKING_NO_SHOW"
	ActionCheckedIn     HistoryAction = "BOOKING_CHECKED_IN"
	ActionCompleted     HistoryAction = "BOOKING_COMPLETED"
)

// HistoryActionFor действие журнала для перехода в статус
func HistoryActionFor(to BookingStatus) HistoryAction {
	switch to {
	case StatusConfirmed:
		return ActionConfirmed
	case StatusCancelled:
		return ActionCancelled
	case StatusNoShow:
		return ActionNoShow
	case StatusCheckedIn:
		return ActionCheckedIn
	case StatusCompleted:
		return ActionCompleted
	default:
		return ActionUpdated
	}
}

// BookingHistory запись аудита бронирования (только добавление)
type BookingHistory struct {
	ID        int64
	BookingID int64
	Action    HistoryAction
	OldStatus *BookingStatus
	NewStatus *BookingStatus
	ChangedBy *int64
	Notes     *string
	CreatedAt time.Time
}

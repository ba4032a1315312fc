package domain

import (
	"time"

	"github.com/m04kA/TableBookingService/pkg/types"
)

// WaitlistStatus статус записи в листе ожидания
type WaitlistStatus string

const (
	WaitlistPending   WaitlistStatus = "PENDING"
	WaitlistNotified  WaitlistStatus = "NOTIFIED"
	WaitlistConverted WaitlistStatus = "CONVERTED"
	WaitlistCancelled WaitlistStatus = "CANCELLED"
)

// WaitlistEntry запрос слота, на который не было мест
type WaitlistEntry struct {
	ID         int64
	BranchID   int64
	CustomerID *int64
	Date       time.Time
	Time       types.TimeString
	PartySize  int
	Status     WaitlistStatus
	Notes      *string
	NotifiedAt *time.Time
	CreatedAt  time.Time
}

package update_booking

import (
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	updateBooking "github.com/m04kA/TableBookingService/internal/usecase/update_booking"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// UpdateBookingRequest HTTP request model. Отсутствующее поле не меняется, пустая строка очищает текст
type UpdateBookingRequest struct {
	BookingDate     *string `json:"bookingDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime       *string `json:"startTime,omitempty" validate:"omitempty,hhmm"`
	PartySize       *int    `json:"partySize,omitempty" validate:"omitempty,min=1,max=50"`
	DurationMinutes *int    `json:"durationMinutes,omitempty" validate:"omitempty,min=15,max=720"`
	TableID         *int64  `json:"tableId,omitempty" validate:"omitempty,gt=0"`
	ClearTable      bool    `json:"clearTable,omitempty" validate:"excluded_with=TableID"`
	SpecialRequests *string `json:"specialRequests,omitempty" validate:"omitempty,max=1000"`
	InternalNotes   *string `json:"internalNotes,omitempty" validate:"omitempty,max=1000"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(actor domain.Actor, bookingID int64) (*updateBooking.Request, error) {
	req := &updateBooking.Request{
		Actor:           actor,
		BookingID:       bookingID,
		PartySize:       r.PartySize,
		DurationMinutes: r.DurationMinutes,
		TableID:         r.TableID,
		ClearTable:      r.ClearTable,
		SpecialRequests: r.SpecialRequests,
		InternalNotes:   r.InternalNotes,
	}

	if r.BookingDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.BookingDate)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.Time = &startTime
	}

	return req, nil
}

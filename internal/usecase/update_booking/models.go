package update_booking

import (
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/bookings/models"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// Request модель запроса на изменение бронирования. nil - поле не меняется
type Request struct {
	Actor           domain.Actor
	BookingID       int64
	Date            *time.Time
	Time            *types.TimeString
	PartySize       *int
	DurationMinutes *int
	TableID         *int64
	ClearTable      bool // снять привязку к столу
	SpecialRequests *string
	InternalNotes   *string
}

// Response модель ответа
type Response struct {
	Booking     *models.BookingResponse
	Rescheduled bool // изменились дата или время
}

func (r *Request) isEmpty() bool {
	return r.Date == nil && r.Time == nil && r.PartySize == nil && r.DurationMinutes == nil &&
		r.TableID == nil && !r.ClearTable && r.SpecialRequests == nil && r.InternalNotes == nil
}

package notifications

import (
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
)

// BookingConfirmedEmail тема и текст письма о подтверждении брони
func BookingConfirmedEmail(booking *domain.Booking, name string) (string, string) {
	subject := fmt.Sprintf("Booking %s confirmed", booking.Code)
	body := fmt.Sprintf("Dear %s,\n\nYour booking %s for %d guests on %s at %s is confirmed.\n",
		name, booking.Code, booking.PartySize, booking.BookingDate.Format(domain.DateFormat), booking.StartTime)
	return subject, body
}

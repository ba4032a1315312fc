package change_booking_status

import (
	"context"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/bookings/models"
)

type BookingService interface {
	ChangeStatus(ctx context.Context, actor domain.Actor, id int64, req *models.ChangeStatusRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

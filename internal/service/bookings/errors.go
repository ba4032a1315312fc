package bookings

import (
	"errors"
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("%w: bookings: booking not found", domain.ErrNotFound)

	// ErrInvalidTransition возвращается, когда текущий статус не допускает переход
	ErrInvalidTransition = fmt.Errorf("%w: bookings: status transition is not allowed", domain.ErrConflict)

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = fmt.Errorf("%w: bookings: invalid booking status", domain.ErrValidation)

	// ErrReasonTooLong возвращается, когда причина отмены длиннее допустимой
	ErrReasonTooLong = fmt.Errorf("%w: bookings: cancellation reason is too long", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)

package bookingcode

import (
	"errors"
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
)

var (
	// ErrCodeSpaceExhausted возвращается, когда за MaxAttempts попыток не найден свободный код
	ErrCodeSpaceExhausted = fmt.Errorf("%w: bookingcode: failed to generate unique booking code", domain.ErrInternal)

	// ErrInternal возвращается при ошибках хранилища или источника случайности
	ErrInternal = errors.New("bookingcode: internal error")
)

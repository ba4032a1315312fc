package availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
)

var (
	// ErrInvalidTime возвращается при некорректном времени запроса
	ErrInvalidTime = fmt.Errorf("%w: availability: invalid time", domain.ErrValidation)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("availability: internal error")
)

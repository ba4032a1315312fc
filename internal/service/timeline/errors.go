package timeline

import (
	"errors"
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
)

var (
	// ErrInvalidEvent возвращается, когда у события нет клиента или типа
	ErrInvalidEvent = fmt.Errorf("%w: timeline: event requires customer and type", domain.ErrValidation)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("timeline: internal error")
)

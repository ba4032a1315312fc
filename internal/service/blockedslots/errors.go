package blockedslots

import (
	"errors"
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
)

var (
	// ErrBlockedSlotNotFound возвращается, когда блокировка не найдена
	ErrBlockedSlotNotFound = fmt.Errorf("%w: blockedslots: blocked slot not found", domain.ErrNotFound)

	// ErrInvalidInterval возвращается, когда конец блокировки не позже начала
	ErrInvalidInterval = fmt.Errorf("%w: blockedslots: end time must be after start time", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных дате или времени
	ErrInvalidInput = fmt.Errorf("%w: blockedslots: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("blockedslots: internal error")
)

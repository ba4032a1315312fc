package automation

import (
	"errors"
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
)

var (
	// ErrInvalidWaitlistEntry возвращается при некорректной записи листа ожидания
	ErrInvalidWaitlistEntry = fmt.Errorf("%w: automation: invalid waitlist entry", domain.ErrValidation)

	// ErrInternal возвращается при ошибках хранилища и планировщика
	ErrInternal = errors.New("automation: internal error")
)

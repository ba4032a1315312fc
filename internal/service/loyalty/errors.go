package loyalty

import (
	"errors"
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
)

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = fmt.Errorf("%w: loyalty: customer not found", domain.ErrNotFound)

	// ErrInvalidPoints возвращается при неположительном количестве баллов
	ErrInvalidPoints = fmt.Errorf("%w: loyalty: points must be positive", domain.ErrValidation)

	// ErrNegativeBalance возвращается, когда корректировка уводит баланс в минус
	ErrNegativeBalance = fmt.Errorf("%w: loyalty: balance cannot become negative", domain.ErrValidation)

	// ErrInsufficientPoints возвращается, когда баллов для списания недостаточно
	ErrInsufficientPoints = fmt.Errorf("%w: loyalty: insufficient points", domain.ErrConflict)

	// ErrSelfReferral возвращается, когда клиент указан рефералом самого себя
	ErrSelfReferral = fmt.Errorf("%w: loyalty: customer cannot refer themselves", domain.ErrValidation)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("loyalty: internal error")
)

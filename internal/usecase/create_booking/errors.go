package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: create_booking: invalid input data", domain.ErrValidation)

	// ErrInvalidDate возвращается, когда дата бронирования в прошлом
	ErrInvalidDate = fmt.Errorf("%w: create_booking: booking date is in the past", domain.ErrValidation)

	// ErrDateTooFarInFuture возвращается, когда дата дальше разрешённого горизонта
	ErrDateTooFarInFuture = fmt.Errorf("%w: create_booking: date is too far in the future", domain.ErrValidation)

	// ErrBranchClosed возвращается, когда филиал закрыт в запрошенное время
	ErrBranchClosed = fmt.Errorf("%w: create_booking: branch is closed at this time", domain.ErrValidation)

	// ErrCustomerBlacklisted возвращается, когда клиент в чёрном списке
	ErrCustomerBlacklisted = fmt.Errorf("%w: create_booking: customer is blacklisted", domain.ErrConflict)

	// ErrTableNotFound возвращается, когда стол не найден в филиале
	ErrTableNotFound = fmt.Errorf("%w: create_booking: table not found", domain.ErrNotFound)

	// ErrTableInactive возвращается, когда стол выключен
	ErrTableInactive = fmt.Errorf("%w: create_booking: table is not active", domain.ErrValidation)

	// ErrTableTooSmall возвращается, когда стол не вмещает компанию
	ErrTableTooSmall = fmt.Errorf("%w: create_booking: table capacity is less than party size", domain.ErrValidation)

	// ErrSlotNotAvailable возвращается, когда стол занят параллельной бронью
	ErrSlotNotAvailable = fmt.Errorf("%w: create_booking: slot is not available", domain.ErrConflict)

	// ErrSlotLocked возвращается, когда стол бронирует другой запрос и блокировка не освободилась за LockWait
	ErrSlotLocked = fmt.Errorf("%w: create_booking: slot is being booked", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

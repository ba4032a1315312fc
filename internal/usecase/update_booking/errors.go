package update_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: update_booking: invalid input data", domain.ErrValidation)

	// ErrNoChanges возвращается, когда запрос ничего не меняет
	ErrNoChanges = fmt.Errorf("%w: update_booking: nothing to update", domain.ErrValidation)

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("%w: update_booking: booking not found", domain.ErrNotFound)

	// ErrNotUpdatable возвращается, когда статус брони не допускает изменений
	ErrNotUpdatable = fmt.Errorf("%w: update_booking: only pending or confirmed bookings can be updated", domain.ErrConflict)

	// ErrInvalidDate возвращается, когда новая дата в прошлом
	ErrInvalidDate = fmt.Errorf("%w: update_booking: booking date is in the past", domain.ErrValidation)

	// ErrDateTooFarInFuture возвращается, когда новая дата дальше разрешённого горизонта
	ErrDateTooFarInFuture = fmt.Errorf("%w: update_booking: date is too far in the future", domain.ErrValidation)

	// ErrBranchClosed возвращается, когда филиал закрыт в новое время
	ErrBranchClosed = fmt.Errorf("%w: update_booking: branch is closed at this time", domain.ErrValidation)

	// ErrTableNotFound возвращается, когда стол не найден в филиале
	ErrTableNotFound = fmt.Errorf("%w: update_booking: table not found", domain.ErrNotFound)

	// ErrTableInactive возвращается, когда стол выключен
	ErrTableInactive = fmt.Errorf("%w: update_booking: table is not active", domain.ErrValidation)

	// ErrTableTooSmall возвращается, когда стол не вмещает компанию
	ErrTableTooSmall = fmt.Errorf("%w: update_booking: table capacity is less than party size", domain.ErrValidation)

	// ErrSlotNotAvailable возвращается, когда новый слот занят
	ErrSlotNotAvailable = fmt.Errorf("%w: update_booking: slot is not available", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)

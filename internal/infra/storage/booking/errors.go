package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotNotAvailable возвращается, когда вставка/перенос нарушает ограничение на пересечение броней стола
	ErrSlotNotAvailable = errors.New("booking.repository: slot not available")

	// ErrDuplicateCode возвращается при коллизии кода бронирования
	ErrDuplicateCode = errors.New("booking.repository: duplicate booking code")

	// ErrStatusConflict возвращается, когда условный переход статуса не затронул ни одной строки
	ErrStatusConflict = errors.New("booking.repository: booking status does not allow transition")

	// ErrNotInTransaction возвращается, когда advisory lock запрошен вне транзакции
	ErrNotInTransaction = errors.New("booking.repository: lock requires an active transaction")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

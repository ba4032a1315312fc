package staffservice

import "errors"

var (
	// ErrStaffNotFound возвращается, когда пользователь не является сотрудником
	ErrStaffNotFound = errors.New("staffservice client: staff member not found")

	// ErrStaffInactive возвращается, когда учётная запись сотрудника отключена
	ErrStaffInactive = errors.New("staffservice client: staff member is inactive")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("staffservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("staffservice client: invalid response")
)

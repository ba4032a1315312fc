package domain

import "errors"

// Базовые категории ошибок. Ошибки пакетов оборачивают одну из них,
// API слой по errors.Is выбирает HTTP статус
var (
	// ErrNotFound сущность не найдена (404)
	ErrNotFound = errors.New("not found")

	// ErrForbidden нет прав на действие (403)
	ErrForbidden = errors.New("forbidden")

	// ErrValidation некорректные входные данные или нарушение правила (400)
	ErrValidation = errors.New("validation failed")

	// ErrConflict состояние не позволяет выполнить действие (409)
	ErrConflict = errors.New("conflict")

	// ErrInternal непредвиденная ошибка (500)
	ErrInternal = errors.New("internal error")
)

package auto_cancel_overdue

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("auto_cancel_overdue: internal error")

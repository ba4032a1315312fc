package bookingcode

import "context"

// CodeChecker проверка занятости кода
type CodeChecker interface {
	CodeExists(ctx context.Context, code string) (bool, error)
}

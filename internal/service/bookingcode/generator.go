package bookingcode

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/m04kA/TableBookingService/internal/domain"
)

// Generator генератор уникальных кодов бронирования
type Generator struct {
	checker     CodeChecker
	maxAttempts int
	random      io.Reader
}

// NewGenerator создает генератор кодов
func NewGenerator(checker CodeChecker, maxAttempts int) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = domain.DefaultCodeMaxAttempts
	}
	return &Generator{
		checker:     checker,
		maxAttempts: maxAttempts,
		random:      rand.Reader,
	}
}

// Generate возвращает код, которого ещё нет в хранилище
func (g *Generator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		code, err := g.randomCode()
		if err != nil {
			return "", fmt.Errorf("%w: Generate - random source: %v", ErrInternal, err)
		}

		exists, err := g.checker.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("%w: Generate - check code: %w", ErrInternal, err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", ErrCodeSpaceExhausted
}

func (g *Generator) randomCode() (string, error) {
	alphabet := domain.BookingCodeAlphabet
	max := big.NewInt(int64(len(alphabet)))

	code := make([]byte, domain.BookingCodeLength)
	for i := range code {
		n, err := rand.Int(g.random, max)
		if err != nil {
			return "", err
		}
		code[i] = alphabet[n.Int64()]
	}
	return string(code), nil
}

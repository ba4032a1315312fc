package bookingcode

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TableBookingService/internal/domain"
)

type MockCodeChecker struct {
	mock.Mock
}

func (m *MockCodeChecker) CodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func TestGenerate_Alphabet(t *testing.T) {
	checker := new(MockCodeChecker)
	checker.On("CodeExists", mock.Anything, mock.Anything).Return(false, nil)

	gen := NewGenerator(checker, 10)

	for i := 0; i < 50; i++ {
		code, err := gen.Generate(context.Background())
		require.NoError(t, err)
		assert.Len(t, code, domain.BookingCodeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(domain.BookingCodeAlphabet, c), "unexpected char %q", c)
		}
	}
}

func TestGenerate_RetriesOnCollision(t *testing.T) {
	checker := new(MockCodeChecker)
	checker.On("CodeExists", mock.Anything, mock.Anything).Return(true, nil).Twice()
	checker.On("CodeExists", mock.Anything, mock.Anything).Return(false, nil).Once()

	gen := NewGenerator(checker, 10)

	code, err := gen.Generate(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, code)
	checker.AssertNumberOfCalls(t, "CodeExists", 3)
}

func TestGenerate_Exhausted(t *testing.T) {
	checker := new(MockCodeChecker)
	checker.On("CodeExists", mock.Anything, mock.Anything).Return(true, nil)

	gen := NewGenerator(checker, 3)

	_, err := gen.Generate(context.Background())

	assert.ErrorIs(t, err, ErrCodeSpaceExhausted)
	assert.ErrorIs(t, err, domain.ErrInternal)
	checker.AssertNumberOfCalls(t, "CodeExists", 3)
}

func TestGenerate_CheckerError(t *testing.T) {
	checker := new(MockCodeChecker)
	checker.On("CodeExists", mock.Anything, mock.Anything).Return(false, errors.New("db down"))

	_, err := NewGenerator(checker, 3).Generate(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}

// codeSet хранилище уже выданных кодов
type codeSet map[string]struct{}

func (s codeSet) CodeExists(_ context.Context, code string) (bool, error) {
	_, ok := s[code]
	return ok, nil
}

func TestGenerate_ManyCodesAgainstIssued(t *testing.T) {
	const (
		issued    = 5000
		generated = 10000
	)

	alphabet := domain.BookingCodeAlphabet
	set := make(codeSet, issued+generated)
	for i := 0; len(set) < issued; i++ {
		code := make([]byte, domain.BookingCodeLength)
		n := i
		for j := range code {
			code[j] = alphabet[n%len(alphabet)]
			n /= len(alphabet)
		}
		set[string(code)] = struct{}{}
	}

	gen := NewGenerator(set, domain.DefaultCodeMaxAttempts)

	for i := 0; i < generated; i++ {
		code, err := gen.Generate(context.Background())
		require.NoError(t, err)
		_, dup := set[code]
		require.False(t, dup, "code %s issued twice", code)
		set[code] = struct{}{}
	}

	assert.Len(t, set, issued+generated)
}

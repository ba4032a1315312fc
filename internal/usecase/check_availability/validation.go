package check_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
)

const (
	defaultStepMinutes = 30
	maxStepMinutes     = 240
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time != nil {
		if err := req.Time.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
		}
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: party size must be between %d and %d", ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.StepMinutes < 0 || req.StepMinutes > maxStepMinutes {
		return fmt.Errorf("%w: step must be between 0 and %d minutes", ErrInvalidInput, maxStepMinutes)
	}

	return nil
}

// validateDate дата не в прошлом и не дальше maxAdvanceDays календарных дней от сегодня
func validateDate(date, now time.Time, maxAdvanceDays int) error {
	today := domain.DateOnly(now)
	day := domain.DateOnly(date)

	if day.Before(today) {
		return ErrInvalidDate
	}

	if maxAdvanceDays > 0 && day.After(today.AddDate(0, 0, maxAdvanceDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxAdvanceDays)
	}

	return nil
}

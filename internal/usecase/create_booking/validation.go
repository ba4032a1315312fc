package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BranchID <= 0 {
		return fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.PartySize < domain.MinPartySize || req.PartySize > domain.MaxPartySize {
		return fmt.Errorf("%w: party size must be between %d and %d", ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	// 0 - длительность по умолчанию
	if req.DurationMinutes != 0 &&
		(req.DurationMinutes < domain.MinDurationMinutes || req.DurationMinutes > domain.MaxDurationMinutes) {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.Source != "" && !req.Source.IsValid() {
		return fmt.Errorf("%w: unknown source %q", ErrInvalidInput, req.Source)
	}

	if tooLong(req.SpecialRequests) || tooLong(req.InternalNotes) {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate дата не в прошлом и не дальше maxAdvanceDays календарных дней от сегодня
func validateDate(bookingDate, now time.Time, maxAdvanceDays int) error {
	today := domain.DateOnly(now)
	date := domain.DateOnly(bookingDate)

	if date.Before(today) {
		return ErrInvalidDate
	}

	if maxAdvanceDays > 0 && date.After(today.AddDate(0, 0, maxAdvanceDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxAdvanceDays)
	}

	return nil
}

// validateTable стол из филиала, активен и вмещает компанию
func validateTable(table *domain.Table, branchID int64, partySize int) error {
	if table.BranchID != branchID {
		return ErrTableNotFound
	}
	if !table.IsActive {
		return ErrTableInactive
	}
	if !table.CanSeat(partySize) {
		return ErrTableTooSmall
	}
	return nil
}

func tooLong(s *string) bool {
	return s != nil && len([]rune(*s)) > domain.MaxNotesLength
}

func normalize(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

package update_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.isEmpty() {
		return ErrNoChanges
	}

	if req.Time != nil {
		if err := req.Time.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
		}
	}

	if req.PartySize != nil && (*req.PartySize < domain.MinPartySize || *req.PartySize > domain.MaxPartySize) {
		return fmt.Errorf("%w: party size must be between %d and %d", ErrInvalidInput, domain.MinPartySize, domain.MaxPartySize)
	}

	if req.DurationMinutes != nil &&
		(*req.DurationMinutes < domain.MinDurationMinutes || *req.DurationMinutes > domain.MaxDurationMinutes) {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.TableID != nil && req.ClearTable {
		return fmt.Errorf("%w: tableId and clearTable are mutually exclusive", ErrInvalidInput)
	}

	for _, s := range []*string{req.SpecialRequests, req.InternalNotes} {
		if s != nil && len([]rune(*s)) > domain.MaxNotesLength {
			return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
		}
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

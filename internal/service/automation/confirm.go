package automation

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/availability"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// ConfirmInput данные новой брони для решения об автоподтверждении
type ConfirmInput struct {
	BranchID           int64
	Date               time.Time
	Time               types.TimeString
	PartySize          int
	Tier               domain.CustomerTier
	HasSpecialRequests bool
}

// ShouldAutoConfirm VIP подтверждается всегда, пожелания гостя требуют ручного подтверждения,
// иначе подтверждаем, пока свободна не меньше заданной доли столов
func (s *Service) ShouldAutoConfirm(ctx context.Context, in ConfirmInput) (bool, error) {
	if in.Tier == domain.TierVIP {
		return true, nil
	}
	if in.HasSpecialRequests {
		return false, nil
	}

	total, err := s.calendar.CountActiveTables(ctx, in.BranchID)
	if err != nil {
		return false, fmt.Errorf("%w: ShouldAutoConfirm - count tables: %w", ErrInternal, err)
	}
	if total == 0 {
		return false, nil
	}

	available, err := s.calendar.GetAvailableTables(ctx, in.BranchID, in.Date, in.Time, in.PartySize)
	if err != nil {
		return false, fmt.Errorf("%w: ShouldAutoConfirm - available tables: %w", ErrInternal, err)
	}

	return float64(len(available))/float64(total) >= s.ratio, nil
}

// SuggestAlternativeSlots ближайшие свободные времена того же дня по всему залу.
// Смещения, выходящие за пределы суток, пропускаются
func (s *Service) SuggestAlternativeSlots(ctx context.Context, branchID int64, date time.Time, t types.TimeString, partySize int) ([]types.TimeString, error) {
	suggestions := make([]types.TimeString, 0, domain.MaxAlternativeSuggestions)

	for _, offset := range domain.AlternativeSlotOffsets {
		candidate, err := t.AddMinutes(offset)
		if err != nil {
			continue
		}

		free, err := s.availability.CheckAvailability(ctx, availability.Query{
			BranchID:        branchID,
			Date:            date,
			Time:            candidate,
			DurationMinutes: s.duration,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: SuggestAlternativeSlots - check %s: %w", ErrInternal, candidate, err)
		}
		if !free {
			continue
		}

		suggestions = append(suggestions, candidate)
		if len(suggestions) == domain.MaxAlternativeSuggestions {
			break
		}
	}

	s.logger.Info("SuggestAlternativeSlots: branch=%d date=%s time=%s party=%d found=%d",
		branchID, date.Format(domain.DateFormat), t, partySize, len(suggestions))
	return suggestions, nil
}

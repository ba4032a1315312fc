package check_availability

import (
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// generateTimeSlots времена начала на день с шагом step.
// Филиал открыт строго между открытием и закрытием, поэтому первый слот - open+step.
// Для сегодняшней даты прошедшие слоты отбрасываются
func generateTimeSlots(hours *domain.OperatingHour, step int, date, now time.Time) ([]types.TimeString, error) {
	if hours == nil || hours.IsClosed || hours.OpenTime.IsZero() || hours.CloseTime.IsZero() {
		return []types.TimeString{}, nil
	}

	// Шаг 1: все слоты внутри часов работы
	all := make([]types.TimeString, 0)
	current := hours.OpenTime
	for {
		next, err := current.AddMinutes(step)
		if err != nil {
			// дальше конца суток
			break
		}
		if !next.IsBefore(hours.CloseTime) {
			break
		}
		all = append(all, next)
		current = next
	}

	// Шаг 2: дата не сегодня - возвращаем все
	if !domain.DateOnly(date).Equal(domain.DateOnly(now)) {
		return all, nil
	}

	// Шаг 3: сегодня - только слоты позже текущего времени
	currentTime := types.NewTimeString(now)
	upcoming := make([]types.TimeString, 0, len(all))
	for _, slot := range all {
		if slot.IsAfter(currentTime) {
			upcoming = append(upcoming, slot)
		}
	}

	return upcoming, nil
}

package domain

import (
	"time"

	"github.com/m04kA/TableBookingService/pkg/types"
)

// Interval полуоткрытый интервал [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval интервал от времени start в дату date длительностью durationMinutes
// Дата приводится к полуночи UTC, поэтому интервалы разных записей сравнимы между собой
func NewInterval(date time.Time, start types.TimeString, durationMinutes int) (Interval, error) {
	from, err := start.On(DateOnly(date))
	if err != nil {
		return Interval{}, err
	}
	return Interval{
		Start: from,
		End:   from.Add(time.Duration(durationMinutes) * time.Minute),
	}, nil
}

// NewIntervalBetween интервал между двумя временами одной даты
func NewIntervalBetween(date time.Time, start, end types.TimeString) (Interval, error) {
	from, err := start.On(DateOnly(date))
	if err != nil {
		return Interval{}, err
	}
	to, err := end.On(DateOnly(date))
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: from, End: to}, nil
}

// Overlaps пересечение полуоткрытых интервалов: соприкасающиеся концы не пересекаются
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// DateOnly отбрасывает время и приводит дату к полуночи UTC (год, месяц, день сохраняются)
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateIn полночь календарной даты t в локации loc
func DateIn(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// CalendarDaysBetween количество календарных дней от from до to (в локации loc)
func CalendarDaysBetween(from, to time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	a := DateOnly(from.In(loc))
	b := DateOnly(to)
	return int(b.Sub(a).Hours() / 24)
}

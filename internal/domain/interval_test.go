package domain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TableBookingService/pkg/types"
)

func TestInterval_Overlaps_Touching(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	first, err := NewInterval(date, "18:00", 120)
	require.NoError(t, err)
	touching, err := NewInterval(date, "20:00", 60)
	require.NoError(t, err)
	inside, err := NewInterval(date, "19:59", 10)
	require.NoError(t, err)

	assert.False(t, first.Overlaps(touching))
	assert.False(t, touching.Overlaps(first))
	assert.True(t, first.Overlaps(inside))
}

// Перекрытие совпадает с формулой s1 < e2 && s2 < e1 на случайных интервалах
func TestInterval_Overlaps_MatchesFormula(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 2000; i++ {
		s1 := rnd.Intn(20 * 60)
		e1 := s1 + 1 + rnd.Intn(180)
		s2 := rnd.Intn(20 * 60)
		e2 := s2 + 1 + rnd.Intn(180)

		a := Interval{Start: date.Add(time.Duration(s1) * time.Minute), End: date.Add(time.Duration(e1) * time.Minute)}
		b := Interval{Start: date.Add(time.Duration(s2) * time.Minute), End: date.Add(time.Duration(e2) * time.Minute)}

		assert.Equal(t, s1 < e2 && s2 < e1, a.Overlaps(b), "a=[%d,%d) b=[%d,%d)", s1, e1, s2, e2)
	}
}

func TestNewInterval_NormalizesDate(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	date := time.Date(2025, 3, 10, 23, 30, 0, 0, moscow)

	in, err := NewInterval(date, types.TimeString("12:00"), 90)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), in.Start)
	assert.Equal(t, time.Date(2025, 3, 10, 13, 30, 0, 0, time.UTC), in.End)
}

func TestCalendarDaysBetween(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, CalendarDaysBetween(now, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), time.UTC))
	assert.Equal(t, 30, CalendarDaysBetween(now, time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC), time.UTC))
	assert.Equal(t, -1, CalendarDaysBetween(now, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), time.UTC))
}

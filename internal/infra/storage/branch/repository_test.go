package branch

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TableBookingService/pkg/types"
)

func TestRepository_GetOperatingHours(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM operating_hours WHERE branch_id = $1 AND day_of_week = $2")).
		WithArgs(int64(1), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "branch_id", "day_of_week", "open_time", "close_time", "break_start", "break_end", "is_closed"}).
			AddRow(int64(3), int64(1), 1, []byte("09:00:00"), []byte("22:00:00"), nil, nil, false))

	hours, err := repo.GetOperatingHours(context.Background(), 1, 1)

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), hours.OpenTime)
	assert.Equal(t, types.TimeString("22:00"), hours.CloseTime)
	assert.True(t, hours.BreakStart.IsZero())
	assert.True(t, hours.IsOpenAt("18:00"))
}

func TestRepository_GetOperatingHours_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery("FROM operating_hours").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetOperatingHours(context.Background(), 1, 0)

	assert.ErrorIs(t, err, ErrOperatingHoursNotFound)
}

func TestRepository_ListBlockedSlots(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM blocked_slots WHERE branch_id = $1 AND date = $2 ORDER BY start_time ASC")).
		WithArgs(int64(1), "2025-03-10").
		WillReturnRows(sqlmock.NewRows(blockedSlotColumns).
			AddRow(int64(1), int64(1), date, []byte("19:00:00"), []byte("21:00:00"), "private event", nil, time.Now()))

	slots, err := repo.ListBlockedSlots(context.Background(), 1, date)

	require.NoError(t, err)
	require.Len(t, slots, 1)
	in, err := slots[0].Interval()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, in.End.Sub(in.Start))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteBlockedSlot_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM blocked_slots WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.DeleteBlockedSlot(context.Background(), 9)

	assert.ErrorIs(t, err, ErrBlockedSlotNotFound)
}

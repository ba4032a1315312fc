package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TableBookingService/internal/domain"
	branchRepo "github.com/m04kA/TableBookingService/internal/infra/storage/branch"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	"github.com/m04kA/TableBookingService/pkg/ptr"
	"github.com/m04kA/TableBookingService/pkg/types"
)

var (
	// Воскресенье 18:10
	now    = time.Date(2025, 3, 9, 18, 10, 0, 0, time.UTC)
	sunday = time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	staff = domain.Actor{UserID: 3, Role: domain.RoleStaff, BranchID: ptr.Ptr(int64(1))}

	eveningHours = &domain.OperatingHour{BranchID: 1, OpenTime: "17:00", CloseTime: "22:00"}
)

type fixture struct {
	hours     *MockHoursRepository
	calendar  *MockCalendar
	suggester *MockSuggester
	uc        *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		hours:     new(MockHoursRepository),
		calendar:  new(MockCalendar),
		suggester: new(MockSuggester),
	}
	f.uc = NewUseCase(f.hours, f.calendar, f.suggester, permission.NewChecker(), 0, nil, MockLogger{})
	f.uc.timeProvider = fixedTime{now: now}
	return f
}

func TestExecute_TimeAvailable(t *testing.T) {
	f := newFixture()
	f.calendar.On("IsOpen", mock.Anything, int64(1), monday, types.TimeString("19:00")).Return(true, nil)
	f.calendar.On("GetAvailableTables", mock.Anything, int64(1), monday, types.TimeString("19:00"), 4).Return([]*domain.Table{
		{ID: 5, Number: "T5", Capacity: 4, Type: "STANDARD"},
		{ID: 6, Number: "T6", Capacity: 6, Type: "BOOTH"},
	}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		Actor:     staff,
		BranchID:  1,
		Date:      monday,
		Time:      ptr.Ptr(types.TimeString("19:00")),
		PartySize: 4,
	})

	require.NoError(t, err)
	assert.True(t, resp.Open)
	assert.Equal(t, 2, resp.AvailableTables)
	assert.Equal(t, "T5", resp.Tables[0].Number)
	assert.Empty(t, resp.Suggestions)
	f.suggester.AssertNotCalled(t, "SuggestAlternativeSlots", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_TimeFullyBookedSuggestsAlternatives(t *testing.T) {
	f := newFixture()
	f.calendar.On("IsOpen", mock.Anything, int64(1), monday, types.TimeString("19:00")).Return(true, nil)
	f.calendar.On("GetAvailableTables", mock.Anything, int64(1), monday, types.TimeString("19:00"), 4).Return([]*domain.Table{}, nil)
	f.suggester.On("SuggestAlternativeSlots", mock.Anything, int64(1), monday, types.TimeString("19:00"), 4).
		Return([]types.TimeString{"18:00", "20:30"}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		Actor:     staff,
		BranchID:  1,
		Date:      monday,
		Time:      ptr.Ptr(types.TimeString("19:00")),
		PartySize: 4,
	})

	require.NoError(t, err)
	assert.Zero(t, resp.AvailableTables)
	assert.Equal(t, []types.TimeString{"18:00", "20:30"}, resp.Suggestions)
}

func TestExecute_TimeClosed(t *testing.T) {
	f := newFixture()
	f.calendar.On("IsOpen", mock.Anything, int64(1), monday, types.TimeString("23:30")).Return(false, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		Actor:     staff,
		BranchID:  1,
		Date:      monday,
		Time:      ptr.Ptr(types.TimeString("23:30")),
		PartySize: 2,
	})

	require.NoError(t, err)
	assert.False(t, resp.Open)
	assert.Zero(t, resp.AvailableTables)
	f.calendar.AssertNotCalled(t, "GetAvailableTables", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_DayGrid(t *testing.T) {
	f := newFixture()
	f.hours.On("GetOperatingHours", mock.Anything, int64(1), int(time.Monday)).Return(eveningHours, nil)
	f.calendar.On("GetAvailableTables", mock.Anything, int64(1), monday, types.TimeString("19:00"), 2).
		Return([]*domain.Table{}, nil)
	f.calendar.On("GetAvailableTables", mock.Anything, int64(1), monday, mock.Anything, 2).
		Return([]*domain.Table{{ID: 1, Capacity: 2}}, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{
		Actor:       staff,
		BranchID:    1,
		Date:        monday,
		PartySize:   2,
		StepMinutes: 60,
	})

	require.NoError(t, err)
	assert.True(t, resp.Open)
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, Slot{StartTime: "18:00", AvailableTables: 1}, resp.Slots[0])
	assert.Equal(t, Slot{StartTime: "19:00", AvailableTables: 0}, resp.Slots[1])
	assert.Equal(t, types.TimeString("21:00"), resp.Slots[3].StartTime)
}

func TestExecute_DayGrid_NoHours(t *testing.T) {
	f := newFixture()
	f.hours.On("GetOperatingHours", mock.Anything, int64(1), int(time.Monday)).Return(nil, branchRepo.ErrOperatingHoursNotFound)

	resp, err := f.uc.Execute(context.Background(), &Request{Actor: staff, BranchID: 1, Date: monday, PartySize: 2})

	require.NoError(t, err)
	assert.False(t, resp.Open)
	assert.Empty(t, resp.Slots)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "party too large",
			req:     &Request{Actor: staff, BranchID: 1, Date: monday, PartySize: domain.MaxPartySize + 1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad time",
			req:     &Request{Actor: staff, BranchID: 1, Date: monday, Time: ptr.Ptr(types.TimeString("25:00")), PartySize: 2},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "past date",
			req:     &Request{Actor: staff, BranchID: 1, Date: sunday.AddDate(0, 0, -1), PartySize: 2},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "beyond horizon",
			req:     &Request{Actor: staff, BranchID: 1, Date: sunday.AddDate(0, 0, domain.DefaultMaxAdvanceDays+1), PartySize: 2},
			wantErr: ErrDateTooFarInFuture,
		},
		{
			name:    "other branch",
			req:     &Request{Actor: staff, BranchID: 2, Date: monday, PartySize: 2},
			wantErr: permission.ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			resp, err := f.uc.Execute(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

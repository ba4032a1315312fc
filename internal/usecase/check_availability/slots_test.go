package check_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	tests := []struct {
		name  string
		hours *domain.OperatingHour
		step  int
		date  time.Time
		want  []types.TimeString
	}{
		{
			name:  "other day keeps all slots",
			hours: eveningHours,
			step:  60,
			date:  monday,
			want:  []types.TimeString{"18:00", "19:00", "20:00", "21:00"},
		},
		{
			name:  "today drops past slots",
			hours: eveningHours,
			step:  60,
			date:  sunday,
			want:  []types.TimeString{"19:00", "20:00", "21:00"},
		},
		{
			name:  "closed day",
			hours: &domain.OperatingHour{IsClosed: true, OpenTime: "10:00", CloseTime: "20:00"},
			step:  30,
			date:  monday,
			want:  []types.TimeString{},
		},
		{
			name:  "close near midnight",
			hours: &domain.OperatingHour{OpenTime: "20:00", CloseTime: "23:59"},
			step:  120,
			date:  monday,
			want:  []types.TimeString{"22:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := generateTimeSlots(tt.hours, tt.step, tt.date, now)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

package domain

import (
	"time"

	"github.com/m04kA/TableBookingService/pkg/types"
)

// Branch филиал ресторана
type Branch struct {
	ID       int64
	Name     string
	Address  string
	Phone    *string
	Email    *string
	IsActive bool
}

// OperatingHour часы работы филиала в день недели (0 - воскресенье ... 6 - суббота)
// Пара (BranchID, DayOfWeek) уникальна
type OperatingHour struct {
	ID         int64
	BranchID   int64
	DayOfWeek  int
	OpenTime   types.TimeString // пусто - не задано
	CloseTime  types.TimeString
	BreakStart types.TimeString
	BreakEnd   types.TimeString
	IsClosed   bool
}

// IsOpenAt филиал открыт строго между открытием и закрытием.
// Отсутствие времени или флаг IsClosed означают "закрыто"
func (h *OperatingHour) IsOpenAt(t types.TimeString) bool {
	if h == nil || h.IsClosed || h.OpenTime.IsZero() || h.CloseTime.IsZero() {
		return false
	}
	return t.IsAfter(h.OpenTime) && t.IsBefore(h.CloseTime)
}

// BlockedSlot окно недоступности филиала, заданное администратором.
// Неизменяемо: для правки удаляется и создаётся заново
type BlockedSlot struct {
	ID        int64
	BranchID  int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Reason    *string
	CreatedBy *int64
	CreatedAt time.Time
}

// Interval интервал блокировки
func (s *BlockedSlot) Interval() (Interval, error) {
	return NewIntervalBetween(s.Date, s.StartTime, s.EndTime)
}

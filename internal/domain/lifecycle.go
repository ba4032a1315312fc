package domain

// Таблица переходов жизненного цикла бронирования.
// COMPLETED, CANCELLED и NO_SHOW конечные: из них переходов нет
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn: {StatusCompleted, StatusCancelled},
}

// CanTransition возвращает true, если переход from -> to разрешён
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidTransitionsFrom возвращает статусы, достижимые из status за один шаг
func ValidTransitionsFrom(status BookingStatus) []BookingStatus {
	next := transitions[status]
	out := make([]BookingStatus, len(next))
	copy(out, next)
	return out
}

// SourcesFor возвращает статусы, из которых можно перейти в to.
// Используется в условном UPDATE ... WHERE status IN (...)
func SourcesFor(to BookingStatus) []BookingStatus {
	out := make([]BookingStatus, 0, 3)
	for _, from := range AllStatuses {
		if CanTransition(from, to) {
			out = append(out, from)
		}
	}
	return out
}

// IsTerminal возвращает true для конечных статусов
func (s BookingStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanBeUpdated бронь можно переносить/редактировать только до прихода гостя
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

package create_booking

import (
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/bookings/models"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// Outcome результат запроса на бронирование
type Outcome string

const (
	OutcomePending   Outcome = "pending"
	OutcomeConfirmed Outcome = "confirmed"
	// OutcomeWaitlisted слот занят, брони нет. WaitlistEntryID заполнен, только если гость встал в очередь
	OutcomeWaitlisted Outcome = "waitlisted"
)

// Request модель запроса на создание бронирования
type Request struct {
	Actor           domain.Actor
	BranchID        int64
	TableID         *int64              // nil - бронь без стола (или автоподбор)
	Customer        *domain.CustomerRef // nil - гость без профиля
	Date            time.Time           // Дата бронирования (без времени)
	Time            types.TimeString    // Время начала, например "19:00"
	PartySize       int
	DurationMinutes int // 0 - по умолчанию
	Source          domain.BookingSource
	SpecialRequests *string
	InternalNotes   *string
	JoinWaitlist    bool // встать в лист ожидания, если мест нет
	AutoAssignTable bool // подобрать самый тесный свободный стол
}

// Response модель ответа
type Response struct {
	Outcome         Outcome
	Booking         *models.BookingResponse // nil, если бронь не создана
	Suggestions     []string                // альтернативные времена, если слот занят
	WaitlistEntryID *int64
}

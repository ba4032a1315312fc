package create_booking

import (
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/TableBookingService/internal/usecase/create_booking"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// CustomerRequest данные гостя: ID существующего профиля или контакты
type CustomerRequest struct {
	ID       *int64  `json:"id,omitempty" validate:"omitempty,gt=0"`
	FullName string  `json:"fullName" validate:"max=255"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BranchID        int64            `json:"branchId" validate:"required,gt=0"`
	TableID         *int64           `json:"tableId,omitempty" validate:"omitempty,gt=0"`
	Customer        *CustomerRequest `json:"customer,omitempty"`
	BookingDate     string           `json:"bookingDate" validate:"required,datetime=2006-01-02"` // "2025-10-15"
	StartTime       string           `json:"startTime" validate:"required,hhmm"`                  // "19:00"
	PartySize       int              `json:"partySize" validate:"required,min=1,max=50"`
	DurationMinutes int              `json:"durationMinutes,omitempty" validate:"omitempty,min=15,max=720"`
	Source          string           `json:"source,omitempty" validate:"omitempty,oneof=ADMIN WEBSITE PHONE WALK_IN"`
	SpecialRequests *string          `json:"specialRequests,omitempty" validate:"omitempty,max=1000"`
	InternalNotes   *string          `json:"internalNotes,omitempty" validate:"omitempty,max=1000"`
	JoinWaitlist    bool             `json:"joinWaitlist,omitempty"`
	AutoAssignTable bool             `json:"autoAssignTable,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Outcome         string                  `json:"outcome"`
	Booking         *models.BookingResponse `json:"booking,omitempty"`
	Suggestions     []string                `json:"suggestions"`
	WaitlistEntryID *int64                  `json:"waitlistEntryId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor domain.Actor) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	req := &createBooking.Request{
		Actor:           actor,
		BranchID:        r.BranchID,
		TableID:         r.TableID,
		Date:            bookingDate,
		Time:            startTime,
		PartySize:       r.PartySize,
		DurationMinutes: r.DurationMinutes,
		Source:          domain.BookingSource(r.Source),
		SpecialRequests: r.SpecialRequests,
		InternalNotes:   r.InternalNotes,
		JoinWaitlist:    r.JoinWaitlist,
		AutoAssignTable: r.AutoAssignTable,
	}

	if r.Customer != nil {
		req.Customer = &domain.CustomerRef{
			ID:       r.Customer.ID,
			FullName: r.Customer.FullName,
			Email:    r.Customer.Email,
			Phone:    r.Customer.Phone,
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	suggestions := resp.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return &CreateBookingResponse{
		Outcome:         string(resp.Outcome),
		Booking:         resp.Booking,
		Suggestions:     suggestions,
		WaitlistEntryID: resp.WaitlistEntryID,
	}
}

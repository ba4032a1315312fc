package merge_customers

import (
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
)

// MergeRequest HTTP request model
type MergeRequest struct {
	DuplicateID int64 `json:"duplicateId" validate:"required,gt=0"`
}

// CustomerResponse профиль клиента после слияния
type CustomerResponse struct {
	ID                 int64     `json:"id"`
	FullName           string    `json:"fullName"`
	Email              *string   `json:"email,omitempty"`
	Phone              *string   `json:"phone,omitempty"`
	Tier               string    `json:"tier"`
	IsBlacklisted      bool      `json:"isBlacklisted"`
	BlacklistReason    *string   `json:"blacklistReason,omitempty"`
	TotalBookings      int       `json:"totalBookings"`
	SuccessfulBookings int       `json:"successfulBookings"`
	CancelledBookings  int       `json:"cancelledBookings"`
	NoShowCount        int       `json:"noShowCount"`
	IsActive           bool      `json:"isActive"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:                 c.ID,
		FullName:           c.FullName,
		Email:              c.Email,
		Phone:              c.Phone,
		Tier:               string(c.Tier),
		IsBlacklisted:      c.IsBlacklisted,
		BlacklistReason:    c.BlacklistReason,
		TotalBookings:      c.TotalBookings,
		SuccessfulBookings: c.SuccessfulBookings,
		CancelledBookings:  c.CancelledBookings,
		NoShowCount:        c.NoShowCount,
		IsActive:           c.IsActive,
		UpdatedAt:          c.UpdatedAt,
	}
}

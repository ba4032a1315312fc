package models

import (
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
)

// CreateBlockedSlotRequest запрос на блокировку времени филиала
type CreateBlockedSlotRequest struct {
	BranchID  int64   `json:"-"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string  `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string  `json:"endTime" validate:"required,datetime=15:04"`
	Reason    *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// BlockedSlotResponse ответ с данными блокировки
type BlockedSlotResponse struct {
	ID        int64     `json:"id"`
	BranchID  int64     `json:"branchId"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedBy *int64    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainBlockedSlot конвертирует domain модель в DTO
func FromDomainBlockedSlot(s *domain.BlockedSlot) *BlockedSlotResponse {
	if s == nil {
		return nil
	}
	return &BlockedSlotResponse{
		ID:        s.ID,
		BranchID:  s.BranchID,
		Date:      s.Date.Format(domain.DateFormat),
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
		Reason:    s.Reason,
		CreatedBy: s.CreatedBy,
		CreatedAt: s.CreatedAt,
	}
}

// FromDomainBlockedSlots конвертирует список блокировок
func FromDomainBlockedSlots(slots []*domain.BlockedSlot) []BlockedSlotResponse {
	resp := make([]BlockedSlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, *FromDomainBlockedSlot(s))
	}
	return resp
}

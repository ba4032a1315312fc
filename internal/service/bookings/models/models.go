package models

import (
	"errors"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ChangeStatusRequest запрос на смену статуса бронирования
type ChangeStatusRequest struct {
	Status string  `json:"status" validate:"required"`
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// ListBookingsRequest фильтр списка бронирований филиала
type ListBookingsRequest struct {
	BranchID   int64
	Status     *string
	CustomerID *int64
	DateFrom   *time.Time
	DateTo     *time.Time
	Search     string
	Limit      int
	Offset     int
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	branchID := r.BranchID
	filter := domain.BookingsFilter{
		BranchID:   &branchID,
		CustomerID: r.CustomerID,
		DateFrom:   r.DateFrom,
		DateTo:     r.DateTo,
		Search:     r.Search,
		Limit:      r.Limit,
		Offset:     r.Offset,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64  `json:"id"`
	Code            string `json:"code"`
	BranchID        int64  `json:"branchId"`
	TableID         *int64 `json:"tableId,omitempty"`
	CustomerID      *int64 `json:"customerId,omitempty"`
	BookingDate     string `json:"bookingDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`   // "19:00"
	DurationMinutes int    `json:"durationMinutes"`
	PartySize       int    `json:"partySize"`
	Status          string `json:"status"`
	Source          string `json:"source"`

	SpecialRequests *string `json:"specialRequests,omitempty"`
	InternalNotes   *string `json:"internalNotes,omitempty"`

	CreatedBy          *int64  `json:"createdBy,omitempty"`
	CancelledBy        *int64  `json:"cancelledBy,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`

	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CheckedInAt *time.Time `json:"checkedInAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// HistoryEntryResponse запись журнала бронирования
type HistoryEntryResponse struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	OldStatus *string   `json:"oldStatus,omitempty"`
	NewStatus *string   `json:"newStatus,omitempty"`
	ChangedBy *int64    `json:"changedBy,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                 b.ID,
		Code:               b.Code,
		BranchID:           b.BranchID,
		TableID:            b.TableID,
		CustomerID:         b.CustomerID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		DurationMinutes:    b.DurationMinutes,
		PartySize:          b.PartySize,
		Status:             string(b.Status),
		Source:             string(b.Source),
		SpecialRequests:    b.SpecialRequests,
		InternalNotes:      b.InternalNotes,
		CreatedBy:          b.CreatedBy,
		CancelledBy:        b.CancelledBy,
		CancellationReason: b.CancellationReason,
		ConfirmedAt:        b.ConfirmedAt,
		CancelledAt:        b.CancelledAt,
		CheckedInAt:        b.CheckedInAt,
		CompletedAt:        b.CompletedAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, total int) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
		Total:    total,
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainHistory конвертирует журнал бронирования
func FromDomainHistory(entries []*domain.BookingHistory) []HistoryEntryResponse {
	resp := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		item := HistoryEntryResponse{
			ID:        e.ID,
			Action:    string(e.Action),
			ChangedBy: e.ChangedBy,
			Notes:     e.Notes,
			CreatedAt: e.CreatedAt,
		}
		if e.OldStatus != nil {
			s := string(*e.OldStatus)
			item.OldStatus = &s
		}
		if e.NewStatus != nil {
			s := string(*e.NewStatus)
			item.NewStatus = &s
		}
		resp = append(resp, item)
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}

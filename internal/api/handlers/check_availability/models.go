package check_availability

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	checkAvailability "github.com/m04kA/TableBookingService/internal/usecase/check_availability"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	BranchID        int64           `json:"branchId"`
	Date            string          `json:"date"`
	PartySize       int             `json:"partySize"`
	Open            bool            `json:"open"`
	Time            *string         `json:"time,omitempty"`
	Available       *bool           `json:"available,omitempty"`
	AvailableTables int             `json:"availableTables"`
	Tables          []TableResponse `json:"tables,omitempty"`
	Suggestions     []string        `json:"suggestions,omitempty"`
	Slots           []SlotResponse  `json:"slots,omitempty"`
}

type TableResponse struct {
	ID       int64  `json:"id"`
	Number   string `json:"number"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
}

type SlotResponse struct {
	StartTime       string `json:"startTime"`
	AvailableTables int    `json:"availableTables"`
}

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(actor domain.Actor, branchID int64, query url.Values) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	partySize, err := strconv.Atoi(query.Get("partySize"))
	if err != nil {
		return nil, fmt.Errorf("invalid partySize: %w", err)
	}

	req := &checkAvailability.Request{
		Actor:     actor,
		BranchID:  branchID,
		Date:      date,
		PartySize: partySize,
	}

	if timeStr := query.Get("time"); timeStr != "" {
		t, err := types.NewTimeStringFromString(timeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid time: %w", err)
		}
		req.Time = &t
	}

	if stepStr := query.Get("step"); stepStr != "" {
		step, err := strconv.Atoi(stepStr)
		if err != nil {
			return nil, fmt.Errorf("invalid step: %w", err)
		}
		req.StepMinutes = step
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	result := &AvailabilityResponse{
		BranchID:        resp.BranchID,
		Date:            resp.Date.Format(domain.DateFormat),
		PartySize:       resp.PartySize,
		Open:            resp.Open,
		AvailableTables: resp.AvailableTables,
	}

	if resp.Time != nil {
		t := resp.Time.String()
		available := resp.Open && resp.AvailableTables > 0
		result.Time = &t
		result.Available = &available
	}

	for _, table := range resp.Tables {
		result.Tables = append(result.Tables, TableResponse{
			ID:       table.ID,
			Number:   table.Number,
			Capacity: table.Capacity,
			Type:     table.Type,
		})
	}

	for _, s := range resp.Suggestions {
		result.Suggestions = append(result.Suggestions, s.String())
	}

	for _, slot := range resp.Slots {
		result.Slots = append(result.Slots, SlotResponse{
			StartTime:       slot.StartTime.String(),
			AvailableTables: slot.AvailableTables,
		})
	}

	return result
}

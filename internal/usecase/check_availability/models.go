package check_availability

import (
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/pkg/types"
)

// Request модель запроса доступности.
// Time задан - проверка конкретного времени, иначе сетка слотов на весь день
type Request struct {
	Actor       domain.Actor
	BranchID    int64
	Date        time.Time
	Time        *types.TimeString
	PartySize   int
	StepMinutes int // шаг сетки, 0 - по умолчанию
}

// Response модель ответа
type Response struct {
	BranchID        int64
	Date            time.Time
	PartySize       int
	Open            bool
	Time            *types.TimeString
	AvailableTables int
	Tables          []TableInfo
	Suggestions     []types.TimeString
	Slots           []Slot
}

// TableInfo свободный стол
type TableInfo struct {
	ID       int64
	Number   string
	Capacity int
	Type     string
}

// Slot время начала и число свободных столов под компанию
type Slot struct {
	StartTime       types.TimeString
	AvailableTables int
}

func fromDomainTables(tables []*domain.Table) []TableInfo {
	result := make([]TableInfo, 0, len(tables))
	for _, t := range tables {
		result = append(result, TableInfo{
			ID:       t.ID,
			Number:   t.Number,
			Capacity: t.Capacity,
			Type:     string(t.Type),
		})
	}
	return result
}

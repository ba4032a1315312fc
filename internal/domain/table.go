package domain

import "time"

// TableType тип стола
type TableType string

const (
	TableStandard TableType = "STANDARD"
	TableBooth    TableType = "BOOTH"
	TableOutdoor  TableType = "OUTDOOR"
	TablePrivate  TableType = "PRIVATE"
	TableBar      TableType = "BAR"
)

// Table стол филиала
type Table struct {
	ID           int64
	BranchID     int64
	Number       string
	Capacity     int
	MinCapacity  int
	Type         TableType
	PositionX    float64
	PositionY    float64
	Floor        int
	IsCombinable bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanSeat стол вмещает компанию
func (t *Table) CanSeat(partySize int) bool {
	return t.Capacity >= partySize
}

// IsValid MinCapacity не превышает Capacity
func (t *Table) IsValid() bool {
	return t.Capacity > 0 && t.MinCapacity >= 0 && t.MinCapacity <= t.Capacity
}

// CanCombineWith столы объединяются, только если оба объединяемые и из одного филиала
func (t *Table) CanCombineWith(other *Table) bool {
	if other == nil || t.ID == other.ID {
		return false
	}
	return t.BranchID == other.BranchID && t.IsCombinable && other.IsCombinable
}

package permission

import (
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
)

// Resource ресурс, к которому проверяется доступ
type Resource string

const (
	Branches     Resource = "branches"
	Bookings     Resource = "bookings"
	Customers    Resource = "customers"
	Tables       Resource = "tables"
	Analytics    Resource = "analytics"
	Settings     Resource = "settings"
	BlockedSlots Resource = "blockedSlots"
)

// Action действие над ресурсом
type Action string

const (
	Read      Action = "read"
	Create    Action = "create"
	Update    Action = "update"
	Delete    Action = "delete"
	Manage    Action = "manage"
	Blacklist Action = "blacklist"
	Merge     Action = "merge"

	all Action = "*"
)

// matrix права ролей. "*" - любое действие, Manage - любое действие в пределах своего филиала
var matrix = map[domain.Role]map[Resource][]Action{
	domain.RoleMasterAdmin: {
		Branches:     {all},
		Bookings:     {all},
		Customers:    {all},
		Tables:       {all},
		Analytics:    {all},
		Settings:     {all},
		BlockedSlots: {all},
	},
	domain.RoleBranchAdmin: {
		Branches:     {Read, Update},
		Bookings:     {Create, Read, Update},
		Customers:    {Create, Read, Update, Blacklist},
		Tables:       {Read, Create, Update, Delete},
		Analytics:    {Read},
		Settings:     {Manage},
		BlockedSlots: {Manage},
	},
	domain.RoleStaff: {
		Branches:  {Read},
		Bookings:  {Create, Read, Update},
		Customers: {Create, Read, Update},
		Tables:    {Read},
	},
}

// Checker проверка прав по матрице ролей
type Checker struct{}

// NewChecker создает проверку прав
func NewChecker() *Checker {
	return &Checker{}
}

// IsAllowed роль имеет право и филиал (если задан) совпадает с филиалом сотрудника
// Системный исполнитель может всё
func (c *Checker) IsAllowed(actor domain.Actor, resource Resource, action Action, branchID *int64) bool {
	if actor.System {
		return true
	}

	actions := matrix[actor.Role][resource]
	granted := false
	for _, a := range actions {
		if a == all {
			return true
		}
		if a == action || a == Manage {
			granted = true
			break
		}
	}
	if !granted {
		return false
	}

	if actor.Role == domain.RoleMasterAdmin || branchID == nil {
		return true
	}
	if actor.BranchID == nil {
		return false
	}
	return *actor.BranchID == *branchID
}

// AssertAllowed возвращает ErrPermissionDenied, если действие запрещено
func (c *Checker) AssertAllowed(actor domain.Actor, resource Resource, action Action, branchID *int64) error {
	if !c.IsAllowed(actor, resource, action, branchID) {
		return fmt.Errorf("%w: %s:%s", ErrPermissionDenied, resource, action)
	}
	return nil
}

// AccessibleBranches филиалы, доступные сотруднику. nil - все филиалы
func (c *Checker) AccessibleBranches(actor domain.Actor) []int64 {
	if actor.System || actor.Role == domain.RoleMasterAdmin {
		return nil
	}
	if actor.BranchID == nil {
		return []int64{}
	}
	return []int64{*actor.BranchID}
}

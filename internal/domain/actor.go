package domain

// Role роль сотрудника
type Role string

const (
	RoleMasterAdmin Role = "MASTER_ADMIN"
	RoleBranchAdmin Role = "BRANCH_ADMIN"
	RoleStaff       Role = "STAFF"
)

// IsValid проверяет, что роль известна
func (r Role) IsValid() bool {
	switch r {
	case RoleMasterAdmin, RoleBranchAdmin, RoleStaff:
		return true
	}
	return false
}

// Actor тот, кто выполняет действие: сотрудник или система (фоновые задачи)
type Actor struct {
	UserID   int64
	Role     Role
	BranchID *int64
	System   bool
}

// SystemActor исполнитель фоновых задач, проверки прав к нему не применяются
func SystemActor() Actor {
	return Actor{Role: RoleMasterAdmin, System: true}
}

// ActorID ID пользователя для журналов; для системы nil
func (a Actor) ActorID() *int64 {
	if a.System || a.UserID == 0 {
		return nil
	}
	id := a.UserID
	return &id
}

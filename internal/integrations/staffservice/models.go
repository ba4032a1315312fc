package staffservice

import "github.com/m04kA/TableBookingService/internal/domain"

// Staff сотрудник из сервиса персонала
type Staff struct {
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"` // MASTER_ADMIN, BRANCH_ADMIN, STAFF
	BranchID *int64 `json:"branch_id"`
	IsActive bool   `json:"is_active"`
}

// Actor исполнитель действий от имени сотрудника
func (s *Staff) Actor() domain.Actor {
	return domain.Actor{
		UserID:   s.UserID,
		Role:     domain.Role(s.Role),
		BranchID: s.BranchID,
	}
}

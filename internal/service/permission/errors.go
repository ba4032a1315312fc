package permission

import (
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
)

var (
	// ErrPermissionDenied возвращается, когда у роли нет права или филиал чужой
	ErrPermissionDenied = fmt.Errorf("%w: permission: you do not have permission to perform this action", domain.ErrForbidden)
)

package notifications

import (
	"errors"
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
)

var (
	// ErrInvalidMessage возвращается при неполном сообщении
	ErrInvalidMessage = fmt.Errorf("%w: notifications: invalid message", domain.ErrValidation)

	// ErrNoEmailAddress возвращается, когда для EMAIL не указан адрес
	ErrNoEmailAddress = fmt.Errorf("%w: notifications: email address is required for EMAIL channel", domain.ErrValidation)

	// ErrDeliveryFailed возвращается, когда канал не смог доставить уведомление
	ErrDeliveryFailed = errors.New("notifications: delivery failed")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("notifications: internal error")
)

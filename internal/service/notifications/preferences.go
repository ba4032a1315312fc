package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/infra/cache"
)

// Preferences включённые каналы получателя. Канал без записи считается включённым
type Preferences map[domain.NotificationChannel]bool

// Allows канал разрешён
func (p Preferences) Allows(channel domain.NotificationChannel) bool {
	enabled, ok := p[channel]
	return !ok || enabled
}

// GetPreferences настройки получателя. При недоступном кеше все каналы включены
func (s *Service) GetPreferences(ctx context.Context, recipientType domain.RecipientType, recipientID int64) Preferences {
	raw, ok, err := s.cache.Get(ctx, cache.PreferencesKey(string(recipientType), recipientID))
	if err != nil {
		s.logger.Warn("GetPreferences: %s=%d: %v", recipientType, recipientID, err)
		return Preferences{}
	}
	if !ok {
		return Preferences{}
	}

	prefs := Preferences{}
	if err := json.Unmarshal(raw, &prefs); err != nil {
		s.logger.Warn("GetPreferences: %s=%d: corrupted value: %v", recipientType, recipientID, err)
		return Preferences{}
	}
	return prefs
}

// SetPreferences сохраняет настройки получателя
func (s *Service) SetPreferences(ctx context.Context, recipientType domain.RecipientType, recipientID int64, prefs Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("%w: SetPreferences - encode: %v", ErrInternal, err)
	}

	if err := s.cache.Set(ctx, cache.PreferencesKey(string(recipientType), recipientID), raw, s.prefsTTL); err != nil {
		return fmt.Errorf("%w: SetPreferences - store: %w", ErrInternal, err)
	}
	return nil
}

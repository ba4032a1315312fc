package domain

import (
	"strings"
	"time"
)

// CustomerTier уровень клиента по количеству успешных визитов.
// Не путать с LoyaltyTier: тот считается по общему числу бронирований
type CustomerTier string

const (
	TierRegular CustomerTier = "REGULAR"
	TierVIP     CustomerTier = "VIP"
)

// DefaultAutoBlacklistReason причина автоматической блокировки
const DefaultAutoBlacklistReason = "Automatically blacklisted: repeated no-shows or cancellations"

// MergedDuplicateReason причина блокировки дубликата после слияния
const MergedDuplicateReason = "Merged duplicate"

// Customer профиль гостя. Tier и блокировка производные: пересчитываются из статистики
type Customer struct {
	ID                 int64
	FullName           string
	Email              *string
	Phone              *string
	Tier               CustomerTier
	IsBlacklisted      bool
	BlacklistReason    *string
	TotalBookings      int
	SuccessfulBookings int
	CancelledBookings  int
	NoShowCount        int
	Preferences        map[string]interface{}
	ReferredBy         *int64
	IsActive           bool
	MergedIntoID       *int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasEmail у клиента указан email
func (c *Customer) HasEmail() bool {
	return c.Email != nil && strings.TrimSpace(*c.Email) != ""
}

// StatusCounts количество бронирований клиента по статусам
type StatusCounts map[BookingStatus]int

// CustomerStats агрегированная статистика клиента
type CustomerStats struct {
	Total      int
	Successful int
	Cancelled  int
	NoShow     int
}

// Stats сворачивает счётчики по статусам в статистику клиента
func (c StatusCounts) Stats() CustomerStats {
	stats := CustomerStats{
		Successful: c[StatusCompleted],
		Cancelled:  c[StatusCancelled],
		NoShow:     c[StatusNoShow],
	}
	for _, n := range c {
		stats.Total += n
	}
	return stats
}

// TierFor уровень клиента по количеству успешных визитов
func TierFor(successful, threshold int) CustomerTier {
	if threshold > 0 && successful >= threshold {
		return TierVIP
	}
	return TierRegular
}

// ShouldAutoBlacklist правило автоматической блокировки
func (s CustomerStats) ShouldAutoBlacklist() bool {
	return s.NoShow >= AutoBlacklistNoShows || s.Cancelled >= AutoBlacklistCancellations
}

// ApplyStats записывает пересчитанную статистику, уровень и автоблокировку.
// Существующая причина блокировки не перезаписывается, снятие блокировки только вручную
func (c *Customer) ApplyStats(stats CustomerStats, tierThreshold int) {
	c.TotalBookings = stats.Total
	c.SuccessfulBookings = stats.Successful
	c.CancelledBookings = stats.Cancelled
	c.NoShowCount = stats.NoShow
	c.Tier = TierFor(stats.Successful, tierThreshold)

	if !stats.ShouldAutoBlacklist() {
		return
	}
	c.IsBlacklisted = true
	if c.BlacklistReason == nil || strings.TrimSpace(*c.BlacklistReason) == "" {
		reason := DefaultAutoBlacklistReason
		c.BlacklistReason = &reason
	}
}

// CustomerRef ссылка на клиента в запросе: существующий ID или данные нового гостя
type CustomerRef struct {
	ID       *int64
	FullName string
	Email    *string
	Phone    *string
}

// IsEmpty в запросе нет ни ID, ни контактов
func (r *CustomerRef) IsEmpty() bool {
	return r == nil || (r.ID == nil && strings.TrimSpace(r.FullName) == "" && r.Email == nil && r.Phone == nil)
}

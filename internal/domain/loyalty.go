package domain

import (
	"math"
	"time"
)

// LoyaltyTier уровень программы лояльности (по общему числу бронирований)
type LoyaltyTier string

const (
	LoyaltyRegular LoyaltyTier = "REGULAR"
	LoyaltyGold    LoyaltyTier = "GOLD"
	LoyaltyVIP     LoyaltyTier = "VIP"
)

// Пороги уровней лояльности и начисления
const (
	LoyaltyGoldThreshold = 5
	LoyaltyVIPThreshold  = 20
	CompletionPoints     = 1
	ReferralBonusPoints  = 5
)

// LoyaltyTierFor уровень лояльности по общему числу бронирований
func LoyaltyTierFor(totalBookings int) LoyaltyTier {
	switch {
	case totalBookings >= LoyaltyVIPThreshold:
		return LoyaltyVIP
	case totalBookings >= LoyaltyGoldThreshold:
		return LoyaltyGold
	default:
		return LoyaltyRegular
	}
}

// Multiplier множитель начисления баллов
func (t LoyaltyTier) Multiplier() float64 {
	switch t {
	case LoyaltyVIP:
		return 1.2
	case LoyaltyGold:
		return 1.1
	default:
		return 1.0
	}
}

// PointsFor баллы с учётом множителя, округление вниз
func (t LoyaltyTier) PointsFor(base int) int {
	return int(math.Floor(float64(base) * t.Multiplier()))
}

// LoyaltyTransactionType тип операции по счёту
type LoyaltyTransactionType string

const (
	LoyaltyEarn   LoyaltyTransactionType = "EARN"
	LoyaltyAdjust LoyaltyTransactionType = "ADJUST"
	LoyaltyRedeem LoyaltyTransactionType = "REDEEM"
	LoyaltyBonus  LoyaltyTransactionType = "BONUS"
)

// LoyaltyAccount счёт лояльности клиента (один на клиента). Баланс не бывает отрицательным
type LoyaltyAccount struct {
	ID             int64
	CustomerID     int64
	PointsBalance  int
	Tier           LoyaltyTier
	TotalReferrals int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LoyaltyTransaction неизменяемая запись журнала операций
type LoyaltyTransaction struct {
	ID        int64
	AccountID int64
	Type      LoyaltyTransactionType
	Points    int
	Reason    string
	BookingID *int64
	CreatedAt time.Time
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCounts_Stats(t *testing.T) {
	counts := StatusCounts{
		StatusCompleted: 4,
		StatusCancelled: 1,
		StatusNoShow:    1,
		StatusPending:   2,
	}

	stats := counts.Stats()

	assert.Equal(t, CustomerStats{Total: 8, Successful: 4, Cancelled: 1, NoShow: 1}, stats)
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierRegular, TierFor(9, 10))
	assert.Equal(t, TierVIP, TierFor(10, 10))
	assert.Equal(t, TierRegular, TierFor(100, 0))
}

func TestCustomer_ApplyStats_ThreeCancellationsBlacklists(t *testing.T) {
	c := &Customer{}

	c.ApplyStats(CustomerStats{Total: 3, Cancelled: 3}, DefaultTierThreshold)

	assert.True(t, c.IsBlacklisted)
	require.NotNil(t, c.BlacklistReason)
	assert.Equal(t, DefaultAutoBlacklistReason, *c.BlacklistReason)
}

func TestCustomer_ApplyStats_PreservesManualReason(t *testing.T) {
	reason := "fraud"
	c := &Customer{IsBlacklisted: true, BlacklistReason: &reason}

	c.ApplyStats(CustomerStats{Total: 2, NoShow: 2}, DefaultTierThreshold)

	assert.True(t, c.IsBlacklisted)
	assert.Equal(t, "fraud", *c.BlacklistReason)
}

func TestCustomer_ApplyStats_NeverUnblacklists(t *testing.T) {
	reason := "manual"
	c := &Customer{IsBlacklisted: true, BlacklistReason: &reason}

	c.ApplyStats(CustomerStats{Total: 12, Successful: 12}, DefaultTierThreshold)

	assert.True(t, c.IsBlacklisted)
	assert.Equal(t, TierVIP, c.Tier)
	assert.Equal(t, 12, c.SuccessfulBookings)
}

func TestLoyaltyTier(t *testing.T) {
	assert.Equal(t, LoyaltyRegular, LoyaltyTierFor(4))
	assert.Equal(t, LoyaltyGold, LoyaltyTierFor(5))
	assert.Equal(t, LoyaltyVIP, LoyaltyTierFor(20))

	assert.Equal(t, 1, LoyaltyRegular.PointsFor(1))
	assert.Equal(t, 1, LoyaltyGold.PointsFor(1))
	assert.Equal(t, 11, LoyaltyGold.PointsFor(10))
	assert.Equal(t, 12, LoyaltyVIP.PointsFor(10))
	assert.Equal(t, 6, LoyaltyVIP.PointsFor(5))
}

func TestTable_CanCombineWith(t *testing.T) {
	a := &Table{ID: 1, BranchID: 1, IsCombinable: true}
	b := &Table{ID: 2, BranchID: 1, IsCombinable: true}
	otherBranch := &Table{ID: 3, BranchID: 2, IsCombinable: true}
	fixed := &Table{ID: 4, BranchID: 1, IsCombinable: false}

	assert.True(t, a.CanCombineWith(b))
	assert.False(t, a.CanCombineWith(otherBranch))
	assert.False(t, a.CanCombineWith(fixed))
	assert.False(t, a.CanCombineWith(a))
}

func TestOperatingHour_IsOpenAt(t *testing.T) {
	h := &OperatingHour{OpenTime: "09:00", CloseTime: "22:00"}

	assert.True(t, h.IsOpenAt("18:00"))
	assert.False(t, h.IsOpenAt("09:00"))
	assert.False(t, h.IsOpenAt("22:00"))

	closed := &OperatingHour{OpenTime: "09:00", CloseTime: "22:00", IsClosed: true}
	assert.False(t, closed.IsOpenAt("18:00"))

	unset := &OperatingHour{OpenTime: "09:00"}
	assert.False(t, unset.IsOpenAt("18:00"))

	var missing *OperatingHour
	assert.False(t, missing.IsOpenAt("18:00"))
}

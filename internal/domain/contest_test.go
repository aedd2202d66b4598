package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testContest(status ContestStatus) Contest {
	return Contest{
		Status:    status,
		StartDate: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC),
	}
}

func at(day int) time.Time {
	return time.Date(2025, time.March, day, 12, 0, 0, 0, time.UTC)
}

func TestContest_PercentagesValid(t *testing.T) {
	tests := []struct {
		name                          string
		top, second, lowest, adminFee float64
		want                          bool
	}{
		{"default split", 65, 10, 7, 18, true},
		{"within tolerance", 65, 10, 7, 18.005, true},
		{"too low", 65, 10, 7, 17, false},
		{"too high", 70, 10, 7, 18, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Contest{TopPct: tt.top, SecondPct: tt.second, LowestPct: tt.lowest, AdminFeePct: tt.adminFee}
			assert.Equal(t, tt.want, c.PercentagesValid())
		})
	}
}

func TestContest_CanAcceptParticipations(t *testing.T) {
	tests := []struct {
		name    string
		contest Contest
		now     time.Time
		want    bool
	}{
		{"active inside window", testContest(ContestActive), at(15), true},
		{"draft never accepts", testContest(ContestDraft), at(15), false},
		{"finished never accepts", testContest(ContestFinished), at(15), false},
		{"cancelled never accepts", testContest(ContestCancelled), at(15), false},
		{"before start", testContest(ContestActive), time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC), false},
		{"after end", testContest(ContestActive), time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.contest.CanAcceptParticipations(tt.now))
		})
	}
}

func TestContest_State(t *testing.T) {
	t.Run("finished by status only", func(t *testing.T) {
		state := testContest(ContestFinished).State(at(15), true)
		assert.Equal(t, "finished", state.Phase)
		assert.False(t, state.AcceptsParticipations)
	})

	t.Run("draws alone do not finish a contest", func(t *testing.T) {
		state := testContest(ContestActive).State(at(15), true)
		assert.Equal(t, "ongoing", state.Phase)
		assert.True(t, state.AcceptsParticipations)
	})

	t.Run("active without draws is accepting", func(t *testing.T) {
		state := testContest(ContestActive).State(at(15), false)
		assert.Equal(t, "accepting", state.Phase)
		assert.True(t, state.AcceptsParticipations)
	})

	t.Run("not started yet", func(t *testing.T) {
		state := testContest(ContestActive).State(time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC), false)
		assert.Equal(t, "upcoming", state.Phase)
	})

	t.Run("window closed awaits result", func(t *testing.T) {
		state := testContest(ContestActive).State(time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC), true)
		assert.Equal(t, "awaiting_result", state.Phase)
		assert.False(t, state.AcceptsParticipations)
	})

	t.Run("draft is inactive", func(t *testing.T) {
		state := testContest(ContestDraft).State(at(15), false)
		assert.Equal(t, "inactive", state.Phase)
		assert.Equal(t, "Draft", state.Label)
	})
}

func TestDiscount_IsUsable(t *testing.T) {
	contestID := uint(7)
	maxUses := 10

	base := Discount{
		Code:      "PROMO10",
		Type:      DiscountPercentage,
		Value:     10,
		StartDate: at(1),
		EndDate:   at(30),
		IsActive:  true,
	}

	t.Run("active global code inside window", func(t *testing.T) {
		assert.True(t, base.IsUsable(at(15), 99))
	})

	t.Run("inactive", func(t *testing.T) {
		d := base
		d.IsActive = false
		assert.False(t, d.IsUsable(at(15), 0))
	})

	t.Run("outside window", func(t *testing.T) {
		assert.False(t, base.IsUsable(time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC), 0))
	})

	t.Run("exhausted uses", func(t *testing.T) {
		d := base
		d.MaxUses = &maxUses
		d.CurrentUses = 10
		assert.False(t, d.IsUsable(at(15), 0))
	})

	t.Run("bound to another contest", func(t *testing.T) {
		d := base
		d.ContestID = &contestID
		assert.False(t, d.IsUsable(at(15), 8))
		assert.True(t, d.IsUsable(at(15), 7))
	})
}

func TestDiscount_Apply(t *testing.T) {
	t.Run("percentage", func(t *testing.T) {
		d := Discount{Type: DiscountPercentage, Value: 10}
		assert.InDelta(t, 90, d.Apply(100), 1e-9)
	})

	t.Run("fixed", func(t *testing.T) {
		d := Discount{Type: DiscountFixed, Value: 30}
		assert.InDelta(t, 70, d.Apply(100), 1e-9)
	})

	t.Run("never below zero", func(t *testing.T) {
		d := Discount{Type: DiscountFixed, Value: 500}
		assert.Zero(t, d.Apply(100))
	})
}

package netgraph

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func daysAgo(now time.Time, days float64) *time.Time {
	t := now.Add(-time.Duration(days * 24 * float64(time.Hour)))
	return &t
}

func TestRecencyIntensity_Boundaries(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 1.0, RecencyIntensity(daysAgo(now, 0), now))
	assert.Equal(t, 1.0, RecencyIntensity(daysAgo(now, 7), now))
	assert.InDelta(t, 0.8, RecencyIntensity(daysAgo(now, 30), now), 1e-9)
	assert.InDelta(t, 0.5, RecencyIntensity(daysAgo(now, 365), now), 1e-9)
	assert.InDelta(t, 0.25, RecencyIntensity(daysAgo(now, 365+730), now), 1e-9)
	assert.Equal(t, 0.25, RecencyIntensity(daysAgo(now, 2000), now))
	assert.Equal(t, 0.25, RecencyIntensity(nil, now))
}

func TestRecencyIntensity_FutureDateClampsToFull(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)
	assert.Equal(t, 1.0, RecencyIntensity(&future, now))
}

func TestRecencyIntensity_MonotonicallyNonIncreasing(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	prev := 1.1
	for days := 0.0; days <= 1200; days += 0.5 {
		r := RecencyIntensity(daysAgo(now, days), now)
		assert.LessOrEqual(t, r, prev, "intensity increased at %v days", days)
		assert.GreaterOrEqual(t, r, 0.25)
		assert.LessOrEqual(t, r, 1.0)
		prev = r
	}
}

func TestThicknessForCount_Tiers(t *testing.T) {
	tests := []struct {
		count int
		want  float64
	}{
		{0, 1.2},
		{1, 2.0},
		{2, 2.0},
		{3, 2.5},
		{5, 2.5},
		{6, 3.5},
		{10, 3.5},
		{11, 4.5},
		{20, 4.5},
		{21, 6.0},
		{100, 6.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ThicknessForCount(tt.count), "count=%d", tt.count)
	}
}

func TestRadiusFor_CategoryHierarchy(t *testing.T) {
	// Same fan-out: the category bases keep the visual hierarchy.
	for _, fanOut := range []int{0, 3, 50} {
		self := RadiusFor(CategorySelf, fanOut)
		mutual := RadiusFor(CategoryMutualUser, fanOut)
		owned := RadiusFor(CategoryOwnedContact, fanOut)
		second := RadiusFor(CategorySecondDegree, fanOut)

		assert.Greater(t, self, mutual)
		assert.Greater(t, mutual, owned)
		assert.Greater(t, owned, second)
	}
}

func TestRadiusFor_FanOutBonusIsCapped(t *testing.T) {
	assert.Equal(t, radiusBase[CategoryOwnedContact], RadiusFor(CategoryOwnedContact, 0))
	assert.Equal(t, radiusBase[CategoryOwnedContact]+radiusCap, RadiusFor(CategoryOwnedContact, 1000))

	// A second-degree hub can never outgrow even a zero-fan-out self node.
	assert.Less(t, RadiusFor(CategorySecondDegree, 1000), RadiusFor(CategorySelf, 0))
}

func TestClosenessFor(t *testing.T) {
	assert.Less(t, closenessFor("Close Friend"), closenessFor("Acquaintance"))
	assert.Less(t, closenessFor("Family"), closenessFor("Colleague"))
	assert.Equal(t, defaultDistance, closenessFor("Stranger Type"))
	assert.Equal(t, defaultDistance, closenessFor(""))
}

func TestJitter_BoundedAndSeedStable(t *testing.T) {
	a := NewJitter(42)
	b := NewJitter(42)
	c := NewJitter(7)

	var diverged bool
	for i := 0; i < 1000; i++ {
		va, vb, vc := a.Next(), b.Next(), c.Next()
		assert.GreaterOrEqual(t, va, jitterMin)
		assert.LessOrEqual(t, va, jitterMax)
		assert.Equal(t, va, vb, "same seed must produce same sequence")
		if va != vc {
			diverged = true
		}
	}
	assert.True(t, diverged, "different seeds should produce different sequences")

	assert.Equal(t, 1.0, NoJitter().Next())
}

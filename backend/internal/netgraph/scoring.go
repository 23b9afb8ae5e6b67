package netgraph

import (
	"time"
)

// ============================================================================
// Relationship Scoring
// ============================================================================

// closenessTable maps a relationship type to the target distance the renderer
// should settle at. Closer relationships sit nearer the owner. Unknown types
// fall back to defaultDistance.
var closenessTable = map[string]float64{
	"Family":       80,
	"Close Friend": 90,
	"Friend":       120,
	"Colleague":    150,
	"Mentor":       140,
	"Client":       170,
	"Acquaintance": 190,
}

const defaultDistance = 160.0

// closenessFor returns the unjittered target distance for a relationship type
func closenessFor(relationshipType string) float64 {
	if d, ok := closenessTable[relationshipType]; ok {
		return d
	}
	return defaultDistance
}

// Recency intensity decay schedule. Anything within a week renders at full
// intensity, then the value decays linearly through three bands down to a
// floor that old and missing activity share.
const (
	recencyFloor = 0.25

	recencyFreshDays  = 7.0
	recencyMonthDays  = 30.0
	recencyYearDays   = 365.0
	recencyFadeDays   = 730.0 // days from one year out to the floor
	recencyAtMonth    = 0.8
	recencyAtYear     = 0.5
)

// RecencyIntensity maps the most recent interaction date to a [0,1] visual
// intensity. It is monotonically non-increasing in elapsed time, returns
// exactly 1.0 at zero days and the floor when no activity exists at all.
func RecencyIntensity(mostRecent *time.Time, now time.Time) float64 {
	if mostRecent == nil {
		return recencyFloor
	}

	days := now.Sub(*mostRecent).Hours() / 24
	if days < 0 {
		days = 0
	}

	switch {
	case days <= recencyFreshDays:
		return 1.0
	case days <= recencyMonthDays:
		span := recencyMonthDays - recencyFreshDays
		return 1.0 - (1.0-recencyAtMonth)*(days-recencyFreshDays)/span
	case days <= recencyYearDays:
		span := recencyYearDays - recencyMonthDays
		return recencyAtMonth - (recencyAtMonth-recencyAtYear)*(days-recencyMonthDays)/span
	case days <= recencyYearDays+recencyFadeDays:
		return recencyAtYear - (recencyAtYear-recencyFloor)*(days-recencyYearDays)/recencyFadeDays
	default:
		return recencyFloor
	}
}

// ThicknessForCount maps an interaction count to a line thickness tier.
// This is a fixed step function, not interpolated.
func ThicknessForCount(count int) float64 {
	switch {
	case count <= 0:
		return 1.2
	case count <= 2:
		return 2.0
	case count <= 5:
		return 2.5
	case count <= 10:
		return 3.5
	case count <= 20:
		return 4.5
	default:
		return 6.0
	}
}

// Node radius: a per-category base plus a capped fan-out bonus. The bases are
// strictly ordered self > mutual > owned contact > second degree so the
// visual hierarchy holds regardless of exact counts.
var radiusBase = map[Category]float64{
	CategorySelf:         26,
	CategoryMutualUser:   18,
	CategoryOwnedContact: 14,
	CategorySecondDegree: 10,
}

const (
	radiusFactor = 1.5
	radiusCap    = 12.0
)

// RadiusFor computes the rendered radius of a node from its category and
// connection fan-out.
func RadiusFor(category Category, fanOut int) float64 {
	bonus := float64(fanOut) * radiusFactor
	if bonus > radiusCap {
		bonus = radiusCap
	}
	return radiusBase[category] + bonus
}

package netgraph

import "math/rand"

// ============================================================================
// Distance Jitter
// ============================================================================

// Jitter spreads edges that would otherwise settle at identical distances.
// It is purely cosmetic: it must never change which nodes or edges exist,
// and it is rolled once per edge and stored so a rebuild of the same
// snapshot with the same source reproduces the same numbers.

const (
	jitterMin = 0.85
	jitterMax = 1.15
)

// JitterSource produces bounded distance multipliers in [0.85, 1.15]
type JitterSource interface {
	Next() float64
}

type seededJitter struct {
	rng *rand.Rand
}

// NewJitter returns a seed-controlled jitter source. Tests pin the seed to
// make edge distances fully deterministic.
func NewJitter(seed int64) JitterSource {
	return &seededJitter{rng: rand.New(rand.NewSource(seed))}
}

func (j *seededJitter) Next() float64 {
	return jitterMin + j.rng.Float64()*(jitterMax-jitterMin)
}

// NoJitter returns a source that always yields 1.0, for callers that want
// raw closeness-table distances.
func NoJitter() JitterSource {
	return fixedJitter{}
}

type fixedJitter struct{}

func (fixedJitter) Next() float64 { return 1.0 }

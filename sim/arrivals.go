package sim

import (
	"math"
	"math/rand"
)

// ArrivalSampler generates per-hour arrival counts for the harness.
type ArrivalSampler interface {
	// SampleCount returns the number of patients arriving in the next
	// simulated hour. Always non-negative.
	SampleCount(rng *rand.Rand) int
}

// PoissonSampler draws hourly arrival counts from a Poisson distribution.
// The rate comes out of calibration (Little's Law), so the generated load
// matches the facility's observed steady state without reconstructing real
// arrival timestamps from occupancy deltas.
type PoissonSampler struct {
	ratePerHour float64 // expected arrivals per hour (lambda)
}

// NewPoissonSampler creates a PoissonSampler for the given hourly rate.
func NewPoissonSampler(ratePerHour float64) *PoissonSampler {
	// Keep lambda positive so the rejection limit stays below 1.
	if ratePerHour < 1e-12 {
		ratePerHour = 1e-12
	}
	return &PoissonSampler{ratePerHour: ratePerHour}
}

// SampleCount draws one Poisson variate using Knuth's product-of-uniforms
// method. O(lambda) per draw, fine for hospital-scale rates.
func (s *PoissonSampler) SampleCount(rng *rand.Rand) int {
	limit := math.Exp(-s.ratePerHour)
	count := 0
	prod := rng.Float64()
	for prod > limit {
		count++
		prod *= rng.Float64()
	}
	return count
}

// FixedSampler returns the same arrival count every hour. Used by tests and
// by replay-style scenarios where the per-hour counts are known in advance.
type FixedSampler struct {
	Count int
}

func (s *FixedSampler) SampleCount(_ *rand.Rand) int {
	return s.Count
}

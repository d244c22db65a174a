package calibrate

import (
	"fmt"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

// fallbackArrivalRate is used when the median service time is not positive
// and Little's Law cannot be applied.
const fallbackArrivalRate = 1.0

// Params are the calibrated simulation parameters for one facility.
// Computed once from a snapshot of historical records; immutable thereafter.
type Params struct {
	Capacity           int     // round(median functional-bed count)
	MeanServiceHours   float64 // median stretcher-wait duration
	ArrivalRatePerHour float64 // occupied median / service median (Little's Law)

	MatchedRecords int // records that survived coercion
	SkippedRecords int // records dropped for missing numeric fields
}

// ValidationError is the fatal, non-retried calibration failure: no records
// match the facility, or every matching record was dropped during coercion.
type ValidationError struct {
	Facility string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("calibration failed for %q: %s", e.Facility, e.Reason)
}

// Calibrate derives Params for the facility whose name contains the target
// string (case-insensitive). Records with any unparsable numeric field are
// dropped and reported only through the skip count. Deterministic given
// identical input.
func Calibrate(records []Record, facility string) (Params, error) {
	var functional, occupied, waits []float64
	matched := 0
	skipped := 0

	for _, r := range records {
		if !r.matchesFacility(facility) {
			continue
		}
		matched++
		f, okF := coerce(r.FunctionalBeds)
		o, okO := coerce(r.OccupiedBeds)
		w, okW := coerce(r.StretcherWaitHours)
		if !okF || !okO || !okW {
			skipped++
			continue
		}
		functional = append(functional, f)
		occupied = append(occupied, o)
		waits = append(waits, w)
	}

	if matched == 0 {
		return Params{}, &ValidationError{Facility: facility, Reason: "no records match the facility name"}
	}
	if len(functional) == 0 {
		return Params{}, &ValidationError{Facility: facility,
			Reason: fmt.Sprintf("all %d matching records dropped after numeric coercion", matched)}
	}

	capacity := int(math.Round(median(functional)))
	meanService := median(waits)
	occupiedMedian := median(occupied)

	// Little's Law: arrivals/hour = number in system / time in system.
	rate := fallbackArrivalRate
	if meanService > 0 {
		rate = occupiedMedian / meanService
	} else {
		logrus.Warnf("calibrate %q: median service time %.2fh is not positive, using fallback arrival rate %.1f/h",
			facility, meanService, fallbackArrivalRate)
	}

	if skipped > 0 {
		logrus.Infof("calibrate %q: dropped %d of %d matching records with unparsable fields", facility, skipped, matched)
	}

	return Params{
		Capacity:           capacity,
		MeanServiceHours:   meanService,
		ArrivalRatePerHour: rate,
		MatchedRecords:     len(functional),
		SkippedRecords:     skipped,
	}, nil
}

// median returns the standard median: the average of the two middle values
// when the count is even, after numeric sort. gonum's Quantile cumulant kinds
// do not guarantee this exact definition, so it stays a local helper.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

package calibrate

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Thresholds are the triage-lite classification cutoffs derived from the
// facility's stay-duration distribution: durations below Short classify as
// SHORT, above Long as LONG, everything else STANDARD.
type Thresholds struct {
	Short float64 // 33rd percentile of stay duration, hours
	Long  float64 // 66th percentile of stay duration, hours
}

// DurationThresholds computes the 33rd/66th percentile cutoffs from the
// facility's coercible stretcher-wait durations. Uses linear-interpolation
// quantiles, matching how the percentiles were derived in the original
// distribution study.
func DurationThresholds(records []Record, facility string) (Thresholds, error) {
	var waits []float64
	matched := 0
	for _, r := range records {
		if !r.matchesFacility(facility) {
			continue
		}
		matched++
		if w, ok := coerce(r.StretcherWaitHours); ok {
			waits = append(waits, w)
		}
	}
	if matched == 0 {
		return Thresholds{}, &ValidationError{Facility: facility, Reason: "no records match the facility name"}
	}
	if len(waits) == 0 {
		return Thresholds{}, &ValidationError{Facility: facility, Reason: "no usable stay durations after coercion"}
	}

	sort.Float64s(waits)
	return Thresholds{
		Short: stat.Quantile(0.33, stat.LinInterp, waits, nil),
		Long:  stat.Quantile(0.66, stat.LinInterp, waits, nil),
	}, nil
}

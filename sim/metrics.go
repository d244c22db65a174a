// Aggregates wait-time statistics for a completed run.

package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WaitStats summarizes the wait-time distribution of one policy run.
// Computed over completed patients plus patients still occupying beds.
type WaitStats struct {
	Policy    Policy
	Count     int     // patients measured
	Mean      float64 // mean wait in hours
	Max       float64 // worst wait in hours
	P50       float64
	P90       float64
	Over24h   int // patients who waited more than 24 hours
	Congested int // hours the run spent over capacity
}

// ComputeWaitStats builds WaitStats from a wait-time sample. An empty sample
// yields zero-valued stats, which is a normal outcome for very short runs.
func ComputeWaitStats(policy Policy, waits []float64) WaitStats {
	ws := WaitStats{Policy: policy, Count: len(waits)}
	if len(waits) == 0 {
		return ws
	}

	sorted := make([]float64, len(waits))
	copy(sorted, waits)
	sort.Float64s(sorted)

	ws.Mean = stat.Mean(sorted, nil)
	ws.Max = sorted[len(sorted)-1]
	ws.P50 = stat.Quantile(0.50, stat.LinInterp, sorted, nil)
	ws.P90 = stat.Quantile(0.90, stat.LinInterp, sorted, nil)
	for _, w := range sorted {
		if w > crisisWaitHours {
			ws.Over24h++
		}
	}
	return ws
}

// Print displays the stats in the single-line-per-policy format the
// comparison report uses.
func (ws WaitStats) Print() {
	fmt.Printf("Policy %-18s | Patients: %4d | Avg Wait: %6.1fh | P50: %6.1fh | P90: %6.1fh | Max Wait: %6.1fh | >24h: %d\n",
		ws.Policy, ws.Count, ws.Mean, ws.P50, ws.P90, ws.Max, ws.Over24h)
}

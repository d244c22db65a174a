package compare

import (
	"fmt"
	"strings"
)

const (
	histogramBinHours = 5  // wait-time bucket width
	histogramMaxBar   = 50 // widest bar in characters
	histogramBins     = 12 // buckets before the overflow bucket
)

// Render formats the full comparison report: one summary line per policy,
// followed by a wait-time histogram per policy. The 24-hour bucket boundary
// is marked because it is the crisis threshold the GUILLOTINE policy acts on.
func Render(result *Result) string {
	var sb strings.Builder

	sb.WriteString("=== Policy Comparison ===\n")
	for _, pr := range result.Policies {
		s := pr.Stats
		sb.WriteString(fmt.Sprintf("Policy %-18s | Patients: %4d | Avg Wait: %6.1fh | P50: %6.1fh | P90: %6.1fh | Max Wait: %6.1fh | >24h: %d\n",
			s.Policy, s.Count, s.Mean, s.P50, s.P90, s.Max, s.Over24h))
	}

	for _, pr := range result.Policies {
		sb.WriteString("\n")
		sb.WriteString(renderHistogram(string(pr.Policy), pr.Waits))
	}
	return sb.String()
}

// renderHistogram draws an ASCII bar chart of the wait distribution.
func renderHistogram(title string, waits []float64) string {
	counts := make([]int, histogramBins+1)
	for _, w := range waits {
		bin := int(w) / histogramBinHours
		if bin > histogramBins {
			bin = histogramBins
		}
		counts[bin]++
	}
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Wait distribution: %s\n", title))
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	if maxCount == 0 {
		sb.WriteString("(no patients reached a bed)\n")
		return sb.String()
	}
	for i, c := range counts {
		lo := i * histogramBinHours
		var label string
		if i == histogramBins {
			label = fmt.Sprintf(">=%3dh", lo)
		} else {
			label = fmt.Sprintf("%3d-%2dh", lo, lo+histogramBinHours)
		}
		bar := strings.Repeat("#", c*histogramMaxBar/maxCount)
		marker := ""
		if lo == 25 { // first bucket fully past the 24h limit
			marker = "  <-- 24h limit"
		}
		sb.WriteString(fmt.Sprintf("%8s | %-*s %d%s\n", label, histogramMaxBar, bar, c, marker))
	}
	return sb.String()
}

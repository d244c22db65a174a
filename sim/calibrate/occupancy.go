package calibrate

// Occupancy binning: the descriptive "tipping point" analysis relating
// occupancy rate to stay duration. Independent of the simulation engine; the
// analyze subcommand surfaces it.

// occupancyBins are the occupancy-rate bin edges, in percent. The last edge
// is an effective cap for pathological rows.
var occupancyBins = []float64{0, 60, 80, 100, 120, 150, 500}

var occupancyLabels = []string{"<60%", "60-80%", "80-100%", "100-120%", "120-150%", ">150%"}

// BinSummary is one occupancy bin with its record count and median stay.
type BinSummary struct {
	Label           string
	Count           int
	MedianStayHours float64
}

// OccupancyBins groups every coercible record by occupancy rate
// (occupied / functional, in percent) and reports the median stay duration
// per bin. Records with non-positive functional-bed counts are dropped, as
// are rows falling outside the binned range.
func OccupancyBins(records []Record) []BinSummary {
	stays := make([][]float64, len(occupancyLabels))

	for _, r := range records {
		f, okF := coerce(r.FunctionalBeds)
		o, okO := coerce(r.OccupiedBeds)
		w, okW := coerce(r.StretcherWaitHours)
		if !okF || !okO || !okW || f <= 0 {
			continue
		}
		rate := o / f * 100
		for i := 0; i < len(occupancyLabels); i++ {
			if rate > occupancyBins[i] && rate <= occupancyBins[i+1] {
				stays[i] = append(stays[i], w)
				break
			}
		}
	}

	summaries := make([]BinSummary, len(occupancyLabels))
	for i, label := range occupancyLabels {
		summaries[i] = BinSummary{
			Label:           label,
			Count:           len(stays[i]),
			MedianStayHours: median(stays[i]),
		}
	}
	return summaries
}

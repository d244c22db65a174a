// Package calibrate derives simulation parameters from empirical occupancy
// records: bed capacity and mean service duration from medians, and the
// arrival rate from Little's Law. It also carries the descriptive statistics
// the original study ran alongside calibration (duration-percentile triage
// thresholds and occupancy binning).
package calibrate

import (
	"strconv"
	"strings"
)

// Record is one timestamped occupancy snapshot for a facility. The three
// numeric fields arrive as raw text because the source data mixes numbers
// with free-form placeholders; coercion happens at calibration time and
// unparsable values count as missing.
type Record struct {
	Facility  string // facility name as it appears in the dataset
	Timestamp string // ISO-8601-like snapshot time
	// Raw numeric-or-text fields.
	FunctionalBeds     string // functional stretcher/bed count
	OccupiedBeds       string // occupied stretcher/bed count
	StretcherWaitHours string // mean stretcher-stay duration in hours
	SourceFile         string // file the row came from, for debugging merges
}

// coerce parses a raw numeric field, reporting ok=false for anything that is
// not a plain number. This is deliberate best-effort cleaning: the owning
// record gets dropped, never an error.
func coerce(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// matchesFacility reports whether the record belongs to the target facility,
// using a case-insensitive substring match the way the source dataset is
// usually queried ("royal victoria" should match "HÔPITAL ROYAL VICTORIA").
func (r Record) matchesFacility(target string) bool {
	return strings.Contains(strings.ToLower(r.Facility), strings.ToLower(target))
}

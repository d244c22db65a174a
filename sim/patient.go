// Defines the Patient struct that models an individual patient in the simulation.
// Tracks arrival time, remaining service duration, accumulated wait, and the
// timestamps needed for wait-time reporting.

package sim

import (
	"fmt"
)

// PatientStatus represents the lifecycle state of a patient.
// Transitions are strictly WAITING -> IN_BED -> DISCHARGED; no state is
// skipped and none reverses.
type PatientStatus string

const (
	StatusWaiting    PatientStatus = "WAITING"
	StatusInBed      PatientStatus = "IN_BED"
	StatusDischarged PatientStatus = "DISCHARGED"
)

// TriageClass is a coarse three-class proxy for patient acuity, derived from
// the drawn service duration ("triage-lite"). It stands in for real clinical
// triage, which the simulation does not model.
type TriageClass string

const (
	ClassShort    TriageClass = "SHORT"
	ClassStandard TriageClass = "STANDARD"
	ClassLong     TriageClass = "LONG"
)

// PriorityWeight maps a triage class to its admission weight.
// Lower values sort earlier: LONG=1, STANDARD=2, SHORT=3.
func (c TriageClass) PriorityWeight() int {
	switch c {
	case ClassLong:
		return 1
	case ClassStandard:
		return 2
	default:
		return 3
	}
}

type Patient struct {
	ID int // Unique identifier, assigned at creation (arena index)

	ArrivalTime int64 // Simulated hour the patient arrived; immutable

	// RemainingService is the service duration still owed, in hours.
	// Decremented each hour while the patient occupies a bed; the congestion
	// penalty adds to it while the bed pool is over capacity.
	RemainingService float64

	// AccumulatedWait increases by 1.0 per full hour spent waiting and is
	// frozen once the patient leaves the WAITING state.
	AccumulatedWait float64

	Class    TriageClass   // fixed at creation from the duration thresholds
	Weight   int           // PriorityWeight() of Class, cached for sorting
	Status   PatientStatus // WAITING, IN_BED, DISCHARGED
	Admitted bool          // set when the patient takes a bed

	// CompletionTime is the simulated hour of discharge; -1 until DISCHARGED.
	CompletionTime int64
}

// String returns a human-readable representation of a Patient.
func (p Patient) String() string {
	return fmt.Sprintf("Patient: (ID: %d, Status: %s, Class: %s, ArrivalTime: %d, Wait: %.1fh)",
		p.ID, p.Status, p.Class, p.ArrivalTime, p.AccumulatedWait)
}

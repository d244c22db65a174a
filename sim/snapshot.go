package sim

// PatientView is the read-only record exposed for every patient ever created
// in a run. It is the sole contract consumed by reporting collaborators; the
// engine itself renders nothing and writes no files.
type PatientView struct {
	ID              int           `json:"id"`
	ArrivalTime     int64         `json:"arrival_time"`
	AccumulatedWait float64       `json:"accumulated_wait"`
	Class           TriageClass   `json:"triage_class"`
	Status          PatientStatus `json:"status"`
	// CompletionTime is -1 while the patient has not been discharged.
	CompletionTime int64 `json:"completion_time"`
}

// Snapshot is a queryable view of engine state at the end of (or during) a
// run.
type Snapshot struct {
	Clock          int64         `json:"clock"`
	Waiting        int           `json:"waiting"`
	Occupied       int           `json:"occupied"`
	Completed      int           `json:"completed"`
	CongestedHours int           `json:"congested_hours"`
	Patients       []PatientView `json:"patients"`
}

// Snapshot captures the current state of every patient in arena order, i.e.
// creation order. The returned value is a copy; mutating it does not affect
// the engine.
func (e *Engine) Snapshot() Snapshot {
	views := make([]PatientView, len(e.arena))
	for i, p := range e.arena {
		views[i] = PatientView{
			ID:              p.ID,
			ArrivalTime:     p.ArrivalTime,
			AccumulatedWait: p.AccumulatedWait,
			Class:           p.Class,
			Status:          p.Status,
			CompletionTime:  p.CompletionTime,
		}
	}
	return Snapshot{
		Clock:          e.Clock,
		Waiting:        len(e.waiting),
		Occupied:       len(e.beds),
		Completed:      len(e.completed),
		CongestedHours: e.CongestedHours,
		Patients:       views,
	}
}

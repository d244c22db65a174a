// sim/engine.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Engine is the core object that owns simulation time, the waiting queue, the
// occupied-bed set, and the completed list, advancing one simulated hour per
// step.
//
// Patients live in an arena: every patient ever created is appended to
// arena and addressed by index (which doubles as the patient ID). The
// waiting queue, bed set, and completed list hold indices into the arena,
// so reordering the queue can never alias with pop-front admission.
//
// The engine is single-threaded and strictly sequential: step t+1 may not
// begin before step t's admission phase completes, because admission
// decisions depend on the fully updated post-discharge queue. One Engine
// instance owns all mutable state; nothing else mutates it.
type Engine struct {
	cfg    Config
	policy Policy

	// Clock is the current simulated hour. Advances by exactly 1 per step.
	Clock   int64
	started bool

	rng     *PartitionedRNG
	factory *PatientFactory

	arena     []*Patient // every patient ever created; ID = index
	waiting   []int      // current admission priority order, recomputed every step
	beds      []int      // occupied-bed set
	completed []int      // append-only discharge order

	// CongestedHours counts steps that applied the congestion penalty.
	CongestedHours int
}

// NewEngine constructs an engine from a validated configuration.
// Returns a *ConfigError if the configuration is invalid.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	return &Engine{
		cfg:     cfg,
		policy:  cfg.Policy,
		Clock:   0,
		rng:     rng,
		factory: NewPatientFactory(cfg, rng.ForSubsystem(SubsystemService)),
	}, nil
}

// Config returns the engine's immutable configuration.
func (e *Engine) Config() Config { return e.cfg }

// RNG exposes the run's partitioned RNG so a harness can draw arrival counts
// from the same master seed.
func (e *Engine) RNG() *PartitionedRNG { return e.rng }

// PatientFactory exposes the engine's factory, primarily so tests and replay
// scenarios can install a deterministic duration sampler before stepping.
func (e *Engine) PatientFactory() *PatientFactory { return e.factory }

// QueueLen returns the number of WAITING patients.
func (e *Engine) QueueLen() int { return len(e.waiting) }

// Occupancy returns the number of IN_BED patients.
func (e *Engine) Occupancy() int { return len(e.beds) }

// CompletedCount returns the number of DISCHARGED patients.
func (e *Engine) CompletedCount() int { return len(e.completed) }

// WarmStart seeds the bed pool with n patients before the first simulated
// hour, bypassing the capacity check, so a run reaches steady-state occupancy
// without a long ramp-up. Occupancy may end up above capacity; normal
// stepping never admits past capacity, so the overflow drains only through
// discharges, with the congestion penalty applied every step it persists.
// Must be called before the first Step.
func (e *Engine) WarmStart(n int) error {
	if e.started {
		return fmt.Errorf("warm start after step %d: warm start must precede the first step", e.Clock)
	}
	for i := 0; i < n; i++ {
		p := e.factory.Spawn(len(e.arena), 0)
		p.Status = StatusInBed
		p.Admitted = true
		e.arena = append(e.arena, p)
		e.beds = append(e.beds, p.ID)
	}
	if len(e.beds) > e.cfg.CapacityBeds {
		logrus.Infof("warm start: occupancy %d exceeds capacity %d; congestion penalty will apply until discharges catch up",
			len(e.beds), e.cfg.CapacityBeds)
	}
	return nil
}

// Step advances the simulation by one hour. t must increase by exactly 1 per
// call (the first call fixes the starting hour). arrivals is the number of
// new patients this hour; zero arrivals, an empty queue, or idle beds are all
// normal conditions.
//
// Phase order: advance clock, age patients already waiting, append arrivals,
// service and discharge, reorder the queue under the configured policy, then
// admit from the queue head. Aging covers only patients that were waiting
// when the hour began, so a patient's accumulated wait equals admission hour
// minus arrival hour.
func (e *Engine) Step(t int64, arrivals int) error {
	if e.started && t != e.Clock+1 {
		return fmt.Errorf("non-consecutive step: clock is %d, got t=%d", e.Clock, t)
	}
	e.Clock = t
	e.started = true

	// 1. Age everyone still waiting from previous hours.
	for _, idx := range e.waiting {
		e.arena[idx].AccumulatedWait += 1.0
	}

	// 2. New arrivals join the back of the queue.
	for i := 0; i < arrivals; i++ {
		p := e.factory.Spawn(len(e.arena), t)
		e.arena = append(e.arena, p)
		e.waiting = append(e.waiting, p.ID)
	}

	// 3. Service and discharge. The congestion penalty models overcrowding
	// slowdown: while the bed pool is over capacity every occupied patient's
	// remaining service grows by the penalty, uniformly, each hour the
	// overflow persists.
	congested := len(e.beds) > e.cfg.CapacityBeds
	if congested {
		e.CongestedHours++
		logrus.Debugf("[hour %04d] congestion: %d occupied > capacity %d, penalty %.2fh",
			t, len(e.beds), e.cfg.CapacityBeds, e.cfg.CongestionPenaltyHours)
	}
	remaining := e.beds[:0]
	for _, idx := range e.beds {
		p := e.arena[idx]
		p.RemainingService -= 1.0
		if congested {
			p.RemainingService += e.cfg.CongestionPenaltyHours
		}
		if p.RemainingService <= 0 {
			p.Status = StatusDischarged
			p.CompletionTime = t
			e.completed = append(e.completed, idx)
		} else {
			remaining = append(remaining, idx)
		}
	}
	e.beds = remaining

	// 4. Recompute the admission order under the active policy.
	e.policy.OrderQueue(e.arena, e.waiting, t)

	// 5. Admit from the head of the ordered queue while beds are free.
	admitted := 0
	for len(e.beds) < e.cfg.CapacityBeds && len(e.waiting) > 0 {
		idx := e.waiting[0]
		e.waiting = e.waiting[1:]
		p := e.arena[idx]
		p.Status = StatusInBed
		p.Admitted = true
		e.beds = append(e.beds, idx)
		admitted++
	}

	logrus.Debugf("[hour %04d] arrivals=%d admitted=%d waiting=%d occupied=%d completed=%d",
		t, arrivals, admitted, len(e.waiting), len(e.beds), len(e.completed))
	return nil
}

// CollectWaits returns the accumulated wait of every patient that reached a
// bed: the completed patients plus those currently occupying beds. Patients
// still waiting are excluded, matching how the comparison report is defined.
func (e *Engine) CollectWaits() []float64 {
	waits := make([]float64, 0, len(e.completed)+len(e.beds))
	for _, idx := range e.completed {
		waits = append(waits, e.arena[idx].AccumulatedWait)
	}
	for _, idx := range e.beds {
		waits = append(waits, e.arena[idx].AccumulatedWait)
	}
	return waits
}

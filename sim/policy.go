package sim

import (
	"fmt"
	"sort"
)

// Policy is a closed enumeration of queue-ordering strategies. The policy is
// selected at engine construction and fixed for the run. Every variant
// produces a composite sort key per patient and the queue is ordered by a
// stable sort, so patients with equal keys keep insertion order.
type Policy string

const (
	// PolicyFCFS orders purely by arrival time.
	PolicyFCFS Policy = "FCFS"
	// PolicyBaseline orders by triage weight (LONG before STANDARD before
	// SHORT), ties broken by arrival time.
	PolicyBaseline Policy = "BASELINE"
	// PolicyGuillotine promotes any patient waiting over crisisWaitHours
	// ahead of all non-crisis patients; within each group it falls back to
	// BASELINE order.
	PolicyGuillotine Policy = "GUILLOTINE"
	// PolicyCongestionTrigger behaves as FCFS until the queue exceeds
	// congestionQueueLen patients, then switches to BASELINE order.
	PolicyCongestionTrigger Policy = "CONGESTION_TRIGGER"
)

const (
	// crisisWaitHours is the waiting time beyond which the GUILLOTINE policy
	// treats a patient as a crisis case.
	crisisWaitHours = 24
	// congestionQueueLen is the queue length beyond which CONGESTION_TRIGGER
	// switches from FCFS to BASELINE ordering.
	congestionQueueLen = 10
)

// Policies lists every valid policy, in the order reports present them.
func Policies() []Policy {
	return []Policy{PolicyFCFS, PolicyBaseline, PolicyGuillotine, PolicyCongestionTrigger}
}

func (p Policy) valid() bool {
	switch p {
	case PolicyFCFS, PolicyBaseline, PolicyGuillotine, PolicyCongestionTrigger:
		return true
	}
	return false
}

// ParsePolicy converts a policy name to a Policy, returning a *ConfigError
// for unrecognized names.
func ParsePolicy(name string) (Policy, error) {
	p := Policy(name)
	if !p.valid() {
		return "", &ConfigError{Field: "policy", Reason: fmt.Sprintf("unknown policy %q (valid: %v)", name, Policies())}
	}
	return p, nil
}

// sortKey is the composite admission key. Keys compare lexicographically,
// ascending on every field.
type sortKey struct {
	group   int   // crisis / congestion-mode discriminator
	weight  int   // triage priority weight (0 when the variant ignores class)
	arrival int64 // arrival hour
}

func (a sortKey) less(b sortKey) bool {
	if a.group != b.group {
		return a.group < b.group
	}
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.arrival < b.arrival
}

// key computes the patient's sort key under this policy at the given hour.
// queueLen is the current waiting-queue length, read by CONGESTION_TRIGGER.
func (p Policy) key(pt *Patient, now int64, queueLen int) sortKey {
	switch p {
	case PolicyFCFS:
		return sortKey{arrival: pt.ArrivalTime}
	case PolicyBaseline:
		return sortKey{weight: pt.Weight, arrival: pt.ArrivalTime}
	case PolicyGuillotine:
		group := 1
		if now-pt.ArrivalTime > crisisWaitHours {
			group = 0
		}
		return sortKey{group: group, weight: pt.Weight, arrival: pt.ArrivalTime}
	case PolicyCongestionTrigger:
		if queueLen > congestionQueueLen {
			return sortKey{weight: pt.Weight, arrival: pt.ArrivalTime}
		}
		return sortKey{arrival: pt.ArrivalTime}
	default:
		panic(fmt.Sprintf("unhandled policy %q", string(p)))
	}
}

// OrderQueue reorders the waiting indices in-place into admission priority
// order. arena is the engine's patient arena; waiting holds indices into it.
// Uses sort.SliceStable so equal keys keep insertion order.
func (p Policy) OrderQueue(arena []*Patient, waiting []int, now int64) {
	queueLen := len(waiting)
	sort.SliceStable(waiting, func(i, j int) bool {
		a := p.key(arena[waiting[i]], now, queueLen)
		b := p.key(arena[waiting[j]], now, queueLen)
		return a.less(b)
	})
}

package compare

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/edsim/edsim/sim"
)

// PolicyResult holds one variant's outcome: summary statistics, the raw
// wait-time sample behind them, and the final engine snapshot.
type PolicyResult struct {
	Policy   sim.Policy
	Stats    sim.WaitStats
	Waits    []float64
	Snapshot sim.Snapshot
}

// Result aggregates the per-policy outcomes of one comparison, in the order
// the scenario listed the policies.
type Result struct {
	Scenario Scenario
	Policies []PolicyResult
}

// Run executes the scenario once per policy variant. Every variant gets a
// fresh engine seeded with the same master key, so the warm-start draws, the
// per-hour Poisson arrival counts, and the service-duration draws are
// identical across variants; the ordering policy is the only difference.
func Run(sc Scenario) (*Result, error) {
	policies, err := sc.policies()
	if err != nil {
		return nil, err
	}

	result := &Result{Scenario: sc}
	for _, policy := range policies {
		logrus.Infof("running policy %s", policy)
		pr, err := runOne(sc, policy)
		if err != nil {
			return nil, fmt.Errorf("policy %s: %w", policy, err)
		}
		result.Policies = append(result.Policies, pr)
	}
	return result, nil
}

func runOne(sc Scenario, policy sim.Policy) (PolicyResult, error) {
	engine, err := sim.NewEngine(sc.engineConfig(policy))
	if err != nil {
		return PolicyResult{}, err
	}
	if sc.WarmStartPatients > 0 {
		if err := engine.WarmStart(sc.WarmStartPatients); err != nil {
			return PolicyResult{}, err
		}
	}

	sampler := sim.NewPoissonSampler(sc.ArrivalRatePerHour)
	arrivalRNG := engine.RNG().ForSubsystem(sim.SubsystemArrivals)

	for t := 0; t < sc.HorizonHours; t++ {
		n := sampler.SampleCount(arrivalRNG)
		if err := engine.Step(int64(t), n); err != nil {
			return PolicyResult{}, err
		}
	}

	waits := engine.CollectWaits()
	stats := sim.ComputeWaitStats(policy, waits)
	stats.Congested = engine.CongestedHours
	return PolicyResult{
		Policy:   policy,
		Stats:    stats,
		Waits:    waits,
		Snapshot: engine.Snapshot(),
	}, nil
}

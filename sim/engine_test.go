package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, mutate func(*Config)) *Engine {
	t.Helper()
	cfg := testConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	e, err := NewEngine(cfg)
	require.NoError(t, err)
	return e
}

func TestNewEngine_ConfigValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero capacity", func(c *Config) { c.CapacityBeds = 0 }, "capacity-beds"},
		{"negative capacity", func(c *Config) { c.CapacityBeds = -3 }, "capacity-beds"},
		{"zero short threshold", func(c *Config) { c.ShortThresholdHours = 0 }, "short-threshold"},
		{"long below short", func(c *Config) { c.LongThresholdHours = c.ShortThresholdHours - 1 }, "long-threshold"},
		{"long equals short", func(c *Config) { c.LongThresholdHours = c.ShortThresholdHours }, "long-threshold"},
		{"zero mean service", func(c *Config) { c.MeanServiceHours = 0 }, "mean-service-hours"},
		{"negative penalty", func(c *Config) { c.CongestionPenaltyHours = -0.1 }, "congestion-penalty"},
		{"zero horizon", func(c *Config) { c.HorizonHours = 0 }, "horizon"},
		{"zero arrival rate", func(c *Config) { c.ArrivalRatePerHour = 0 }, "arrival-rate"},
		{"unknown policy", func(c *Config) { c.Policy = Policy("SJF") }, "policy"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(&cfg)
			_, err := NewEngine(cfg)
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}

// Three patients arrive at hour 0 into a 2-bed facility with exactly 5-hour
// stays: the first two are admitted immediately, the third at the first
// discharge with an accumulated wait of exactly 5 hours.
func TestStep_FCFS_ThirdPatientWaitsForFirstDischarge(t *testing.T) {
	e := newTestEngine(t, func(c *Config) {
		c.CapacityBeds = 2
		c.Policy = PolicyFCFS
	})
	e.PatientFactory().SetSampler(&FixedDurationSampler{Hours: 5})

	require.NoError(t, e.Step(0, 3))
	assert.Equal(t, 2, e.Occupancy())
	assert.Equal(t, 1, e.QueueLen())
	assert.Equal(t, StatusInBed, e.arena[0].Status)
	assert.Equal(t, StatusInBed, e.arena[1].Status)
	assert.Equal(t, StatusWaiting, e.arena[2].Status)

	for tick := int64(1); tick <= 4; tick++ {
		require.NoError(t, e.Step(tick, 0))
		assert.Equal(t, StatusWaiting, e.arena[2].Status, "hour %d", tick)
	}

	require.NoError(t, e.Step(5, 0))
	assert.Equal(t, StatusDischarged, e.arena[0].Status)
	assert.Equal(t, StatusDischarged, e.arena[1].Status)
	assert.Equal(t, int64(5), e.arena[0].CompletionTime)
	assert.Equal(t, int64(5), e.arena[1].CompletionTime)
	assert.Equal(t, StatusInBed, e.arena[2].Status)
	assert.Equal(t, 5.0, e.arena[2].AccumulatedWait)
}

func TestStep_NonConsecutiveClockRejected(t *testing.T) {
	e := newTestEngine(t, nil)
	require.NoError(t, e.Step(0, 1))
	require.NoError(t, e.Step(1, 0))

	assert.Error(t, e.Step(1, 0), "repeated hour")
	assert.Error(t, e.Step(3, 0), "skipped hour")
	assert.Error(t, e.Step(0, 0), "reversed hour")
}

func TestStep_CapacityInvariantWithoutWarmStart(t *testing.T) {
	e := newTestEngine(t, func(c *Config) {
		c.CapacityBeds = 5
		c.Policy = PolicyGuillotine
	})
	for tick := int64(0); tick < 200; tick++ {
		require.NoError(t, e.Step(tick, 3))
		require.LessOrEqual(t, e.Occupancy(), 5, "hour %d", tick)
		require.Equal(t, tick, e.Clock)
	}
}

// Warm-started overflow triggers the congestion penalty: after one step,
// every still-occupied patient's remaining service sits exactly one penalty
// above the no-overflow case.
func TestWarmStart_CongestionPenaltyDelaysDischarge(t *testing.T) {
	over := newTestEngine(t, func(c *Config) { c.CapacityBeds = 2 })
	over.PatientFactory().SetSampler(&FixedDurationSampler{Hours: 10})
	require.NoError(t, over.WarmStart(5)) // capacity+3

	baseline := newTestEngine(t, func(c *Config) { c.CapacityBeds = 2 })
	baseline.PatientFactory().SetSampler(&FixedDurationSampler{Hours: 10})
	require.NoError(t, baseline.WarmStart(2)) // at capacity, no overflow

	require.NoError(t, over.Step(0, 0))
	require.NoError(t, baseline.Step(0, 0))

	assert.Equal(t, 5, over.Occupancy())
	assert.Equal(t, 1, over.CongestedHours)
	assert.Zero(t, baseline.CongestedHours)
	for _, idx := range over.beds {
		assert.InDelta(t, 9.1, over.arena[idx].RemainingService, 1e-9)
	}
	for _, idx := range baseline.beds {
		assert.InDelta(t, 9.0, baseline.arena[idx].RemainingService, 1e-9)
	}
}

func TestWarmStart_OverflowDrainsOnlyThroughDischarges(t *testing.T) {
	e := newTestEngine(t, func(c *Config) { c.CapacityBeds = 2 })
	e.PatientFactory().SetSampler(&FixedDurationSampler{Hours: 3})
	require.NoError(t, e.WarmStart(5))

	// Net drain is 1.0 - 0.1 per congested hour; 3h stays clear after 4 steps.
	occupancies := []int{}
	for tick := int64(0); tick < 5; tick++ {
		require.NoError(t, e.Step(tick, 0))
		occupancies = append(occupancies, e.Occupancy())
	}
	assert.Equal(t, []int{5, 5, 5, 0, 0}, occupancies)
}

func TestWarmStart_AfterFirstStepFails(t *testing.T) {
	e := newTestEngine(t, nil)
	require.NoError(t, e.Step(0, 0))
	assert.Error(t, e.WarmStart(3))
}

func TestRun_IdempotentForSameSeed(t *testing.T) {
	arrivals := []int{2, 0, 5, 1, 3, 0, 0, 4, 2, 1, 6, 0, 2, 3, 1}
	run := func() Snapshot {
		e := newTestEngine(t, func(c *Config) {
			c.CapacityBeds = 3
			c.Policy = PolicyGuillotine
		})
		require.NoError(t, e.WarmStart(4))
		for tick, n := range arrivals {
			require.NoError(t, e.Step(int64(tick), n))
		}
		return e.Snapshot()
	}

	first := run()
	second := run()
	require.Equal(t, first, second, "identical seed and arrival sequence must reproduce the full patient history")
}

func TestStep_FCFS_AdmissionFollowsArrivalOrder(t *testing.T) {
	e := newTestEngine(t, func(c *Config) {
		c.CapacityBeds = 2
		c.Policy = PolicyFCFS
	})
	e.PatientFactory().SetSampler(&FixedDurationSampler{Hours: 3})

	admissionHour := map[int]int64{}
	arrivals := []int{3, 1, 0, 2, 0, 1, 0, 0, 2, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0}
	inBed := map[int]bool{}
	for tick, n := range arrivals {
		require.NoError(t, e.Step(int64(tick), n))
		for _, idx := range e.beds {
			if !inBed[idx] {
				inBed[idx] = true
				admissionHour[idx] = int64(tick)
			}
		}
	}

	for a, ta := range admissionHour {
		for b, tb := range admissionHour {
			if e.arena[a].ArrivalTime < e.arena[b].ArrivalTime {
				assert.LessOrEqual(t, ta, tb,
					"patient %d (arrived %d) admitted after patient %d (arrived %d)",
					a, e.arena[a].ArrivalTime, b, e.arena[b].ArrivalTime)
			}
		}
	}
}

func TestCollectWaits_CompletedAndOccupiedOnly(t *testing.T) {
	e := newTestEngine(t, func(c *Config) {
		c.CapacityBeds = 1
		c.Policy = PolicyFCFS
	})
	e.PatientFactory().SetSampler(&FixedDurationSampler{Hours: 2})

	// Hour 0: three arrivals, one admitted. Hours 1-2: first discharge at 2,
	// second admitted. One patient still waiting.
	require.NoError(t, e.Step(0, 3))
	require.NoError(t, e.Step(1, 0))
	require.NoError(t, e.Step(2, 0))

	assert.Equal(t, 1, e.CompletedCount())
	assert.Equal(t, 1, e.Occupancy())
	assert.Equal(t, 1, e.QueueLen())

	waits := e.CollectWaits()
	assert.Len(t, waits, 2, "waiting patients are excluded")
}

func TestSnapshot_CoversEveryPatientEverCreated(t *testing.T) {
	e := newTestEngine(t, func(c *Config) { c.CapacityBeds = 2 })
	require.NoError(t, e.WarmStart(3))
	require.NoError(t, e.Step(0, 4))
	require.NoError(t, e.Step(1, 1))

	snap := e.Snapshot()
	assert.Len(t, snap.Patients, 8)
	assert.Equal(t, int64(1), snap.Clock)
	assert.Equal(t, snap.Occupied+snap.Waiting+snap.Completed, len(snap.Patients))
	for i, p := range snap.Patients {
		assert.Equal(t, i, p.ID)
		if p.Status != StatusDischarged {
			assert.Equal(t, int64(-1), p.CompletionTime)
		}
	}
}

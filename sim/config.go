package sim

import "fmt"

// Config groups all engine construction parameters. It is validated once at
// construction and treated as immutable for the lifetime of the run; nothing
// in the engine reads process-wide state.
type Config struct {
	CapacityBeds           int     // number of functional beds (must be > 0)
	ShortThresholdHours    float64 // durations strictly below this classify as SHORT (must be > 0)
	LongThresholdHours     float64 // durations strictly above this classify as LONG (must be > ShortThresholdHours)
	MeanServiceHours       float64 // underlying-normal mean of the service draw is ln(MeanServiceHours) (must be > 0)
	CongestionPenaltyHours float64 // added to every occupied patient's remaining service while over capacity (must be >= 0)
	Seed                   int64   // master seed for the partitioned RNG
	Policy                 Policy  // queue-ordering policy, fixed for the run
	HorizonHours           int     // number of hourly steps a harness will run (must be > 0)
	ArrivalRatePerHour     float64 // Poisson arrival rate (must be > 0)
}

// ConfigError reports an invalid engine construction parameter.
// It is fatal at construction and never retried.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// Validate checks the configuration, returning a *ConfigError on the first
// violation found.
func (c Config) Validate() error {
	if c.CapacityBeds <= 0 {
		return &ConfigError{Field: "capacity-beds", Reason: fmt.Sprintf("must be positive, got %d", c.CapacityBeds)}
	}
	if c.ShortThresholdHours <= 0 {
		return &ConfigError{Field: "short-threshold", Reason: fmt.Sprintf("must be positive, got %g", c.ShortThresholdHours)}
	}
	if c.LongThresholdHours <= c.ShortThresholdHours {
		return &ConfigError{Field: "long-threshold", Reason: fmt.Sprintf("must exceed short threshold %g, got %g", c.ShortThresholdHours, c.LongThresholdHours)}
	}
	if c.MeanServiceHours <= 0 {
		return &ConfigError{Field: "mean-service-hours", Reason: fmt.Sprintf("must be positive, got %g", c.MeanServiceHours)}
	}
	if c.CongestionPenaltyHours < 0 {
		return &ConfigError{Field: "congestion-penalty", Reason: fmt.Sprintf("must be non-negative, got %g", c.CongestionPenaltyHours)}
	}
	if c.HorizonHours <= 0 {
		return &ConfigError{Field: "horizon", Reason: fmt.Sprintf("must be positive, got %d", c.HorizonHours)}
	}
	if c.ArrivalRatePerHour <= 0 {
		return &ConfigError{Field: "arrival-rate", Reason: fmt.Sprintf("must be positive, got %g", c.ArrivalRatePerHour)}
	}
	if !c.Policy.valid() {
		return &ConfigError{Field: "policy", Reason: fmt.Sprintf("unknown policy %q", string(c.Policy))}
	}
	return nil
}

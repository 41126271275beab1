package surveillance

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig() should validate cleanly, got %v", err)
	}
}

func TestConfigValidateCatchesEachBadKnob(t *testing.T) {
	cases := []struct {
		name  string
		mutate func(*Config)
	}{
		{"alpha too low", func(c *Config) { c.Alpha = 0 }},
		{"alpha too high", func(c *Config) { c.Alpha = 1.1 }},
		{"min group below 2", func(c *Config) { c.MinTransitionGroupSize = 1 }},
		{"min group exceeds domain size", func(c *Config) { c.MinTransitionGroupSize = c.DomainSize + 1 }},
		{"moving degree out of range", func(c *Config) { c.MovingDegree = 1.5 }},
		{"max await zero", func(c *Config) { c.MaxAwait = 0 }},
		{"target count exceeds objects", func(c *Config) { c.SurveillanceTargetCount = c.ObjectsCount + 1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected a ConfigError for %s", tc.name)
			}
		})
	}
}

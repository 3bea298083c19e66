package core

// RuntimeConfig contains configuration passed to the host at initialization.
type RuntimeConfig struct {
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
	}
}

// Dt returns the fixed timestep in seconds.
func (c RuntimeConfig) Dt() float32 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float32(c.TickRate)
}

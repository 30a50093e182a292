package physics

import "github.com/san-kum/diskbox/internal/vec"

// Config holds the process-wide simulation parameters. Every pipeline stage
// reads it; frontends mutate it between ticks. Out-of-range values are
// clamped by Sanitize rather than rejected.
type Config struct {
	FrictionEnabled bool
	Restitution     float64 // 0..1
	Gravity         vec.Vec2
	LinearDamping   float64 // per-second decay, used only when friction is on
	Slop            float64 // penetration below this is ignored
	Percent         float64 // fraction of remaining penetration removed per tick
}

// DefaultConfig mirrors the sandbox defaults: friction on, fairly bouncy,
// no gravity until the user enables it.
func DefaultConfig() Config {
	return Config{
		FrictionEnabled: true,
		Restitution:     0.8,
		Gravity:         vec.Zero,
		LinearDamping:   2.0,
		Slop:            0.01,
		Percent:         0.8,
	}
}

// Sanitize clamps parameters into their valid ranges.
func (c *Config) Sanitize() {
	c.Restitution = clamp(c.Restitution, 0, 1)
	c.Percent = clamp(c.Percent, 0, 1)
	if c.LinearDamping < 0 {
		c.LinearDamping = 0
	}
	if c.Slop < 0 {
		c.Slop = 0
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package metrics

import "github.com/san-kum/diskbox/internal/physics"

// Metric observes the world once per tick during a headless run and
// reduces what it saw to a single value.
type Metric interface {
	Name() string
	Observe(w *physics.World, t float64)
	Value() float64
	Reset()
}

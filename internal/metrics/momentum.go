package metrics

import (
	"math"

	"github.com/san-kum/diskbox/internal/physics"
)

// MomentumDrift reports the largest relative deviation of total momentum
// magnitude from its initial value. With no gravity, damping or removals
// the impulse solver should keep this near zero.
type MomentumDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift {
	return &MomentumDrift{}
}

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(w *physics.World, t float64) {
	p := w.Momentum().Length()

	if m.samples == 0 {
		m.initial = p
	}
	m.samples++

	if m.initial != 0 {
		drift := math.Abs(p-m.initial) / math.Abs(m.initial)
		m.maxDrift = math.Max(m.maxDrift, drift)
	}
}

func (m *MomentumDrift) Value() float64 {
	return m.maxDrift
}

func (m *MomentumDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}

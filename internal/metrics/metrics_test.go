package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/diskbox/internal/physics"
	"github.com/san-kum/diskbox/internal/vec"
)

func newWorld() *physics.World {
	cfg := physics.Config{Restitution: 1.0}
	return physics.NewWorld(cfg, physics.Bounds{HalfWidth: 1e9, HalfHeight: 1e9}, 25)
}

func TestKineticEnergyMean(t *testing.T) {
	w := newWorld()
	w.SpawnBody(vec.New(0, 0), vec.New(4, 0), 2, 25)

	m := NewKineticEnergy()
	m.Observe(w, 0)

	// KE = 0.5 * 2 * 16 = 16
	if math.Abs(m.Value()-16) > 1e-9 {
		t.Errorf("expected 16, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset, got %f", m.Value())
	}
}

func TestMomentumDriftStaysZeroWithoutForces(t *testing.T) {
	w := newWorld()
	w.SpawnBody(vec.New(0, 0), vec.New(50, 0), 1, 25)
	w.SpawnBody(vec.New(200, 0), vec.New(-20, 0), 2, 25)

	m := NewMomentumDrift()
	for i := 0; i < 100; i++ {
		m.Observe(w, float64(i)*0.016)
		w.Step(0.016)
	}

	if m.Value() > 1e-9 {
		t.Errorf("momentum drifted: %f", m.Value())
	}
}

func TestPeakPenetration(t *testing.T) {
	w := newWorld()
	w.SpawnBody(vec.New(0, 0), vec.Zero, 1, 25)
	w.SpawnBody(vec.New(30, 0), vec.Zero, 1, 25)

	m := NewPeakPenetration()
	w.Step(0.016)
	m.Observe(w, 0)

	if m.Value() <= 0 {
		t.Error("expected non-zero peak penetration for overlapping spawn")
	}
}

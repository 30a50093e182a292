package physics

import (
	"math"
	"testing"

	"github.com/san-kum/diskbox/internal/vec"
)

func TestElasticHeadOnSwap(t *testing.T) {
	w := testWorld()
	w.SetConfig(Config{Restitution: 1.0})

	a := w.SpawnBody(vec.New(0, 0), vec.New(50, 0), 1, 25)
	b := w.SpawnBody(vec.New(40, 0), vec.New(-50, 0), 1, 25)

	w.detectContacts()
	w.resolveContacts()

	if got := w.Get(a).Vel.X; math.Abs(got-(-50)) > 1e-9 {
		t.Errorf("expected A velocity -50, got %f", got)
	}
	if got := w.Get(b).Vel.X; math.Abs(got-50) > 1e-9 {
		t.Errorf("expected B velocity 50, got %f", got)
	}
}

func TestInelasticNoBounce(t *testing.T) {
	w := testWorld()
	w.SetConfig(Config{Restitution: 0.0})

	a := w.SpawnBody(vec.New(0, 0), vec.New(50, 0), 1, 25)
	b := w.SpawnBody(vec.New(40, 0), vec.New(-50, 0), 1, 25)

	w.detectContacts()
	w.resolveContacts()

	// Post-impulse relative velocity along the normal must not close.
	n := vec.New(1, 0)
	rel := w.Get(b).Vel.Sub(w.Get(a).Vel).Dot(n)
	if rel < -1e-9 {
		t.Errorf("bodies still approaching after inelastic resolve: %f", rel)
	}
}

func TestSeparatingPairSkipsImpulse(t *testing.T) {
	w := testWorld()
	w.SetConfig(Config{Restitution: 1.0})

	a := w.SpawnBody(vec.New(0, 0), vec.New(-10, 0), 1, 25)
	b := w.SpawnBody(vec.New(40, 0), vec.New(10, 0), 1, 25)

	w.detectContacts()
	w.resolveContacts()

	if w.Get(a).Vel != vec.New(-10, 0) || w.Get(b).Vel != vec.New(10, 0) {
		t.Error("separating bodies should keep their velocities")
	}
}

func TestPositionalCorrection(t *testing.T) {
	w := testWorld()
	w.SetConfig(Config{Percent: 0.8, Slop: 0.01})

	a := w.SpawnBody(vec.New(0, 0), vec.Zero, 1, 25)
	b := w.SpawnBody(vec.New(40, 0), vec.Zero, 1, 25)

	w.detectContacts()
	w.resolveContacts()

	// Penetration 10, slop 0.01, percent 0.8: total separation grows by
	// (10 - 0.01) * 0.8, split evenly between equal masses.
	want := (10.0 - 0.01) * 0.8 / 2.0
	if got := w.Get(a).Pos.X; math.Abs(got-(-want)) > 1e-9 {
		t.Errorf("expected A at %f, got %f", -want, got)
	}
	if got := w.Get(b).Pos.X; math.Abs(got-(40+want)) > 1e-9 {
		t.Errorf("expected B at %f, got %f", 40+want, got)
	}
}

func TestSlopSuppressesCorrection(t *testing.T) {
	w := testWorld()
	w.SetConfig(Config{Percent: 1.0, Slop: 0.5})

	// Penetration 0.2 < slop 0.5: no movement.
	a := w.SpawnBody(vec.New(0, 0), vec.Zero, 1, 25)
	b := w.SpawnBody(vec.New(49.8, 0), vec.Zero, 1, 25)

	w.detectContacts()
	w.resolveContacts()

	if w.Get(a).Pos != vec.New(0, 0) || w.Get(b).Pos != vec.New(49.8, 0) {
		t.Error("correction applied within slop")
	}
}

func TestKinematicBodyIsImmovable(t *testing.T) {
	w := testWorld()
	w.SetConfig(Config{Restitution: 1.0, Percent: 0.8})

	a := w.SpawnBody(vec.New(0, 0), vec.Zero, 1, 25)
	b := w.SpawnBody(vec.New(40, 0), vec.New(-50, 0), 1, 25)

	if !w.BeginDrag(a, vec.New(0, 0)) {
		t.Fatal("drag failed")
	}

	w.detectContacts()
	w.resolveContacts()

	if got := w.Get(a); got.Pos != vec.New(0, 0) || got.Vel != vec.Zero {
		t.Errorf("dragged body moved: pos %v vel %v", got.Pos, got.Vel)
	}
	// B takes the whole response: with inv_a forced to 0 it rebounds fully.
	if got := w.Get(b).Vel.X; math.Abs(got-50) > 1e-9 {
		t.Errorf("expected B velocity 50 off kinematic body, got %f", got)
	}
}

func TestZeroMassBodyIsImmovable(t *testing.T) {
	w := testWorld()
	w.SetConfig(Config{Restitution: 1.0, Percent: 0.8})

	wall := w.SpawnBody(vec.New(0, 0), vec.Zero, 0, 25)
	ball := w.SpawnBody(vec.New(40, 0), vec.New(-50, 0), 1, 25)

	w.detectContacts()
	w.resolveContacts()

	if got := w.Get(wall); got.Pos != vec.New(0, 0) || got.Vel != vec.Zero {
		t.Errorf("zero-mass body moved: pos %v vel %v", got.Pos, got.Vel)
	}
	if got := w.Get(ball).Vel.X; math.Abs(got-50) > 1e-9 {
		t.Errorf("expected rebound velocity 50, got %f", got)
	}
}

func TestTwoKinematicBodiesSkip(t *testing.T) {
	w := testWorld()

	a := w.SpawnBody(vec.New(0, 0), vec.Zero, 1, 25)
	b := w.SpawnBody(vec.New(40, 0), vec.Zero, 1, 25)
	w.BeginDrag(a, vec.New(0, 0))
	w.BeginDrag(b, vec.New(40, 0))

	w.detectContacts()
	w.resolveContacts()

	if w.Get(a).Pos != vec.New(0, 0) || w.Get(b).Pos != vec.New(40, 0) {
		t.Error("two dragged bodies in contact should be left alone")
	}
}

func TestContactReferencingRemovedBodyIsDropped(t *testing.T) {
	w := testWorld()

	a := w.SpawnBody(vec.New(0, 0), vec.Zero, 1, 25)
	b := w.SpawnBody(vec.New(40, 0), vec.New(-50, 0), 1, 25)

	w.detectContacts()
	w.Despawn(a)
	w.resolveContacts()

	// Resolve must not touch the survivor via the stale contact.
	if w.Get(b).Vel != vec.New(-50, 0) {
		t.Errorf("stale contact altered survivor: %v", w.Get(b).Vel)
	}
}

func TestUnequalMassImpulseSplit(t *testing.T) {
	w := testWorld()
	w.SetConfig(Config{Restitution: 1.0})

	// Heavy A, light B; impulse splits by inverse mass.
	a := w.SpawnBody(vec.New(0, 0), vec.New(10, 0), 4, 25)
	b := w.SpawnBody(vec.New(40, 0), vec.New(-10, 0), 1, 25)

	w.detectContacts()
	w.resolveContacts()

	// j = -(1+1) * (-20) / (0.25 + 1) = 32
	if got := w.Get(a).Vel.X; math.Abs(got-(10-32*0.25)) > 1e-9 {
		t.Errorf("expected A velocity 2, got %f", got)
	}
	if got := w.Get(b).Vel.X; math.Abs(got-(-10+32)) > 1e-9 {
		t.Errorf("expected B velocity 22, got %f", got)
	}
}

package physics

import (
	"github.com/san-kum/diskbox/internal/body"
	"github.com/san-kum/diskbox/internal/vec"
)

// OutOfBoundsTime is how long a body may dwell outside the bounds (plus
// margin) before it is removed, in seconds.
const OutOfBoundsTime = 5.0

// World owns the body store and all per-body side state, and runs the
// fixed-timestep pipeline. It is not safe for concurrent use; the sandbox
// model is a single update thread with the input loop writing drag state
// between ticks.
type World struct {
	store  *body.Store
	cfg    Config
	bounds Bounds
	radius float64 // collision radius assigned to spawned disks

	drags  map[body.ID]*dragState
	timers map[body.ID]float64

	contacts []Contact

	// OnRemove, when set, is called after a body is removed because its
	// out-of-bounds timer expired. Explicit despawns do not trigger it.
	OnRemove func(id body.ID)
}

// NewWorld creates an empty world. radius is the collision radius given to
// disks created by Spawn.
func NewWorld(cfg Config, bounds Bounds, radius float64) *World {
	cfg.Sanitize()
	return &World{
		store:  body.NewStore(),
		cfg:    cfg,
		bounds: bounds,
		radius: radius,
		drags:  make(map[body.ID]*dragState),
		timers: make(map[body.ID]float64),
	}
}

// Spawn creates a disk at pos with mass 1, the configured radius and zero
// velocity, and returns its handle.
func (w *World) Spawn(pos vec.Vec2) body.ID {
	b := body.Body{Pos: pos, Radius: w.radius}
	b.SetMass(1.0)
	return w.store.Spawn(b)
}

// SpawnBody creates a disk with explicit velocity, mass and radius.
func (w *World) SpawnBody(pos, vel vec.Vec2, mass, radius float64) body.ID {
	b := body.Body{Pos: pos, Vel: vel, Radius: radius}
	b.SetMass(mass)
	return w.store.Spawn(b)
}

// Despawn removes a body and any attached drag or timer state. Stale IDs
// are ignored.
func (w *World) Despawn(id body.ID) {
	w.store.Despawn(id)
	delete(w.drags, id)
	delete(w.timers, id)
}

// Step advances the simulation by one fixed tick. Stages run strictly in
// order; each consumes the previous stage's output.
func (w *World) Step(dt float64) {
	w.accumulateForces()
	w.integrateVelocity(dt)
	w.detectContacts()
	w.resolveContacts()
	w.integratePosition(dt)
	w.checkBounds(dt)
}

// SetConfig replaces the simulation parameters, clamping them into range.
// The next Step sees the new values.
func (w *World) SetConfig(cfg Config) {
	cfg.Sanitize()
	w.cfg = cfg
}

// Config returns the current simulation parameters.
func (w *World) Config() Config {
	return w.cfg
}

// SetBounds updates the viewport half-extents used by the lifecycle check,
// e.g. after a window resize.
func (w *World) SetBounds(b Bounds) {
	w.bounds = b
}

func (w *World) Bounds() Bounds {
	return w.bounds
}

// Each iterates live bodies in storage order.
func (w *World) Each(fn func(id body.ID, b *body.Body)) {
	w.store.Each(fn)
}

// Get resolves a handle; nil if the body no longer exists.
func (w *World) Get(id body.ID) *body.Body {
	return w.store.Get(id)
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return w.store.Len()
}

// PickBody returns the first body whose disk contains p, or body.None.
func (w *World) PickBody(p vec.Vec2) body.ID {
	found := body.None
	w.store.Each(func(id body.ID, b *body.Body) {
		if found == body.None && p.Distance(b.Pos) <= b.Radius {
			found = id
		}
	})
	return found
}

// Momentum returns the total linear momentum Σ m·v over live bodies.
func (w *World) Momentum() vec.Vec2 {
	var p vec.Vec2
	w.store.Each(func(id body.ID, b *body.Body) {
		p = p.Add(b.Vel.Scale(b.Mass))
	})
	return p
}

// KineticEnergy returns Σ ½·m·|v|² over live bodies.
func (w *World) KineticEnergy() float64 {
	ke := 0.0
	w.store.Each(func(id body.ID, b *body.Body) {
		ke += 0.5 * b.Mass * b.Vel.LengthSq()
	})
	return ke
}

// kinematic reports whether the body is under external drag control and
// therefore excluded from forces, integration and impulse response.
func (w *World) kinematic(id body.ID) bool {
	_, ok := w.drags[id]
	return ok
}

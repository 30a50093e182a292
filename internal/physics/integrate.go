package physics

import "github.com/san-kum/diskbox/internal/body"

// integrateVelocity advances velocity from the accumulated force
// (semi-implicit Euler: position integration later in the tick uses the
// updated velocity) and applies linear damping when friction is enabled.
// The damping factor is clamped to [0,1] so a large dt cannot reverse or
// amplify velocity.
func (w *World) integrateVelocity(dt float64) {
	damp := 1.0
	if w.cfg.FrictionEnabled && w.cfg.LinearDamping > 0 {
		damp = clamp(1.0-w.cfg.LinearDamping*dt, 0, 1)
	}
	w.store.Each(func(id body.ID, b *body.Body) {
		if w.kinematic(id) {
			return
		}
		b.Vel = b.Vel.Add(b.Force.Scale(b.InvMass * dt))
		b.Vel = b.Vel.Scale(damp)
	})
}

// integratePosition advances position from the resolved velocity. Dragged
// bodies are positioned directly by the drag controller and skipped here.
func (w *World) integratePosition(dt float64) {
	w.store.Each(func(id body.ID, b *body.Body) {
		if w.kinematic(id) {
			return
		}
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	})
}

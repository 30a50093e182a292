package physics

import "github.com/san-kum/diskbox/internal/body"

// accumulateForces resets each body's net force and applies gravity scaled
// by mass. Dragged bodies accumulate nothing; the drag controller owns their
// motion for the tick.
func (w *World) accumulateForces() {
	w.store.Each(func(id body.ID, b *body.Body) {
		if w.kinematic(id) {
			return
		}
		b.Force = w.cfg.Gravity.Scale(b.Mass)
	})
}

package physics

import (
	"math"

	"github.com/san-kum/diskbox/internal/body"
)

// Bounds describes the visible region as half-extents around the origin,
// plus a margin a body may wander into before it counts as out of bounds.
type Bounds struct {
	HalfWidth  float64
	HalfHeight float64
	Margin     float64
}

// Contains reports whether (x, y) is inside the bounds plus margin.
func (bo Bounds) Contains(x, y float64) bool {
	return math.Abs(x) <= bo.HalfWidth+bo.Margin &&
		math.Abs(y) <= bo.HalfHeight+bo.Margin
}

// checkBounds runs the out-of-bounds lifecycle: a body outside the bounds
// accrues dwell time each tick and is removed once it has been out for
// OutOfBoundsTime; re-entering resets it. Two states per body: in bounds
// (no timer) and out of bounds (timer running).
func (w *World) checkBounds(dt float64) {
	var expired []body.ID

	w.store.Each(func(id body.ID, b *body.Body) {
		if w.bounds.Contains(b.Pos.X, b.Pos.Y) {
			delete(w.timers, id)
			return
		}
		t, running := w.timers[id]
		if !running {
			// First tick outside: start the timer, accrue from next tick.
			w.timers[id] = 0
			return
		}
		t += dt
		w.timers[id] = t
		if t >= OutOfBoundsTime {
			expired = append(expired, id)
		}
	})

	for _, id := range expired {
		w.Despawn(id)
		if w.OnRemove != nil {
			w.OnRemove(id)
		}
	}
}

// OutOfBoundsFor returns how long the body has been outside the bounds,
// or 0 if it is inside (or gone).
func (w *World) OutOfBoundsFor(id body.ID) float64 {
	return w.timers[id]
}

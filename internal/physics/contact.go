package physics

import (
	"math"

	"github.com/san-kum/diskbox/internal/body"
	"github.com/san-kum/diskbox/internal/vec"
)

// minSeparation guards the normal against division by zero when two
// centers coincide exactly.
const minSeparation = 1e-6

// Contact records one overlapping disk pair for the current tick. Normal
// points from A toward B; which body is A is fixed by storage order, so a
// contact's sign convention is reproducible for a given spawn history.
type Contact struct {
	A, B        body.ID
	Normal      vec.Vec2
	Penetration float64
}

// detectContacts scans every unordered body pair and emits one contact per
// overlap. Deliberately exhaustive: no broad phase, which is fine for the
// body counts a sandbox holds. Positions are the current (pre-position-
// integration) ones; fast bodies can tunnel within a tick.
func (w *World) detectContacts() {
	w.contacts = w.contacts[:0]

	type entry struct {
		id body.ID
		b  *body.Body
	}
	var bodies []entry
	w.store.Each(func(id body.ID, b *body.Body) {
		bodies = append(bodies, entry{id, b})
	})

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]

			delta := b.b.Pos.Sub(a.b.Pos)
			r := a.b.Radius + b.b.Radius

			dist2 := delta.LengthSq()
			if dist2 >= r*r {
				continue
			}

			dist := math.Max(math.Sqrt(dist2), minSeparation)
			w.contacts = append(w.contacts, Contact{
				A:           a.id,
				B:           b.id,
				Normal:      delta.Scale(1.0 / dist),
				Penetration: r - dist,
			})
		}
	}
}

// Contacts returns the contacts found by the most recent Step, for debug
// display. The slice is reused across ticks.
func (w *World) Contacts() []Contact {
	return w.contacts
}

package physics

import "math"

// resolveContacts consumes the tick's contacts in detection order, applying
// positional correction and a normal impulse to each pair independently
// (sequential impulse, single pass — no relaxation across contacts, so
// stacks of 3+ overlapping bodies settle over several ticks rather than
// one). Dragged bodies take part with infinite effective mass: they push
// others but are never pushed.
func (w *World) resolveContacts() {
	for _, c := range w.contacts {
		ba := w.store.Get(c.A)
		bb := w.store.Get(c.B)
		if ba == nil || bb == nil {
			// A body was removed earlier this tick; drop the contact.
			continue
		}

		kinA := w.kinematic(c.A)
		kinB := w.kinematic(c.B)

		invA := ba.InvMass
		if kinA {
			invA = 0
		}
		invB := bb.InvMass
		if kinB {
			invB = 0
		}
		invSum := invA + invB
		if invSum <= 0 {
			continue
		}

		// Partial positional correction: remove a fraction of the
		// penetration beyond the slop, split by inverse mass.
		pen := math.Max(c.Penetration-w.cfg.Slop, 0)
		if pen > 0 {
			correction := c.Normal.Scale(pen * w.cfg.Percent / invSum)
			if !kinA {
				ba.Pos = ba.Pos.Sub(correction.Scale(invA))
			}
			if !kinB {
				bb.Pos = bb.Pos.Add(correction.Scale(invB))
			}
		}

		// Impulse along the normal. Skip if already separating.
		vn := bb.Vel.Sub(ba.Vel).Dot(c.Normal)
		if vn > 0 {
			continue
		}

		j := -(1.0 + w.cfg.Restitution) * vn / invSum
		impulse := c.Normal.Scale(j)
		if !kinA {
			ba.Vel = ba.Vel.Sub(impulse.Scale(invA))
		}
		if !kinB {
			bb.Vel = bb.Vel.Add(impulse.Scale(invB))
		}
	}
}

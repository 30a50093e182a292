package physics

import (
	"github.com/san-kum/diskbox/internal/body"
	"github.com/san-kum/diskbox/internal/vec"
)

// minDragDt floors the frame delta used to derive pointer velocity.
const minDragDt = 1e-6

// dragState is the per-body override while a pointer holds the body:
// the grab offset keeps the disk from snapping its center to the cursor,
// and the last pointer position yields the throw velocity.
type dragState struct {
	offset      vec.Vec2
	lastPointer vec.Vec2
}

// BeginDrag attaches a drag override to the body, zeroing its velocity and
// recording the grab offset. While dragged the body is kinematic: no
// forces, no integration, infinite effective mass in contacts. Returns
// false for stale IDs.
func (w *World) BeginDrag(id body.ID, pointer vec.Vec2) bool {
	b := w.store.Get(id)
	if b == nil {
		return false
	}
	b.Vel = vec.Zero
	w.drags[id] = &dragState{
		offset:      b.Pos.Sub(pointer),
		lastPointer: pointer,
	}
	return true
}

// UpdateDrag moves the dragged body with the pointer and sets its velocity
// to the pointer's velocity over the frame, so contacts push other bodies
// realistically and release leaves a throw velocity behind. dt is the
// variable frame delta of the input loop, not the physics tick.
func (w *World) UpdateDrag(id body.ID, pointer vec.Vec2, dt float64) {
	d, ok := w.drags[id]
	if !ok {
		return
	}
	b := w.store.Get(id)
	if b == nil {
		delete(w.drags, id)
		return
	}
	if dt < minDragDt {
		dt = minDragDt
	}
	b.Pos = pointer.Add(d.offset)
	b.Vel = pointer.Sub(d.lastPointer).Scale(1.0 / dt)
	d.lastPointer = pointer
}

// EndDrag detaches the override. The body keeps the velocity of the last
// drag update.
func (w *World) EndDrag(id body.ID) {
	delete(w.drags, id)
}

// Dragging reports whether the body is currently under a drag override.
func (w *World) Dragging(id body.ID) bool {
	return w.kinematic(id)
}

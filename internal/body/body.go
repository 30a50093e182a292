package body

import "github.com/san-kum/diskbox/internal/vec"

// ID is a stable handle to a body in a Store. The generation counter makes
// handles to despawned slots resolve to nothing instead of whatever body
// reuses the slot.
type ID struct {
	index int
	gen   uint32
}

// None is the zero ID; it never resolves.
var None = ID{index: -1}

// Body is a point-mass disk. Force is transient scratch state, cleared and
// refilled every tick by the pipeline.
type Body struct {
	Pos     vec.Vec2
	Vel     vec.Vec2
	Force   vec.Vec2
	Mass    float64
	InvMass float64 // 1/Mass when Mass > 0, else exactly 0
	Radius  float64
}

// SetMass sets mass and keeps the cached inverse consistent. Mass <= 0
// means unmovable (infinite mass).
func (b *Body) SetMass(m float64) {
	b.Mass = m
	if m > 0 {
		b.InvMass = 1.0 / m
	} else {
		b.InvMass = 0
	}
}

type slot struct {
	body Body
	gen  uint32
	live bool
}

// Store is the authoritative arena of simulated bodies. Iteration order is
// slot order, which fixes the A/B orientation of contact normals downstream;
// it is stable for a given spawn/despawn history.
type Store struct {
	slots []slot
	free  []int
	count int
}

func NewStore() *Store {
	return &Store{}
}

// Spawn inserts a body and returns its handle.
func (s *Store) Spawn(b Body) ID {
	if n := len(s.free); n > 0 {
		i := s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[i].body = b
		s.slots[i].live = true
		s.count++
		return ID{index: i, gen: s.slots[i].gen}
	}
	s.slots = append(s.slots, slot{body: b, live: true})
	s.count++
	return ID{index: len(s.slots) - 1, gen: 0}
}

// Despawn removes a body. Removing an already-removed or stale ID is a
// no-op, so removal is idempotent.
func (s *Store) Despawn(id ID) {
	if !s.ok(id) {
		return
	}
	s.slots[id.index].live = false
	s.slots[id.index].gen++
	s.free = append(s.free, id.index)
	s.count--
}

// Get resolves an ID to its body, or nil if the body no longer exists.
// The pointer is only valid until the next Spawn.
func (s *Store) Get(id ID) *Body {
	if !s.ok(id) {
		return nil
	}
	return &s.slots[id.index].body
}

// Alive reports whether the ID still resolves to a live body.
func (s *Store) Alive(id ID) bool {
	return s.ok(id)
}

// Each calls fn for every live body in slot order.
func (s *Store) Each(fn func(id ID, b *Body)) {
	for i := range s.slots {
		if s.slots[i].live {
			fn(ID{index: i, gen: s.slots[i].gen}, &s.slots[i].body)
		}
	}
}

// Len returns the number of live bodies.
func (s *Store) Len() int {
	return s.count
}

func (s *Store) ok(id ID) bool {
	return id.index >= 0 && id.index < len(s.slots) &&
		s.slots[id.index].live && s.slots[id.index].gen == id.gen
}

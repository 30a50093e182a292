package sim

import (
	"math/rand"

	"github.com/san-kum/diskbox/internal/physics"
	"github.com/san-kum/diskbox/internal/vec"
)

// SpawnGrid fills the world with n disks on a grid centered at the origin,
// spaced so they start separated.
func SpawnGrid(w *physics.World, n int, radius float64) {
	cols := 1
	for cols*cols < n {
		cols++
	}
	spacing := radius*2 + 10
	offset := float64(cols-1) * spacing / 2

	for i := 0; i < n; i++ {
		x := float64(i%cols)*spacing - offset
		y := float64(i/cols)*spacing - offset
		w.SpawnBody(vec.New(x, y), vec.Zero, 1.0, radius)
	}
}

// SpawnBurst scatters n disks near the origin with random outward
// velocities. Deterministic for a given seed.
func SpawnBurst(w *physics.World, n int, radius, speed float64, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		pos := vec.New(rng.Float64()*100-50, rng.Float64()*100-50)
		vel := vec.New(rng.Float64()*2-1, rng.Float64()*2-1).Normalize().Scale(speed)
		w.SpawnBody(pos, vel, 1.0, radius)
	}
}

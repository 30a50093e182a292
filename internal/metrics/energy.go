package metrics

import "github.com/san-kum/diskbox/internal/physics"

// KineticEnergy reports the mean total kinetic energy over the run.
type KineticEnergy struct {
	total   float64
	samples int
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{}
}

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(w *physics.World, t float64) {
	k.total += w.KineticEnergy()
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}

// PeakPenetration reports the deepest overlap the detector saw, a proxy
// for how hard the single-pass solver was working.
type PeakPenetration struct {
	max float64
}

func NewPeakPenetration() *PeakPenetration {
	return &PeakPenetration{}
}

func (p *PeakPenetration) Name() string { return "peak_penetration" }

func (p *PeakPenetration) Observe(w *physics.World, t float64) {
	for _, c := range w.Contacts() {
		if c.Penetration > p.max {
			p.max = c.Penetration
		}
	}
}

func (p *PeakPenetration) Value() float64 { return p.max }

func (p *PeakPenetration) Reset() { p.max = 0 }

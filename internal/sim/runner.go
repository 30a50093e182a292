package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/diskbox/internal/body"
	"github.com/san-kum/diskbox/internal/metrics"
	"github.com/san-kum/diskbox/internal/physics"
)

// Observer is notified after every tick of a headless run.
type Observer interface {
	OnStep(w *physics.World, t float64)
}

// Config parameterizes a headless run.
type Config struct {
	Dt       float64
	Duration float64
}

// Result is what a headless run leaves behind: per-tick series for
// plotting and the final metric values.
type Result struct {
	Times    []float64
	Energy   []float64
	Momentum []float64
	Bodies   []int
	Metrics  map[string]float64
	Removed  int
	Steps    int
}

// Runner drives a world through a fixed number of ticks, feeding metrics
// and observers along the way.
type Runner struct {
	world     *physics.World
	metrics   []metrics.Metric
	observers []Observer
}

func New(w *physics.World) *Runner {
	return &Runner{world: w}
}

func (r *Runner) AddMetric(m metrics.Metric) { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer)     { r.observers = append(r.observers, o) }
func (r *Runner) World() *physics.World      { return r.world }

// Run executes the fixed-timestep loop for cfg.Duration seconds of
// simulated time. The context cancels between ticks.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := r.validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Times:    make([]float64, 0, steps),
		Energy:   make([]float64, 0, steps),
		Momentum: make([]float64, 0, steps),
		Bodies:   make([]int, 0, steps),
		Metrics:  make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	prevRemove := r.world.OnRemove
	r.world.OnRemove = func(id body.ID) {
		result.Removed++
		if prevRemove != nil {
			prevRemove(id)
		}
	}
	defer func() { r.world.OnRemove = prevRemove }()

	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		r.world.Step(cfg.Dt)
		t += cfg.Dt
		result.Steps++

		for _, m := range r.metrics {
			m.Observe(r.world, t)
		}
		for _, o := range r.observers {
			o.OnStep(r.world, t)
		}

		result.Times = append(result.Times, t)
		result.Energy = append(result.Energy, r.world.KineticEnergy())
		result.Momentum = append(result.Momentum, r.world.Momentum().Length())
		result.Bodies = append(result.Bodies, r.world.Len())
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (r *Runner) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}

// Package physics simulates 2D rigid disks with impulse-based contact
// resolution.
//
// A [World] owns a set of circular bodies and advances them with
// [World.Step], a fixed-timestep pipeline:
//
//   - force accumulation (gravity)
//   - semi-implicit Euler velocity integration with linear damping
//   - pairwise circle contact detection
//   - single-pass sequential impulses with positional correction
//   - position integration
//   - out-of-bounds lifecycle (bodies far outside the arena for long
//     enough are removed)
//
// Bodies held by a pointer drag ([World.BeginDrag]) become kinematic:
// the solver treats them as infinitely massive and the integrator skips
// them, so the pointer alone dictates their motion.
package physics

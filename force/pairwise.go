// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package force computes per-body gravitational accelerations from a
// position array that need not match a body's currently stored position
// (integrators call it with provisional stage positions, spec §4.1).
//
// Two strategies are provided: Pairwise, an O(N²) direct-summation
// reference, and BarnesHut, built on gonum's quadtree
// (gonum.org/v1/gonum/spatial/barneshut) for O(N log N) approximation.
// Compute picks between them (or forces one) per SimulationConfig.
package force

import (
	"math"

	"github.com/gazed/nbody/math/vec2"
)

// Pairwise computes accelerations by direct O(N²) summation, iterating
// pairs (i, j) with i < j ascending so the accumulation order is fixed
// regardless of caller (spec §4.1, deterministic mode iteration order).
//
// For each pair: r = p_j − p_i, d² = |r|² + ε². Pairs with d² ≤ 0 are
// skipped. a_i += G·m_j·r/d³, a_j −= G·m_i·r/d³. Dead bodies (alive[i] ==
// false) neither contribute nor receive force.
func Pairwise(masses []float64, alive []bool, positions []vec2.Vec2, gravityConstant, softeningEpsilon float64) []vec2.Vec2 {
	n := len(positions)
	accel := make([]vec2.Vec2, n)
	eps2 := softeningEpsilon * softeningEpsilon

	for i := 0; i < n; i++ {
		if !alive[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if !alive[j] {
				continue
			}
			r := positions[j].Sub(positions[i])
			d2 := r.NormSquared() + eps2
			if d2 <= 0 {
				continue
			}
			d := math.Sqrt(d2)
			invD3 := 1 / (d2 * d)
			accel[i] = accel[i].Add(r.Scale(gravityConstant * masses[j] * invD3))
			accel[j] = accel[j].Sub(r.Scale(gravityConstant * masses[i] * invD3))
		}
	}
	return accel
}

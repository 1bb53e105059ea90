// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package force

import (
	"github.com/gazed/nbody/math/vec2"
	"github.com/gazed/nbody/model"
)

// Compute picks a solver per cfg.GravitySolver (spec §4.1) and returns the
// resulting accelerations together with whether Barnes–Hut was used (for
// StepSummary's pairwiseTicks/barnesHutTicks bookkeeping).
//
// An empty universe (no live bodies) returns an all-zero acceleration
// array without touching either solver, per spec §9.
func Compute(masses []float64, alive []bool, positions []vec2.Vec2, cfg model.SimulationConfig) (accel []vec2.Vec2, usedBarnesHut bool) {
	liveCount := 0
	for _, a := range alive {
		if a {
			liveCount++
		}
	}
	if liveCount == 0 {
		return make([]vec2.Vec2, len(positions)), false
	}

	switch cfg.GravitySolver {
	case model.SolverBarnesHut:
		usedBarnesHut = true
	case model.SolverAuto:
		usedBarnesHut = liveCount >= cfg.BarnesHutThreshold
	case model.SolverPairwise:
		usedBarnesHut = false
	}

	if usedBarnesHut {
		return BarnesHut(masses, alive, positions, cfg.GravityConstant, cfg.SofteningEpsilon, cfg.BarnesHutTheta), true
	}
	return Pairwise(masses, alive, positions, cfg.GravityConstant, cfg.SofteningEpsilon), false
}

// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package nbody

import (
	"time"

	"github.com/gazed/nbody/collision"
	"github.com/gazed/nbody/integrate"
	"github.com/gazed/nbody/math/vec2"
	"github.com/gazed/nbody/model"
)

// Step runs up to ticks substeps (spec §4.5). n ≤ 0 is a zero-work
// success. Substeps are strictly sequential: each one's integrator and
// collision pass complete, and its tick/simTime advance commit, before
// the next begins. If a substep produces a non-finite live body the call
// fails and returns immediately; every substep before the failing one has
// already been committed, so tick/simTime reflect exactly the substeps
// that succeeded.
func (e *Engine) Step(ticks int) (model.StepSummary, error) {
	if err := e.requireActive("step"); err != nil {
		return model.StepSummary{}, err
	}
	if ticks <= 0 {
		return model.StepSummary{}, nil
	}

	start := time.Now()
	summary := model.StepSummary{}

	prevSolverMode := ""
	for i := 0; i < ticks; i++ {
		usedBarnesHut, err := e.substep(&summary)
		if err != nil {
			e.logger.Warn("step failed on numerical instability", "tick", e.tick, "substep", i, "error", err)
			summary.StepWallTimeMicros = time.Since(start).Microseconds()
			if summary.TicksApplied > 0 {
				summary.AverageTickMicros = float64(summary.StepWallTimeMicros) / float64(summary.TicksApplied)
			}
			return summary, err
		}
		summary.TicksApplied++
		summary.FinalTick = e.tick
		summary.SimTime = e.simTime
		mode := model.SolverModePairwise
		if usedBarnesHut {
			mode = model.SolverModeBarnesHut
			summary.BarnesHutTicks++
		} else {
			summary.PairwiseTicks++
		}
		if prevSolverMode != "" && prevSolverMode != mode {
			e.logger.Debug("gravity solver mode switched", "from", prevSolverMode, "to", mode, "tick", e.tick)
		}
		prevSolverMode = mode
	}

	summary.StepWallTimeMicros = time.Since(start).Microseconds()
	summary.AverageTickMicros = float64(summary.StepWallTimeMicros) / float64(summary.TicksApplied)
	if len(e.bodies) > e.maxBodyCount {
		e.maxBodyCount = len(e.bodies)
	}
	summary.MaxBodyCount = e.maxBodyCount
	summary.LastSolverMode = prevSolverMode

	e.metrics.ObserveStep(summary, float64(summary.StepWallTimeMicros)/1e6)
	return summary, nil
}

// substep advances the engine by exactly one tick. It mutates e only on
// success; a non-finite result leaves e untouched.
func (e *Engine) substep(summary *model.StepSummary) (usedBarnesHut bool, err error) {
	n := len(e.bodies)
	masses := make([]float64, n)
	alive := make([]bool, n)
	positions := make([]vec2.Vec2, n)
	velocities := make([]vec2.Vec2, n)
	for i, b := range e.bodies {
		masses[i] = b.Mass
		alive[i] = b.Alive
		positions[i] = b.Position
		velocities[i] = b.Velocity
	}

	dtUsed := e.config.Dt
	if e.config.DtPolicy == model.DtAdaptive {
		dtUsed = integrate.AdaptiveDt(alive, positions, velocities, e.config.Dt)
	}

	newPositions, newVelocities, usedBarnesHut := integrate.Step(masses, alive, positions, velocities, e.config, dtUsed)

	advanced := make([]model.SimulationBody, n)
	for i, b := range e.bodies {
		b.Position = newPositions[i]
		b.Velocity = newVelocities[i]
		advanced[i] = b
		if b.Alive && !(b.Position.IsFinite() && b.Velocity.IsFinite()) {
			return usedBarnesHut, model.NumericalErrorf("body %q became non-finite during integration (tick %d)", b.ID, e.tick+1)
		}
	}

	resolved, collisionEvents, mergedEvents := collision.Resolve(advanced, e.config.CollisionMode)

	e.bodies = resolved
	e.tick++
	e.simTime += dtUsed
	summary.CollisionEvents += collisionEvents
	summary.MergedEvents += mergedEvents
	return usedBarnesHut, nil
}

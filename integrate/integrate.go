// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package integrate advances body positions and velocities one tick under
// a selectable numerical scheme (spec §4.2), each built on the shared
// force.Compute. Dead bodies are frozen: every scheme preserves their
// position and velocity identically, including in the provisional arrays
// used by multi-stage schemes (velocity Verlet, RK4).
package integrate

import (
	"github.com/gazed/nbody/force"
	"github.com/gazed/nbody/math/vec2"
	"github.com/gazed/nbody/model"
)

// Step dispatches to the scheme named by the config's Integrator field.
// It returns the advanced positions/velocities and whether the Barnes–Hut
// solver was used during this substep's force evaluations (all
// evaluations within one substep see the same live-body set, so there is
// a single answer per substep, not per evaluation).
func Step(masses []float64, alive []bool, positions, velocities []vec2.Vec2, cfg model.SimulationConfig, dt float64) (newPositions, newVelocities []vec2.Vec2, usedBarnesHut bool) {
	switch cfg.Integrator {
	case model.SemiImplicitEuler:
		return SemiImplicitEuler(masses, alive, positions, velocities, cfg, dt)
	case model.RK4:
		return RungeKutta4(masses, alive, positions, velocities, cfg, dt)
	default: // model.VelocityVerlet
		return VelocityVerlet(masses, alive, positions, velocities, cfg, dt)
	}
}

// SemiImplicitEuler advances v then p from the single acceleration
// evaluation a(p): v' = v + a(p)·dt; p' = p + v'·dt (spec §4.2).
func SemiImplicitEuler(masses []float64, alive []bool, positions, velocities []vec2.Vec2, cfg model.SimulationConfig, dt float64) ([]vec2.Vec2, []vec2.Vec2, bool) {
	accel, usedBarnesHut := force.Compute(masses, alive, positions, cfg)
	n := len(positions)
	newPos := make([]vec2.Vec2, n)
	newVel := make([]vec2.Vec2, n)
	for i := 0; i < n; i++ {
		if !alive[i] {
			newPos[i], newVel[i] = positions[i], velocities[i]
			continue
		}
		newVel[i] = velocities[i].Add(accel[i].Scale(dt))
		newPos[i] = positions[i].Add(newVel[i].Scale(dt))
	}
	return newPos, newVel, usedBarnesHut
}

// VelocityVerlet is the symplectic default: a0 = a(p); p' = p + v·dt +
// 0.5·a0·dt²; a1 = a(p'); v' = v + 0.5·(a0+a1)·dt (spec §4.2). Two force
// evaluations.
func VelocityVerlet(masses []float64, alive []bool, positions, velocities []vec2.Vec2, cfg model.SimulationConfig, dt float64) ([]vec2.Vec2, []vec2.Vec2, bool) {
	n := len(positions)
	a0, usedBarnesHut := force.Compute(masses, alive, positions, cfg)

	newPos := make([]vec2.Vec2, n)
	for i := 0; i < n; i++ {
		if !alive[i] {
			newPos[i] = positions[i]
			continue
		}
		newPos[i] = positions[i].Add(velocities[i].Scale(dt)).Add(a0[i].Scale(0.5 * dt * dt))
	}

	a1, _ := force.Compute(masses, alive, newPos, cfg)

	newVel := make([]vec2.Vec2, n)
	for i := 0; i < n; i++ {
		if !alive[i] {
			newVel[i] = velocities[i]
			continue
		}
		newVel[i] = velocities[i].Add(a0[i].Add(a1[i]).Scale(0.5 * dt))
	}
	return newPos, newVel, usedBarnesHut
}

// RungeKutta4 is the classical fourth-order scheme over the coupled system
// ṗ = v, v̇ = a(p), combined with the standard 1-2-2-1 weights (spec §4.2).
// Four force evaluations, one per stage.
func RungeKutta4(masses []float64, alive []bool, positions, velocities []vec2.Vec2, cfg model.SimulationConfig, dt float64) ([]vec2.Vec2, []vec2.Vec2, bool) {
	n := len(positions)

	k1v, usedBarnesHut := force.Compute(masses, alive, positions, cfg)
	k1p := velocities

	p2 := advance(positions, k1p, alive, dt/2)
	v2 := advance(velocities, k1v, alive, dt/2)
	k2v, _ := force.Compute(masses, alive, p2, cfg)
	k2p := v2

	p3 := advance(positions, k2p, alive, dt/2)
	v3 := advance(velocities, k2v, alive, dt/2)
	k3v, _ := force.Compute(masses, alive, p3, cfg)
	k3p := v3

	p4 := advance(positions, k3p, alive, dt)
	v4 := advance(velocities, k3v, alive, dt)
	k4v, _ := force.Compute(masses, alive, p4, cfg)
	k4p := v4

	newPos := make([]vec2.Vec2, n)
	newVel := make([]vec2.Vec2, n)
	for i := 0; i < n; i++ {
		if !alive[i] {
			newPos[i], newVel[i] = positions[i], velocities[i]
			continue
		}
		dp := sumWeighted(k1p[i], k2p[i], k3p[i], k4p[i]).Scale(dt / 6)
		dv := sumWeighted(k1v[i], k2v[i], k3v[i], k4v[i]).Scale(dt / 6)
		newPos[i] = positions[i].Add(dp)
		newVel[i] = velocities[i].Add(dv)
	}
	return newPos, newVel, usedBarnesHut
}

// advance returns base[i] + rate[i]*h for live bodies, identity for dead
// ones — the provisional-array freeze required by spec §4.2.
func advance(base, rate []vec2.Vec2, alive []bool, h float64) []vec2.Vec2 {
	out := make([]vec2.Vec2, len(base))
	for i := range base {
		if !alive[i] {
			out[i] = base[i]
			continue
		}
		out[i] = base[i].Add(rate[i].Scale(h))
	}
	return out
}

// sumWeighted combines four RK4 stage derivatives with the standard
// 1-2-2-1 weights (the /6 scale is applied by the caller).
func sumWeighted(k1, k2, k3, k4 vec2.Vec2) vec2.Vec2 {
	return k1.Add(k2.Scale(2)).Add(k3.Scale(2)).Add(k4)
}

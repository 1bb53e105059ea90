// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package integrate

import (
	"testing"

	"github.com/gazed/nbody/math/vec2"
	"github.com/gazed/nbody/model"
	"github.com/stretchr/testify/require"
)

// go test -run NoForceMeansConstantVelocity
func TestNoForceMeansConstantVelocity(t *testing.T) {
	masses := []float64{1}
	alive := []bool{true}
	positions := []vec2.Vec2{vec2.New(0, 0)}
	velocities := []vec2.Vec2{vec2.New(1, 2)}
	cfg := model.DefaultConfig()
	cfg.GravityConstant = 1e-300 // effectively zero acceleration for a lone body (no peer to pull toward anyway)
	dt := 0.1

	for _, scheme := range []model.Integrator{model.SemiImplicitEuler, model.VelocityVerlet, model.RK4} {
		cfg.Integrator = scheme
		newPos, newVel, _ := Step(masses, alive, positions, velocities, cfg, dt)
		require.InDelta(t, 0.1, newPos[0].X, 1e-9, scheme)
		require.InDelta(t, 0.2, newPos[0].Y, 1e-9, scheme)
		require.InDelta(t, 1.0, newVel[0].X, 1e-9, scheme)
		require.InDelta(t, 2.0, newVel[0].Y, 1e-9, scheme)
	}
}

func TestDeadBodiesAreFrozen(t *testing.T) {
	masses := []float64{10, 1}
	alive := []bool{true, false}
	positions := []vec2.Vec2{vec2.New(0, 0), vec2.New(5, 0)}
	velocities := []vec2.Vec2{vec2.New(0, 0), vec2.New(3, 3)}
	cfg := model.DefaultConfig()

	for _, scheme := range []model.Integrator{model.SemiImplicitEuler, model.VelocityVerlet, model.RK4} {
		cfg.Integrator = scheme
		newPos, newVel, _ := Step(masses, alive, positions, velocities, cfg, 0.1)
		require.True(t, newPos[1].Eq(positions[1]), scheme)
		require.True(t, newVel[1].Eq(velocities[1]), scheme)
	}
}

func TestVelocityVerletIsSymplecticForCircularOrbit(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Integrator = model.VelocityVerlet
	cfg.GravityConstant = 1.0

	masses := []float64{1000, 1}
	alive := []bool{true, true}
	positions := []vec2.Vec2{vec2.New(0, 0), vec2.New(10, 0)}
	speed := 10.0 // circular speed for v^2 = G*M/r: sqrt(1000/10) = 10
	velocities := []vec2.Vec2{vec2.New(0, 0), vec2.New(0, speed)}
	dt := 0.001

	for step := 0; step < 2000; step++ {
		positions, velocities, _ = Step(masses, alive, positions, velocities, cfg, dt)
	}

	r := positions[1].Distance(positions[0])
	require.InDelta(t, 10.0, r, 1.0, "orbit radius should stay roughly bounded")
}

func TestAdaptiveDtBounds(t *testing.T) {
	alive := []bool{true, true}
	positions := []vec2.Vec2{vec2.New(0, 0), vec2.New(1, 0)}
	velocities := []vec2.Vec2{vec2.New(100, 0), vec2.New(0, 0)}
	configured := 0.5

	dt := AdaptiveDt(alive, positions, velocities, configured)
	require.GreaterOrEqual(t, dt, 0.05*configured)
	require.LessOrEqual(t, dt, configured)
}

func TestAdaptiveDtFallsBackWhenNoMotion(t *testing.T) {
	alive := []bool{true, true}
	positions := []vec2.Vec2{vec2.New(0, 0), vec2.New(1, 0)}
	velocities := []vec2.Vec2{vec2.New(0, 0), vec2.New(0, 0)}
	configured := 0.25

	require.Equal(t, configured, AdaptiveDt(alive, positions, velocities, configured))
}

func TestAdaptiveDtFallsBackWithSingleLiveBody(t *testing.T) {
	alive := []bool{true}
	positions := []vec2.Vec2{vec2.New(0, 0)}
	velocities := []vec2.Vec2{vec2.New(5, 5)}
	configured := 0.1

	require.Equal(t, configured, AdaptiveDt(alive, positions, velocities, configured))
}

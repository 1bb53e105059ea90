// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package force

import (
	"math"
	"testing"

	"github.com/gazed/nbody/math/vec2"
	"github.com/gazed/nbody/model"
	"github.com/stretchr/testify/require"
)

// go test -run Pairwise
func TestPairwiseTwoBody(t *testing.T) {
	masses := []float64{10, 1}
	alive := []bool{true, true}
	positions := []vec2.Vec2{vec2.New(0, 0), vec2.New(2, 0)}

	accel := Pairwise(masses, alive, positions, 1.0, 0)

	// a_0 = G*m1*r/d^3 where r = p1-p0 = (2,0), d=2
	want0 := vec2.New(1*1/4.0, 0)
	require.InDelta(t, want0.X, accel[0].X, 1e-12)
	require.InDelta(t, want0.Y, accel[0].Y, 1e-12)

	// a_1 should be equal and opposite scaled by mass ratio (Newton's third law)
	require.InDelta(t, -accel[1].X*masses[1], accel[0].X*masses[0], 1e-9)
}

func TestPairwiseSkipsDeadBodies(t *testing.T) {
	masses := []float64{10, 1}
	alive := []bool{true, false}
	positions := []vec2.Vec2{vec2.New(0, 0), vec2.New(1, 0)}

	accel := Pairwise(masses, alive, positions, 1.0, 0)
	require.True(t, accel[0].Eq(vec2.Zero), "dead body contributes no force")
	require.True(t, accel[1].Eq(vec2.Zero), "dead body receives no force")
}

func TestPairwiseSofteningAvoidsSingularity(t *testing.T) {
	masses := []float64{1, 1}
	alive := []bool{true, true}
	positions := []vec2.Vec2{vec2.New(0, 0), vec2.New(0, 0)}

	accel := Pairwise(masses, alive, positions, 1.0, 0)
	require.True(t, accel[0].Eq(vec2.Zero), "coincident bodies with zero softening skip")

	accel = Pairwise(masses, alive, positions, 1.0, 0.1)
	require.False(t, math.IsNaN(accel[0].X))
}

// go test -run BarnesHutAgreesWithPairwise
func TestBarnesHutAgreesWithPairwise(t *testing.T) {
	masses := []float64{100, 2, 3, 5, 1, 8, 4, 6}
	positions := []vec2.Vec2{
		vec2.New(0, 0), vec2.New(10, 2), vec2.New(-7, 4), vec2.New(3, -9),
		vec2.New(12, 12), vec2.New(-15, -3), vec2.New(6, -6), vec2.New(-2, 9),
	}
	alive := make([]bool, len(masses))
	for i := range alive {
		alive[i] = true
	}

	pairwise := Pairwise(masses, alive, positions, 1.0, 0.01)
	bh := BarnesHut(masses, alive, positions, 1.0, 0.01, 0.6)

	for i := range pairwise {
		require.InDelta(t, pairwise[i].X, bh[i].X, 0.05*math.Max(1, math.Abs(pairwise[i].X)))
		require.InDelta(t, pairwise[i].Y, bh[i].Y, 0.05*math.Max(1, math.Abs(pairwise[i].Y)))
	}
}

func TestBarnesHutEmptyUniverse(t *testing.T) {
	accel := BarnesHut(nil, nil, nil, 1, 0, 0.5)
	require.Empty(t, accel)
}

func TestComputeAutoSwitchesOnThreshold(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.GravitySolver = model.SolverAuto
	cfg.BarnesHutThreshold = 5

	masses := make([]float64, 4)
	alive := make([]bool, 4)
	positions := make([]vec2.Vec2, 4)
	for i := range masses {
		masses[i], alive[i] = 1, true
		positions[i] = vec2.New(float64(i), 0)
	}
	_, usedBH := Compute(masses, alive, positions, cfg)
	require.False(t, usedBH)

	masses = append(masses, 1, 1)
	alive = append(alive, true, true)
	positions = append(positions, vec2.New(5, 0), vec2.New(6, 0))
	_, usedBH = Compute(masses, alive, positions, cfg)
	require.True(t, usedBH)
}

func TestComputeEmptyUniverse(t *testing.T) {
	cfg := model.DefaultConfig()
	accel, usedBH := Compute(nil, nil, nil, cfg)
	require.Empty(t, accel)
	require.False(t, usedBH)
}

// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package collision

import (
	"math"
	"testing"

	"github.com/gazed/nbody/math/vec2"
	"github.com/gazed/nbody/model"
	"github.com/stretchr/testify/require"
)

func headOnBodies() []model.SimulationBody {
	return []model.SimulationBody{
		model.NewBody("a", 1, 1, vec2.New(-1, 0), vec2.New(1, 0)),
		model.NewBody("b", 1, 1, vec2.New(1, 0), vec2.New(-1, 0)),
	}
}

// go test -run InelasticMerge
func TestInelasticMerge(t *testing.T) {
	resolved, collisions, merges := Resolve(headOnBodies(), model.CollisionMerge)

	require.Len(t, resolved, 1)
	require.Equal(t, uint64(1), collisions)
	require.Equal(t, uint64(1), merges)

	b := resolved[0]
	require.Equal(t, "a", b.ID)
	require.InDelta(t, 2.0, b.Mass, 1e-12)
	require.InDelta(t, 0.0, b.Position.X, 1e-12)
	require.InDelta(t, 0.0, b.Position.Y, 1e-12)
	require.InDelta(t, 0.0, b.Velocity.X, 1e-12)
	require.InDelta(t, 0.0, b.Velocity.Y, 1e-12)
	require.InDelta(t, math.Sqrt2, b.Radius, 1e-12)
}

// go test -run ElasticSymmetric
func TestElasticSymmetricSwap(t *testing.T) {
	resolved, collisions, merges := Resolve(headOnBodies(), model.CollisionElastic)

	require.Len(t, resolved, 2)
	require.Equal(t, uint64(1), collisions)
	require.Equal(t, uint64(0), merges)

	require.InDelta(t, -1.0, resolved[0].Velocity.X, 1e-9)
	require.InDelta(t, 1.0, resolved[1].Velocity.X, 1e-9)
}

func TestIgnoreCountsButDoesNotMutate(t *testing.T) {
	before := headOnBodies()
	resolved, collisions, merges := Resolve(before, model.CollisionIgnore)

	require.Len(t, resolved, 2)
	require.Equal(t, uint64(1), collisions)
	require.Equal(t, uint64(0), merges)
	require.Equal(t, before[0].Velocity, resolved[0].Velocity)
	require.Equal(t, before[1].Velocity, resolved[1].Velocity)
}

func TestNoCollisionWhenFarApart(t *testing.T) {
	bodies := []model.SimulationBody{
		model.NewBody("a", 1, 1, vec2.New(0, 0), vec2.Zero),
		model.NewBody("b", 1, 1, vec2.New(100, 0), vec2.Zero),
	}
	resolved, collisions, merges := Resolve(bodies, model.CollisionMerge)
	require.Len(t, resolved, 2)
	require.Equal(t, uint64(0), collisions)
	require.Equal(t, uint64(0), merges)
}

func TestCascadingMergeLeftToRight(t *testing.T) {
	// Three mutually-overlapping unit bodies within 0.1 of the origin: a
	// absorbs b, then the enlarged a absorbs c.
	bodies := []model.SimulationBody{
		model.NewBody("a", 1, 1, vec2.New(0, 0), vec2.Zero),
		model.NewBody("b", 1, 1, vec2.New(0.1, 0), vec2.Zero),
		model.NewBody("c", 1, 1, vec2.New(-0.1, 0), vec2.Zero),
	}
	resolved, _, merges := Resolve(bodies, model.CollisionMerge)
	require.Len(t, resolved, 1)
	require.Equal(t, uint64(2), merges)
	require.Equal(t, "a", resolved[0].ID)
	require.InDelta(t, 3.0, resolved[0].Mass, 1e-12)
}

func TestMassConservedAcrossMerge(t *testing.T) {
	bodies := headOnBodies()
	totalBefore := 0.0
	for _, b := range bodies {
		totalBefore += b.Mass
	}
	resolved, _, _ := Resolve(bodies, model.CollisionMerge)
	totalAfter := 0.0
	for _, b := range resolved {
		totalAfter += b.Mass
	}
	require.InDelta(t, totalBefore, totalAfter, 1e-12)
}

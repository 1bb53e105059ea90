// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package force

import (
	"math"

	"github.com/gazed/nbody/math/vec2"
	"gonum.org/v1/gonum/spatial/barneshut"
)

// treeParticle adapts a live body to barneshut.Particle2 so gonum's
// quadtree can be built directly over our bodies without an intermediate
// copy format. idx is the position in the caller's original (dense,
// include-dead) arrays, used to scatter the resulting acceleration back.
type treeParticle struct {
	idx  int
	mass float64
	pos  vec2.Vec2
}

func (p treeParticle) Coord2() barneshut.Vector2 { return barneshut.Vector2{X: p.pos.X, Y: p.pos.Y} }
func (p treeParticle) Mass() float64             { return p.mass }

// BarnesHut computes approximate accelerations with gonum's 2-D
// Barnes–Hut quadtree (spec §4.1). Only live bodies are inserted; dead
// bodies neither contribute mass to the tree nor receive a force (their
// accel entry stays the zero value).
//
// Tree construction inserts particles in ascending original-index order,
// and gonum's tile walks its four quadrants (ne, se, sw, nw) in a fixed
// order, so results are deterministic given deterministic input ordering
// (spec §4.1, §9).
//
// The d² ≤ 0 tie-break (a query body against the leaf tile containing
// only itself) falls out for free: that leaf's center of mass equals the
// query body's own position, so the separation vector is the zero vector
// and the force function below naturally returns zero.
func BarnesHut(masses []float64, alive []bool, positions []vec2.Vec2, gravityConstant, softeningEpsilon, theta float64) []vec2.Vec2 {
	n := len(positions)
	accel := make([]vec2.Vec2, n)

	particles := make([]barneshut.Particle2, 0, n)
	for i := 0; i < n; i++ {
		if !alive[i] {
			continue
		}
		particles = append(particles, treeParticle{idx: i, mass: masses[i], pos: positions[i]})
	}
	if len(particles) == 0 {
		return accel
	}

	plane := barneshut.NewPlane(particles)
	eps2 := softeningEpsilon * softeningEpsilon
	gravity := func(_, p2 barneshut.Particle2, _, m2 float64, v barneshut.Vector2) barneshut.Vector2 {
		d2 := v.X*v.X + v.Y*v.Y + eps2
		if d2 <= 0 {
			return barneshut.Vector2{}
		}
		d := math.Sqrt(d2)
		return v.Scale(gravityConstant * m2 / (d2 * d))
	}

	for _, p := range particles {
		tp := p.(treeParticle)
		a := plane.ForceOn(p, theta, gravity)
		accel[tp.idx] = vec2.New(a.X, a.Y)
	}
	return accel
}

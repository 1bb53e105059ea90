// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package collision detects and resolves overlaps between live bodies
// after each integration substep (spec §4.4). The position-correction
// constant used by the elastic response (1e-9) is part of the contract,
// not a tunable (spec §9 open question).
package collision

import (
	"math"

	"github.com/gazed/nbody/math/vec2"
	"github.com/gazed/nbody/model"
)

// positionCorrectionEpsilon keeps separated bodies from immediately
// re-overlapping on the next tick due to floating point roundoff.
const positionCorrectionEpsilon = 1e-9

// Resolve processes every ordered pair (i < j) of live bodies in ascending
// index order (spec §4.4 ordering). A body already killed earlier in the
// same pass (by a merge) is skipped for the remainder of the pass. After
// the full pass dead bodies are compacted out of the returned slice.
//
// Resolve never mutates its input; it works on a private copy.
func Resolve(bodies []model.SimulationBody, mode model.CollisionMode) (resolved []model.SimulationBody, collisionEvents, mergedEvents uint64) {
	work := model.CloneBodies(bodies)
	n := len(work)

	for i := 0; i < n; i++ {
		if !work[i].Alive {
			continue
		}
		for j := i + 1; j < n; j++ {
			if !work[j].Alive {
				continue
			}
			d := work[j].Position.Distance(work[i].Position)
			if d > work[i].Radius+work[j].Radius {
				continue
			}
			collisionEvents++

			switch mode {
			case model.CollisionIgnore:
				// counted above; no state change.
			case model.CollisionElastic:
				resolveElastic(&work[i], &work[j], d)
			case model.CollisionMerge:
				work[i] = merge(work[i], work[j])
				work[j].Alive = false
				mergedEvents++
			}
		}
	}

	resolved = make([]model.SimulationBody, 0, n)
	for _, b := range work {
		if b.Alive {
			resolved = append(resolved, b)
		}
	}
	return resolved, collisionEvents, mergedEvents
}

// resolveElastic applies an equal-and-opposite normal impulse when the
// bodies are approaching, and always positionally separates them along
// the collision normal (spec §4.4).
func resolveElastic(a, b *model.SimulationBody, d float64) {
	var n vec2.Vec2
	if d == 0 {
		n = vec2.New(1, 0)
	} else {
		n = b.Position.Sub(a.Position).Div(d)
	}

	vn := b.Velocity.Sub(a.Velocity).Dot(n)
	if vn <= 0 {
		invMassSum := 1/a.Mass + 1/b.Mass
		impulse := -2 * vn / invMassSum
		a.Velocity = a.Velocity.Sub(n.Scale(impulse / a.Mass))
		b.Velocity = b.Velocity.Add(n.Scale(impulse / b.Mass))
	}

	overlap := a.Radius + b.Radius - d
	correction := overlap*0.5 + positionCorrectionEpsilon
	a.Position = a.Position.Sub(n.Scale(correction))
	b.Position = b.Position.Add(n.Scale(correction))
}

// merge combines a and b into one body at a's slot, preserving linear
// momentum and a's id/label/kind/color (spec §4.4). The merged radius is
// area-additive in 2-D: r' = sqrt(r_i² + r_j²).
func merge(a, b model.SimulationBody) model.SimulationBody {
	totalMass := a.Mass + b.Mass
	merged := a
	merged.Mass = totalMass
	merged.Position = a.Position.Scale(a.Mass).Add(b.Position.Scale(b.Mass)).Div(totalMass)
	merged.Velocity = a.Velocity.Scale(a.Mass).Add(b.Velocity.Scale(b.Mass)).Div(totalMass)
	merged.Radius = math.Sqrt(a.Radius*a.Radius + b.Radius*b.Radius)
	merged.Alive = true
	return merged
}

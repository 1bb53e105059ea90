// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package model holds the wire-level types shared across the simulation
// core: bodies, config, state snapshots, and the body-edit protocol. It has
// no dependency on any other nbody package so that force, integrate,
// collision, and scenario can all build on the same vocabulary without
// importing the orchestrator.
package model

import (
	"math"

	"github.com/gazed/nbody/math/vec2"
)

// SimulationBody is a single massive point in the simulation. Bodies are
// value types: SimulationBody is always passed and stored by value, and
// every edit produces a new record rather than mutating one in place.
type SimulationBody struct {
	ID         string    // non-empty, unique within the active set.
	Mass       float64   // > 0, finite.
	Radius     float64   // > 0, finite.
	Position   vec2.Vec2 // finite.
	Velocity   vec2.Vec2 // finite.
	ColorValue uint32    // 32-bit ARGB.
	Label      string    // optional, empty string means unset.
	Kind       string    // optional, empty string means unset.
	Alive      bool      // default true.
}

// NewBody returns a SimulationBody with Alive defaulting to true, the way
// every other construction path (JSON decode, scenario load) does.
func NewBody(id string, mass, radius float64, position, velocity vec2.Vec2) SimulationBody {
	return SimulationBody{
		ID:       id,
		Mass:     mass,
		Radius:   radius,
		Position: position,
		Velocity: velocity,
		Alive:    true,
	}
}

// Validate checks the invariants listed in spec §3: non-empty id, finite
// positive mass/radius, finite position/velocity.
func (b SimulationBody) Validate() error {
	if b.ID == "" {
		return ValidationErrorf("body id must not be empty")
	}
	if b.Mass <= 0 || !finite(b.Mass) {
		return ValidationErrorf("body %q: mass must be finite and > 0, got %v", b.ID, b.Mass)
	}
	if b.Radius <= 0 || !finite(b.Radius) {
		return ValidationErrorf("body %q: radius must be finite and > 0, got %v", b.ID, b.Radius)
	}
	if !b.Position.IsFinite() {
		return ValidationErrorf("body %q: position must be finite, got %+v", b.ID, b.Position)
	}
	if !b.Velocity.IsFinite() {
		return ValidationErrorf("body %q: velocity must be finite, got %+v", b.ID, b.Velocity)
	}
	return nil
}

// ValidateBodies checks every body individually and that ids are unique
// within the set (spec §3 invariant ii, §4.6 validator bullet on bodies).
func ValidateBodies(bodies []SimulationBody) error {
	if len(bodies) == 0 {
		return ValidationErrorf("body list must not be empty")
	}
	seen := make(map[string]bool, len(bodies))
	for _, b := range bodies {
		if err := b.Validate(); err != nil {
			return err
		}
		if seen[b.ID] {
			return ValidationErrorf("duplicate body id %q", b.ID)
		}
		seen[b.ID] = true
	}
	return nil
}

// CloneBodies returns a deep copy of bodies. SimulationBody itself has no
// reference fields, so a value-copy slice is already a deep clone; this
// helper exists so call sites that escape internal state (getState,
// snapshot, saveScenario) read as intentional clones rather than relying
// on an implementation detail of SimulationBody's shape.
func CloneBodies(bodies []SimulationBody) []SimulationBody {
	out := make([]SimulationBody, len(bodies))
	copy(out, bodies)
	return out
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

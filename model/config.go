// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package model

import (
	"fmt"
	"strings"
)

// DtPolicy selects how the engine chooses dt_used for a substep.
type DtPolicy string

const (
	DtFixed    DtPolicy = "fixed"
	DtAdaptive DtPolicy = "adaptive"
)

// Integrator selects the numerical scheme used to advance bodies.
type Integrator string

const (
	SemiImplicitEuler Integrator = "semiImplicitEuler"
	VelocityVerlet    Integrator = "velocityVerlet"
	RK4               Integrator = "rk4"
)

// CollisionMode selects how overlapping bodies are resolved.
type CollisionMode string

const (
	CollisionElastic CollisionMode = "elastic"
	CollisionMerge   CollisionMode = "inelasticMerge"
	CollisionIgnore  CollisionMode = "ignore"
)

// GravitySolver selects the force-computation strategy.
type GravitySolver string

const (
	SolverPairwise  GravitySolver = "pairwise"
	SolverBarnesHut GravitySolver = "barnesHut"
	SolverAuto      GravitySolver = "auto"
)

// SimulationConfig holds every tunable of the stepping pipeline (spec §3).
// Field order here, and in configFieldOrder below, is the canonical order
// used by Hash and must never be reordered without bumping scenario schema
// semantics, since the hash is a cross-implementation replay contract.
type SimulationConfig struct {
	GravityConstant    float64       `json:"gravityConstant"`
	SofteningEpsilon   float64       `json:"softeningEpsilon"`
	Dt                 float64       `json:"dt"`
	DtPolicy           DtPolicy      `json:"dtPolicy"`
	Integrator         Integrator    `json:"integrator"`
	CollisionMode      CollisionMode `json:"collisionMode"`
	Deterministic      bool          `json:"deterministic"`
	GravitySolver      GravitySolver `json:"gravitySolver"`
	BarnesHutTheta     float64       `json:"barnesHutTheta"`
	BarnesHutThreshold int           `json:"barnesHutThreshold"`
}

// DefaultConfig returns a config close to a typical "scientific default":
// velocity Verlet, auto solver selection, inelastic merges, fixed deterministic
// timestep.
func DefaultConfig() SimulationConfig {
	return SimulationConfig{
		GravityConstant:    1.0,
		SofteningEpsilon:   0.0,
		Dt:                 0.01,
		DtPolicy:           DtFixed,
		Integrator:         VelocityVerlet,
		CollisionMode:      CollisionMerge,
		Deterministic:      true,
		GravitySolver:      SolverAuto,
		BarnesHutTheta:     0.6,
		BarnesHutThreshold: 256,
	}
}

// Validate checks the invariants of spec §3: positive constants, a known
// enum for each named field, and the deterministic ⇒ fixed dt implication
// (which also forbids adaptive dt under determinism, spec §4.3).
func (c SimulationConfig) Validate() error {
	if c.GravityConstant <= 0 || !finite(c.GravityConstant) {
		return ValidationErrorf("gravityConstant must be finite and > 0, got %v", c.GravityConstant)
	}
	if c.SofteningEpsilon < 0 || !finite(c.SofteningEpsilon) {
		return ValidationErrorf("softeningEpsilon must be finite and >= 0, got %v", c.SofteningEpsilon)
	}
	if c.Dt <= 0 || !finite(c.Dt) {
		return ValidationErrorf("dt must be finite and > 0, got %v", c.Dt)
	}
	switch c.DtPolicy {
	case DtFixed, DtAdaptive:
	default:
		return ValidationErrorf("dtPolicy %q is not one of fixed|adaptive", c.DtPolicy)
	}
	switch c.Integrator {
	case SemiImplicitEuler, VelocityVerlet, RK4:
	default:
		return ValidationErrorf("integrator %q is not recognized", c.Integrator)
	}
	switch c.CollisionMode {
	case CollisionElastic, CollisionMerge, CollisionIgnore:
	default:
		return ValidationErrorf("collisionMode %q is not recognized", c.CollisionMode)
	}
	switch c.GravitySolver {
	case SolverPairwise, SolverBarnesHut, SolverAuto:
	default:
		return ValidationErrorf("gravitySolver %q is not recognized", c.GravitySolver)
	}
	if c.BarnesHutTheta <= 0 || c.BarnesHutTheta > 2 || !finite(c.BarnesHutTheta) {
		return ValidationErrorf("barnesHutTheta must be in (0, 2], got %v", c.BarnesHutTheta)
	}
	if c.BarnesHutThreshold < 1 {
		return ValidationErrorf("barnesHutThreshold must be >= 1, got %v", c.BarnesHutThreshold)
	}
	if c.Deterministic && c.DtPolicy != DtFixed {
		return ValidationErrorf("deterministic mode requires dtPolicy=fixed, got adaptive dtPolicy with deterministic=true")
	}
	return nil
}

// configFieldOrder pins the field order used by Hash. Declared once so the
// ordering is visibly a single source of truth rather than duplicated
// between Hash and any future re-implementation.
var configFieldOrder = []string{
	"gravityConstant", "softeningEpsilon", "dt", "dtPolicy", "integrator",
	"collisionMode", "deterministic", "gravitySolver", "barnesHutTheta",
	"barnesHutThreshold",
}

// Hash returns a deterministic digest of the config, per spec §4.5: the
// textual join of every field (in configFieldOrder) with '|', floats
// formatted as a 12-digit decimal exponent so the hash is stable across
// implementations, not just across runs of this one.
func (c SimulationConfig) Hash() string {
	parts := make([]string, 0, len(configFieldOrder))
	for _, field := range configFieldOrder {
		switch field {
		case "gravityConstant":
			parts = append(parts, formatFloat(c.GravityConstant))
		case "softeningEpsilon":
			parts = append(parts, formatFloat(c.SofteningEpsilon))
		case "dt":
			parts = append(parts, formatFloat(c.Dt))
		case "dtPolicy":
			parts = append(parts, string(c.DtPolicy))
		case "integrator":
			parts = append(parts, string(c.Integrator))
		case "collisionMode":
			parts = append(parts, string(c.CollisionMode))
		case "deterministic":
			parts = append(parts, fmt.Sprintf("%t", c.Deterministic))
		case "gravitySolver":
			parts = append(parts, string(c.GravitySolver))
		case "barnesHutTheta":
			parts = append(parts, formatFloat(c.BarnesHutTheta))
		case "barnesHutThreshold":
			parts = append(parts, fmt.Sprintf("%d", c.BarnesHutThreshold))
		}
	}
	return strings.Join(parts, "|")
}

// formatFloat is the "%.12e"-equivalent canonical float formatting
// required by spec §4.5/§9 for portable config hashing.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.12e", f)
}

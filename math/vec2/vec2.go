// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package vec2 performs 2-element vector math for the nbody simulation
// core. Unlike vu/math/lin, which mutates vectors in place through pointer
// receivers for a hot 3D render loop, vec2.Vec2 is an immutable value type:
// every operation returns a new Vec2 rather than updating the receiver.
// The simulation core favours value semantics since bodies are themselves
// value types (see package model) that are replaced wholesale on every
// edit or integration step.
package vec2

import "math"

// Vec2 is an immutable pair of finite 64-bit floats.
type Vec2 struct {
	X float64
	Y float64
}

// Zero is the additive identity.
var Zero = Vec2{}

// New returns the vector (x, y).
func New(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add (+) returns v + a.
func (v Vec2) Add(a Vec2) Vec2 { return Vec2{v.X + a.X, v.Y + a.Y} }

// Sub (−) returns v − a.
func (v Vec2) Sub(a Vec2) Vec2 { return Vec2{v.X - a.X, v.Y - a.Y} }

// Scale (×) returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Div (÷) returns v divided by s. Division by zero follows float64 rules
// (±Inf or NaN); callers that need finiteness check IsFinite afterwards.
func (v Vec2) Div(s float64) Vec2 { return Vec2{v.X / s, v.Y / s} }

// Dot returns the dot product of v and a.
func (v Vec2) Dot(a Vec2) float64 { return v.X*a.X + v.Y*a.Y }

// NormSquared returns |v|².
func (v Vec2) NormSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Norm returns |v|.
func (v Vec2) Norm() float64 { return math.Sqrt(v.NormSquared()) }

// IsFinite reports whether both components are finite (not NaN, not ±Inf).
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Eq (==) returns true if v and a have identical components.
func (v Vec2) Eq(a Vec2) bool { return v.X == a.X && v.Y == a.Y }

// NormalizeOrFallback returns v/|v|, or fallback if v is the zero vector
// or otherwise has no finite direction (avoids a NaN result from 0/0).
func (v Vec2) NormalizeOrFallback(fallback Vec2) Vec2 {
	n := v.Norm()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	return v.Div(n)
}

// Distance returns |v - a|.
func (v Vec2) Distance(a Vec2) float64 { return v.Sub(a).Norm() }

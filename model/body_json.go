// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gazed/nbody/math/vec2"
)

// bodyWire is the on-the-wire shape of a SimulationBody (spec §6, "Body
// JSON"). It is kept separate from SimulationBody so the in-memory type can
// stay flat while the wire format nests position/velocity/metadata.
type bodyWire struct {
	ID       string       `json:"id"`
	Mass     float64      `json:"mass"`
	Radius   float64      `json:"radius"`
	Position vecWire      `json:"position"`
	Velocity vecWire      `json:"velocity"`
	Alive    bool         `json:"alive"`
	Metadata bodyMetadata `json:"metadata"`
}

type vecWire struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type bodyMetadata struct {
	Label string `json:"label,omitempty"`
	Kind  string `json:"kind,omitempty"`
	Color string `json:"color,omitempty"`
}

// MarshalJSON emits the body in the wire shape described by spec §6.
func (b SimulationBody) MarshalJSON() ([]byte, error) {
	w := bodyWire{
		ID:       b.ID,
		Mass:     b.Mass,
		Radius:   b.Radius,
		Position: vecWire{X: b.Position.X, Y: b.Position.Y},
		Velocity: vecWire{X: b.Velocity.X, Y: b.Velocity.Y},
		Alive:    b.Alive,
		Metadata: bodyMetadata{
			Label: b.Label,
			Kind:  b.Kind,
			Color: fmt.Sprintf("#%08X", b.ColorValue),
		},
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the wire shape described by spec §6, including the
// '#'-optional 8-hex-digit ARGB color.
func (b *SimulationBody) UnmarshalJSON(data []byte) error {
	w := bodyWire{Alive: true} // an absent "alive" key keeps the default
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	color, err := decodeColor(w.Metadata.Color)
	if err != nil {
		return fmt.Errorf("decode body %q color: %w", w.ID, err)
	}
	*b = SimulationBody{
		ID:         w.ID,
		Mass:       w.Mass,
		Radius:     w.Radius,
		Position:   vec2.New(w.Position.X, w.Position.Y),
		Velocity:   vec2.New(w.Velocity.X, w.Velocity.Y),
		ColorValue: color,
		Label:      w.Metadata.Label,
		Kind:       w.Metadata.Kind,
		Alive:      w.Alive,
	}
	return nil
}

// decodeColor parses an 8-hex-digit ARGB string, optionally '#'-prefixed.
// An empty string decodes to zero (fully transparent black), the zero
// value of ColorValue.
func decodeColor(s string) (uint32, error) {
	s = strings.TrimPrefix(s, "#")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid ARGB color %q: %w", s, err)
	}
	return uint32(v), nil
}

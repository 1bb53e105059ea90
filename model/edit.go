// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package model

import (
	"encoding/json"
	"fmt"

	"github.com/gazed/nbody/math/vec2"
)

// EditKind tags which variant a BodyEdit carries. Implemented as a sum
// type with an explicit tag (spec design note §9) rather than an
// interface hierarchy, so JSON decoding can switch on the single top-level
// key without type assertions.
type EditKind int

const (
	EditCreate EditKind = iota
	EditUpdate
	EditDelete
)

// BodyUpdate carries the optional, independently-settable fields of an
// Update edit. A nil pointer means "leave this field unchanged".
type BodyUpdate struct {
	Mass       *float64
	Radius     *float64
	Position   *vec2.Vec2
	Velocity   *vec2.Vec2
	Alive      *bool
	Label      *string
	Kind       *string
	ColorValue *uint32
}

// Apply produces a new SimulationBody with the update's set fields
// overriding the base body's (spec §4.5 applyEdit/Update).
func (u BodyUpdate) Apply(base SimulationBody) SimulationBody {
	out := base
	if u.Mass != nil {
		out.Mass = *u.Mass
	}
	if u.Radius != nil {
		out.Radius = *u.Radius
	}
	if u.Position != nil {
		out.Position = *u.Position
	}
	if u.Velocity != nil {
		out.Velocity = *u.Velocity
	}
	if u.Alive != nil {
		out.Alive = *u.Alive
	}
	if u.Label != nil {
		out.Label = *u.Label
	}
	if u.Kind != nil {
		out.Kind = *u.Kind
	}
	if u.ColorValue != nil {
		out.ColorValue = *u.ColorValue
	}
	return out
}

// BodyEdit is a tagged variant over Create/Update/Delete (spec §3).
type BodyEdit struct {
	Kind   EditKind
	Body   SimulationBody // valid when Kind == EditCreate
	ID     string         // valid when Kind == EditUpdate or EditDelete
	Update BodyUpdate     // valid when Kind == EditUpdate
}

// CreateEdit returns a Create variant.
func CreateEdit(b SimulationBody) BodyEdit { return BodyEdit{Kind: EditCreate, Body: b} }

// UpdateEdit returns an Update variant.
func UpdateEdit(id string, u BodyUpdate) BodyEdit {
	return BodyEdit{Kind: EditUpdate, ID: id, Update: u}
}

// DeleteEdit returns a Delete variant.
func DeleteEdit(id string) BodyEdit { return BodyEdit{Kind: EditDelete, ID: id} }

// editUpdateWire and editWire mirror the wire shapes in spec §6: exactly
// one of {"create":<body>}, {"update":{...}}, {"delete":{"id":...}}.
type editUpdateWire struct {
	ID       string   `json:"id"`
	Mass     *float64 `json:"mass,omitempty"`
	Radius   *float64 `json:"radius,omitempty"`
	Position *vecWire `json:"position,omitempty"`
	Velocity *vecWire `json:"velocity,omitempty"`
	Alive    *bool    `json:"alive,omitempty"`
	Metadata *struct {
		Label *string `json:"label,omitempty"`
		Kind  *string `json:"kind,omitempty"`
		Color *string `json:"color,omitempty"`
	} `json:"metadata,omitempty"`
}

type editDeleteWire struct {
	ID string `json:"id"`
}

type editWire struct {
	Create *SimulationBody `json:"create,omitempty"`
	Update *editUpdateWire `json:"update,omitempty"`
	Delete *editDeleteWire `json:"delete,omitempty"`
}

// MarshalJSON emits the BodyEdit in the single-key wire form of spec §6.
func (e BodyEdit) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case EditCreate:
		return json.Marshal(editWire{Create: &e.Body})
	case EditUpdate:
		w := editUpdateWire{ID: e.ID}
		u := e.Update
		w.Mass = u.Mass
		w.Radius = u.Radius
		if u.Position != nil {
			w.Position = &vecWire{X: u.Position.X, Y: u.Position.Y}
		}
		if u.Velocity != nil {
			w.Velocity = &vecWire{X: u.Velocity.X, Y: u.Velocity.Y}
		}
		w.Alive = u.Alive
		if u.Label != nil || u.Kind != nil || u.ColorValue != nil {
			w.Metadata = &struct {
				Label *string `json:"label,omitempty"`
				Kind  *string `json:"kind,omitempty"`
				Color *string `json:"color,omitempty"`
			}{Label: u.Label, Kind: u.Kind}
			if u.ColorValue != nil {
				hex := fmt.Sprintf("#%08X", *u.ColorValue)
				w.Metadata.Color = &hex
			}
		}
		return json.Marshal(editWire{Update: &w})
	case EditDelete:
		return json.Marshal(editWire{Delete: &editDeleteWire{ID: e.ID}})
	default:
		return nil, fmt.Errorf("unsupported edit kind %d", e.Kind)
	}
}

// UnmarshalJSON decodes exactly one of create/update/delete, per spec §6.
// More than one or none present is an unsupported-variant failure (§7).
func (e *BodyEdit) UnmarshalJSON(data []byte) error {
	var w editWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decode body edit: %w", err)
	}
	present := 0
	if w.Create != nil {
		present++
	}
	if w.Update != nil {
		present++
	}
	if w.Delete != nil {
		present++
	}
	if present != 1 {
		return fmt.Errorf("body edit must have exactly one of create/update/delete, got %d", present)
	}
	switch {
	case w.Create != nil:
		*e = CreateEdit(*w.Create)
	case w.Delete != nil:
		*e = DeleteEdit(w.Delete.ID)
	default:
		u := BodyUpdate{Mass: w.Update.Mass, Radius: w.Update.Radius, Alive: w.Update.Alive}
		if w.Update.Position != nil {
			v := vec2.New(w.Update.Position.X, w.Update.Position.Y)
			u.Position = &v
		}
		if w.Update.Velocity != nil {
			v := vec2.New(w.Update.Velocity.X, w.Update.Velocity.Y)
			u.Velocity = &v
		}
		if w.Update.Metadata != nil {
			u.Label = w.Update.Metadata.Label
			u.Kind = w.Update.Metadata.Kind
			if w.Update.Metadata.Color != nil {
				c, err := decodeColor(*w.Update.Metadata.Color)
				if err != nil {
					return fmt.Errorf("decode update color: %w", err)
				}
				u.ColorValue = &c
			}
		}
		*e = UpdateEdit(w.Update.ID, u)
	}
	return nil
}

// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package model

import (
	"encoding/json"
	"testing"

	"github.com/gazed/nbody/math/vec2"
	"github.com/stretchr/testify/require"
)

func TestBodyEditJSONRoundTrip(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		b := NewBody("a", 1, 1, vec2.Zero, vec2.Zero)
		edit := CreateEdit(b)
		data, err := json.Marshal(edit)
		require.NoError(t, err)
		require.Contains(t, string(data), `"create"`)

		var decoded BodyEdit
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Equal(t, EditCreate, decoded.Kind)
		require.Equal(t, b, decoded.Body)
	})

	t.Run("update", func(t *testing.T) {
		mass := 5.0
		pos := vec2.New(1, 2)
		edit := UpdateEdit("a", BodyUpdate{Mass: &mass, Position: &pos})
		data, err := json.Marshal(edit)
		require.NoError(t, err)

		var decoded BodyEdit
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Equal(t, EditUpdate, decoded.Kind)
		require.Equal(t, "a", decoded.ID)
		require.NotNil(t, decoded.Update.Mass)
		require.Equal(t, mass, *decoded.Update.Mass)
		require.NotNil(t, decoded.Update.Position)
		require.True(t, decoded.Update.Position.Eq(pos))
	})

	t.Run("delete", func(t *testing.T) {
		edit := DeleteEdit("a")
		data, err := json.Marshal(edit)
		require.NoError(t, err)

		var decoded BodyEdit
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Equal(t, EditDelete, decoded.Kind)
		require.Equal(t, "a", decoded.ID)
	})

	t.Run("rejects zero variants", func(t *testing.T) {
		var decoded BodyEdit
		require.Error(t, json.Unmarshal([]byte(`{}`), &decoded))
	})

	t.Run("rejects multiple variants", func(t *testing.T) {
		var decoded BodyEdit
		raw := `{"create":{"id":"a","mass":1,"radius":1,"position":{"x":0,"y":0},"velocity":{"x":0,"y":0},"alive":true,"metadata":{}},"delete":{"id":"a"}}`
		require.Error(t, json.Unmarshal([]byte(raw), &decoded))
	})
}

func TestBodyUpdateApply(t *testing.T) {
	base := NewBody("a", 1, 1, vec2.Zero, vec2.Zero)
	mass := 9.0
	updated := BodyUpdate{Mass: &mass}.Apply(base)
	require.Equal(t, 9.0, updated.Mass)
	require.Equal(t, base.Radius, updated.Radius)
}

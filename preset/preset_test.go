// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package preset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gazed/nbody/model"
)

func TestNamesListsEveryBuiltin(t *testing.T) {
	require.ElementsMatch(t, []Name{TwoBodyOrbit, FigureEightThreeBody, AsteroidField}, Names())
}

func TestLoadEveryPresetProducesValidScenario(t *testing.T) {
	for _, name := range Names() {
		doc, err := Load(name)
		require.NoError(t, err, name)
		require.Equal(t, "1.0", doc.SchemaVersion)
		require.NotEmpty(t, doc.Metadata.Name)
		require.True(t, validCreatedAt(doc.Metadata.CreatedAt), "%s: createdAt %q is not RFC3339", name, doc.Metadata.CreatedAt)
		require.NoError(t, doc.EngineConfig.Validate(), name)
		require.NoError(t, model.ValidateBodies(doc.Bodies), name)
	}
}

func TestLoadUnknownNameFails(t *testing.T) {
	_, err := Load(Name("doesNotExist"))
	require.Error(t, err)
}

func TestTwoBodyOrbitHasExpectedBodies(t *testing.T) {
	doc, err := Load(TwoBodyOrbit)
	require.NoError(t, err)
	require.Len(t, doc.Bodies, 2)

	byID := make(map[string]model.SimulationBody, len(doc.Bodies))
	for _, b := range doc.Bodies {
		byID[b.ID] = b
	}
	require.Contains(t, byID, "sun")
	require.Contains(t, byID, "planet")
	require.Greater(t, byID["sun"].Mass, byID["planet"].Mass)
}

func TestAsteroidFieldHasRingOfAsteroids(t *testing.T) {
	doc, err := Load(AsteroidField)
	require.NoError(t, err)
	require.Len(t, doc.Bodies, 13) // core + 12-body ring
}

func TestFigureEightBodiesHaveEqualMass(t *testing.T) {
	doc, err := Load(FigureEightThreeBody)
	require.NoError(t, err)
	require.Len(t, doc.Bodies, 3)
	for _, b := range doc.Bodies {
		require.InDelta(t, 1.0, b.Mass, 1e-12)
	}
}

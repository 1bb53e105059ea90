// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package preset ships a small library of built-in starter scenarios so a
// caller can initialize an engine without hand-authoring scenario JSON.
// Scenarios are stored as embedded YAML, the way the teacher bundles
// shader and scene descriptors (load/shd.go), and decoded into
// scenario.Document values each time Load is called.
package preset

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gazed/nbody/math/vec2"
	"github.com/gazed/nbody/model"
	"github.com/gazed/nbody/scenario"
)

//go:embed scenarios.yaml
var scenariosYAML []byte

// Name identifies a built-in scenario.
type Name string

const (
	TwoBodyOrbit         Name = "twoBodyOrbit"
	FigureEightThreeBody Name = "figureEightThreeBody"
	AsteroidField        Name = "asteroidField"
)

// Names lists every built-in scenario, in a stable display order.
func Names() []Name {
	return []Name{TwoBodyOrbit, FigureEightThreeBody, AsteroidField}
}

type yamlVec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type yamlMetadata struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	CreatedAt   string   `yaml:"createdAt"`
	Tags        []string `yaml:"tags"`
}

type yamlConfig struct {
	GravityConstant    float64 `yaml:"gravityConstant"`
	SofteningEpsilon   float64 `yaml:"softeningEpsilon"`
	Dt                 float64 `yaml:"dt"`
	DtPolicy           string  `yaml:"dtPolicy"`
	Integrator         string  `yaml:"integrator"`
	CollisionMode      string  `yaml:"collisionMode"`
	Deterministic      bool    `yaml:"deterministic"`
	GravitySolver      string  `yaml:"gravitySolver"`
	BarnesHutTheta     float64 `yaml:"barnesHutTheta"`
	BarnesHutThreshold int     `yaml:"barnesHutThreshold"`
}

type yamlBody struct {
	ID       string  `yaml:"id"`
	Mass     float64 `yaml:"mass"`
	Radius   float64 `yaml:"radius"`
	Position yamlVec `yaml:"position"`
	Velocity yamlVec `yaml:"velocity"`
	Label    string  `yaml:"label"`
	Kind     string  `yaml:"kind"`
	Color    string  `yaml:"color"`
}

type yamlScenario struct {
	Metadata     yamlMetadata `yaml:"metadata"`
	EngineConfig yamlConfig   `yaml:"engineConfig"`
	Bodies       []yamlBody   `yaml:"bodies"`
}

// Load decodes the named built-in scenario into a scenario.Document. It
// never touches the filesystem; the YAML is compiled into the binary.
func Load(name Name) (scenario.Document, error) {
	all, err := decodeAll()
	if err != nil {
		return scenario.Document{}, err
	}
	raw, ok := all[string(name)]
	if !ok {
		return scenario.Document{}, fmt.Errorf("preset: unknown scenario %q", name)
	}
	return raw.toDocument(), nil
}

func decodeAll() (map[string]yamlScenario, error) {
	var all map[string]yamlScenario
	if err := yaml.Unmarshal(scenariosYAML, &all); err != nil {
		return nil, fmt.Errorf("preset: decode embedded scenarios: %w", err)
	}
	return all, nil
}

func (y yamlScenario) toDocument() scenario.Document {
	bodies := make([]model.SimulationBody, len(y.Bodies))
	for i, b := range y.Bodies {
		body := model.NewBody(b.ID, b.Mass, b.Radius, vec2.New(b.Position.X, b.Position.Y), vec2.New(b.Velocity.X, b.Velocity.Y))
		body.Label = b.Label
		body.Kind = b.Kind
		body.ColorValue = parseColor(b.Color)
		bodies[i] = body
	}

	return scenario.Document{
		SchemaVersion: scenario.SchemaVersion,
		Metadata: scenario.Metadata{
			Name:        y.Metadata.Name,
			Description: y.Metadata.Description,
			CreatedAt:   y.Metadata.CreatedAt,
			Tags:        y.Metadata.Tags,
		},
		EngineConfig: model.SimulationConfig{
			GravityConstant:    y.EngineConfig.GravityConstant,
			SofteningEpsilon:   y.EngineConfig.SofteningEpsilon,
			Dt:                 y.EngineConfig.Dt,
			DtPolicy:           model.DtPolicy(y.EngineConfig.DtPolicy),
			Integrator:         model.Integrator(y.EngineConfig.Integrator),
			CollisionMode:      model.CollisionMode(y.EngineConfig.CollisionMode),
			Deterministic:      y.EngineConfig.Deterministic,
			GravitySolver:      model.GravitySolver(y.EngineConfig.GravitySolver),
			BarnesHutTheta:     y.EngineConfig.BarnesHutTheta,
			BarnesHutThreshold: y.EngineConfig.BarnesHutThreshold,
		},
		Bodies: bodies,
	}
}

// parseColor parses an (optionally '#'-prefixed) 8-hex-digit ARGB color,
// defaulting to opaque white on anything malformed rather than failing a
// built-in scenario over a typo in a display color.
func parseColor(s string) uint32 {
	s = strings.TrimPrefix(s, "#")
	if s == "" {
		return 0xFFFFFFFF
	}
	var v uint32
	if _, err := fmt.Sscanf(s, "%08X", &v); err != nil {
		return 0xFFFFFFFF
	}
	return v
}

// validCreatedAt is used only by tests to confirm the embedded timestamps
// parse as RFC3339, the format the rest of the module writes.
func validCreatedAt(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

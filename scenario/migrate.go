// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scenario

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gazed/nbody/model"
)

// MigrateToLatest rewrites a scenario document to the current schema
// before validation, per spec §4.6's migrator bullets:
//
//   - missing schemaVersion, or one prefixed "0.": treated as a legacy
//     document. Metadata and config fields are synthesized from whatever
//     keys are present, including the legacy gravityConstant|gravity and
//     softeningEpsilon|epsilon aliases, with spec §3 defaults filling in
//     everything absent.
//   - prefixed "1.": passed through unchanged except schemaVersion is
//     coerced to the canonical "1.0".
//   - any other prefix: returned unchanged; the caller's validator will
//     reject it on the schemaVersion check.
//
// The bodies array is never rewritten; its wire shape has been stable
// since schema 0.
func MigrateToLatest(data []byte) ([]byte, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("migrate: invalid JSON: %w", err)
	}

	sv, _ := doc["schemaVersion"].(string)
	switch {
	case sv == "" || strings.HasPrefix(sv, "0."):
		return migrateLegacy(doc)
	case strings.HasPrefix(sv, "1."):
		doc["schemaVersion"] = SchemaVersion
		return json.Marshal(doc)
	default:
		return data, nil
	}
}

func migrateLegacy(doc map[string]interface{}) ([]byte, error) {
	metaRaw, _ := doc["metadata"].(map[string]interface{})
	if metaRaw == nil {
		metaRaw = map[string]interface{}{}
	}

	name, _ := metaRaw["name"].(string)
	if name == "" {
		name = "Imported Scenario"
	}
	createdAt, _ := metaRaw["createdAt"].(string)
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}
	tags, ok := metaRaw["tags"].([]interface{})
	if !ok {
		tags = []interface{}{}
	}
	metadata := map[string]interface{}{
		"name":      name,
		"createdAt": createdAt,
		"tags":      tags,
	}
	if desc, ok := metaRaw["description"].(string); ok {
		metadata["description"] = desc
	}
	if author, ok := metaRaw["author"].(string); ok {
		metadata["author"] = author
	}

	cfgRaw, _ := doc["engineConfig"].(map[string]interface{})
	if cfgRaw == nil {
		cfgRaw = map[string]interface{}{}
	}

	out := map[string]interface{}{
		"schemaVersion": SchemaVersion,
		"metadata":      metadata,
		"engineConfig":  normalizeLegacyConfig(cfgRaw),
		"bodies":        doc["bodies"],
	}
	return json.Marshal(out)
}

// legacyDefaults holds the pre-1.x defaults spec §4.6 enumerates for a
// migrated document's absent fields. These are distinct from
// model.DefaultConfig: the legacy schema shipped with a smaller default dt
// (0.005, not today's 0.01), and migrating a document that omits dt must
// reproduce the physics it was authored under, not today's scientific
// default.
var legacyDefaults = model.SimulationConfig{
	GravityConstant:    1.0,
	SofteningEpsilon:   0.0,
	Dt:                 0.005,
	DtPolicy:           model.DtFixed,
	Integrator:         model.VelocityVerlet,
	CollisionMode:      model.CollisionMerge,
	Deterministic:      true,
	GravitySolver:      model.SolverAuto,
	BarnesHutTheta:     0.6,
	BarnesHutThreshold: 256,
}

// normalizeLegacyConfig aliases the handful of renamed keys known from
// prior schemas and fills every other field from legacyDefaults.
func normalizeLegacyConfig(raw map[string]interface{}) map[string]interface{} {
	get := func(keys ...string) (interface{}, bool) {
		for _, k := range keys {
			if v, ok := raw[k]; ok {
				return v, true
			}
		}
		return nil, false
	}

	def := legacyDefaults
	cfg := make(map[string]interface{}, 10)

	if v, ok := get("gravityConstant", "gravity"); ok {
		cfg["gravityConstant"] = v
	} else {
		cfg["gravityConstant"] = def.GravityConstant
	}
	if v, ok := get("softeningEpsilon", "epsilon"); ok {
		cfg["softeningEpsilon"] = v
	} else {
		cfg["softeningEpsilon"] = def.SofteningEpsilon
	}
	if v, ok := get("dt"); ok {
		cfg["dt"] = v
	} else {
		cfg["dt"] = def.Dt
	}
	if v, ok := get("dtPolicy"); ok {
		cfg["dtPolicy"] = v
	} else {
		cfg["dtPolicy"] = def.DtPolicy
	}
	if v, ok := get("integrator"); ok {
		cfg["integrator"] = v
	} else {
		cfg["integrator"] = def.Integrator
	}
	if v, ok := get("collisionMode"); ok {
		cfg["collisionMode"] = v
	} else {
		cfg["collisionMode"] = def.CollisionMode
	}
	if v, ok := get("deterministic"); ok {
		cfg["deterministic"] = v
	} else {
		cfg["deterministic"] = def.Deterministic
	}
	if v, ok := get("gravitySolver"); ok {
		cfg["gravitySolver"] = v
	} else {
		cfg["gravitySolver"] = def.GravitySolver
	}
	if v, ok := get("barnesHutTheta"); ok {
		cfg["barnesHutTheta"] = v
	} else {
		cfg["barnesHutTheta"] = def.BarnesHutTheta
	}
	if v, ok := get("barnesHutThreshold"); ok {
		cfg["barnesHutThreshold"] = v
	} else {
		cfg["barnesHutThreshold"] = def.BarnesHutThreshold
	}
	return cfg
}

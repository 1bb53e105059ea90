// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package nbody

import (
	"time"

	"github.com/gazed/nbody/model"
	"github.com/gazed/nbody/scenario"
)

// LoadScenario validates doc's config and bodies, then replaces the
// engine's config and bodies and resets tick/simTime to zero (spec §4.5).
// Only schema versions with a "1" major prefix are accepted.
func (e *Engine) LoadScenario(doc scenario.Document) error {
	if err := e.requireNotDisposed("loadScenario"); err != nil {
		return err
	}
	if !scenario.AcceptSchemaPrefix(doc.SchemaVersion) {
		return model.ValidationErrorf("loadScenario: unsupported schema version %q", doc.SchemaVersion)
	}
	if err := doc.EngineConfig.Validate(); err != nil {
		return err
	}
	if err := model.ValidateBodies(doc.Bodies); err != nil {
		return err
	}
	e.config = doc.EngineConfig
	e.bodies = model.CloneBodies(doc.Bodies)
	e.tick = 0
	e.simTime = 0
	e.maxBodyCount = len(e.bodies)
	e.state = active
	return nil
}

// SaveScenario emits the active config and a deep clone of the active
// bodies under a fresh "Untitled" scenario (spec §4.5); callers that want
// a different name rewrite Metadata.Name afterward.
func (e *Engine) SaveScenario() (scenario.Document, error) {
	if err := e.requireActive("saveScenario"); err != nil {
		return scenario.Document{}, err
	}
	return scenario.Document{
		SchemaVersion: scenario.SchemaVersion,
		Metadata: scenario.Metadata{
			Name:      "Untitled",
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
			Tags:      []string{},
		},
		EngineConfig: e.config,
		Bodies:       model.CloneBodies(e.bodies),
	}, nil
}

// Snapshot captures tick, simTime, and a deterministic config hash
// alongside a deep clone of the active bodies (spec §4.5). The config
// itself is not embedded: two engines sharing a configHash are guaranteed
// behaviorally identical, so the hash is enough to detect a mismatched
// restore.
func (e *Engine) Snapshot() (scenario.Snapshot, error) {
	if err := e.requireActive("snapshot"); err != nil {
		return scenario.Snapshot{}, err
	}
	return scenario.Snapshot{
		SchemaVersion: scenario.SchemaVersion,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		Tick:          e.tick,
		SimTime:       e.simTime,
		ConfigHash:    e.config.Hash(),
		Bodies:        model.CloneBodies(e.bodies),
	}, nil
}

// RestoreSnapshot validates snap's bodies and overwrites tick, simTime,
// and the body list. The engine's current config is left untouched:
// snapshots reference a config only by hash, they don't carry one (spec
// §4.5). Callers that want to confirm the snapshot was taken under the
// engine's current config should compare snap.ConfigHash against
// e.config.Hash() themselves before calling this.
func (e *Engine) RestoreSnapshot(snap scenario.Snapshot) error {
	if err := e.requireNotDisposed("restoreSnapshot"); err != nil {
		return err
	}
	if !scenario.AcceptSchemaPrefix(snap.SchemaVersion) {
		return model.ValidationErrorf("restoreSnapshot: unsupported schema version %q", snap.SchemaVersion)
	}
	if err := model.ValidateBodies(snap.Bodies); err != nil {
		return err
	}
	e.tick = snap.Tick
	e.simTime = snap.SimTime
	e.bodies = model.CloneBodies(snap.Bodies)
	if len(e.bodies) > e.maxBodyCount {
		e.maxBodyCount = len(e.bodies)
	}
	e.state = active
	return nil
}

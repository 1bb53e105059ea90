// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package scenario decodes, validates, and migrates the two on-disk
// documents defined by spec §6: scenario files (config + starting bodies)
// and snapshots (a resumable mid-run state). Both are schema-versioned
// JSON; this package owns the version contract so the root engine package
// never has to know what a legacy document looks like.
package scenario

import (
	"github.com/gazed/nbody/model"
)

// SchemaVersion is the version written by this build for new documents.
const SchemaVersion = "1.0"

// Metadata describes a scenario independent of its physical content.
type Metadata struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Author      string   `json:"author,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	Tags        []string `json:"tags"`
}

// Document is a scenario file: the config and bodies needed to initialize
// an engine from scratch (spec §6, "Scenario JSON").
type Document struct {
	SchemaVersion string                 `json:"schemaVersion"`
	Metadata      Metadata               `json:"metadata"`
	EngineConfig  model.SimulationConfig `json:"engineConfig"`
	Bodies        []model.SimulationBody `json:"bodies"`
}

// Snapshot is a resumable mid-run state: the live body set plus enough
// bookkeeping (tick, simTime, the config hash it was taken under) to
// detect a snapshot being restored against a mismatched config (spec §6,
// "Snapshot JSON").
type Snapshot struct {
	SchemaVersion string                 `json:"schemaVersion"`
	CreatedAt     string                 `json:"createdAt,omitempty"`
	Tick          uint64                 `json:"tick"`
	SimTime       float64                `json:"simTime"`
	ConfigHash    string                 `json:"configHash"`
	Bodies        []model.SimulationBody `json:"bodies"`
}

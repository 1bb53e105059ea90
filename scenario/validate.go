// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scenario

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gazed/nbody/model"
)

// Issue is a single validation failure, path-addressed the way a JSON
// Schema validator would report it (spec §4.6).
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// ValidateDocument checks a scenario document against spec §4.6's
// validator bullets: schemaVersion present and "1."-prefixed, metadata
// present with a non-empty name and createdAt, engineConfig present and
// itself valid, and a non-empty bodies array with unique ids and no
// per-body invariant violations. It never panics on malformed input; a
// document that isn't even a JSON object yields a single top-level issue.
func ValidateDocument(data []byte) []Issue {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return []Issue{{Path: "$", Message: fmt.Sprintf("invalid JSON: %v", err)}}
	}

	var issues []Issue

	sv, ok := doc["schemaVersion"].(string)
	switch {
	case !ok || sv == "":
		issues = append(issues, Issue{Path: "$.schemaVersion", Message: "schemaVersion is required"})
	case !strings.HasPrefix(sv, "1."):
		issues = append(issues, Issue{Path: "$.schemaVersion", Message: fmt.Sprintf("schemaVersion %q must start with \"1.\"", sv)})
	}

	if md, ok := doc["metadata"].(map[string]interface{}); !ok {
		issues = append(issues, Issue{Path: "$.metadata", Message: "metadata object is required"})
	} else {
		if name, _ := md["name"].(string); name == "" {
			issues = append(issues, Issue{Path: "$.metadata.name", Message: "name must be non-empty"})
		}
		if createdAt, _ := md["createdAt"].(string); createdAt == "" {
			issues = append(issues, Issue{Path: "$.metadata.createdAt", Message: "createdAt must be non-empty"})
		}
	}

	if cfgRaw, ok := doc["engineConfig"]; !ok {
		issues = append(issues, Issue{Path: "$.engineConfig", Message: "engineConfig object is required"})
	} else if cfgMap, ok := cfgRaw.(map[string]interface{}); !ok {
		issues = append(issues, Issue{Path: "$.engineConfig", Message: "engineConfig must be an object"})
	} else {
		cfgBytes, _ := json.Marshal(cfgMap)
		var cfg model.SimulationConfig
		if err := json.Unmarshal(cfgBytes, &cfg); err != nil {
			issues = append(issues, Issue{Path: "$.engineConfig", Message: fmt.Sprintf("cannot decode config: %v", err)})
		} else if err := cfg.Validate(); err != nil {
			issues = append(issues, Issue{Path: "$.engineConfig", Message: err.Error()})
		}
	}

	bodiesRaw, ok := doc["bodies"].([]interface{})
	if !ok || len(bodiesRaw) == 0 {
		issues = append(issues, Issue{Path: "$.bodies", Message: "bodies must be a non-empty array"})
		return issues
	}

	bodiesBytes, err := json.Marshal(bodiesRaw)
	if err != nil {
		issues = append(issues, Issue{Path: "$.bodies", Message: fmt.Sprintf("cannot re-encode bodies: %v", err)})
		return issues
	}
	var bodies []model.SimulationBody
	if err := json.Unmarshal(bodiesBytes, &bodies); err != nil {
		issues = append(issues, Issue{Path: "$.bodies", Message: fmt.Sprintf("cannot decode bodies: %v", err)})
		return issues
	}

	seen := make(map[string]bool, len(bodies))
	for i, b := range bodies {
		path := fmt.Sprintf("$.bodies[%d]", i)
		if err := b.Validate(); err != nil {
			issues = append(issues, Issue{Path: path, Message: err.Error()})
		}
		if seen[b.ID] {
			issues = append(issues, Issue{Path: path + ".id", Message: fmt.Sprintf("duplicate body id %q", b.ID)})
		}
		seen[b.ID] = true
	}

	return issues
}

// Parse validates data and, only if it is clean, decodes it into a
// Document. Callers that want partial feedback on a broken document should
// call ValidateDocument directly instead.
func Parse(data []byte) (*Document, []Issue) {
	if issues := ValidateDocument(data); len(issues) > 0 {
		return nil, issues
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, []Issue{{Path: "$", Message: err.Error()}}
	}
	return &doc, nil
}

// AcceptSchemaPrefix reports whether version is accepted by loadScenario
// and restoreSnapshot (spec §4.5), which are looser than the scenario
// document validator: any major version "1" is accepted, not only the
// exact "1." dotted form.
func AcceptSchemaPrefix(version string) bool {
	return strings.HasPrefix(version, "1")
}

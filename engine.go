// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package nbody is the engine-agnostic core of a two-dimensional N-body
// gravitational simulator: a deterministic stepping pipeline plus the
// state machine, edit protocol, and serialization contracts that let a
// caller drive it from outside (a UI, a worker process, a test harness).
// The package never touches rendering, windowing, or any platform
// surface, the way the leaf physics packages it composes (force,
// integrate, collision) never import it back.
package nbody

import (
	"fmt"
	"log/slog"

	"github.com/gazed/nbody/metrics"
	"github.com/gazed/nbody/model"
)

// lifecycle is the engine's state machine (spec §4.5).
type lifecycle int

const (
	uninitialized lifecycle = iota
	active
	disposed
)

// Engine orchestrates the physics core: it owns the only mutable body
// list and tick/time counters, and hands out deep-cloned copies to every
// caller-visible method so external holders cannot alias internal state.
type Engine struct {
	state   lifecycle
	config  model.SimulationConfig
	bodies  []model.SimulationBody
	tick    uint64
	simTime float64

	maxBodyCount int
	logger       *slog.Logger
	metrics      *metrics.Recorder
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger overrides the default logger (slog.Default()) used for
// diagnostic warnings. Logging is informational only; it never
// substitutes for an error return.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics attaches a Prometheus recorder. Passing nil (the default)
// is fine: every Recorder method is a no-op on a nil receiver.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(e *Engine) { e.metrics = recorder }
}

// New returns an Uninitialized engine primed with the scientific-default
// config (spec §3), so a restoreSnapshot called before any initialize has
// a usable config to pair with the restored bodies.
func New(opts ...Option) *Engine {
	e := &Engine{
		state:  uninitialized,
		config: model.DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize validates cfg and bodies and transitions the engine to
// Active with tick and simTime reset to zero (spec §4.5).
func (e *Engine) Initialize(cfg model.SimulationConfig, bodies []model.SimulationBody) error {
	if err := e.requireNotDisposed("initialize"); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := model.ValidateBodies(bodies); err != nil {
		return err
	}
	e.config = cfg
	e.bodies = model.CloneBodies(bodies)
	e.tick = 0
	e.simTime = 0
	e.maxBodyCount = len(bodies)
	e.state = active
	return nil
}

// SetConfig validates and replaces the active config without touching
// bodies, tick, or simTime.
func (e *Engine) SetConfig(cfg model.SimulationConfig) error {
	if err := e.requireActive("setConfig"); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.config = cfg
	return nil
}

// ApplyEdit performs a single Create/Update/Delete against the active
// body list (spec §4.5).
func (e *Engine) ApplyEdit(edit model.BodyEdit) error {
	if err := e.requireActive("applyEdit"); err != nil {
		return err
	}
	switch edit.Kind {
	case model.EditCreate:
		if e.indexOf(edit.Body.ID) >= 0 {
			return model.StateErrorf("applyEdit: create: body id %q already exists", edit.Body.ID)
		}
		if err := edit.Body.Validate(); err != nil {
			return err
		}
		e.bodies = append(e.bodies, edit.Body)
	case model.EditUpdate:
		idx := e.indexOf(edit.ID)
		if idx < 0 {
			return model.StateErrorf("applyEdit: update: body id %q not found", edit.ID)
		}
		updated := edit.Update.Apply(e.bodies[idx])
		if err := updated.Validate(); err != nil {
			return err
		}
		e.bodies[idx] = updated
	case model.EditDelete:
		idx := e.indexOf(edit.ID)
		if idx < 0 {
			return model.StateErrorf("applyEdit: delete: body id %q not found", edit.ID)
		}
		e.bodies = append(e.bodies[:idx], e.bodies[idx+1:]...)
	default:
		return model.StateErrorf("applyEdit: unsupported edit kind %d", edit.Kind)
	}
	if len(e.bodies) > e.maxBodyCount {
		e.maxBodyCount = len(e.bodies)
	}
	return nil
}

// ApplyAll applies a sequence of edits, each with the same atomicity as a
// standalone ApplyEdit call: a failing edit leaves every edit before it
// committed and stops before applying the rest. This is a convenience for
// callers (e.g. a UI batching a drag-select delete) that would otherwise
// just loop over ApplyEdit themselves.
func (e *Engine) ApplyAll(edits []model.BodyEdit) error {
	for i, edit := range edits {
		if err := e.ApplyEdit(edit); err != nil {
			return fmt.Errorf("applyAll: edit %d: %w", i, err)
		}
	}
	return nil
}

// GetState returns a deep-cloned snapshot of the engine's current state.
func (e *Engine) GetState() (model.SimulationState, error) {
	if err := e.requireActive("getState"); err != nil {
		return model.SimulationState{}, err
	}
	return model.SimulationState{
		Tick:    e.tick,
		SimTime: e.simTime,
		Config:  e.config,
		Bodies:  model.CloneBodies(e.bodies),
	}, nil
}

// Dispose terminates the engine. Every operation other than a further
// Dispose call fails afterward. Dispose itself is idempotent.
func (e *Engine) Dispose() {
	e.state = disposed
	e.bodies = nil
}

func (e *Engine) indexOf(id string) int {
	for i, b := range e.bodies {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) requireActive(op string) error {
	switch e.state {
	case uninitialized:
		return model.StateErrorf("%s: engine is uninitialized", op)
	case disposed:
		return model.StateErrorf("%s: engine is disposed", op)
	default:
		return nil
	}
}

func (e *Engine) requireNotDisposed(op string) error {
	if e.state == disposed {
		return model.StateErrorf("%s: engine is disposed", op)
	}
	return nil
}


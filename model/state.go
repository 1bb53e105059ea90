// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package model

// SimulationState is the evolving, observable state of an engine instance
// (spec §3). It is equal-by-value: two states with the same tick, simTime,
// config, and bodies (in order) represent the same simulation.
type SimulationState struct {
	Tick    uint64
	SimTime float64
	Config  SimulationConfig
	Bodies  []SimulationBody
}

// Clone returns a deep copy suitable for handing to an external caller
// (spec §3 ownership: getState/snapshot/saveScenario never alias internal
// storage).
func (s SimulationState) Clone() SimulationState {
	return SimulationState{
		Tick:    s.Tick,
		SimTime: s.SimTime,
		Config:  s.Config,
		Bodies:  CloneBodies(s.Bodies),
	}
}

// StepSummary reports the work done by one Engine.Step call (spec §3).
type StepSummary struct {
	TicksApplied       uint64
	FinalTick          uint64
	SimTime            float64
	CollisionEvents    uint64
	MergedEvents       uint64
	Warnings           []string
	PairwiseTicks      uint64
	BarnesHutTicks     uint64
	StepWallTimeMicros int64
	AverageTickMicros  float64
	MaxBodyCount       int
	LastSolverMode     string // "pairwise" or "barnes_hut"
}

// Solver mode names reported on StepSummary.LastSolverMode (spec §3).
const (
	SolverModePairwise  = "pairwise"
	SolverModeBarnesHut = "barnes_hut"
)

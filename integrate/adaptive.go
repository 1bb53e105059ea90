// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package integrate

import (
	"math"

	"github.com/gazed/nbody/math/vec2"
)

// AdaptiveDt computes dt_used for one substep under dtPolicy=adaptive
// (spec §4.3). v_max is the fastest live body's speed; d_min is the
// closest strictly-positive separation between two live bodies. If either
// is undefined, non-finite, or v_max ≤ 0, the configured dt is returned
// unchanged. Otherwise the result is clamped to [0.05·configuredDt,
// configuredDt]: adaptive mode never raises the ceiling and never drops
// below 5% of it.
func AdaptiveDt(alive []bool, positions, velocities []vec2.Vec2, configuredDt float64) float64 {
	vMax := 0.0
	for i, isAlive := range alive {
		if !isAlive {
			continue
		}
		if v := velocities[i].Norm(); v > vMax {
			vMax = v
		}
	}

	dMin := math.Inf(1)
	n := len(positions)
	for i := 0; i < n; i++ {
		if !alive[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if !alive[j] {
				continue
			}
			d := positions[i].Distance(positions[j])
			if d > 0 && d < dMin {
				dMin = d
			}
		}
	}

	if vMax <= 0 || !finite(vMax) || !finite(dMin) {
		return configuredDt
	}

	dt := 0.05 * dMin / vMax
	lower := 0.05 * configuredDt
	if dt < lower {
		return lower
	}
	if dt > configuredDt {
		return configuredDt
	}
	return dt
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

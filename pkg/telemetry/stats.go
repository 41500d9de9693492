// Package telemetry computes and records per-tick swarm statistics so a
// headless run leaves a measurable artifact behind.
package telemetry

import (
	"gonum.org/v1/gonum/stat"

	"github.com/gosim-labs/friendfoe/pkg/geometry"
)

// TickStats summarizes the swarm at the end of one tick.
type TickStats struct {
	Tick      uint64  `csv:"tick"`
	Agents    int     `csv:"agents"`
	CentroidX float64 `csv:"centroid_x"`
	CentroidY float64 `csv:"centroid_y"`
	// Spread is the standard deviation of agent distances to the centroid.
	Spread float64 `csv:"spread"`
	// MeanRadius is the mean distance to the centroid.
	MeanRadius float64 `csv:"mean_radius"`
	// MeanDisplacement and MaxDisplacement measure how far agents actually
	// traveled this tick; Max never exceeds the configured step size.
	MeanDisplacement float64 `csv:"mean_displacement"`
	MaxDisplacement  float64 `csv:"max_displacement"`
}

// Collect computes the stats for one tick from the positions before and
// after it. prev may be nil for the very first sample, in which case the
// displacement fields stay zero.
func Collect(tick uint64, prev, cur []geometry.Vector2D) TickStats {
	s := TickStats{Tick: tick, Agents: len(cur)}
	if len(cur) == 0 {
		return s
	}

	xs := make([]float64, len(cur))
	ys := make([]float64, len(cur))
	for i, p := range cur {
		xs[i] = p.X
		ys[i] = p.Y
	}
	s.CentroidX = stat.Mean(xs, nil)
	s.CentroidY = stat.Mean(ys, nil)

	centroid := geometry.Vector2D{X: s.CentroidX, Y: s.CentroidY}
	radii := make([]float64, len(cur))
	for i, p := range cur {
		radii[i] = p.DistanceTo(centroid)
	}
	s.MeanRadius = stat.Mean(radii, nil)
	if len(radii) > 1 {
		s.Spread = stat.StdDev(radii, nil)
	}

	if len(prev) == len(cur) && prev != nil {
		displacements := make([]float64, len(cur))
		for i := range cur {
			d := cur[i].DistanceTo(prev[i])
			displacements[i] = d
			if d > s.MaxDisplacement {
				s.MaxDisplacement = d
			}
		}
		s.MeanDisplacement = stat.Mean(displacements, nil)
	}

	return s
}

package telemetry

import (
	"math"
	"testing"

	"github.com/gosim-labs/friendfoe/pkg/geometry"
)

func floatEq(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9
}

func TestCollect_Centroid(t *testing.T) {
	cur := []geometry.Vector2D{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 0, Y: 10},
		{X: 10, Y: 10},
	}

	s := Collect(3, nil, cur)
	if s.Tick != 3 || s.Agents != 4 {
		t.Errorf("Tick/Agents = %d/%d; want 3/4", s.Tick, s.Agents)
	}
	if !floatEq(s.CentroidX, 5) || !floatEq(s.CentroidY, 5) {
		t.Errorf("centroid = (%v, %v); want (5, 5)", s.CentroidX, s.CentroidY)
	}
	// All four corners are equidistant from the centroid.
	wantRadius := math.Sqrt(50)
	if !floatEq(s.MeanRadius, wantRadius) {
		t.Errorf("MeanRadius = %v; want %v", s.MeanRadius, wantRadius)
	}
	if !floatEq(s.Spread, 0) {
		t.Errorf("Spread = %v; want 0 for equidistant agents", s.Spread)
	}
	if s.MeanDisplacement != 0 || s.MaxDisplacement != 0 {
		t.Errorf("displacements without prev = (%v, %v); want zero", s.MeanDisplacement, s.MaxDisplacement)
	}
}

func TestCollect_Displacement(t *testing.T) {
	prev := []geometry.Vector2D{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 20, Y: 0},
	}
	cur := []geometry.Vector2D{
		{X: 1, Y: 0},  // moved 1
		{X: 10, Y: 2}, // moved 2
		{X: 20, Y: 0}, // did not move
	}

	s := Collect(1, prev, cur)
	if !floatEq(s.MeanDisplacement, 1) {
		t.Errorf("MeanDisplacement = %v; want 1", s.MeanDisplacement)
	}
	if !floatEq(s.MaxDisplacement, 2) {
		t.Errorf("MaxDisplacement = %v; want 2", s.MaxDisplacement)
	}
}

func TestCollect_Empty(t *testing.T) {
	s := Collect(0, nil, nil)
	if s.Agents != 0 || s.CentroidX != 0 || s.Spread != 0 {
		t.Errorf("Collect on empty swarm = %+v; want zero stats", s)
	}
}

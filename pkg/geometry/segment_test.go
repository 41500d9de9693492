package geometry

import (
	"testing"
)

func TestStepToward(t *testing.T) {
	tests := []struct {
		name    string
		current Vector2D
		dest    Vector2D
		step    float64
		want    Vector2D
	}{
		{"Full step along X", Vector2D{0, 0}, Vector2D{10, 0}, 4, Vector2D{4, 0}},
		{"Clamped at destination", Vector2D{0, 0}, Vector2D{3, 0}, 10, Vector2D{3, 0}},
		{"Exactly reaches destination", Vector2D{0, 0}, Vector2D{5, 0}, 5, Vector2D{5, 0}},
		{"Diagonal 3-4-5", Vector2D{0, 0}, Vector2D{3, 4}, 2.5, Vector2D{1.5, 2}},
		{"Zero distance stays put", Vector2D{7, 7}, Vector2D{7, 7}, 10, Vector2D{7, 7}},
		{"Negative direction", Vector2D{10, 0}, Vector2D{0, 0}, 4, Vector2D{6, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StepToward(tt.current, tt.dest, tt.step)
			if !got.Eq(tt.want) {
				t.Errorf("StepToward(%v, %v, %v) = %v; want %v", tt.current, tt.dest, tt.step, got, tt.want)
			}
		})
	}
}

// StepToward must never move past the destination, no matter the step.
func TestStepToward_NoOvershoot(t *testing.T) {
	current := Vector2D{0, 0}
	dest := Vector2D{1, 1}

	for _, step := range []float64{0.1, 1, 1.4142, 2, 100} {
		got := StepToward(current, dest, step)
		if got.DistanceTo(dest) > current.DistanceTo(dest)+Epsilon {
			t.Errorf("step %v moved away from destination: %v", step, got)
		}
		if got.DistanceTo(current) > step+Epsilon {
			t.Errorf("step %v traveled %v, more than the step size", step, got.DistanceTo(current))
		}
	}
}

func TestClassify(t *testing.T) {
	a := Vector2D{0, 0}
	b := Vector2D{10, 0}

	tests := []struct {
		name string
		p    Vector2D
		want Region
	}{
		{"Past first endpoint", Vector2D{-5, 0}, BeyondFirst},
		{"Past second endpoint", Vector2D{15, 0}, BeyondSecond},
		{"Above the middle", Vector2D{5, 3}, Between},
		{"On the segment", Vector2D{2, 0}, Between},
		{"At an endpoint", Vector2D{0, 0}, Between},
		{"Past first, off axis", Vector2D{-4, 2}, BeyondFirst},
		{"Past second, off axis", Vector2D{14, -2}, BeyondSecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.p, a, b); got != tt.want {
				t.Errorf("Classify(%v, %v, %v) = %v; want %v", tt.p, a, b, got, tt.want)
			}
		})
	}
}

func TestPerpendicularFoot_GeneralLine(t *testing.T) {
	// Line y = x, query point (4, 0): foot at (2, 2).
	a := Vector2D{0, 0}
	b := Vector2D{10, 10}
	p := Vector2D{4, 0}

	got := PerpendicularFoot(p, a, b)
	want := Vector2D{2, 2}
	if !got.Eq(want) {
		t.Errorf("PerpendicularFoot(%v, %v, %v) = %v; want %v", p, a, b, got, want)
	}

	// The foot must actually be perpendicular: (p-foot) . (b-a) == 0.
	if dot := p.Sub(got).Dot(b.Sub(a)); !floatEquals(dot, 0) {
		t.Errorf("foot %v is not perpendicular to the line, dot = %v", got, dot)
	}
}

func TestPerpendicularFoot_VerticalLine(t *testing.T) {
	a := Vector2D{3, 0}
	b := Vector2D{3, 10}
	p := Vector2D{8, 4}

	got := PerpendicularFoot(p, a, b)
	want := Vector2D{3, 4}
	if !got.Eq(want) {
		t.Errorf("PerpendicularFoot(%v, %v, %v) = %v; want %v", p, a, b, got, want)
	}
}

func TestPerpendicularFoot_HorizontalLine(t *testing.T) {
	// Symmetric with the vertical case: the foot keeps the query point's x.
	a := Vector2D{0, 5}
	b := Vector2D{10, 5}
	p := Vector2D{4, 9}

	got := PerpendicularFoot(p, a, b)
	want := Vector2D{4, 5}
	if !got.Eq(want) {
		t.Errorf("PerpendicularFoot(%v, %v, %v) = %v; want %v", p, a, b, got, want)
	}
}

func TestPerpendicularFootCompat_HorizontalMirrorsY(t *testing.T) {
	// The compat variant keeps the historical horizontal-line output, where
	// the query point's y coordinate ends up as the result x.
	a := Vector2D{0, 5}
	b := Vector2D{10, 5}
	p := Vector2D{4, 9}

	got := PerpendicularFootCompat(p, a, b)
	want := Vector2D{9, 5}
	if !got.Eq(want) {
		t.Errorf("PerpendicularFootCompat(%v, %v, %v) = %v; want %v", p, a, b, got, want)
	}

	// Vertical and general branches are unchanged from PerpendicularFoot.
	va, vb, vp := Vector2D{3, 0}, Vector2D{3, 10}, Vector2D{8, 4}
	if got := PerpendicularFootCompat(vp, va, vb); !got.Eq(PerpendicularFoot(vp, va, vb)) {
		t.Errorf("compat vertical branch diverged: %v", got)
	}
	ga, gb, gp := Vector2D{0, 0}, Vector2D{10, 10}, Vector2D{4, 0}
	if got := PerpendicularFootCompat(gp, ga, gb); !got.Eq(PerpendicularFoot(gp, ga, gb)) {
		t.Errorf("compat general branch diverged: %v", got)
	}
}

func BenchmarkStepToward(b *testing.B) {
	current := Vector2D{0, 0}
	dest := Vector2D{123.4, 567.8}
	for i := 0; i < b.N; i++ {
		current = StepToward(current, dest, 0.5)
	}
}

func BenchmarkPerpendicularFoot(b *testing.B) {
	p := Vector2D{4, 0}
	from := Vector2D{0, 0}
	to := Vector2D{10, 10}
	for i := 0; i < b.N; i++ {
		_ = PerpendicularFoot(p, from, to)
	}
}

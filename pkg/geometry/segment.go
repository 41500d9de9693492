package geometry

// StepToward returns the point reached by moving from current toward
// destination, with the traveled distance capped at step.
// When current and destination coincide there is no direction to move in,
// so current is returned unchanged. The result never overshoots destination.
func StepToward(current, destination Vector2D, step float64) Vector2D {
	delta := destination.Sub(current)
	dist := delta.Len()
	if dist == 0 {
		return current
	}
	if step >= dist {
		return destination
	}
	return current.Add(delta.Mul(step / dist))
}

// Region classifies a query point against a segment, see Classify.
type Region int

const (
	// Between means the point projects onto the segment itself.
	Between Region = iota
	// BeyondFirst means the point lies past the first endpoint.
	BeyondFirst
	// BeyondSecond means the point lies past the second endpoint.
	BeyondSecond
)

// String implements fmt.Stringer.
func (r Region) String() string {
	switch r {
	case BeyondFirst:
		return "beyond-first"
	case BeyondSecond:
		return "beyond-second"
	default:
		return "between"
	}
}

// Classify determines where p lies relative to the segment ab using the
// law-of-cosines sign test: when the triangle (a, b, p) is obtuse at a,
// p is beyond a; obtuse at b, p is beyond b; otherwise p projects onto
// the segment itself.
func Classify(p, a, b Vector2D) Region {
	dAB := a.DistanceSquaredTo(b)
	dAP := a.DistanceSquaredTo(p)
	dBP := b.DistanceSquaredTo(p)

	switch {
	case dBP > dAB+dAP:
		return BeyondFirst
	case dAP > dAB+dBP:
		return BeyondSecond
	default:
		return Between
	}
}

// PerpendicularFoot returns the foot of the perpendicular dropped from p
// onto the infinite line through a and b.
//
// Axis-aligned lines are special-cased to avoid a division by zero in the
// slope computation: on a vertical line the foot is (a.X, p.Y); on a
// horizontal line it is (p.X, a.Y). In the general case the foot is the
// intersection of line ab (slope m1) with the perpendicular through p
// (slope -1/m1).
//
// Callers must ensure a != b; a degenerate segment has no defined line.
func PerpendicularFoot(p, a, b Vector2D) Vector2D {
	if b.X-a.X == 0 {
		return Vector2D{X: a.X, Y: p.Y}
	}
	if b.Y-a.Y == 0 {
		return Vector2D{X: p.X, Y: a.Y}
	}
	return footGeneral(p, a, b)
}

// PerpendicularFootCompat is PerpendicularFoot with the horizontal-line
// branch producing (p.Y, a.Y) instead of (p.X, a.Y), mirroring the query
// point's y coordinate into the result x. This reproduces the behavior the
// simulation historically shipped with and is kept only for output parity
// with earlier runs; new code should use PerpendicularFoot.
func PerpendicularFootCompat(p, a, b Vector2D) Vector2D {
	if b.X-a.X == 0 {
		return Vector2D{X: a.X, Y: p.Y}
	}
	if b.Y-a.Y == 0 {
		return Vector2D{X: p.Y, Y: a.Y}
	}
	return footGeneral(p, a, b)
}

func footGeneral(p, a, b Vector2D) Vector2D {
	// Slopes of line ab and of the perpendicular through p.
	m1 := (b.Y - a.Y) / (b.X - a.X)
	m2 := -1 / m1

	// Intercepts of the two lines.
	b1 := b.Y - m1*b.X
	b2 := p.Y - m2*p.X

	// Intersection.
	x := (b1 - b2) / (m2 - m1)
	y := m1*x + b1
	return Vector2D{X: x, Y: y}
}

package swarm

import (
	"fmt"

	"github.com/gosim-labs/friendfoe/pkg/geometry"
)

// Behavior computes the point an agent wants to reach this tick, given its
// own position and the perceived positions of its friend and enemy.
// Implementations must be pure: no state besides construction-time
// parameters, no mutation of inputs. An agent is bound to exactly one
// Behavior at construction and never rebinds.
type Behavior interface {
	// Destination returns the target point for the current tick.
	Destination(self, friend, enemy geometry.Vector2D) geometry.Vector2D
	// Name returns the behavior identifier used in config and logs.
	Name() string
}

// Behavior names accepted in config.
const (
	BehaviorMidpoint    = "midpoint"
	BehaviorInterpose   = "interpose"
	BehaviorFixedHide   = "hide-fixed"
	BehaviorNearestHide = "hide-nearest"
)

// ---------------------------------------------------------------------
// Midpoint
// ---------------------------------------------------------------------

// Midpoint steers for the point halfway between friend and enemy.
type Midpoint struct{}

func (Midpoint) Name() string { return BehaviorMidpoint }

func (Midpoint) Destination(_, friend, enemy geometry.Vector2D) geometry.Vector2D {
	return friend.Midpoint(enemy)
}

// ---------------------------------------------------------------------
// Interpose
// ---------------------------------------------------------------------

// Interpose steers for the nearest point on the friend-enemy segment:
// past the friend it targets the friend, past the enemy it targets the
// enemy, and in between it drops onto the line by the shortest path.
type Interpose struct{}

func (Interpose) Name() string { return BehaviorInterpose }

func (Interpose) Destination(self, friend, enemy geometry.Vector2D) geometry.Vector2D {
	switch geometry.Classify(self, friend, enemy) {
	case geometry.BeyondFirst:
		return friend
	case geometry.BeyondSecond:
		return enemy
	default:
		return geometry.PerpendicularFoot(self, friend, enemy)
	}
}

// ---------------------------------------------------------------------
// FixedHide
// ---------------------------------------------------------------------

// FixedHide steers for a point a fixed distance behind the friend, on the
// far side of the friend as seen from the enemy.
type FixedHide struct {
	distance float64
}

// NewFixedHide creates a FixedHide behavior. The distance behind the friend
// must be positive.
func NewFixedHide(distance float64) (FixedHide, error) {
	if distance <= 0 {
		return FixedHide{}, fmt.Errorf("hide distance must be positive, got %v", distance)
	}
	return FixedHide{distance: distance}, nil
}

// Distance returns the configured offset behind the friend.
func (h FixedHide) Distance() float64 { return h.distance }

func (h FixedHide) Name() string { return BehaviorFixedHide }

func (h FixedHide) Destination(_, friend, enemy geometry.Vector2D) geometry.Vector2D {
	u := friend.Sub(enemy).Normalize()
	if u.LenSqr() == 0 {
		// Friend and enemy coincide: no safe direction exists.
		return friend
	}

	// Candidate behind the friend, away from the enemy. If it ended up
	// closer to the enemy than the friend itself is, the offset direction
	// was wrong: flip to the other side.
	point := friend.Add(u.Mul(h.distance))
	if friend.DistanceTo(enemy) > enemy.DistanceTo(point) {
		point = friend.Sub(u.Mul(h.distance))
	}
	return point
}

// ---------------------------------------------------------------------
// NearestHide
// ---------------------------------------------------------------------

// NearestHide takes the shortest path to safety behind the friend: already
// past the friend it just drops onto the friend-enemy line, anywhere else
// it retreats to the friend. Note the deliberate asymmetry with Interpose
// on the in-between case: Interpose seeks the line, NearestHide seeks the
// friend.
type NearestHide struct{}

func (NearestHide) Name() string { return BehaviorNearestHide }

func (NearestHide) Destination(self, friend, enemy geometry.Vector2D) geometry.Vector2D {
	switch geometry.Classify(self, friend, enemy) {
	case geometry.BeyondFirst:
		return geometry.PerpendicularFoot(self, friend, enemy)
	default:
		return friend
	}
}

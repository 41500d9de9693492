package swarm

import (
	"fmt"

	"github.com/gosim-labs/friendfoe/pkg/geometry"
)

// unset marks a relation index that has not been assigned yet.
const unset = -1

// Agent is a point entity bound to one friend and one enemy agent.
//
// Relations are integer handles into the world's agent slice rather than
// pointers: the world owns every agent lifetime, and index handles stay
// unambiguous across a Reset. An agent never mutates its peers; all
// cross-agent reads go through the perception snapshot taken in
// UpdatePerception, which is what makes the two-pass tick simultaneous.
type Agent struct {
	// Pos is the agent's current position.
	Pos geometry.Vector2D

	stepSize float64
	behavior Behavior

	friend int
	enemy  int

	// Perception snapshot, frozen for the duration of a tick.
	friendPos geometry.Vector2D
	enemyPos  geometry.Vector2D
	perceived bool
}

// NewAgent creates an agent at (x, y) traveling at most stepSize per tick,
// permanently bound to the given behavior. Relations start unassigned.
func NewAgent(x, y, stepSize float64, b Behavior) (*Agent, error) {
	if stepSize <= 0 {
		return nil, fmt.Errorf("step size must be positive, got %v", stepSize)
	}
	if b == nil {
		return nil, fmt.Errorf("agent needs a behavior")
	}
	return &Agent{
		Pos:      geometry.Vector2D{X: x, Y: y},
		stepSize: stepSize,
		behavior: b,
		friend:   unset,
		enemy:    unset,
	}, nil
}

// StepSize returns the maximum distance the agent travels per tick.
func (a *Agent) StepSize() float64 { return a.stepSize }

// Behavior returns the destination strategy the agent was built with.
func (a *Agent) Behavior() Behavior { return a.behavior }

// Friend returns the index of the agent's friend, or -1 if unassigned.
func (a *Agent) Friend() int { return a.friend }

// Enemy returns the index of the agent's enemy, or -1 if unassigned.
func (a *Agent) Enemy() int { return a.enemy }

// SetRelations wires the agent (which sits at index self) to its friend and
// enemy. Both must differ from self and from each other.
func (a *Agent) SetRelations(self, friend, enemy int) error {
	if friend == self || enemy == self {
		return fmt.Errorf("agent %d cannot befriend or fight itself", self)
	}
	if friend == enemy {
		return fmt.Errorf("agent %d: friend and enemy must be distinct, both are %d", self, friend)
	}
	if friend < 0 || enemy < 0 {
		return fmt.Errorf("agent %d: negative relation index (friend=%d, enemy=%d)", self, friend, enemy)
	}
	a.friend = friend
	a.enemy = enemy
	return nil
}

// UpdatePerception snapshots the current positions of the agent's friend and
// enemy out of peers. Calling it before relations are assigned is a
// programmer error and panics.
//
// The world must run UpdatePerception on every agent before any agent moves;
// the snapshot is what each Move computes from, so all agents within a tick
// observe the same frozen world.
func (a *Agent) UpdatePerception(peers []*Agent) {
	if a.friend == unset || a.enemy == unset {
		panic("swarm: UpdatePerception called before friend/enemy were assigned")
	}
	a.friendPos = peers[a.friend].Pos
	a.enemyPos = peers[a.enemy].Pos
	a.perceived = true
}

// Move computes this tick's destination from the perception snapshot and
// advances the position toward it, traveling at most the step size.
// Calling it before any perception snapshot exists is a programmer error
// and panics.
func (a *Agent) Move() {
	if !a.perceived {
		panic("swarm: Move called before UpdatePerception populated a snapshot")
	}
	dest := a.behavior.Destination(a.Pos, a.friendPos, a.enemyPos)
	a.Pos = geometry.StepToward(a.Pos, dest, a.stepSize)
}

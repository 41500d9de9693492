package swarm

import (
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/gosim-labs/friendfoe/pkg/geometry"
)

// World owns the agent population and advances it one synchronized tick at
// a time. All agent lifetimes belong to the world; relations between agents
// are index handles into the world's slice.
type World struct {
	cfg     *Config
	creator Creator
	agents  []*Agent
	rng     *rand.Rand
	log     *zap.Logger

	tick uint64

	// Tick-rate telemetry, logged once per interval.
	ticksSinceLog int
	lastLogTime   time.Time
}

// Option configures a World at construction.
type Option func(*World)

// WithLogger attaches a logger; the default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(w *World) { w.log = log }
}

// NewWorld creates an empty world for the given config. Call Reset to
// populate it before stepping.
func NewWorld(cfg *Config, creator Creator, opts ...Option) (*World, error) {
	if cfg == nil {
		return nil, fmt.Errorf("world needs a config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if creator == nil {
		return nil, fmt.Errorf("world needs an agent creator")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	w := &World{
		cfg:         cfg,
		creator:     creator,
		rng:         rand.New(rand.NewPCG(seed, seed)),
		log:         zap.NewNop(),
		lastLogTime: time.Now(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Len returns the current population size.
func (w *World) Len() int { return len(w.agents) }

// Tick returns the number of completed steps since the last Reset.
func (w *World) Tick() uint64 { return w.tick }

// Agents exposes the population; callers must not mutate it.
func (w *World) Agents() []*Agent { return w.agents }

// Reset discards the population, creates NumAgents fresh agents at uniformly
// random positions inside the world bounds, and wires every agent to a
// friend and an enemy using the given strategy. After a successful Reset
// every agent has distinct relations and the world is ready to Step.
func (w *World) Reset(strategy Strategy) error {
	if strategy == nil {
		return fmt.Errorf("reset needs an assignment strategy")
	}

	agents := make([]*Agent, 0, w.cfg.NumAgents)
	for i := 0; i < w.cfg.NumAgents; i++ {
		x := w.rng.Float64() * w.cfg.WorldWidth
		y := w.rng.Float64() * w.cfg.WorldHeight
		a, err := w.creator.Create(x, y, w.cfg.StepSize)
		if err != nil {
			return fmt.Errorf("creating agent %d: %w", i, err)
		}
		agents = append(agents, a)
	}

	if err := strategy.Assign(agents, w.rng); err != nil {
		return fmt.Errorf("assigning relations: %w", err)
	}

	w.agents = agents
	w.tick = 0
	w.ticksSinceLog = 0
	w.lastLogTime = time.Now()

	w.log.Info("world reset",
		zap.Int("agents", len(agents)),
		zap.String("strategy", strategy.Name()),
		zap.Float64("stepSize", w.cfg.StepSize),
	)
	return nil
}

// Step advances the swarm one tick with simultaneous-update semantics:
// pass 1 snapshots every agent's perception, pass 2 moves every agent from
// its snapshot. No agent's Move can observe another agent's post-move
// position within the same tick, which is the correctness invariant the
// whole simulation rests on. Pass 1 must fully complete before pass 2
// begins.
func (w *World) Step() {
	for _, a := range w.agents {
		a.UpdatePerception(w.agents)
	}
	for _, a := range w.agents {
		a.Move()
	}
	w.tick++
	w.logTickRate()
}

// Positions returns a read-only snapshot of all agent positions in agent
// order, for rendering and telemetry.
func (w *World) Positions() []geometry.Vector2D {
	out := make([]geometry.Vector2D, len(w.agents))
	for i, a := range w.agents {
		out[i] = a.Pos
	}
	return out
}

// logTickRate emits a debug line roughly once per second while stepping.
func (w *World) logTickRate() {
	w.ticksSinceLog++
	if since := time.Since(w.lastLogTime); since >= time.Second {
		w.log.Debug("tick rate",
			zap.Uint64("tick", w.tick),
			zap.Float64("ticksPerSec", float64(w.ticksSinceLog)/since.Seconds()),
			zap.Int("agents", len(w.agents)),
		)
		w.ticksSinceLog = 0
		w.lastLogTime = time.Now()
	}
}

package swarm

import (
	"fmt"
	"math/rand/v2"
)

// Strategy wires every agent in the swarm to a friend and an enemy.
// Implementations must leave each agent with a friend and an enemy that
// both differ from the agent itself and from each other.
type Strategy interface {
	// Assign sets relations on every agent. The slice order is the handle
	// space the relations index into.
	Assign(agents []*Agent, rng *rand.Rand) error
	// Name returns the strategy identifier used in config and logs.
	Name() string
}

// Strategy names accepted in config.
const (
	StrategyRandom = "random"
	StrategyRing   = "ring"
)

// minAgents is the smallest population for which self, friend and enemy can
// all be distinct.
const minAgents = 3

// StrategyByName resolves a config strategy name.
func StrategyByName(name string) (Strategy, error) {
	switch name {
	case StrategyRandom:
		return RandomStrategy{}, nil
	case StrategyRing:
		return RingStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown assignment strategy %q", name)
	}
}

// RandomStrategy gives every agent a friend and an enemy sampled uniformly,
// without replacement, from the other agents.
type RandomStrategy struct{}

func (RandomStrategy) Name() string { return StrategyRandom }

func (RandomStrategy) Assign(agents []*Agent, rng *rand.Rand) error {
	n := len(agents)
	if n < minAgents {
		return fmt.Errorf("random assignment needs at least %d agents, got %d", minAgents, n)
	}

	for i, a := range agents {
		// Two distinct draws from the n-1 other indices: draw positions in
		// [0, n-1) and [0, n-2), then map around the excluded slots.
		friend := rng.IntN(n - 1)
		if friend >= i {
			friend++
		}

		enemy := rng.IntN(n - 2)
		for _, taken := range sortedPair(i, friend) {
			if enemy >= taken {
				enemy++
			}
		}

		if err := a.SetRelations(i, friend, enemy); err != nil {
			return err
		}
	}
	return nil
}

// sortedPair returns the two values in ascending order.
func sortedPair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// RingStrategy wires agents in list order: the previous agent is the friend
// and the next agent is the enemy, wrapping at both ends.
type RingStrategy struct{}

func (RingStrategy) Name() string { return StrategyRing }

func (RingStrategy) Assign(agents []*Agent, _ *rand.Rand) error {
	n := len(agents)
	if n < minAgents {
		return fmt.Errorf("ring assignment needs at least %d agents, got %d", minAgents, n)
	}

	for i, a := range agents {
		friend := (i - 1 + n) % n
		enemy := (i + 1) % n
		if err := a.SetRelations(i, friend, enemy); err != nil {
			return err
		}
	}
	return nil
}

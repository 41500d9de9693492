package swarm

import "fmt"

// Creator produces agents for the world. It exists so that per-behavior
// construction parameters (like the fixed hide distance) are supplied once,
// when the creator is built, and reused for every agent of the run.
type Creator interface {
	// Create returns a fresh agent at (x, y) with the given step size.
	Create(x, y, stepSize float64) (*Agent, error)
}

// behaviorCreator stamps out agents sharing one behavior value.
type behaviorCreator struct {
	behavior Behavior
}

func (c behaviorCreator) Create(x, y, stepSize float64) (*Agent, error) {
	return NewAgent(x, y, stepSize, c.behavior)
}

// NewCreator builds a creator for any behavior value.
func NewCreator(b Behavior) (Creator, error) {
	if b == nil {
		return nil, fmt.Errorf("creator needs a behavior")
	}
	return behaviorCreator{behavior: b}, nil
}

// NewFixedHideCreator builds a creator whose agents hide a fixed distance
// behind their friend. The distance is validated here, once.
func NewFixedHideCreator(distance float64) (Creator, error) {
	b, err := NewFixedHide(distance)
	if err != nil {
		return nil, err
	}
	return behaviorCreator{behavior: b}, nil
}

// CreatorFor resolves the behavior named in cfg into a creator.
func CreatorFor(cfg *Config) (Creator, error) {
	switch cfg.Behavior {
	case BehaviorMidpoint:
		return NewCreator(Midpoint{})
	case BehaviorInterpose:
		return NewCreator(Interpose{})
	case BehaviorFixedHide:
		return NewFixedHideCreator(cfg.HideDistance)
	case BehaviorNearestHide:
		return NewCreator(NearestHide{})
	default:
		return nil, fmt.Errorf("unknown behavior %q", cfg.Behavior)
	}
}

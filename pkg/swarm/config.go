package swarm

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var configSchema string

// Config holds one simulation run's parameters.
type Config struct {
	// World dimensions; agents spawn uniformly inside [0,W) x [0,H).
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	NumAgents int     `json:"numAgents"`
	StepSize  float64 `json:"stepSize"`

	// Behavior selection: midpoint | interpose | hide-fixed | hide-nearest.
	Behavior string `json:"behavior"`
	// HideDistance is the offset behind the friend; only hide-fixed uses it.
	HideDistance float64 `json:"hideDistance,omitempty"`

	// Strategy wires friends and enemies: random | ring.
	Strategy string `json:"strategy"`

	// Seed makes runs reproducible; 0 picks a fresh seed per run.
	Seed uint64 `json:"seed,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:   100,
		WorldHeight:  100,
		NumAgents:    1000,
		StepSize:     10,
		Behavior:     BehaviorFixedHide,
		HideDistance: 20,
		Strategy:     StrategyRandom,
	}
}

// Validate checks the cross-field constraints the schema cannot express.
func (c *Config) Validate() error {
	if c.NumAgents < minAgents {
		return fmt.Errorf("numAgents must be at least %d, got %d", minAgents, c.NumAgents)
	}
	if c.StepSize <= 0 {
		return fmt.Errorf("stepSize must be positive, got %v", c.StepSize)
	}
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 {
		return fmt.Errorf("world bounds must be positive, got %vx%v", c.WorldWidth, c.WorldHeight)
	}
	switch c.Behavior {
	case BehaviorMidpoint, BehaviorInterpose, BehaviorNearestHide:
	case BehaviorFixedHide:
		if c.HideDistance <= 0 {
			return fmt.Errorf("behavior %q needs a positive hideDistance, got %v", c.Behavior, c.HideDistance)
		}
	default:
		return fmt.Errorf("unknown behavior %q", c.Behavior)
	}
	if _, err := StrategyByName(c.Strategy); err != nil {
		return err
	}
	return nil
}

// LoadConfig loads configuration from a JSON file, validates it against the
// embedded schema, then against the cross-field rules.
func LoadConfig(configFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Validate
	var v interface{}
	if err := json.NewDecoder(bytes.NewReader(b)).Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// WriteJSON saves the config next to a run's outputs so it can be replayed.
func (c *Config) WriteJSON(path string) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

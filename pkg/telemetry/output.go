package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/gosim-labs/friendfoe/pkg/swarm"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir       string
	statsFile *os.File

	// Track if the header has been written
	statsHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	statsPath := filepath.Join(dir, "ticks.csv")
	f, err := os.Create(statsPath)
	if err != nil {
		return nil, fmt.Errorf("creating ticks.csv: %w", err)
	}

	return &OutputManager{dir: dir, statsFile: f}, nil
}

// WriteConfig saves the run's configuration next to its stats so the run
// can be reproduced.
func (om *OutputManager) WriteConfig(cfg *swarm.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteJSON(filepath.Join(om.dir, "config.json"))
}

// WriteTick appends one tick's stats record to ticks.csv.
func (om *OutputManager) WriteTick(stats TickStats) error {
	if om == nil {
		return nil
	}

	records := []TickStats{stats}

	if !om.statsHeaderWritten {
		// First write includes the header
		if err := gocsv.Marshal(records, om.statsFile); err != nil {
			return fmt.Errorf("writing tick stats: %w", err)
		}
		om.statsHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.statsFile); err != nil {
		return fmt.Errorf("writing tick stats: %w", err)
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.statsFile == nil {
		return nil
	}
	err := om.statsFile.Close()
	om.statsFile = nil
	return err
}

package ossim

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/ossim/internal/env"
	"github.com/viant/ossim/model"
	"github.com/viant/ossim/policy"
	"github.com/viant/ossim/service/dispatcher"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the simulator configuration.
// Zero sections inherit package defaults when loaded through LoadConfig.
type Config struct {
	Memory     MemoryConfig     `json:"memory" yaml:"memory"`
	Scheduling SchedulingConfig `json:"scheduling" yaml:"scheduling"`
	Deadlock   DeadlockConfig   `json:"deadlock" yaml:"deadlock"`
	Report     ReportConfig     `json:"report" yaml:"report"`
	Policy     *policy.Config   `json:"policy,omitempty" yaml:"policy,omitempty"`
}

type MemoryConfig struct {
	Capacity int `json:"capacity" yaml:"capacity"`
}

type SchedulingConfig struct {
	Quantum int `json:"quantum" yaml:"quantum"`
	Palette int `json:"palette" yaml:"palette"`
}

type DeadlockConfig struct {
	DeriveFromProcesses bool         `json:"deriveFromProcesses" yaml:"deriveFromProcesses"`
	Available           model.Vector `json:"available,omitempty" yaml:"available,omitempty,flow"`
}

type ReportConfig struct {
	URL string `json:"url" yaml:"url"`
}

// DefaultConfig returns the reference settings: 100 memory units, quantum 3
// and the ten colour palette.
func DefaultConfig() *Config {
	return &Config{
		Memory:     MemoryConfig{Capacity: model.DefaultCapacity},
		Scheduling: SchedulingConfig{Quantum: 3, Palette: model.DefaultPaletteSize},
		Report:     ReportConfig{URL: "reports"},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	var err error
	if c.Memory.Capacity <= 0 {
		err = multierr.Append(err, fmt.Errorf("memory.capacity must be > 0"))
	}
	if c.Scheduling.Quantum <= 0 {
		err = multierr.Append(err, fmt.Errorf("scheduling.quantum must be > 0"))
	}
	if c.Scheduling.Palette <= 0 {
		err = multierr.Append(err, fmt.Errorf("scheduling.palette must be > 0"))
	}
	for i, v := range c.Deadlock.Available {
		if v < 0 {
			err = multierr.Append(err, fmt.Errorf("deadlock.available[%d] must be >= 0", i))
		}
	}
	if c.Policy != nil {
		switch strings.ToLower(c.Policy.Mode) {
		case "", policy.ModeAuto, policy.ModeDeny:
		default:
			err = multierr.Append(err, fmt.Errorf("policy.mode %q is not supported", c.Policy.Mode))
		}
	}
	return err
}

func (c *Config) dispatcher() *dispatcher.Config {
	return &dispatcher.Config{
		Capacity:  c.Memory.Capacity,
		Quantum:   c.Scheduling.Quantum,
		Palette:   c.Scheduling.Palette,
		Derive:    c.Deadlock.DeriveFromProcesses,
		Available: c.Deadlock.Available.Clone(),
	}
}

// LoadConfig reads a YAML (or JSON) configuration from URL on top of the
// defaults and validates it. ${env.NAME} references are expanded first.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal([]byte(env.Expand(string(data))), ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", URL, err)
	}
	if err = ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

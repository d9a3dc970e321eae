package dispatcher

import (
	"github.com/viant/ossim/model"
)

// Config carries run parameters shared by every operation.
type Config struct {
	Capacity  int
	Quantum   int
	Palette   int
	Derive    bool
	Available model.Vector
}

// DefaultConfig returns the reference run parameters.
func DefaultConfig() *Config {
	return &Config{
		Capacity: model.DefaultCapacity,
		Quantum:  3,
		Palette:  model.DefaultPaletteSize,
	}
}

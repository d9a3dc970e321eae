package model

// DefaultPaletteSize is the number of distinct colors available to the presentation layer
const DefaultPaletteSize = 10

// Slice represents a single execution slice of a process
type Slice struct {
	Process string `json:"process" yaml:"process"`
	Start   int    `json:"start" yaml:"start"`
	Finish  int    `json:"finish" yaml:"finish"`
	Color   int    `json:"color" yaml:"color"`
}

// Duration returns slice length
func (s Slice) Duration() int {
	return s.Finish - s.Start
}

// Timeline represents an ordered execution trace
type Timeline []Slice

// Makespan returns the latest finish time
func (t Timeline) Makespan() int {
	ret := 0
	for _, s := range t {
		if s.Finish > ret {
			ret = s.Finish
		}
	}
	return ret
}

// Of returns slices of the named process
func (t Timeline) Of(name string) Timeline {
	var ret Timeline
	for _, s := range t {
		if s.Process == name {
			ret = append(ret, s)
		}
	}
	return ret
}

// ColorIndex maps a process ordinal to a palette slot
func ColorIndex(ordinal, paletteSize int) int {
	if paletteSize <= 0 {
		return 0
	}
	return ordinal % paletteSize
}

package model

// DefaultCapacity is the default total memory capacity in units
const DefaultCapacity = 100

// Block represents a contiguous memory run
type Block struct {
	Offset int
	Size   int
}

// End returns the first offset past the block
func (b Block) End() int {
	return b.Offset + b.Size
}

// Memory represents a unit-addressed memory array, 0 denotes a free unit,
// k > 0 the unit owned by the process at 1-based input position k.
type Memory []int

// NewMemory creates a free memory array
func NewMemory(capacity int) Memory {
	if capacity < 0 {
		capacity = 0
	}
	return make(Memory, capacity)
}

// Used returns the number of allocated units
func (m Memory) Used() int {
	ret := 0
	for _, owner := range m {
		if owner != 0 {
			ret++
		}
	}
	return ret
}

// FreeRuns returns maximal free runs in index order
func (m Memory) FreeRuns() []Block {
	var ret []Block
	i := 0
	for i < len(m) {
		if m[i] != 0 {
			i++
			continue
		}
		start := i
		for i < len(m) && m[i] == 0 {
			i++
		}
		ret = append(ret, Block{Offset: start, Size: i - start})
	}
	return ret
}

// Assign marks the block as owned by owner
func (m Memory) Assign(block Block, owner int) {
	for j := block.Offset; j < block.End() && j < len(m); j++ {
		m[j] = owner
	}
}

// Clone returns a copy
func (m Memory) Clone() Memory {
	if m == nil {
		return nil
	}
	return append(Memory(nil), m...)
}

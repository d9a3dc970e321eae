package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ossim/model"
)

func withSizes(sizes ...int) model.Processes {
	ret := make(model.Processes, len(sizes))
	for i, size := range sizes {
		p := model.NewProcess(uint64(i+1), "P"+string(rune('1'+i)))
		p.MemorySize = size
		ret[i] = p
	}
	return ret
}

func positions(results model.Processes) []int {
	ret := make([]int, len(results))
	for i, p := range results {
		ret[i] = *p.AllocatedPosition
	}
	return ret
}

func TestAllocate(t *testing.T) {
	var testCases = []struct {
		description string
		strategy    Strategy
		sizes       []int
		capacity    int
		expect      []int
		expectUsed  int
	}{
		// Memory is never released within a run, so every strategy sees a
		// single trailing free run and places processes back to back.
		{description: "first fit", strategy: FirstFit, sizes: []int{25, 15, 35, 20, 30}, capacity: 100, expect: []int{0, 25, 40, 75, -1}, expectUsed: 95},
		{description: "best fit", strategy: BestFit, sizes: []int{25, 15, 35, 20, 30}, capacity: 100, expect: []int{0, 25, 40, 75, -1}, expectUsed: 95},
		{description: "worst fit", strategy: WorstFit, sizes: []int{25, 15, 35, 20, 30}, capacity: 100, expect: []int{0, 25, 40, 75, -1}, expectUsed: 95},
		{description: "later small process still fits", strategy: FirstFit, sizes: []int{60, 50, 40}, capacity: 100, expect: []int{0, -1, 60}, expectUsed: 100},
		{description: "oversized", strategy: BestFit, sizes: []int{150, 10}, capacity: 100, expect: []int{-1, 0}, expectUsed: 10},
		{description: "zero capacity", strategy: WorstFit, sizes: []int{1}, capacity: 0, expect: []int{-1}, expectUsed: 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			input := withSizes(testCase.sizes...)
			memory, results := Allocate(input, testCase.capacity, testCase.strategy)
			require.Len(t, memory, testCase.capacity)
			assert.Equal(t, testCase.expect, positions(results))
			assert.Equal(t, testCase.expectUsed, memory.Used())
			for i, p := range results {
				if *p.AllocatedPosition < 0 {
					assert.Equal(t, model.StatusFailed, p.Status)
					continue
				}
				assert.Equal(t, model.StatusAllocated, p.Status)
				assert.LessOrEqual(t, *p.AllocatedPosition+p.MemorySize, testCase.capacity)
				for j := *p.AllocatedPosition; j < *p.AllocatedPosition+p.MemorySize; j++ {
					assert.Equal(t, i+1, memory[j])
				}
			}
			for _, p := range input {
				assert.Nil(t, p.AllocatedPosition)
			}
		})
	}
}

func fragmented() model.Memory {
	memory := model.NewMemory(30)
	memory.Assign(model.Block{Offset: 5, Size: 3}, 1)
	memory.Assign(model.Block{Offset: 18, Size: 2}, 2)
	// free runs: [0,5) [8,18) [20,30)
	return memory
}

func TestStrategies(t *testing.T) {
	var testCases = []struct {
		description string
		size        int
		first       int
		best        int
		worst       int
	}{
		{description: "fits everywhere", size: 4, first: 0, best: 0, worst: 8},
		{description: "fits only the larger runs", size: 6, first: 8, best: 8, worst: 8},
		{description: "fits exactly the smallest run", size: 5, first: 0, best: 0, worst: 8},
		{description: "fits both equal runs exactly", size: 10, first: 8, best: 8, worst: 8},
		{description: "fits nowhere", size: 11, first: -1, best: -1, worst: -1},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			memory := fragmented()
			assert.Equal(t, testCase.first, FirstFit(memory, testCase.size))
			assert.Equal(t, testCase.best, BestFit(memory, testCase.size))
			assert.Equal(t, testCase.worst, WorstFit(memory, testCase.size))
		})
	}
}

func TestBestFit_EqualRuns(t *testing.T) {
	memory := model.NewMemory(15)
	memory.Assign(model.Block{Offset: 5, Size: 5}, 1)
	// free runs: [0,5) [10,15)
	var testCases = []struct {
		description string
		size        int
		expect      int
	}{
		{description: "exact size keeps lower offset", size: 5, expect: 0},
		{description: "smaller size keeps lower offset", size: 3, expect: 0},
		{description: "larger size", size: 6, expect: -1},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			assert.Equal(t, testCase.expect, BestFit(memory, testCase.size))
		})
	}
}

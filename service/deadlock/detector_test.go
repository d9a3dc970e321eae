package deadlock

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ossim/model"
	"github.com/viant/ossim/model/types"
)

func TestDetect(t *testing.T) {
	var testCases = []struct {
		description      string
		matrices         *model.Matrices
		expectFinished   []int
		expectDeadlocked []int
		expectSequence   []int
	}{
		{
			description:      "reference snapshot is reducible",
			matrices:         Reference(),
			expectFinished:   []int{0, 1, 2, 3, 4},
			expectDeadlocked: []int{},
			expectSequence:   []int{0, 1, 2, 3, 4},
		},
		{
			description: "circular wait",
			matrices: &model.Matrices{
				Allocation: model.Matrix{{1, 0}, {0, 1}, {0, 0}},
				Request:    model.Matrix{{0, 1}, {1, 0}, {0, 0}},
				Available:  model.Vector{0, 0},
			},
			expectFinished:   []int{2},
			expectDeadlocked: []int{0, 1},
			expectSequence:   []int{2},
		},
		{
			description: "release unblocks an earlier process on a later scan",
			matrices: &model.Matrices{
				Allocation: model.Matrix{{0, 0}, {1, 1}},
				Request:    model.Matrix{{1, 0}, {0, 0}},
				Available:  model.Vector{0, 0},
			},
			expectFinished:   []int{0, 1},
			expectDeadlocked: []int{},
			expectSequence:   []int{1, 0},
		},
		{
			description:      "empty snapshot",
			matrices:         &model.Matrices{Available: model.Vector{1}},
			expectFinished:   []int{},
			expectDeadlocked: []int{},
			expectSequence:   []int{},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			result, err := Detect(testCase.matrices)
			require.NoError(t, err)
			assert.Equal(t, testCase.expectFinished, result.Finished)
			assert.Equal(t, testCase.expectDeadlocked, result.Deadlocked)
			assert.Equal(t, testCase.expectSequence, result.Sequence)
			assert.Equal(t, len(testCase.expectDeadlocked) > 0, result.IsDeadlocked())
		})
	}
}

func TestDetect_DimensionMismatch(t *testing.T) {
	var testCases = []struct {
		description string
		matrices    *model.Matrices
	}{
		{description: "nil", matrices: nil},
		{description: "row count", matrices: &model.Matrices{Allocation: model.Matrix{{1}}, Request: model.Matrix{}, Available: model.Vector{1}}},
		{description: "column count", matrices: &model.Matrices{Allocation: model.Matrix{{1, 0}}, Request: model.Matrix{{1}}, Available: model.Vector{1, 1}}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			_, err := Detect(testCase.matrices)
			assert.True(t, errors.Is(err, types.ErrDimensionMismatch), err)
		})
	}
}

func deadlockSample() model.Processes {
	held := []model.Vector{{0, 1, 0}, {2, 0, 0}, {3, 0, 2}, {2, 1, 1}, {0, 0, 2}}
	requested := []model.Vector{{2, 0, 0}, {0, 0, 1}, {0, 0, 0}, {1, 0, 0}, {0, 0, 2}}
	ret := make(model.Processes, len(held))
	for i := range held {
		p := model.NewProcess(uint64(i+1), "P"+string(rune('1'+i)))
		p.ResourcesHeld, p.ResourcesRequested = held[i], requested[i]
		ret[i] = p
	}
	return ret
}

func TestFromProcesses(t *testing.T) {
	matrices, err := FromProcesses(deadlockSample(), model.Vector{3, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 5, matrices.Processes())
	assert.Equal(t, 3, matrices.Resources())
	assert.Equal(t, model.Vector{2, 0, 0}, matrices.Request[0])

	result, err := Detect(matrices)
	require.NoError(t, err)
	assert.Empty(t, result.Deadlocked)

	_, err = FromProcesses(deadlockSample(), model.Vector{3, 3})
	assert.True(t, errors.Is(err, types.ErrDimensionMismatch))
}

func TestDecorate(t *testing.T) {
	processes := deadlockSample()[:3]
	results := Decorate(processes, &Result{Deadlocked: []int{1}})
	require.Len(t, results, 3)
	assert.Equal(t, model.StatusSafe, results[0].Status)
	assert.Equal(t, model.StatusDeadlocked, results[1].Status)
	assert.Equal(t, model.StatusSafe, results[2].Status)
	assert.Equal(t, model.StatusReady, processes[1].Status)
}

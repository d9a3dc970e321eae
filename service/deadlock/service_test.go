package deadlock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ossim/model"
)

func circular() model.Processes {
	p1 := model.NewProcess(1, "P1")
	p1.ResourcesHeld, p1.ResourcesRequested = model.Vector{1, 0}, model.Vector{0, 1}
	p2 := model.NewProcess(2, "P2")
	p2.ResourcesHeld, p2.ResourcesRequested = model.Vector{0, 1}, model.Vector{1, 0}
	return model.Processes{p1, p2}
}

func TestService_Detection(t *testing.T) {
	var testCases = []struct {
		description      string
		input            *Input
		expectAvailable  model.Vector
		expectDeadlocked []int
	}{
		{
			description:      "reference by default",
			input:            &Input{Processes: deadlockSample()},
			expectAvailable:  model.Vector{3, 3, 2},
			expectDeadlocked: []int{},
		},
		{
			description:      "derived from processes",
			input:            &Input{Processes: circular(), Derive: true, Available: model.Vector{0, 0}},
			expectAvailable:  model.Vector{0, 0},
			expectDeadlocked: []int{0, 1},
		},
		{
			description:      "derived with reference available",
			input:            &Input{Processes: deadlockSample(), Derive: true},
			expectAvailable:  model.Vector{3, 3, 2},
			expectDeadlocked: []int{},
		},
		{
			description: "explicit matrices",
			input: &Input{Processes: deadlockSample()[:2], Matrices: &model.Matrices{
				Allocation: model.Matrix{{1}, {1}},
				Request:    model.Matrix{{1}, {0}},
				Available:  model.Vector{0},
			}},
			expectAvailable:  model.Vector{0},
			expectDeadlocked: []int{},
		},
	}

	method, err := New().Method("detection")
	require.NoError(t, err)
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			output := &Output{}
			require.NoError(t, method(context.Background(), testCase.input, output))
			assert.Equal(t, testCase.expectAvailable, output.Matrices.Available)
			assert.Equal(t, testCase.expectDeadlocked, output.Result.Deadlocked)
			assert.Len(t, output.Results, len(testCase.input.Processes))
		})
	}
}

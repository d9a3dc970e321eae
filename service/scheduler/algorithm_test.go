package scheduler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ossim/model"
	"github.com/viant/ossim/model/types"
)

type job struct {
	name     string
	arrival  int
	burst    int
	priority int
}

func processes(jobs ...job) model.Processes {
	ret := make(model.Processes, len(jobs))
	for i, s := range jobs {
		p := model.NewProcess(uint64(i+1), s.name)
		p.ArrivalTime, p.BurstTime, p.Priority = s.arrival, s.burst, s.priority
		ret[i] = p
	}
	return ret
}

func sample() model.Processes {
	return processes(
		job{"P1", 0, 6, 2},
		job{"P2", 1, 4, 1},
		job{"P3", 2, 8, 3},
		job{"P4", 3, 3, 2},
		job{"P5", 4, 5, 4},
	)
}

func trace(schedule model.Timeline) [][3]interface{} {
	var ret [][3]interface{}
	for _, s := range schedule {
		ret = append(ret, [3]interface{}{s.Process, s.Start, s.Finish})
	}
	return ret
}

func TestNonPreemptive(t *testing.T) {
	var testCases = []struct {
		description string
		run         func(model.Processes, int) (model.Timeline, model.Processes)
		expect      [][3]interface{}
	}{
		{
			description: "fcfs",
			run:         FCFS,
			expect:      [][3]interface{}{{"P1", 0, 6}, {"P2", 6, 10}, {"P3", 10, 18}, {"P4", 18, 21}, {"P5", 21, 26}},
		},
		{
			description: "sjf",
			run:         SJF,
			expect:      [][3]interface{}{{"P1", 0, 6}, {"P4", 6, 9}, {"P2", 9, 13}, {"P5", 13, 18}, {"P3", 18, 26}},
		},
		{
			description: "srtf alias",
			run:         SRTF,
			expect:      [][3]interface{}{{"P1", 0, 6}, {"P4", 6, 9}, {"P2", 9, 13}, {"P5", 13, 18}, {"P3", 18, 26}},
		},
		{
			description: "priority",
			run:         Priority,
			expect:      [][3]interface{}{{"P1", 0, 6}, {"P2", 6, 10}, {"P4", 10, 13}, {"P3", 13, 21}, {"P5", 21, 26}},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			input := sample()
			schedule, results := testCase.run(input, model.DefaultPaletteSize)
			assert.Equal(t, testCase.expect, trace(schedule))
			require.Len(t, results, len(input))
			for _, p := range results {
				assert.Equal(t, model.StatusCompleted, p.Status)
				assert.GreaterOrEqual(t, *p.StartTime, p.ArrivalTime)
				assert.Equal(t, *p.FinishTime-p.ArrivalTime, *p.TurnaroundTime)
				assert.Equal(t, *p.TurnaroundTime-p.BurstTime, *p.WaitingTime)
			}
			for _, p := range input {
				assert.Nil(t, p.StartTime, "input must not be mutated")
			}
		})
	}
}

func TestFCFS_Recurrence(t *testing.T) {
	input := processes(job{"A", 5, 2, 0}, job{"B", 0, 3, 0}, job{"C", 5, 1, 0}, job{"D", 20, 4, 0})
	schedule, results := FCFS(input, 10)
	assert.Equal(t, [][3]interface{}{{"B", 0, 3}, {"A", 5, 7}, {"C", 7, 8}, {"D", 20, 24}}, trace(schedule))
	clock := 0
	for _, p := range results {
		assert.Equal(t, max(clock, p.ArrivalTime), *p.StartTime)
		clock = *p.FinishTime
	}
}

func TestSJF_IdleGapAndTies(t *testing.T) {
	input := processes(job{"A", 3, 2, 0}, job{"B", 3, 2, 0}, job{"C", 10, 1, 0})
	schedule, _ := SJF(input, 10)
	assert.Equal(t, [][3]interface{}{{"A", 3, 5}, {"B", 5, 7}, {"C", 10, 11}}, trace(schedule))
}

func TestRoundRobin(t *testing.T) {
	t.Run("two processes", func(t *testing.T) {
		schedule, results, err := RoundRobin(processes(job{"P1", 0, 6, 0}, job{"P2", 1, 4, 0}), 3, 10)
		require.NoError(t, err)
		assert.Equal(t, [][3]interface{}{{"P1", 0, 3}, {"P2", 3, 6}, {"P1", 6, 9}, {"P2", 9, 10}}, trace(schedule))
		require.Len(t, results, 2)
		assert.Equal(t, "P1", results[0].Name)
		assert.Equal(t, 0, *results[0].StartTime)
		assert.Equal(t, 9, *results[0].FinishTime)
		assert.Equal(t, "P2", results[1].Name)
		assert.Equal(t, 3, *results[1].StartTime)
		assert.Equal(t, 10, *results[1].FinishTime)
		assert.Equal(t, 9, *results[1].TurnaroundTime)
		assert.Equal(t, 5, *results[1].WaitingTime)
	})

	t.Run("sample set", func(t *testing.T) {
		schedule, results, err := RoundRobin(sample(), 3, 10)
		require.NoError(t, err)
		assert.Equal(t, [][3]interface{}{
			{"P1", 0, 3}, {"P2", 3, 6}, {"P3", 6, 9}, {"P4", 9, 12}, {"P5", 12, 15},
			{"P1", 15, 18}, {"P2", 18, 19}, {"P3", 19, 22}, {"P5", 22, 24}, {"P3", 24, 26},
		}, trace(schedule))
		var order []string
		for _, p := range results {
			order = append(order, p.Name)
		}
		assert.Equal(t, []string{"P4", "P1", "P2", "P5", "P3"}, order)
		assert.Len(t, schedule.Of("P3"), 3)
	})

	t.Run("degenerate bursts complete", func(t *testing.T) {
		input := processes(job{"P1", 0, 0, 0}, job{"P2", 0, -2, 0}, job{"P3", 0, 4, 0})
		schedule, results, err := RoundRobin(input, 3, 10)
		var incomplete *types.IncompleteRunError
		assert.False(t, errors.As(err, &incomplete))
		require.NoError(t, err)
		assert.Equal(t, [][3]interface{}{{"P1", 0, 0}, {"P2", 0, 0}, {"P3", 0, 3}, {"P3", 3, 4}}, trace(schedule))
		require.Len(t, results, len(input))
		assert.Equal(t, 4, *results[2].FinishTime)
	})

	t.Run("invalid quantum", func(t *testing.T) {
		_, _, err := RoundRobin(sample(), 0, 10)
		var vErr *types.ValidationError
		assert.True(t, errors.As(err, &vErr))
	})
}

func TestPreemptiveSRTF(t *testing.T) {
	schedule, results := PreemptiveSRTF(processes(job{"P1", 0, 8, 0}, job{"P2", 1, 4, 0}, job{"P3", 2, 2, 0}), 10)
	assert.Equal(t, [][3]interface{}{{"P1", 0, 1}, {"P2", 1, 2}, {"P3", 2, 4}, {"P2", 4, 7}, {"P1", 7, 14}}, trace(schedule))
	require.Len(t, results, 3)
	assert.Equal(t, "P3", results[0].Name)
	assert.Equal(t, 0, *results[0].WaitingTime)
	assert.Equal(t, "P2", results[1].Name)
	assert.Equal(t, 2, *results[1].WaitingTime)
	assert.Equal(t, "P1", results[2].Name)
	assert.Equal(t, 14, *results[2].TurnaroundTime)
	assert.Equal(t, 6, *results[2].WaitingTime)
}

func TestColor(t *testing.T) {
	var jobs []job
	for i := 0; i < 12; i++ {
		jobs = append(jobs, job{name: string(rune('A' + i)), arrival: 0, burst: 1})
	}
	schedule, _ := FCFS(processes(jobs...), 10)
	assert.Equal(t, 0, schedule[0].Color)
	assert.Equal(t, 9, schedule[9].Color)
	assert.Equal(t, 0, schedule[10].Color)
	assert.Equal(t, 1, schedule[11].Color)
}

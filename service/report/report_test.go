package report

import (
	"context"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ossim/model"
)

func snapshot(at time.Time) *Snapshot {
	p1 := model.NewProcess(1, "P1")
	p1.ArrivalTime, p1.BurstTime, p1.Priority = 0, 6, 2
	p2 := model.NewProcess(2, "P2")
	p2.ResourcesHeld, p2.ResourcesRequested = model.Vector{2, 0, 0}, model.Vector{0, 0, 1}
	return &Snapshot{
		Operation: model.FCFS,
		Processes: model.Processes{p1.WithSchedule(0, 6), p2.WithStatus(model.StatusSafe)},
		Timestamp: at,
		Metrics: &model.Metrics{Scheduling: &model.SchedulingMetrics{
			AverageWaitingTime:    9,
			AverageTurnaroundTime: 14.2,
			CPUUtilization:        100,
			Throughput:            0.19,
			TotalProcesses:        5,
			TotalExecutionTime:    26,
		}},
	}
}

func assertSnapshot(t *testing.T, expect, actual *Snapshot) {
	t.Helper()
	assert.True(t, expect.Timestamp.Equal(actual.Timestamp), "timestamp %v != %v", expect.Timestamp, actual.Timestamp)
	assert.Equal(t, expect.Operation, actual.Operation)
	assert.Equal(t, expect.Processes, actual.Processes)
	assert.Equal(t, expect.Metrics, actual.Metrics)
}

func TestEncodeDecode(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 30, 0, 125000000, time.UTC)
	expect := snapshot(at)
	data, err := Encode(expect)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "operation: fcfs")
	assert.Contains(t, text, "processName: P1")
	assert.Contains(t, text, "resourcesHeld: [2, 0, 0]")
	assert.Less(t, indexOf(text, "operation:"), indexOf(text, "processes:"))
	assert.Less(t, indexOf(text, "timestamp:"), indexOf(text, "metrics:"))

	actual, err := Decode(data)
	require.NoError(t, err)
	assertSnapshot(t, expect, actual)

	_, err = Decode([]byte("operation: ["))
	assert.Error(t, err)
}

func indexOf(text, fragment string) int {
	for i := 0; i+len(fragment) <= len(text); i++ {
		if text[i:i+len(fragment)] == fragment {
			return i
		}
	}
	return -1
}

func TestName(t *testing.T) {
	assert.Equal(t, "os-analytics-report-1709289000125.yaml", Name(time.UnixMilli(1709289000125)))
}

func TestService_SaveLoad(t *testing.T) {
	ctx := context.Background()
	srv, err := New(path.Join(t.TempDir(), "reports"))
	require.NoError(t, err)

	first := snapshot(time.UnixMilli(1709289000125).UTC())
	second := snapshot(time.UnixMilli(1709289000999).UTC())
	second.Operation = model.SJF

	firstURL, err := srv.Save(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, Name(first.Timestamp), path.Base(firstURL))
	_, err = srv.Save(ctx, second)
	require.NoError(t, err)

	loaded, err := srv.Load(ctx, firstURL)
	require.NoError(t, err)
	assertSnapshot(t, first, loaded)

	byName, err := srv.Load(ctx, Name(second.Timestamp))
	require.NoError(t, err)
	assert.Equal(t, model.SJF, byName.Operation)

	listed, err := srv.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, Name(first.Timestamp), path.Base(listed[0]))
	assert.Equal(t, Name(second.Timestamp), path.Base(listed[1]))

	_, err = srv.Load(ctx, "os-analytics-report-1.yaml")
	assert.Error(t, err)
	_, err = srv.Save(ctx, nil)
	assert.Error(t, err)
}

func TestNew_EmptyURL(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestDiff(t *testing.T) {
	at := time.UnixMilli(1709289000125).UTC()
	from := snapshot(at)
	same, stats, err := Diff(from, snapshot(at), 0)
	require.NoError(t, err)
	assert.Empty(t, same)
	assert.Equal(t, DiffStats{}, stats)

	to := snapshot(at)
	to.Operation = model.RoundRobin
	patch, stats, err := Diff(from, to, 1)
	require.NoError(t, err)
	assert.Contains(t, patch, "-operation: fcfs")
	assert.Contains(t, patch, "+operation: rr")
	assert.Equal(t, DiffStats{Added: 1, Removed: 1}, stats)
}

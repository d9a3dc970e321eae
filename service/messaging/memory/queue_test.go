package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/ossim/service/messaging"
)

type runNotice struct {
	Operation string
	Processes int
}

func TestQueue(t *testing.T) {
	queue := NewQueue[runNotice](DefaultConfig())
	ctx := context.Background()
	payload := runNotice{Operation: "fcfs", Processes: 5}

	require.NoError(t, queue.Publish(ctx, &payload))
	assert.Equal(t, 1, queue.Size())

	message, err := queue.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, queue.Size())
	assert.Equal(t, payload, *message.T())

	assert.NoError(t, message.Ack())
	assert.Error(t, message.Ack())
}

func TestQueue_Full(t *testing.T) {
	config := DefaultConfig()
	config.QueueBuffer = 2
	queue := NewQueue[runNotice](config)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, queue.Publish(ctx, &runNotice{Processes: i}))
	}
	err := queue.Publish(ctx, &runNotice{Processes: 3})
	assert.True(t, errors.Is(err, messaging.ErrQueueFull))
	assert.Equal(t, 2, queue.Size())
}

func TestQueue_Retries(t *testing.T) {
	config := DefaultConfig()
	config.MaxRetries = 2
	queue := NewQueue[runNotice](config)
	ctx := context.Background()

	require.NoError(t, queue.Publish(ctx, &runNotice{Operation: "rr"}))
	for attempt := 0; attempt < 3; attempt++ {
		message, err := queue.Consume(ctx)
		require.NoError(t, err, "attempt %d", attempt)
		assert.Equal(t, "rr", message.T().Operation)
		require.NoError(t, message.Nack(errors.New("handler failed")))
	}
	assert.Equal(t, 0, queue.Size())
	assert.Equal(t, 1, queue.DLQSize())
}

func TestQueue_Concurrency(t *testing.T) {
	queue := NewQueue[runNotice](DefaultConfig())
	ctx := context.Background()
	concurrency := 10
	perProducer := 10

	var wg sync.WaitGroup
	wg.Add(concurrency * 2)
	var consumed int
	var consumedMu sync.Mutex

	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				message, err := queue.Consume(ctx)
				if err != nil {
					t.Errorf("consume: %v", err)
					return
				}
				assert.NoError(t, message.Ack())
				consumedMu.Lock()
				consumed++
				consumedMu.Unlock()
			}
		}()
	}
	for i := 0; i < concurrency; i++ {
		go func(producer int) {
			defer wg.Done()
			for j := 0; j < perProducer; j++ {
				payload := runNotice{Operation: fmt.Sprintf("p%d-%d", producer, j)}
				for {
					err := queue.Publish(ctx, &payload)
					if err == nil {
						break
					}
					time.Sleep(time.Millisecond)
				}
			}
		}(i)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("test timed out")
	}
	assert.Equal(t, concurrency*perProducer, consumed)
	assert.Equal(t, 0, queue.Size())
}

func TestQueue_ContextCancellation(t *testing.T) {
	queue := NewQueue[runNotice](DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	payload := runNotice{Operation: "sjf"}
	assert.Error(t, queue.Publish(ctx, &payload))

	timeoutCtx, cancelTimeout := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancelTimeout()
	_, err := queue.Consume(timeoutCtx)
	assert.Error(t, err)

	require.NoError(t, queue.Publish(context.Background(), &payload))
	message, err := queue.Consume(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, message)
}

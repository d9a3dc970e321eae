package event

import (
	"context"
	"errors"
	"time"

	"github.com/viant/ossim/service/messaging"
)

type Publisher[T any] struct {
	queue    messaging.Queue[Event[T]]
	anyQueue messaging.Queue[Event[any]]
}

func NewPublisher[T any](queue messaging.Queue[Event[T]]) *Publisher[T] {
	return &Publisher[T]{
		queue: queue,
	}
}

// Publish stamps the event and enqueues it. Publishers created by a Service
// also mirror the event on the untyped queue; once either queue accepted the
// event, a full queue on the other side is not an error.
func (p *Publisher[T]) Publish(ctx context.Context, event *Event[T]) error {
	event.CreatedAt = time.Now()
	if p.anyQueue == nil {
		return p.queue.Publish(ctx, event)
	}
	mirrorErr := p.anyQueue.Publish(ctx, &Event[any]{
		Context:   event.Context,
		CreatedAt: event.CreatedAt,
		Metadata:  event.Metadata,
		Data:      event.Data,
	})
	if mirrorErr != nil && !errors.Is(mirrorErr, messaging.ErrQueueFull) {
		return mirrorErr
	}
	err := p.queue.Publish(ctx, event)
	if errors.Is(err, messaging.ErrQueueFull) && mirrorErr == nil {
		return nil
	}
	return err
}

func (p *Publisher[T]) Consume(ctx context.Context) (*Event[T], error) {
	msg, err := p.queue.Consume(ctx)
	if err != nil || msg == nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}

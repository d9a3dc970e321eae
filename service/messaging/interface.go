package messaging

import (
	"context"
	"errors"
)

// ErrQueueFull is returned by bounded queues that cannot accept a message.
var ErrQueueFull = errors.New("queue is full")

// Vendor represents the name of a messaging vendor
type Vendor string

// Queue represents an abstract message queue for any payload type
type Queue[T any] interface {
	// Publish adds a new message with payload to the queue
	Publish(ctx context.Context, t *T) error

	// Consume blocks until a message is available or ctx is done
	Consume(ctx context.Context) (Message[T], error)
}

// Message represents a message retrieved from a queue
type Message[T any] interface {
	// T returns the payload of this message
	T() *T

	// Ack acknowledges successful processing of this message
	Ack() error

	// Nack indicates failure in processing this message
	Nack(err error) error
}

package event

import (
	"context"

	"github.com/viant/fluxreg/service/messaging"
)

type Publisher[T any] struct {
	queue messaging.Queue[Event[T]]
}

func NewPublisher[T any](queue messaging.Queue[Event[T]]) *Publisher[T] {
	return &Publisher[T]{queue: queue}
}

func (p *Publisher[T]) Publish(ctx context.Context, event *Event[T]) error {
	return p.queue.Publish(ctx, event)
}

// Next returns the next unacknowledged event message, the caller must Ack or Nack it
func (p *Publisher[T]) Next(ctx context.Context) (messaging.Message[Event[T]], error) {
	return p.queue.Consume(ctx)
}

// Consume returns the next event, the underlying message is acknowledged
func (p *Publisher[T]) Consume(ctx context.Context) (*Event[T], error) {
	msg, err := p.Next(ctx)
	if err != nil || msg == nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}

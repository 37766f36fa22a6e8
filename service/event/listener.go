package event

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultErrorDelay is the pause after a failed consume before the next attempt
const DefaultErrorDelay = 100 * time.Millisecond

// Handler processes an event; an error negatively acknowledges the message so
// that the queue can redeliver it
type Handler[T any] func(ctx context.Context, event *Event[T]) error

// Listener dispatches consumed events to a handler until stopped
type Listener[T any] struct {
	publisher  *Publisher[T]
	handler    Handler[T]
	errorDelay time.Duration
	cancel     context.CancelFunc
	done       chan struct{}
	mux        sync.Mutex
}

func NewListener[T any](publisher *Publisher[T], handler Handler[T]) *Listener[T] {
	return &Listener[T]{
		publisher:  publisher,
		handler:    handler,
		errorDelay: DefaultErrorDelay,
	}
}

// Start starts consuming in a background goroutine; calling Start twice has no effect
func (l *Listener[T]) Start(ctx context.Context) {
	l.mux.Lock()
	defer l.mux.Unlock()
	if l.cancel != nil {
		return
	}
	ctx, l.cancel = context.WithCancel(ctx)
	l.done = make(chan struct{})
	go l.run(ctx, l.done)
}

// Stop stops consuming and waits for the running handler to return
func (l *Listener[T]) Stop() {
	l.mux.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.mux.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (l *Listener[T]) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	for {
		msg, err := l.publisher.Next(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("failed to consume event")
			select {
			case <-ctx.Done():
				return
			case <-time.After(l.errorDelay):
			}
			continue
		}
		if msg == nil {
			continue
		}
		if err = l.handler(ctx, msg.T()); err != nil {
			log.Warn().Err(err).Str("type", string(msg.T().Type)).Msg("event handler failed")
			err = msg.Nack(err)
		} else {
			err = msg.Ack()
		}
		if err != nil {
			log.Error().Err(err).Msg("failed to acknowledge event")
		}
	}
}

// Package event publishes typed registry notifications over a messaging queue.
package event

import (
	"time"

	"github.com/viant/fluxreg/internal/clock"
)

// Type identifies a notification kind
type Type string

const (
	// TypeReloaded is emitted after a definition set was installed
	TypeReloaded Type = "reloaded"
)

// Event wraps a notification payload
type Event[T any] struct {
	Type      Type                   `json:"type"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Data      T                      `json:"data"`
}

func NewEvent[T any](eventType Type, data T) *Event[T] {
	return &Event[T]{
		Type:      eventType,
		CreatedAt: clock.Now(),
		Metadata:  make(map[string]interface{}),
		Data:      data,
	}
}

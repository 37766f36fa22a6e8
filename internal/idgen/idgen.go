package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// NewFunc produces identifiers, replace it in tests.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new globally unique identifier.
func New() string { return NewFunc() }

// Sequential switches New to "<prefix>-1", "<prefix>-2", ... until restore is called.
func Sequential(prefix string) (restore func()) {
	previous := NewFunc
	var counter int32
	NewFunc = func() string {
		return fmt.Sprintf("%s-%d", prefix, atomic.AddInt32(&counter, 1))
	}
	return func() { NewFunc = previous }
}

package fluxreg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/viant/fluxreg/service/group"
	"github.com/viant/fluxreg/service/validator"
)

var (
	// ErrNotLoaded is returned when the registry holds no definition set yet
	ErrNotLoaded = errors.New("workflow definitions not loaded")

	// ErrWorkflowNotFound is returned for an id absent from the held set
	ErrWorkflowNotFound = errors.New("workflow not found")
)

// LoadError aggregates groups and definitions rejected by a strict reload
type LoadError struct {
	Groups     []*group.Rejection
	Rejections []*validator.Rejection
}

func (e *LoadError) Error() string {
	messages := make([]string, 0, len(e.Groups)+len(e.Rejections))
	for _, rejection := range e.Groups {
		messages = append(messages, "group "+rejection.ID+": "+rejection.Error())
	}
	for _, rejection := range e.Rejections {
		messages = append(messages, rejection.Error())
	}
	if len(e.Groups) == 0 {
		return fmt.Sprintf("%d workflow definition(s) rejected: %s", len(e.Rejections), strings.Join(messages, "; "))
	}
	return fmt.Sprintf("%d workflow group(s) and %d workflow definition(s) rejected: %s", len(e.Groups), len(e.Rejections), strings.Join(messages, "; "))
}

// Unwrap exposes every rejection to errors.Is and errors.As
func (e *LoadError) Unwrap() []error {
	result := make([]error, 0, len(e.Groups)+len(e.Rejections))
	for _, rejection := range e.Groups {
		result = append(result, rejection)
	}
	for _, rejection := range e.Rejections {
		result = append(result, rejection)
	}
	return result
}

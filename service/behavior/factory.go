package behavior

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/viant/fluxreg/model"
)

// ErrUnknownClass is returned when no constructor is registered for a workflow class
var ErrUnknownClass = errors.New("unknown workflow class")

// Constructor creates a behaviour for a definition and its resolved group
type Constructor func(definition *model.Workflow, group *model.Group) (Behavior, error)

// Factory maps workflow classes to constructors
type Factory struct {
	constructors map[string]Constructor
	mux          sync.RWMutex
}

// Register registers a constructor for a workflow class, replacing any previous one.
// A zero Factory has no classes registered.
func (f *Factory) Register(class string, constructor Constructor) {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.constructors == nil {
		f.constructors = map[string]Constructor{}
	}
	f.constructors[class] = constructor
}

// Lookup returns a constructor by class
func (f *Factory) Lookup(class string) (Constructor, bool) {
	f.mux.RLock()
	defer f.mux.RUnlock()
	ret, ok := f.constructors[class]
	return ret, ok
}

// Classes returns registered classes, sorted
func (f *Factory) Classes() []string {
	f.mux.RLock()
	defer f.mux.RUnlock()
	result := make([]string, 0, len(f.constructors))
	for class := range f.constructors {
		result = append(result, class)
	}
	sort.Strings(result)
	return result
}

// Create instantiates the behaviour declared by the group workflow class
func (f *Factory) Create(definition *model.Workflow, group *model.Group) (Behavior, error) {
	if definition == nil {
		return nil, fmt.Errorf("definition was nil")
	}
	if group == nil {
		return nil, fmt.Errorf("workflow %s: group %s was not resolved", definition.ID, definition.Group)
	}
	class := group.WorkflowClass
	if class == "" {
		class = model.DefaultWorkflowClass
	}
	constructor, ok := f.Lookup(class)
	if !ok {
		return nil, fmt.Errorf("workflow %s: %w: %s", definition.ID, ErrUnknownClass, class)
	}
	ret, err := constructor(definition, group)
	if err != nil {
		return nil, fmt.Errorf("failed to create workflow %s: %w", definition.ID, err)
	}
	return ret, nil
}

// NewFactory creates a factory with the baseline workflow class registered
func NewFactory() *Factory {
	ret := &Factory{constructors: map[string]Constructor{}}
	ret.Register(model.DefaultWorkflowClass, func(definition *model.Workflow, group *model.Group) (Behavior, error) {
		return NewWorkflow(definition, group), nil
	})
	return ret
}

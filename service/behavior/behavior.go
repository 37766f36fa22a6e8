// Package behavior turns accepted workflow definitions into behaviour
// instances selected by the workflow class of their group.
package behavior

import (
	"github.com/viant/fluxreg/model"
)

// Behavior represents a workflow instance bound to one definition
type Behavior interface {
	ID() string
	Label() string
	Definition() *model.Workflow
	Group() *model.Group
	States() []*model.State
	Transitions() []*model.Transition
	Transition(id string) (*model.Transition, bool)
	// PossibleTransitions returns transitions leaving stateID
	PossibleTransitions(stateID string) []*model.Transition
	CanTransition(fromStateID, transitionID string) bool
}

// Workflow is the baseline behaviour
type Workflow struct {
	definition *model.Workflow
	group      *model.Group
}

func (w *Workflow) ID() string {
	return w.definition.ID
}

func (w *Workflow) Label() string {
	return w.definition.Label
}

func (w *Workflow) Definition() *model.Workflow {
	return w.definition
}

func (w *Workflow) Group() *model.Group {
	return w.group
}

// States returns states in declaration order
func (w *Workflow) States() []*model.State {
	ids := w.definition.StateIDs()
	result := make([]*model.State, 0, len(ids))
	for _, id := range ids {
		result = append(result, w.definition.State(id))
	}
	return result
}

// Transitions returns transitions in declaration order
func (w *Workflow) Transitions() []*model.Transition {
	ids := w.definition.TransitionIDs()
	result := make([]*model.Transition, 0, len(ids))
	for _, id := range ids {
		result = append(result, w.definition.Transition(id))
	}
	return result
}

func (w *Workflow) Transition(id string) (*model.Transition, bool) {
	ret := w.definition.Transition(id)
	return ret, ret != nil
}

func (w *Workflow) PossibleTransitions(stateID string) []*model.Transition {
	return w.definition.TransitionsFrom(stateID)
}

func (w *Workflow) CanTransition(fromStateID, transitionID string) bool {
	transition, ok := w.Transition(transitionID)
	return ok && transition.From == fromStateID
}

// NewWorkflow creates a baseline behaviour, the definition is cloned
func NewWorkflow(definition *model.Workflow, group *model.Group) Behavior {
	return &Workflow{definition: definition.Clone(), group: group}
}

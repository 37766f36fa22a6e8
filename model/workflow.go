package model

// Workflow represents an accepted workflow definition
type Workflow struct {
	// ID is the unique identifier for the workflow, supplied by discovery
	ID string `json:"id" yaml:"id"`

	// Label is a human-readable name
	Label string `json:"label" yaml:"label"`

	// Group is the id of the owning workflow group
	Group string `json:"group" yaml:"group"`

	States      map[string]*State      `json:"states" yaml:"states"`
	Transitions map[string]*Transition `json:"transitions" yaml:"transitions"`

	stateIDs      []string
	transitionIDs []string
}

// State represents a named point in a workflow state space
type State struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Transition represents a named, directed edge between two states
type Transition struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
}

// IsSelfLoop returns true if transition starts and ends in the same state
func (t *Transition) IsSelfLoop() bool {
	return t.From == t.To
}

// NewWorkflow creates a workflow; states and transitions keep the supplied order
func NewWorkflow(id, label, group string, states []*State, transitions []*Transition) *Workflow {
	ret := &Workflow{
		ID:            id,
		Label:         label,
		Group:         group,
		States:        make(map[string]*State, len(states)),
		Transitions:   make(map[string]*Transition, len(transitions)),
		stateIDs:      make([]string, 0, len(states)),
		transitionIDs: make([]string, 0, len(transitions)),
	}
	for _, state := range states {
		if _, ok := ret.States[state.ID]; !ok {
			ret.stateIDs = append(ret.stateIDs, state.ID)
		}
		ret.States[state.ID] = state
	}
	for _, transition := range transitions {
		if _, ok := ret.Transitions[transition.ID]; !ok {
			ret.transitionIDs = append(ret.transitionIDs, transition.ID)
		}
		ret.Transitions[transition.ID] = transition
	}
	return ret
}

// StateIDs returns state ids in declaration order
func (w *Workflow) StateIDs() []string {
	return append([]string(nil), w.stateIDs...)
}

// TransitionIDs returns transition ids in declaration order
func (w *Workflow) TransitionIDs() []string {
	return append([]string(nil), w.transitionIDs...)
}

// State returns a state by id or nil
func (w *Workflow) State(id string) *State {
	return w.States[id]
}

// Transition returns a transition by id or nil
func (w *Workflow) Transition(id string) *Transition {
	return w.Transitions[id]
}

// HasState returns true if state was declared
func (w *Workflow) HasState(id string) bool {
	_, ok := w.States[id]
	return ok
}

// TransitionsFrom returns transitions leaving the given state, in declaration order
func (w *Workflow) TransitionsFrom(stateID string) []*Transition {
	var result []*Transition
	for _, id := range w.transitionIDs {
		if transition := w.Transitions[id]; transition.From == stateID {
			result = append(result, transition)
		}
	}
	return result
}

// Clone creates a deep copy of the workflow
func (w *Workflow) Clone() *Workflow {
	if w == nil {
		return nil
	}
	states := make([]*State, 0, len(w.stateIDs))
	for _, id := range w.stateIDs {
		state := *w.States[id]
		states = append(states, &state)
	}
	transitions := make([]*Transition, 0, len(w.transitionIDs))
	for _, id := range w.transitionIDs {
		transition := *w.Transitions[id]
		transitions = append(transitions, &transition)
	}
	return NewWorkflow(w.ID, w.Label, w.Group, states, transitions)
}

package model

import (
	"errors"
	"fmt"
)

// ErrInvalidDefinition is wrapped by every definition validation error.
var ErrInvalidDefinition = errors.New("invalid workflow definition")

// MissingRequiredFieldError reports an absent or empty required field.
// Owner is the workflow, transition or group id the field belongs to.
type MissingRequiredFieldError struct {
	Field string
	Owner string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("%s must define the %s property", e.Owner, e.Field)
}

func (e *MissingRequiredFieldError) Unwrap() error { return ErrInvalidDefinition }

// UnknownGroupError reports a group that does not exist in the catalog
type UnknownGroupError struct {
	GroupID      string
	DefinitionID string
}

func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("workflow %s references unknown group %s", e.DefinitionID, e.GroupID)
}

func (e *UnknownGroupError) Unwrap() error { return ErrInvalidDefinition }

// MissingStateLabelError reports a state without a label
type MissingStateLabelError struct {
	StateID      string
	DefinitionID string
}

func (e *MissingStateLabelError) Error() string {
	return fmt.Sprintf("workflow %s state %s must define the label property", e.DefinitionID, e.StateID)
}

func (e *MissingStateLabelError) Unwrap() error { return ErrInvalidDefinition }

// InvalidStateReferenceError reports a transition endpoint that is not a declared state
type InvalidStateReferenceError struct {
	TransitionID string
	Property     string
	StateID      string
}

func (e *InvalidStateReferenceError) Error() string {
	return fmt.Sprintf("transition %s specified an invalid %s property: %s", e.TransitionID, e.Property, e.StateID)
}

func (e *InvalidStateReferenceError) Unwrap() error { return ErrInvalidDefinition }

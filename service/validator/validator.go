// Package validator turns raw workflow candidates into accepted definitions.
//
// A candidate is a loosely typed, ordered field mapping as supplied by
// discovery. Required-field checks follow "falsy" semantics: an absent key,
// nil, an empty string, "0", zero numbers, false and empty mappings all
// count as missing.
package validator

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/viant/fluxreg/model"
	"github.com/viant/fluxreg/service/dao"
	"github.com/viant/fluxreg/tracing"
)

const (
	fieldLabel       = "label"
	fieldGroup       = "group"
	fieldStates      = "states"
	fieldTransitions = "transitions"
	fieldFrom        = "from"
	fieldTo          = "to"
)

// GroupResolver resolves group ids, unknown ids return an error wrapping dao.ErrNotFound
type GroupResolver interface {
	Resolve(groupID string) (*model.Group, error)
}

// Service validates workflow candidates against a group catalog
type Service struct {
	groups GroupResolver
}

// Rejection describes a candidate that failed validation
type Rejection struct {
	ID  string
	Err error
}

func (r *Rejection) Error() string {
	return r.Err.Error()
}

func (r *Rejection) Unwrap() error {
	return r.Err
}

// Validate checks a candidate and returns an accepted workflow definition.
// The id is supplied by the caller, never read from the candidate.
func (s *Service) Validate(id string, candidate *model.Fields) (*model.Workflow, error) {
	for _, field := range []string{fieldLabel, fieldGroup, fieldStates, fieldTransitions} {
		value, _ := candidate.Get(field)
		if isEmpty(value) {
			return nil, &model.MissingRequiredFieldError{Field: field, Owner: id}
		}
	}
	label, _ := text(candidate, fieldLabel)
	groupID, ok := text(candidate, fieldGroup)
	if !ok {
		return nil, &model.MissingRequiredFieldError{Field: fieldGroup, Owner: id}
	}
	if _, err := s.groups.Resolve(groupID); err != nil {
		if errors.Is(err, dao.ErrNotFound) || errors.Is(err, dao.ErrInvalidID) {
			return nil, &model.UnknownGroupError{GroupID: groupID, DefinitionID: id}
		}
		return nil, fmt.Errorf("failed to resolve group %s of workflow %s: %w", groupID, id, err)
	}
	states, err := s.states(id, candidate)
	if err != nil {
		return nil, err
	}
	transitions, err := s.transitions(id, candidate, states)
	if err != nil {
		return nil, err
	}
	return model.NewWorkflow(id, label, groupID, states, transitions), nil
}

func (s *Service) states(id string, candidate *model.Fields) ([]*model.State, error) {
	value, _ := candidate.Get(fieldStates)
	entries, ok := mapping(value)
	if !ok {
		return nil, &model.MissingRequiredFieldError{Field: fieldStates, Owner: id}
	}
	var result []*model.State
	var err error
	entries.Range(func(stateID string, value interface{}) bool {
		stateFields, _ := mapping(value)
		label, ok := text(stateFields, fieldLabel)
		if !ok {
			err = &model.MissingStateLabelError{StateID: stateID, DefinitionID: id}
			return false
		}
		result = append(result, &model.State{ID: stateID, Label: label})
		return true
	})
	return result, err
}

func (s *Service) transitions(id string, candidate *model.Fields, states []*model.State) ([]*model.Transition, error) {
	value, _ := candidate.Get(fieldTransitions)
	entries, ok := mapping(value)
	if !ok {
		return nil, &model.MissingRequiredFieldError{Field: fieldTransitions, Owner: id}
	}
	declared := make(map[string]bool, len(states))
	for _, state := range states {
		declared[state.ID] = true
	}
	var result []*model.Transition
	var err error
	entries.Range(func(transitionID string, value interface{}) bool {
		transitionFields, _ := mapping(value)
		values := map[string]string{}
		for _, field := range []string{fieldLabel, fieldFrom, fieldTo} {
			fieldValue, ok := text(transitionFields, field)
			if !ok {
				err = &model.MissingRequiredFieldError{Field: field, Owner: transitionID}
				return false
			}
			values[field] = fieldValue
		}
		for _, property := range []string{fieldFrom, fieldTo} {
			if stateID := values[property]; !declared[stateID] {
				err = &model.InvalidStateReferenceError{TransitionID: transitionID, Property: property, StateID: stateID}
				return false
			}
		}
		result = append(result, &model.Transition{
			ID:    transitionID,
			Label: values[fieldLabel],
			From:  values[fieldFrom],
			To:    values[fieldTo],
		})
		return true
	})
	return result, err
}

// ValidateAll validates candidates keyed by workflow id. Accepted definitions
// keep the candidate order; every failing candidate yields one Rejection.
func (s *Service) ValidateAll(ctx context.Context, candidates *model.Fields) ([]*model.Workflow, []*Rejection) {
	_, span := tracing.StartSpan(ctx, "fluxreg.validate", "INTERNAL")
	var accepted []*model.Workflow
	var rejected []*Rejection
	candidates.Range(func(id string, value interface{}) bool {
		candidate, ok := mapping(value)
		if !ok {
			rejected = append(rejected, &Rejection{ID: id, Err: &model.MissingRequiredFieldError{Field: fieldLabel, Owner: id}})
			return true
		}
		workflow, err := s.Validate(id, candidate)
		if err != nil {
			log.Debug().Str("workflow", id).Err(err).Msg("workflow definition rejected")
			rejected = append(rejected, &Rejection{ID: id, Err: err})
			return true
		}
		accepted = append(accepted, workflow)
		return true
	})
	span.WithAttributes(map[string]string{
		"accepted": strconv.Itoa(len(accepted)),
		"rejected": strconv.Itoa(len(rejected)),
	})
	tracing.EndSpan(span, nil)
	return accepted, rejected
}

// New creates a validator resolving groups with the supplied resolver
func New(groups GroupResolver) *Service {
	return &Service{groups: groups}
}

// mapping returns value as ordered fields; unordered maps are walked in key order
func mapping(value interface{}) (*model.Fields, bool) {
	switch actual := model.AsFields(value).(type) {
	case *model.Fields:
		return actual, actual != nil
	}
	return nil, false
}

// text returns a non-empty textual field value
func text(fields *model.Fields, key string) (string, bool) {
	value, _ := fields.Get(key)
	if isEmpty(value) {
		return "", false
	}
	return model.Text(value)
}

func isEmpty(value interface{}) bool {
	switch actual := value.(type) {
	case nil:
		return true
	case string:
		return actual == "" || actual == "0"
	case bool:
		return !actual
	case int:
		return actual == 0
	case int64:
		return actual == 0
	case uint64:
		return actual == 0
	case float64:
		return actual == 0
	case *model.Fields:
		return actual.Len() == 0
	case model.Fields:
		return actual.Len() == 0
	case map[string]interface{}:
		return len(actual) == 0
	case map[string]string:
		return len(actual) == 0
	case []interface{}:
		return len(actual) == 0
	case []string:
		return len(actual) == 0
	}
	return false
}

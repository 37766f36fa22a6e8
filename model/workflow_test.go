package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWorkflow(t *testing.T) {
	workflow := NewWorkflow("order_default", "Default", "order",
		[]*State{{ID: "draft", Label: "Draft"}, {ID: "completed", Label: "Completed"}, {ID: "canceled", Label: "Canceled"}},
		[]*Transition{
			{ID: "place", Label: "Place order", From: "draft", To: "completed"},
			{ID: "cancel", Label: "Cancel order", From: "draft", To: "canceled"},
			{ID: "touch", Label: "Touch", From: "draft", To: "draft"},
		})

	assert.Equal(t, []string{"draft", "completed", "canceled"}, workflow.StateIDs())
	assert.Equal(t, []string{"place", "cancel", "touch"}, workflow.TransitionIDs())
	assert.True(t, workflow.HasState("canceled"))
	assert.False(t, workflow.HasState("shipped"))
	assert.Equal(t, "Place order", workflow.Transition("place").Label)
	assert.Nil(t, workflow.Transition("ship"))
	assert.True(t, workflow.Transition("touch").IsSelfLoop())

	leaving := workflow.TransitionsFrom("draft")
	if assert.Len(t, leaving, 3) {
		assert.Equal(t, "place", leaving[0].ID)
		assert.Equal(t, "cancel", leaving[1].ID)
		assert.Equal(t, "touch", leaving[2].ID)
	}
	assert.Empty(t, workflow.TransitionsFrom("completed"))
}

func TestWorkflow_Clone(t *testing.T) {
	workflow := NewWorkflow("wf", "Workflow", "group",
		[]*State{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}},
		[]*Transition{{ID: "go", Label: "Go", From: "a", To: "b"}})

	clone := workflow.Clone()
	assert.Equal(t, workflow, clone)

	clone.States["a"].Label = "changed"
	assert.Equal(t, "A", workflow.States["a"].Label)
	assert.Nil(t, (*Workflow)(nil).Clone())
}

func TestWorkflow_JSON(t *testing.T) {
	workflow := NewWorkflow("wf", "Workflow", "group",
		[]*State{{ID: "a", Label: "A"}},
		[]*Transition{{ID: "loop", Label: "Loop", From: "a", To: "a"}})
	data, err := json.Marshal(workflow)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":"wf","label":"Workflow","group":"group",
		"states":{"a":{"id":"a","label":"A"}},
		"transitions":{"loop":{"id":"loop","label":"Loop","from":"a","to":"a"}}}`, string(data))
}

func TestFields(t *testing.T) {
	fields := (&Fields{}).Put("label", "Order").Put("group", "order").Put("label", "Order v2")
	assert.Equal(t, []string{"label", "group"}, fields.Keys())
	value, ok := fields.Get("label")
	assert.True(t, ok)
	assert.Equal(t, "Order v2", value)
	assert.False(t, fields.Has("states"))
	assert.Equal(t, 2, fields.Len())

	var nilFields *Fields
	assert.Equal(t, 0, nilFields.Len())
	assert.Nil(t, nilFields.Keys())
	_, ok = nilFields.Get("label")
	assert.False(t, ok)
}

func TestNewFields(t *testing.T) {
	fields := NewFields(map[string]interface{}{
		"transitions": map[string]interface{}{"b": 1, "a": 2},
		"label":       "Order",
		"group":       "order",
	})
	assert.Equal(t, []string{"group", "label", "transitions"}, fields.Keys())
	nested, _ := fields.Get("transitions")
	if assert.IsType(t, &Fields{}, nested) {
		assert.Equal(t, []string{"a", "b"}, nested.(*Fields).Keys())
	}
	assert.Equal(t, map[string]interface{}{
		"transitions": map[string]interface{}{"b": 1, "a": 2},
		"label":       "Order",
		"group":       "order",
	}, fields.Map())
}

func TestGroup_Default(t *testing.T) {
	assert.Equal(t, DefaultWorkflowClass, NewGroup("order", "Order", "commerce_order", "").WorkflowClass)
	assert.Equal(t, "custom", NewGroup("order", "Order", "commerce_order", "custom").WorkflowClass)
}

func TestValidationErrors(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		expect string
	}{
		{name: "missing field", err: &MissingRequiredFieldError{Field: "label", Owner: "order"}, expect: "order must define the label property"},
		{name: "unknown group", err: &UnknownGroupError{GroupID: "x", DefinitionID: "order"}, expect: "workflow order references unknown group x"},
		{name: "missing state label", err: &MissingStateLabelError{StateID: "new", DefinitionID: "order"}, expect: "workflow order state new must define the label property"},
		{name: "invalid reference", err: &InvalidStateReferenceError{TransitionID: "fulfill", Property: "to", StateID: "shipped"}, expect: "transition fulfill specified an invalid to property: shipped"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualError(t, tc.err, tc.expect)
			assert.ErrorIs(t, tc.err, ErrInvalidDefinition)
		})
	}
}

package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/fluxreg/model"
	"github.com/viant/fluxreg/service/dao"
)

func TestCatalog_Resolve(t *testing.T) {
	catalog, err := New(
		model.NewGroup("fulfillment", "Fulfillment", "commerce_order", ""),
		&model.Group{ID: "payment", Label: "Payment", EntityType: "commerce_payment"},
	)
	assert.NoError(t, err)

	group, err := catalog.Resolve("fulfillment")
	assert.NoError(t, err)
	assert.Equal(t, "Fulfillment", group.Label)
	assert.Equal(t, model.DefaultWorkflowClass, group.WorkflowClass)

	group, err = catalog.Resolve("payment")
	assert.NoError(t, err)
	assert.Equal(t, model.DefaultWorkflowClass, group.WorkflowClass)

	_, err = catalog.Resolve("shipping")
	assert.ErrorIs(t, err, dao.ErrNotFound)
	_, err = catalog.Resolve("")
	assert.ErrorIs(t, err, dao.ErrInvalidID)
	assert.True(t, catalog.Has("payment"))
	assert.False(t, catalog.Has("shipping"))
	assert.Equal(t, 2, catalog.Len())
}

func TestCatalog_List(t *testing.T) {
	catalog, err := New(
		model.NewGroup("order", "Order", "commerce_order", ""),
		model.NewGroup("payment", "Payment", "commerce_payment", ""),
		model.NewGroup("order_item", "Order item", "commerce_order", ""),
	)
	assert.NoError(t, err)

	var ids []string
	for _, group := range catalog.List() {
		ids = append(ids, group.ID)
	}
	assert.Equal(t, []string{"order", "payment", "order_item"}, ids)

	ids = nil
	for _, group := range catalog.List(dao.NewParameter("EntityType", "commerce_order")) {
		ids = append(ids, group.ID)
	}
	assert.Equal(t, []string{"order", "order_item"}, ids)
}

func TestNew_Duplicate(t *testing.T) {
	_, err := New(model.NewGroup("order", "Order", "", ""), model.NewGroup("order", "Order 2", "", ""))
	assert.ErrorIs(t, err, dao.ErrDuplicateID)
	_, err = New(model.NewGroup("", "Empty", "", ""))
	assert.ErrorIs(t, err, dao.ErrInvalidID)
}

func TestFromCandidates(t *testing.T) {
	testCases := []struct {
		name        string
		candidates  *model.Fields
		expect      []*model.Group
		expectedErr error
	}{
		{
			name: "valid",
			candidates: (&model.Fields{}).
				Put("order", map[string]interface{}{"label": "Order", "entity_type": "commerce_order"}).
				Put("custom", (&model.Fields{}).Put("label", "Custom").Put("workflow_class", "state_machine")),
			expect: []*model.Group{
				{ID: "order", Label: "Order", EntityType: "commerce_order", WorkflowClass: model.DefaultWorkflowClass},
				{ID: "custom", Label: "Custom", WorkflowClass: "state_machine"},
			},
		},
		{
			name:        "missing label",
			candidates:  (&model.Fields{}).Put("order", map[string]interface{}{"entity_type": "commerce_order"}),
			expectedErr: &model.MissingRequiredFieldError{Field: "label", Owner: "order"},
		},
		{
			name:       "scalar label",
			candidates: (&model.Fields{}).Put("2024", map[string]interface{}{"label": 2024, "entity_type": "commerce_order"}),
			expect: []*model.Group{
				{ID: "2024", Label: "2024", EntityType: "commerce_order", WorkflowClass: model.DefaultWorkflowClass},
			},
		},
		{
			name:        "not a mapping",
			candidates:  (&model.Fields{}).Put("order", "Order"),
			expectedErr: &model.MissingRequiredFieldError{Field: "label", Owner: "order"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			catalog, err := FromCandidates(tc.candidates)
			if tc.expectedErr != nil {
				assert.Equal(t, tc.expectedErr, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, catalog.List())
		})
	}
}

func TestDecode(t *testing.T) {
	candidates := (&model.Fields{}).
		Put("order", map[string]interface{}{"label": "Order", "entity_type": "commerce_order"}).
		Put("unlabeled", map[string]interface{}{"entity_type": "commerce_order"}).
		Put("payment", map[string]interface{}{"label": "Payment"}).
		Put("", map[string]interface{}{"label": "Nameless"})

	catalog, rejections := Decode(candidates)
	assert.Equal(t, 2, catalog.Len())
	assert.True(t, catalog.Has("order"))
	assert.True(t, catalog.Has("payment"))
	assert.False(t, catalog.Has("unlabeled"))

	if assert.Len(t, rejections, 2) {
		assert.Equal(t, "unlabeled", rejections[0].ID)
		var missing *model.MissingRequiredFieldError
		assert.ErrorAs(t, rejections[0], &missing)
		assert.Equal(t, "label", missing.Field)
		assert.Equal(t, "", rejections[1].ID)
		assert.ErrorIs(t, rejections[1], dao.ErrInvalidID)
	}
}

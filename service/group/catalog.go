// Package group holds the read-only catalog of workflow groups.
package group

import (
	"context"
	"fmt"

	"github.com/viant/fluxreg/model"
	"github.com/viant/fluxreg/service/dao"
	"github.com/viant/fluxreg/service/dao/criteria"
	"github.com/viant/fluxreg/service/dao/store"
)

// Catalog resolves group ids to groups. It is populated once at load time.
type Catalog struct {
	groups *store.MemoryStore[string, model.Group]
}

// Resolve returns a group by id, unknown ids return an error wrapping dao.ErrNotFound
func (c *Catalog) Resolve(groupID string) (*model.Group, error) {
	if groupID == "" {
		return nil, fmt.Errorf("failed to resolve group: %w", dao.ErrInvalidID)
	}
	ret, err := c.groups.Load(context.Background(), groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve group %s: %w", groupID, err)
	}
	return ret, nil
}

// Has returns true if group exists
func (c *Catalog) Has(groupID string) bool {
	_, err := c.groups.Load(context.Background(), groupID)
	return err == nil
}

// List returns groups in load order, optionally filtered by EntityType parameter
func (c *Catalog) List(parameters ...*dao.Parameter) []*model.Group {
	ret, _ := c.groups.List(context.Background(), parameters...)
	return ret
}

// Len returns number of groups
func (c *Catalog) Len() int {
	return c.groups.Len()
}

// New creates a catalog, group ids must be non-empty and unique
func New(groups ...*model.Group) (*Catalog, error) {
	ret := &Catalog{
		groups: store.NewMemoryStore[string, model.Group](func(g *model.Group) string { return g.ID }).
			WithMatcher(func(g *model.Group, parameters []*dao.Parameter) bool {
				return criteria.Match("EntityType", g.EntityType, parameters)
			}),
	}
	for _, group := range groups {
		if group == nil {
			continue
		}
		if group.WorkflowClass == "" {
			group = model.NewGroup(group.ID, group.Label, group.EntityType, "")
		}
		if err := ret.groups.Insert(context.Background(), group); err != nil {
			return nil, fmt.Errorf("failed to register group %q: %w", group.ID, err)
		}
	}
	return ret, nil
}

// Rejection describes a group candidate that could not be decoded
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

// Decode creates a catalog from raw group candidates keyed by group id, each
// holding label, entity_type and workflow_class. Invalid candidates are
// skipped and returned as rejections.
func Decode(candidates *model.Fields) (*Catalog, []*Rejection) {
	ret, _ := New()
	var rejections []*Rejection
	candidates.Range(func(id string, value interface{}) bool {
		group, err := decode(id, value)
		if err == nil {
			err = ret.groups.Insert(context.Background(), group)
		}
		if err != nil {
			rejections = append(rejections, &Rejection{ID: id, Err: err})
		}
		return true
	})
	return ret, rejections
}

// FromCandidates creates a catalog from raw group candidates, failing on the
// first invalid one
func FromCandidates(candidates *model.Fields) (*Catalog, error) {
	ret, rejections := Decode(candidates)
	if len(rejections) > 0 {
		return nil, rejections[0].Err
	}
	return ret, nil
}

func decode(id string, value interface{}) (*model.Group, error) {
	if id == "" {
		return nil, fmt.Errorf("failed to decode group: %w", dao.ErrInvalidID)
	}
	fields, _ := model.AsFields(value).(*model.Fields)
	label := text(fields, "label")
	if label == "" {
		return nil, &model.MissingRequiredFieldError{Field: "label", Owner: id}
	}
	return model.NewGroup(id, label, text(fields, "entity_type"), text(fields, "workflow_class")), nil
}

func text(fields *model.Fields, key string) string {
	value, _ := fields.Get(key)
	ret, _ := model.Text(value)
	return ret
}

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/fluxreg/service/dao"
	"github.com/viant/fluxreg/service/dao/criteria"
)

type record struct {
	ID   string
	Kind string
}

func newStore() *MemoryStore[string, record] {
	return NewMemoryStore[string, record](func(r *record) string { return r.ID }).
		WithMatcher(func(r *record, parameters []*dao.Parameter) bool {
			return criteria.Match("Kind", r.Kind, parameters)
		})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := newStore()

	assert.NoError(t, s.Save(ctx, &record{ID: "b", Kind: "x"}))
	assert.NoError(t, s.Save(ctx, &record{ID: "a", Kind: "y"}))
	assert.NoError(t, s.Save(ctx, &record{ID: "b", Kind: "z"}))
	assert.ErrorIs(t, s.Save(ctx, nil), dao.ErrNilEntity)
	assert.ErrorIs(t, s.Save(ctx, &record{}), dao.ErrInvalidID)
	assert.ErrorIs(t, s.Insert(ctx, &record{ID: "a"}), dao.ErrDuplicateID)
	assert.NoError(t, s.Insert(ctx, &record{ID: "c", Kind: "y"}))

	list, err := s.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []*record{{ID: "b", Kind: "z"}, {ID: "a", Kind: "y"}, {ID: "c", Kind: "y"}}, list)

	filtered, err := s.List(ctx, dao.NewParameter("Kind", "y"))
	assert.NoError(t, err)
	assert.Equal(t, []*record{{ID: "a", Kind: "y"}, {ID: "c", Kind: "y"}}, filtered)

	filtered, err = s.List(ctx, dao.NewParameter("Kind", "z", "x"))
	assert.NoError(t, err)
	assert.Equal(t, []*record{{ID: "b", Kind: "z"}}, filtered)

	loaded, err := s.Load(ctx, "a")
	assert.NoError(t, err)
	assert.Equal(t, "y", loaded.Kind)
	_, err = s.Load(ctx, "missing")
	assert.ErrorIs(t, err, dao.ErrNotFound)

	assert.NoError(t, s.Delete(ctx, "b"))
	assert.ErrorIs(t, s.Delete(ctx, "b"), dao.ErrNotFound)
	assert.Equal(t, 2, s.Len())
	list, _ = s.List(ctx)
	assert.Equal(t, []*record{{ID: "a", Kind: "y"}, {ID: "c", Kind: "y"}}, list)
}

// Package registry holds accepted workflow definitions and derives the
// category, sorted and grouped views presentation layers consume.
//
// The held set is an immutable snapshot replaced atomically; readers never
// lock and never observe a partially populated set.
package registry

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/viant/fluxreg/internal/clock"
	"github.com/viant/fluxreg/internal/idgen"
	"github.com/viant/fluxreg/internal/natural"
	"github.com/viant/fluxreg/model"
)

// GroupResolver resolves group ids
type GroupResolver interface {
	Resolve(groupID string) (*model.Group, error)
}

// Category represents a referenced group used for presentation grouping
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Bucket represents definitions sharing one category label
type Bucket struct {
	Label       string            `json:"label"`
	Definitions []*model.Workflow `json:"definitions"`
}

// Snapshot represents one complete, immutable definition set
type Snapshot struct {
	Revision    string
	LoadedAt    time.Time
	groups      GroupResolver
	definitions []*model.Workflow
	byID        map[string]*model.Workflow
}

// Registry owns accepted workflow definitions
type Registry struct {
	current atomic.Pointer[Snapshot]
}

// NewSnapshot creates a snapshot; a later definition with a duplicate id replaces
// the earlier one in place.
func NewSnapshot(groups GroupResolver, definitions []*model.Workflow) *Snapshot {
	ret := &Snapshot{
		Revision: idgen.New(),
		LoadedAt: clock.Now(),
		groups:   groups,
		byID:     make(map[string]*model.Workflow, len(definitions)),
	}
	index := make(map[string]int, len(definitions))
	for _, definition := range definitions {
		if definition == nil {
			continue
		}
		if i, ok := index[definition.ID]; ok {
			ret.definitions[i] = definition
		} else {
			index[definition.ID] = len(ret.definitions)
			ret.definitions = append(ret.definitions, definition)
		}
		ret.byID[definition.ID] = definition
	}
	return ret
}

// Replace atomically swaps the held definition set and returns the new snapshot
func (r *Registry) Replace(groups GroupResolver, definitions []*model.Workflow) *Snapshot {
	snapshot := NewSnapshot(groups, definitions)
	r.current.Store(snapshot)
	return snapshot
}

// Swap atomically installs a prepared snapshot
func (r *Registry) Swap(snapshot *Snapshot) {
	r.current.Store(snapshot)
}

// Snapshot returns the current snapshot, never nil
func (r *Registry) Snapshot() *Snapshot {
	if ret := r.current.Load(); ret != nil {
		return ret
	}
	return &Snapshot{}
}

// Loaded returns true once a definition set was installed
func (r *Registry) Loaded() bool {
	return r.current.Load() != nil
}

// Definition returns a held definition by id
func (r *Registry) Definition(id string) (*model.Workflow, bool) {
	return r.Snapshot().Definition(id)
}

// Definitions returns all held definitions in load order
func (r *Registry) Definitions() []*model.Workflow {
	return r.Snapshot().Definitions()
}

// Categories returns referenced groups sorted by label
func (r *Registry) Categories() []*Category {
	return r.Snapshot().Categories()
}

// SortedDefinitions sorts subset (nil means every held definition) by group then label
func (r *Registry) SortedDefinitions(subset []*model.Workflow) []*model.Workflow {
	return r.Snapshot().SortedDefinitions(subset)
}

// GroupedDefinitions partitions sorted definitions into category buckets
func (r *Registry) GroupedDefinitions(subset []*model.Workflow) []*Bucket {
	return r.Snapshot().GroupedDefinitions(subset)
}

// GroupOf returns the resolved group of a held definition
func (r *Registry) GroupOf(definition *model.Workflow) (*model.Group, bool) {
	return r.Snapshot().GroupOf(definition)
}

// Definition returns a definition by id
func (s *Snapshot) Definition(id string) (*model.Workflow, bool) {
	ret, ok := s.byID[id]
	return ret, ok
}

// Definitions returns definitions in load order
func (s *Snapshot) Definitions() []*model.Workflow {
	return append([]*model.Workflow(nil), s.definitions...)
}

// Len returns number of definitions
func (s *Snapshot) Len() int {
	return len(s.definitions)
}

// GroupOf resolves the group of a definition
func (s *Snapshot) GroupOf(definition *model.Workflow) (*model.Group, bool) {
	if s.groups == nil || definition == nil {
		return nil, false
	}
	group, err := s.groups.Resolve(definition.Group)
	if err != nil {
		return nil, false
	}
	return group, true
}

// Categories returns every group referenced by a held definition, sorted by
// label in natural, case-insensitive order. Unresolvable groups are omitted.
func (s *Snapshot) Categories() []*Category {
	var result []*Category
	seen := map[string]bool{}
	for _, definition := range s.definitions {
		if seen[definition.Group] {
			continue
		}
		seen[definition.Group] = true
		group, ok := s.GroupOf(definition)
		if !ok {
			continue
		}
		result = append(result, &Category{ID: group.ID, Label: group.Label})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return natural.Less(result[i].Label, result[j].Label)
	})
	return result
}

// SortedDefinitions returns subset ordered by group id, then label, both in
// natural case-insensitive order; ties keep their original relative order.
func (s *Snapshot) SortedDefinitions(subset []*model.Workflow) []*model.Workflow {
	if subset == nil {
		subset = s.definitions
	}
	result := append([]*model.Workflow(nil), subset...)
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Group != b.Group {
			return natural.Less(a.Group, b.Group)
		}
		return natural.Less(a.Label, b.Label)
	})
	return result
}

// GroupedDefinitions partitions SortedDefinitions(subset) into buckets keyed by
// category label, in order of first appearance. A definition whose group is
// not among the categories lands in the "" bucket.
func (s *Snapshot) GroupedDefinitions(subset []*model.Workflow) []*Bucket {
	labels := map[string]string{}
	for _, category := range s.Categories() {
		labels[category.ID] = category.Label
	}
	var result []*Bucket
	buckets := map[string]*Bucket{}
	for _, definition := range s.SortedDefinitions(subset) {
		label := labels[definition.Group]
		bucket, ok := buckets[label]
		if !ok {
			bucket = &Bucket{Label: label}
			buckets[label] = bucket
			result = append(result, bucket)
		}
		bucket.Definitions = append(bucket.Definitions, definition)
	}
	return result
}

package model

import "sort"

// Fields represents an ordered, loosely typed field mapping.
type Fields struct {
	keys   []string
	values map[string]interface{}
}

// Put sets a field, keeping the position of an existing key
func (f *Fields) Put(key string, value interface{}) *Fields {
	if f.values == nil {
		f.values = make(map[string]interface{})
	}
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
	return f
}

// Get returns a field value
func (f *Fields) Get(key string) (interface{}, bool) {
	if f == nil || f.values == nil {
		return nil, false
	}
	value, ok := f.values[key]
	return value, ok
}

// Has returns true if key was declared
func (f *Fields) Has(key string) bool {
	_, ok := f.Get(key)
	return ok
}

// Keys returns keys in declaration order
func (f *Fields) Keys() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.keys...)
}

// Len returns number of fields
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keys)
}

// Range calls fn for each field in declaration order until fn returns false
func (f *Fields) Range(fn func(key string, value interface{}) bool) {
	if f == nil {
		return
	}
	for _, key := range f.keys {
		if !fn(key, f.values[key]) {
			return
		}
	}
}

// Map returns an unordered copy, nested Fields are converted too
func (f *Fields) Map() map[string]interface{} {
	if f == nil {
		return nil
	}
	result := make(map[string]interface{}, len(f.keys))
	for _, key := range f.keys {
		value := f.values[key]
		if nested, ok := value.(*Fields); ok {
			result[key] = nested.Map()
			continue
		}
		result[key] = value
	}
	return result
}

// NewFields creates fields from an unordered map; keys are sorted so that the
// resulting order is deterministic. Nested maps are converted recursively.
func NewFields(values map[string]interface{}) *Fields {
	ret := &Fields{values: make(map[string]interface{}, len(values))}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		ret.Put(key, AsFields(values[key]))
	}
	return ret
}

// AsFields converts map values into *Fields, other values are returned as is
func AsFields(value interface{}) interface{} {
	switch actual := value.(type) {
	case map[string]interface{}:
		return NewFields(actual)
	case map[string]string:
		converted := make(map[string]interface{}, len(actual))
		for k, v := range actual {
			converted[k] = v
		}
		return NewFields(converted)
	case Fields:
		return &actual
	}
	return value
}

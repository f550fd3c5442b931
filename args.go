package cmdtree

import (
	"maps"
	"slices"
)

// ArgumentMap holds every value bound to a key, in encounter order. It is what an [Action]
// receives through [State].
type ArgumentMap map[string][]string

// NewArgumentMap folds bindings into an ArgumentMap. Bindings without a value contribute an empty
// string. Values are never deduplicated.
func NewArgumentMap(bindings []Binding) ArgumentMap {
	m := make(ArgumentMap)
	for _, b := range bindings {
		m[b.Key] = append(m[b.Key], b.Value)
	}
	return m
}

// Get returns all values bound to key, or nil.
func (m ArgumentMap) Get(key string) []string {
	return m[key]
}

// Has reports whether key was bound at least once.
func (m ArgumentMap) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Last returns the last value bound to key, or an empty string.
func (m ArgumentMap) Last(key string) string {
	values := m[key]
	if len(values) == 0 {
		return ""
	}
	return values[len(values)-1]
}

// Keys returns the bound keys in sorted order.
func (m ArgumentMap) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

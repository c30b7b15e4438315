package domain

import "sort"

// Mapping groups discovered entries by the key of their source file.
// Entries keep insertion order inside a group; groups are always
// reported sorted by key so generated output does not depend on
// directory listing order.
type Mapping struct {
	groups map[string][]Entry
}

// NewMapping creates an empty Mapping
func NewMapping() *Mapping {
	return &Mapping{groups: make(map[string][]Entry)}
}

// Add appends an entry to the group identified by key
func (m *Mapping) Add(key string, entry Entry) {
	m.groups[key] = append(m.groups[key], entry)
}

// Keys returns the group keys in sorted order
func (m *Mapping) Keys() []string {
	keys := make([]string, 0, len(m.groups))
	for k := range m.groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns the entries of one group, nil when the key is absent
func (m *Mapping) Entries(key string) []Entry {
	return m.groups[key]
}

// Groups returns every group sorted by key
func (m *Mapping) Groups() []Group {
	keys := m.Keys()
	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, Group{Key: k, Entries: m.groups[k]})
	}
	return groups
}

// Len returns the number of groups
func (m *Mapping) Len() int {
	return len(m.groups)
}

// Count returns the total number of entries across all groups
func (m *Mapping) Count() int {
	n := 0
	for _, entries := range m.groups {
		n += len(entries)
	}
	return n
}

package flatten

import (
	"maps"
	"slices"
)

// DNE is stored for nodes and attributes without text. It is a value, not
// the absence of a key.
const DNE = "<DNE/>"

// Map is a flattened document. Its iteration order is meaningless; use Keys
// for the lexicographic order every consumer relies on.
type Map map[string]string

// Keys returns the paths of m in lexicographic order.
func (m Map) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

func (m Map) Has(p string) bool {
	_, ok := m[p]
	return ok
}

func (m Map) Clone() Map {
	return maps.Clone(m)
}

// Clear removes every entry of m.
func (m Map) Clear() {
	clear(m)
}

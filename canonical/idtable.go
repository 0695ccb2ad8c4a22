// SPDX-License-Identifier: MIT
// Package: pollinet/canonical
//
// idtable.go - first-appearance name → ID assignment.
//
// Determinism:
//   - IDs are 0,1,2,... in the order names are first assigned; a name keeps its
//     ID for the table's lifetime. Scanning the same stream twice yields the
//     same table.

package canonical

// IDTable assigns dense integer IDs to names in first-appearance order.
// The zero value is not usable; call NewIDTable.
type IDTable struct {
	ids   map[string]int
	names []string
}

// NewIDTable returns an empty table.
func NewIDTable() *IDTable {
	return &IDTable{ids: make(map[string]int)}
}

// Assign returns the ID of name, allocating the next one on first sight.
// Complexity: O(1) amortized.
func (t *IDTable) Assign(name string) int {
	if id, ok := t.ids[name]; ok {
		return id
	}
	id := len(t.names)
	t.ids[name] = id
	t.names = append(t.names, name)

	return id
}

// ID looks up name without assigning.
func (t *IDTable) ID(name string) (int, bool) {
	id, ok := t.ids[name]

	return id, ok
}

// Name returns the name holding id.
func (t *IDTable) Name(id int) (string, bool) {
	if id < 0 || id >= len(t.names) {
		return "", false
	}

	return t.names[id], true
}

// Len returns the number of assigned IDs.
func (t *IDTable) Len() int { return len(t.names) }

// Names returns a copy of all names indexed by ID.
func (t *IDTable) Names() []string {
	return append([]string(nil), t.names...)
}

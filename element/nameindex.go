package element

import "github.com/gravitational/trace"

// NameIndex is the explicit service object Design Notes §9 calls for
// in place of a process-wide singleton: "insert on add, remove on
// destroy, look up by name", with live-tree uniqueness enforced at
// insertion time (spec 3. Element invariant ii).
type NameIndex struct {
	byName map[string]*Element
}

// NewNameIndex builds an empty index.
func NewNameIndex() *NameIndex {
	return &NameIndex{byName: make(map[string]*Element)}
}

// Insert registers e under name, failing if the name is already taken
// by a different live element.
func (idx *NameIndex) Insert(name string, e *Element) error {
	if name == "" {
		return nil
	}
	if existing, ok := idx.byName[name]; ok && existing != e {
		return trace.AlreadyExists("element name %q already in use", name)
	}
	idx.byName[name] = e
	return nil
}

// Remove unregisters name, regardless of which element holds it.
func (idx *NameIndex) Remove(name string) {
	if name == "" {
		return
	}
	delete(idx.byName, name)
}

// Lookup finds the live element registered under name.
func (idx *NameIndex) Lookup(name string) (*Element, bool) {
	e, ok := idx.byName[name]
	return e, ok
}

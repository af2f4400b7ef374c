package arbor

import "fmt"

// DataRef returns the node's data sequence for reading. The slice is the live
// sequence, not a copy; entries are visible in push order.
func (t *Tree) DataRef(index Index) ([]any, error) {
	n, err := t.node(index)
	if err != nil {
		return nil, err
	}
	if !n.features.Has(AllowData) {
		return nil, fmt.Errorf("%w: index %d", ErrNoDataAllowed, index.Slot())
	}
	return n.data, nil
}

// DataMut returns a pointer to the node's data sequence so callers can push,
// replace, reorder or clear entries in place. The tree's structural fields
// are never affected by payload mutation.
func (t *Tree) DataMut(index Index) (*[]any, error) {
	n, err := t.node(index)
	if err != nil {
		return nil, err
	}
	if !n.features.Has(AllowData) {
		return nil, fmt.Errorf("%w: index %d", ErrNoDataAllowed, index.Slot())
	}
	return &n.data, nil
}

package arbor

import "fmt"

// Parent returns the handle of index's parent. A root fails with
// ErrRootHasNoParent so callers can distinguish "is a root" from "is gone".
func (t *Tree) Parent(index Index) (Index, error) {
	n, err := t.node(index)
	if err != nil {
		return NoIndex, err
	}
	if n.parent == NoIndex {
		return NoIndex, fmt.Errorf("%w: index %d", ErrRootHasNoParent, index.Slot())
	}
	return n.parent, nil
}

// Children returns a copy of index's child handles in insertion order. The
// copy keeps the tree's structural bookkeeping out of reach of callers.
func (t *Tree) Children(index Index) ([]Index, error) {
	n, err := t.node(index)
	if err != nil {
		return nil, err
	}
	if !n.features.Has(AllowChildren) {
		return nil, fmt.Errorf("%w: index %d", ErrNoChildrenAllowed, index.Slot())
	}
	children := make([]Index, len(n.children))
	copy(children, n.children)
	return children, nil
}

// Child returns the child of index at position.
func (t *Tree) Child(index Index, position int) (Index, error) {
	n, err := t.node(index)
	if err != nil {
		return NoIndex, err
	}
	if !n.features.Has(AllowChildren) {
		return NoIndex, fmt.Errorf("%w: index %d", ErrNoChildrenAllowed, index.Slot())
	}
	if position < 0 || position >= len(n.children) {
		return NoIndex, fmt.Errorf(
			"%w: position %d, node %d has %d children",
			ErrInvalidPosition, position, index.Slot(), len(n.children),
		)
	}
	return n.children[position], nil
}

// First returns the first child of index, failing with ErrNoChildren when the
// node currently has none.
func (t *Tree) First(index Index) (Index, error) {
	return t.end(index, 0)
}

// Last returns the last child of index, failing with ErrNoChildren when the
// node currently has none.
func (t *Tree) Last(index Index) (Index, error) {
	return t.end(index, -1)
}

func (t *Tree) end(index Index, at int) (Index, error) {
	n, err := t.node(index)
	if err != nil {
		return NoIndex, err
	}
	if !n.features.Has(AllowChildren) {
		return NoIndex, fmt.Errorf("%w: index %d", ErrNoChildrenAllowed, index.Slot())
	}
	if len(n.children) == 0 {
		return NoIndex, fmt.Errorf("%w: index %d", ErrNoChildren, index.Slot())
	}
	if at < 0 {
		return n.children[len(n.children)-1], nil
	}
	return n.children[at], nil
}

// Features returns index's immutable feature set.
func (t *Tree) Features(index Index) (Features, error) {
	n, err := t.node(index)
	if err != nil {
		return 0, err
	}
	return n.features, nil
}

// NodeType returns the opaque node type tag set at creation, nil if none was
// given.
func (t *Tree) NodeType(index Index) (any, error) {
	n, err := t.node(index)
	if err != nil {
		return nil, err
	}
	return n.nodeType, nil
}

// DataType returns the opaque data type tag set at creation, nil if none was
// given.
func (t *Tree) DataType(index Index) (any, error) {
	n, err := t.node(index)
	if err != nil {
		return nil, err
	}
	return n.dataType, nil
}

// Depth returns the number of edges between index and its root. A root has
// depth 0.
func (t *Tree) Depth(index Index) (int, error) {
	n, err := t.node(index)
	if err != nil {
		return 0, err
	}
	depth := 0
	for n.parent != NoIndex {
		if n, err = t.node(n.parent); err != nil {
			return 0, err
		}
		depth++
	}
	return depth, nil
}

// IsAncestorOf reports whether ancestor is a transitive parent of index. A
// node is not its own ancestor.
func (t *Tree) IsAncestorOf(index Index, ancestor Index) (bool, error) {
	n, err := t.node(index)
	if err != nil {
		return false, err
	}
	if _, err = t.node(ancestor); err != nil {
		return false, err
	}
	for n.parent != NoIndex {
		if n.parent == ancestor {
			return true, nil
		}
		if n, err = t.node(n.parent); err != nil {
			return false, err
		}
	}
	return false, nil
}

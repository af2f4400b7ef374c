package arbor

import "fmt"

// Delete removes the node at index together with its entire subtree,
// discarding all payload data and returning every reclaimed slot to the
// free-list.
//
// If the node has a parent it is removed from that parent's children; a root
// is removed from the root list.
func (t *Tree) Delete(index Index) error {
	n, err := t.node(index)
	if err != nil {
		return err
	}
	// Collect before mutating so an integrity failure in unlink leaves the
	// arena untouched.
	doomed := t.subtree(index, n)
	if err := t.unlink(index, n); err != nil {
		return err
	}
	for _, i := range doomed {
		t.reclaim(i)
	}
	return nil
}

// Take removes only the node at index, returning ownership of its data
// sequence instead of discarding it. The returned slice is nil for a node
// without AllowData.
//
// A node that currently has children is rejected with ErrNodeHasChildren;
// relocate or delete the descendants first.
func (t *Tree) Take(index Index) ([]any, error) {
	n, err := t.node(index)
	if err != nil {
		return nil, err
	}
	if len(n.children) > 0 {
		return nil, fmt.Errorf(
			"%w: index %d has %d children", ErrNodeHasChildren, index.Slot(), len(n.children),
		)
	}
	if err := t.unlink(index, n); err != nil {
		return nil, err
	}
	t.reclaim(index)
	return n.data, nil
}

// subtree returns index and all its transitive descendants. Pure read.
func (t *Tree) subtree(index Index, n *node) []Index {
	found := []Index{index}
	stack := make([]Index, len(n.children))
	copy(stack, n.children)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		found = append(found, i)
		// Children of an occupied node are occupied by invariant.
		cn := t.slots[i.Slot()].node
		stack = append(stack, cn.children...)
	}
	return found
}

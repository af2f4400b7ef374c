package arbor

import "fmt"

// MoveNodes detaches the subtree rooted at source and reattaches it as the
// last child of newParent. See MoveNodesAt for the validation contract.
func (t *Tree) MoveNodes(source Index, newParent Index) error {
	return t.move(source, newParent, -1)
}

// MoveNodesAt detaches the subtree rooted at source and reattaches it as a
// child of newParent at position. No descendant's structure or data is
// altered.
//
// The call validates, with pure reads before any mutation: source and
// newParent exist, newParent allows children, newParent is neither source
// itself nor a descendant of source (ErrCycleDetected), and position is in
// range (ErrInvalidPosition). A failed call leaves the tree exactly as it
// was.
//
// When source is already a child of newParent the call is a pure
// repositioning within the children sequence, and position names the final
// index of source among the unchanged child count.
func (t *Tree) MoveNodesAt(source Index, newParent Index, position int) error {
	if position < 0 {
		return fmt.Errorf("%w: position %d", ErrInvalidPosition, position)
	}
	return t.move(source, newParent, position)
}

// move implements relocation; position < 0 means append.
func (t *Tree) move(source Index, newParent Index, position int) error {
	sn, err := t.node(source)
	if err != nil {
		return err
	}
	dn, err := t.node(newParent)
	if err != nil {
		return err
	}
	if !dn.features.Has(AllowChildren) {
		return fmt.Errorf("%w: index %d", ErrNoChildrenAllowed, newParent.Slot())
	}
	if newParent == source {
		return fmt.Errorf("%w: node %d", ErrCycleDetected, source.Slot())
	}
	descends, err := t.IsAncestorOf(newParent, source)
	if err != nil {
		return err
	}
	if descends {
		return fmt.Errorf(
			"%w: node %d is an ancestor of node %d",
			ErrCycleDetected, source.Slot(), newParent.Slot(),
		)
	}

	// Repositioning within the same parent leaves the child count unchanged.
	if sn.parent == newParent {
		return t.reposition(source, dn, position)
	}

	if position > len(dn.children) {
		return fmt.Errorf(
			"%w: position %d, node %d has %d children",
			ErrInvalidPosition, position, newParent.Slot(), len(dn.children),
		)
	}
	if err := t.unlink(source, sn); err != nil {
		return err
	}
	if position < 0 {
		position = len(dn.children)
	}
	dn.children = append(dn.children, NoIndex)
	copy(dn.children[position+1:], dn.children[position:])
	dn.children[position] = source
	sn.parent = newParent
	return nil
}

func (t *Tree) reposition(source Index, dn *node, position int) error {
	if position >= len(dn.children) {
		return fmt.Errorf(
			"%w: position %d, parent has %d children", ErrInvalidPosition, position, len(dn.children),
		)
	}
	from := -1
	for p, c := range dn.children {
		if c == source {
			from = p
			break
		}
	}
	if from < 0 {
		return fmt.Errorf("%w: node %d", ErrMissingInParent, source.Slot())
	}
	if position < 0 {
		position = len(dn.children) - 1
	}
	if position == from {
		return nil
	}
	dn.children = append(dn.children[:from], dn.children[from+1:]...)
	dn.children = append(dn.children, NoIndex)
	copy(dn.children[position+1:], dn.children[position:])
	dn.children[position] = source
	return nil
}

// PromoteToRoot detaches the subtree rooted at source from its parent and
// makes it a root of the forest, appended to the root list. Promoting a node
// that is already a root is a no-op.
func (t *Tree) PromoteToRoot(source Index) error {
	sn, err := t.node(source)
	if err != nil {
		return err
	}
	if sn.parent == NoIndex {
		return nil
	}
	if err := t.unlink(source, sn); err != nil {
		return err
	}
	sn.parent = NoIndex
	t.roots = append(t.roots, source)
	return nil
}

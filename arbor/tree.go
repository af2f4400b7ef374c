package arbor

import (
	"errors"
	"fmt"
)

// node is one occupied arena slot. The features, nodeType and dataType fields
// are fixed at creation and have no setters.
type node struct {
	features Features
	nodeType any
	dataType any
	parent   Index // NoIndex for a root
	children []Index
	data     []any
}

// slot is one arena position. A nil node marks the slot vacant. The
// generation is bumped each time the occupant is reclaimed, invalidating
// handles issued for previous occupants.
type slot struct {
	generation uint32
	node       *node
}

// Tree is a forest of feature-gated nodes backed by a flat slot arena with
// free-list reuse. The zero value is not usable; construct with New.
type Tree struct {
	slots []slot
	free  []uint32
	roots []Index
	count int
}

// New returns an empty tree: no slots, no free-list entries, no roots.
func New() *Tree {
	return &Tree{}
}

// Count returns the number of occupied slots, the logical node count.
func (t *Tree) Count() int {
	return t.count
}

// Len returns the total slot count including vacant slots, the physical size
// of the arena. Len >= Count always holds.
func (t *Tree) Len() int {
	return len(t.slots)
}

// Roots returns the root handles in creation/promotion order.
func (t *Tree) Roots() []Index {
	roots := make([]Index, len(t.roots))
	copy(roots, t.roots)
	return roots
}

// Exists reports whether index addresses an occupied slot of the matching
// generation.
func (t *Tree) Exists(index Index) bool {
	_, err := t.node(index)
	return err == nil
}

// InsertRoot creates a node with no parent, adding a root to the forest.
func (t *Tree) InsertRoot(features Features, nodeType any, dataType any) Index {
	i := t.alloc(&node{
		features: features,
		nodeType: nodeType,
		dataType: dataType,
		parent:   NoIndex,
	})
	t.roots = append(t.roots, i)
	return i
}

// Insert creates a node and appends it to the end of parent's children.
//
// The new slot is taken from the free-list when one is available, otherwise
// the arena grows by one.
func (t *Tree) Insert(parent Index, features Features, nodeType any, dataType any) (Index, error) {
	pn, err := t.parentNode(parent)
	if err != nil {
		return NoIndex, err
	}
	i := t.alloc(&node{
		features: features,
		nodeType: nodeType,
		dataType: dataType,
		parent:   parent,
	})
	pn.children = append(pn.children, i)
	return i, nil
}

// InsertAt creates a node and inserts it into parent's children at position,
// shifting subsequent children right.
//
// A position beyond the current child count is rejected with
// ErrInvalidPosition; position equal to the child count appends.
func (t *Tree) InsertAt(parent Index, position int, features Features, nodeType any, dataType any) (Index, error) {
	pn, err := t.parentNode(parent)
	if err != nil {
		return NoIndex, err
	}
	if position < 0 || position > len(pn.children) {
		return NoIndex, fmt.Errorf(
			"%w: position %d, node %d has %d children",
			ErrInvalidPosition, position, parent.Slot(), len(pn.children),
		)
	}
	i := t.alloc(&node{
		features: features,
		nodeType: nodeType,
		dataType: dataType,
		parent:   parent,
	})
	pn.children = append(pn.children, NoIndex)
	copy(pn.children[position+1:], pn.children[position:])
	pn.children[position] = i
	return i, nil
}

// Clear removes every node from the tree, discarding all data.
//
// The arena capacity is retained: every slot is tombstoned with a generation
// bump and returned to the free-list, so handles issued before the call fail
// with ErrStaleIndex rather than resolving to later occupants.
func (t *Tree) Clear() {
	t.free = t.free[:0]
	for s := len(t.slots) - 1; s >= 0; s-- {
		if t.slots[s].node != nil {
			t.slots[s].node = nil
			t.slots[s].generation++
		}
		t.free = append(t.free, uint32(s))
	}
	t.roots = t.roots[:0]
	t.count = 0
}

// parentNode resolves a parent argument, translating a missing node into
// ErrParentNotFound and checking the children feature gate.
func (t *Tree) parentNode(parent Index) (*node, error) {
	pn, err := t.node(parent)
	if err != nil {
		if errors.Is(err, ErrNodeNotFound) {
			return nil, fmt.Errorf("%w: index %d", ErrParentNotFound, parent.Slot())
		}
		return nil, err
	}
	if !pn.features.Has(AllowChildren) {
		return nil, fmt.Errorf("%w: index %d", ErrNoChildrenAllowed, parent.Slot())
	}
	return pn, nil
}

// node resolves a handle to its occupied slot, distinguishing a vacant or
// out-of-range slot from a generation mismatch on a reused one.
func (t *Tree) node(i Index) (*node, error) {
	s := uint64(i.Slot())
	if s >= uint64(len(t.slots)) {
		return nil, fmt.Errorf("%w: index %d", ErrNodeNotFound, i.Slot())
	}
	// Reclaiming bumps the generation, so a mismatch means the handle's node
	// is gone, whether or not the slot has been reoccupied since.
	if t.slots[s].generation != i.Generation() {
		return nil, fmt.Errorf(
			"%w: index %d, generation %d, slot generation %d",
			ErrStaleIndex, i.Slot(), i.Generation(), t.slots[s].generation,
		)
	}
	if t.slots[s].node == nil {
		return nil, fmt.Errorf("%w: index %d", ErrNodeNotFound, i.Slot())
	}
	return t.slots[s].node, nil
}

// alloc places n in a free slot, growing the arena only when none is vacant.
func (t *Tree) alloc(n *node) Index {
	t.count++
	if k := len(t.free); k > 0 {
		s := t.free[k-1]
		t.free = t.free[:k-1]
		t.slots[s].node = n
		return packIndex(s, t.slots[s].generation)
	}
	t.slots = append(t.slots, slot{node: n})
	return packIndex(uint32(len(t.slots)-1), 0)
}

// reclaim tombstones the slot behind i and returns it to the free-list. The
// handle must have been resolved by the caller.
func (t *Tree) reclaim(i Index) {
	s := i.Slot()
	t.slots[s].node = nil
	t.slots[s].generation++
	t.free = append(t.free, s)
	t.count--
}

// unlink removes i from its parent's children, or from the root list for a
// root. The node record itself is untouched.
func (t *Tree) unlink(i Index, n *node) error {
	if n.parent == NoIndex {
		for p, r := range t.roots {
			if r == i {
				t.roots = append(t.roots[:p], t.roots[p+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: root %d not in root list", ErrMissingInParent, i.Slot())
	}
	pn, err := t.node(n.parent)
	if err != nil {
		return err
	}
	for p, c := range pn.children {
		if c == i {
			pn.children = append(pn.children[:p], pn.children[p+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: node %d, parent %d", ErrMissingInParent, i.Slot(), n.parent.Slot())
}

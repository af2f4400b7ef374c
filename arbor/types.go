package arbor

import "errors"

// Features is the immutable per-node capability bit-set. It is fixed when the
// node is created and consulted by every operation that would add children or
// touch data.
type Features uint8

const (
	// AllowChildren indicates the node can have children.
	AllowChildren Features = 1 << 0
	// AllowData indicates the node can have data.
	AllowData Features = 1 << 1
)

// Has reports whether every flag in f is set.
func (fs Features) Has(f Features) bool {
	return fs&f == f
}

func (fs Features) String() string {
	switch fs & (AllowChildren | AllowData) {
	case AllowChildren:
		return "children"
	case AllowData:
		return "data"
	case AllowChildren | AllowData:
		return "children|data"
	default:
		return "none"
	}
}

// Index is a stable handle to an occupied arena slot, packed as
//
//	generation<<32 | slot
//
// The generation component makes reuse of a reclaimed slot detectable: a
// handle issued before the slot was reclaimed fails with ErrStaleIndex.
type Index uint64

// NoIndex is the zero-value-adjacent "no node" handle. It never addresses an
// occupied slot.
const NoIndex = ^Index(0)

// Slot returns the arena slot ordinal the handle addresses.
func (i Index) Slot() uint32 {
	return uint32(i)
}

// Generation returns the slot generation the handle was issued for.
func (i Index) Generation() uint32 {
	return uint32(i >> 32)
}

func packIndex(slot uint32, generation uint32) Index {
	return Index(generation)<<32 | Index(slot)
}

var (
	ErrNodeNotFound      = errors.New("arbor: node not found")
	ErrParentNotFound    = errors.New("arbor: parent node not found")
	ErrStaleIndex        = errors.New("arbor: index refers to a reclaimed slot")
	ErrNoChildrenAllowed = errors.New("arbor: node does not allow children")
	ErrNoDataAllowed     = errors.New("arbor: node does not allow data")
	ErrNodeHasChildren   = errors.New("arbor: node has children")
	ErrCycleDetected     = errors.New("arbor: move would make the node its own descendant")
	ErrInvalidPosition   = errors.New("arbor: child position out of range")
	ErrNoChildren        = errors.New("arbor: node has no children")
	ErrRootHasNoParent   = errors.New("arbor: root node has no parent")

	// ErrMissingInParent indicates a structural integrity breach: a node's
	// parent does not list it as a child. It is never returned unless the
	// arena has been corrupted.
	ErrMissingInParent = errors.New("arbor: node missing from its parent's children")
)

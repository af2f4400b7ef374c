package arbor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// treeShape captures parent and child links for structural comparison.
func treeShape(t *testing.T, tree *Tree, indices ...Index) map[Index][]Index {
	t.Helper()
	shape := map[Index][]Index{}
	for _, i := range indices {
		fs, err := tree.Features(i)
		require.NoError(t, err)
		if !fs.Has(AllowChildren) {
			continue
		}
		children, err := tree.Children(i)
		require.NoError(t, err)
		shape[i] = children
	}
	return shape
}

func TestMoveNodesReattachesSubtreeIntact(t *testing.T) {
	tree := New()
	root := tree.InsertRoot(AllowChildren, nil, nil)
	src, err := tree.Insert(root, AllowChildren, nil, nil)
	require.NoError(t, err)
	inner, err := tree.Insert(src, AllowData, nil, nil)
	require.NoError(t, err)
	data, err := tree.DataMut(inner)
	require.NoError(t, err)
	*data = append(*data, "carried")
	dest, err := tree.Insert(root, AllowChildren, nil, nil)
	require.NoError(t, err)

	require.NoError(t, tree.MoveNodes(src, dest))

	parent, err := tree.Parent(src)
	require.NoError(t, err)
	require.Equal(t, dest, parent)
	children, err := tree.Children(root)
	require.NoError(t, err)
	require.Equal(t, []Index{dest}, children)

	// The moved subtree's internal structure and data are untouched.
	children, err = tree.Children(src)
	require.NoError(t, err)
	require.Equal(t, []Index{inner}, children)
	view, err := tree.DataRef(inner)
	require.NoError(t, err)
	require.Equal(t, []any{"carried"}, view)
}

func TestMoveNodesAtPositionsWithinNewParent(t *testing.T) {
	tree := New()
	root := tree.InsertRoot(AllowChildren, nil, nil)
	a, err := tree.Insert(root, AllowChildren, nil, nil)
	require.NoError(t, err)
	b, err := tree.Insert(root, AllowChildren, nil, nil)
	require.NoError(t, err)
	src, err := tree.Insert(a, AllowChildren, nil, nil)
	require.NoError(t, err)
	first, err := tree.Insert(b, AllowChildren, nil, nil)
	require.NoError(t, err)

	require.NoError(t, tree.MoveNodesAt(src, b, 0))

	children, err := tree.Children(b)
	require.NoError(t, err)
	require.Equal(t, []Index{src, first}, children)
	children, err = tree.Children(a)
	require.NoError(t, err)
	require.Empty(t, children)
}

func TestMoveRejectsCycleAndLeavesTreeUnchanged(t *testing.T) {
	tree := New()
	root := tree.InsertRoot(AllowChildren, nil, nil)
	mid, err := tree.Insert(root, AllowChildren, nil, nil)
	require.NoError(t, err)
	leaf, err := tree.Insert(mid, AllowChildren, nil, nil)
	require.NoError(t, err)

	before := treeShape(t, tree, root, mid, leaf)

	// Moving a node under itself or under its own descendant is a cycle.
	require.ErrorIs(t, tree.MoveNodes(mid, mid), ErrCycleDetected)
	require.ErrorIs(t, tree.MoveNodes(mid, leaf), ErrCycleDetected)
	require.ErrorIs(t, tree.MoveNodes(root, leaf), ErrCycleDetected)

	require.Equal(t, before, treeShape(t, tree, root, mid, leaf))
	require.Equal(t, 3, tree.Count())
}

func TestMoveRejectsDestinationWithoutChildrenFeature(t *testing.T) {
	tree := New()
	root := tree.InsertRoot(AllowChildren, nil, nil)
	src, err := tree.Insert(root, AllowChildren, nil, nil)
	require.NoError(t, err)
	leaf, err := tree.Insert(root, AllowData, nil, nil)
	require.NoError(t, err)

	require.ErrorIs(t, tree.MoveNodes(src, leaf), ErrNoChildrenAllowed)

	parent, err := tree.Parent(src)
	require.NoError(t, err)
	require.Equal(t, root, parent)
}

func TestMoveSameParentRepositions(t *testing.T) {
	tree := New()
	root := tree.InsertRoot(AllowChildren, nil, nil)
	a, err := tree.Insert(root, AllowChildren, nil, nil)
	require.NoError(t, err)
	b, err := tree.Insert(root, AllowChildren, nil, nil)
	require.NoError(t, err)
	c, err := tree.Insert(root, AllowChildren, nil, nil)
	require.NoError(t, err)

	require.NoError(t, tree.MoveNodesAt(c, root, 0))
	children, err := tree.Children(root)
	require.NoError(t, err)
	require.Equal(t, []Index{c, a, b}, children)

	require.NoError(t, tree.MoveNodesAt(c, root, 2))
	children, err = tree.Children(root)
	require.NoError(t, err)
	require.Equal(t, []Index{a, b, c}, children)

	// Append form moves to the last position.
	require.NoError(t, tree.MoveNodes(a, root))
	children, err = tree.Children(root)
	require.NoError(t, err)
	require.Equal(t, []Index{b, c, a}, children)

	// Same position is a no-op.
	require.NoError(t, tree.MoveNodesAt(b, root, 0))
	children, err = tree.Children(root)
	require.NoError(t, err)
	require.Equal(t, []Index{b, c, a}, children)
}

func TestMoveNodesAtRejectsPositionOutOfRange(t *testing.T) {
	tree := New()
	root := tree.InsertRoot(AllowChildren, nil, nil)
	a, err := tree.Insert(root, AllowChildren, nil, nil)
	require.NoError(t, err)
	dest, err := tree.Insert(root, AllowChildren, nil, nil)
	require.NoError(t, err)

	require.ErrorIs(t, tree.MoveNodesAt(a, dest, 1), ErrInvalidPosition)
	require.ErrorIs(t, tree.MoveNodesAt(a, root, 2), ErrInvalidPosition)

	parent, err := tree.Parent(a)
	require.NoError(t, err)
	require.Equal(t, root, parent)
}

func TestPromoteToRoot(t *testing.T) {
	tree := New()
	root := tree.InsertRoot(AllowChildren, nil, nil)
	branch, err := tree.Insert(root, AllowChildren, nil, nil)
	require.NoError(t, err)
	leaf, err := tree.Insert(branch, AllowData, nil, nil)
	require.NoError(t, err)

	require.NoError(t, tree.PromoteToRoot(branch))
	require.Equal(t, []Index{root, branch}, tree.Roots())
	_, err = tree.Parent(branch)
	require.ErrorIs(t, err, ErrRootHasNoParent)

	// The subtree rides along.
	parent, err := tree.Parent(leaf)
	require.NoError(t, err)
	require.Equal(t, branch, parent)
	children, err := tree.Children(root)
	require.NoError(t, err)
	require.Empty(t, children)

	// Promoting a root is a no-op.
	require.NoError(t, tree.PromoteToRoot(branch))
	require.Equal(t, []Index{root, branch}, tree.Roots())
}

package arbor

/*

# Arena-backed, feature-gated tree container

This package provides a single mutable forest of nodes stored in a flat,
index-addressed arena. Nodes carry type-erased payload values and are arranged
in parent/child relationships. Per-node feature flags, fixed at creation,
control whether a node may hold children and/or data.

It follows the same style as the rest of our structural packages:

- small, composable operations over a flat slot array
- explicit index arithmetic instead of pointer graphs
- sentinel errors wrapped with call-site context

## Arena and handles

Nodes live in slots of a growable array. A slot is either occupied or vacant
(tombstoned). Vacant slots are kept on a free-list and reused before the array
grows, so repeated delete/insert cycles do not grow storage without bound.

Callers address nodes by Index, a packed 64-bit handle:

	generation<<32 | slot

Each slot carries a generation counter that is bumped every time the slot is
reclaimed. A handle issued for a previous occupant of a reused slot therefore
fails with ErrStaleIndex rather than silently addressing an unrelated node.
Handles are stable for the lifetime of the node they were issued for.

## Forest shape invariants

- an occupied node's parent, when present, is an occupied node whose children
  list contains the node exactly once
- children lists hold only occupied nodes whose parent is the list owner
- no node is its own ancestor; relocation rejects moves that would create a
  cycle, without touching the tree
- a node without AllowChildren has no children; a node without AllowData has
  no data

Every mutating operation validates all of its preconditions with pure reads
before performing any mutation, so a failed call leaves the forest exactly as
it was.

## Payloads

The data sequence of a node holds opaque `any` values. The tree never
inspects them. The nodeType and dataType tags are likewise opaque, set once at
insertion, and intended for caller-side dispatch when recovering concrete
payload types.

## Concurrency

The container is single-threaded by design: at most one writer, any number of
concurrent readers, enforced at the API boundary by the caller. There are no
internal locks and the package performs no logging.

*/

// Package ir provides the in-memory tree for property list documents.
//
// # Overview
//
// A property list is a tree of Nodes.  Every node has one Kind and a
// payload determined by that kind:
//
//   - DictKind: ordered Key children, names unique within the dictionary
//   - KeyKind: a name and exactly one value
//   - ArrayKind: ordered values
//   - DataKind: a byte buffer
//   - DateKind: a calendar time
//   - StringKind, IntegerKind, RealKind, BooleanKind: scalars
//
// Integers are 64 bit signed values.
//
// # Ownership
//
// A node is owned either by its parent or, when it has no parent, by the
// caller who created it.  Constructors return free standing nodes.
// Attaching a node which already has a parent fails with ErrAlreadyOwned:
// ownership is never shared and never silently moved.  A node leaves a
// tree only through Pop, PopAt or Free.
//
// Setting a dictionary entry under a name which is already present frees
// the existing entry and appends the new one at the tail.
//
// # Traversal
//
// Free, Copy, Visit and Equal walk trees with explicit worklists or parent
// link ascent rather than recursion, so the depth of a tree is bounded only
// by memory.
//
// Every node allocation is counted; Live reports the number of nodes not
// yet freed, which tests use to check for leaks.
//
// # Concurrency
//
// Trees carry no locks.  A tree must not be mutated from more than one
// goroutine at a time.
package ir

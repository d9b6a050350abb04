package ir

import (
	"fmt"
	"sync/atomic"
)

// live counts nodes which have been allocated and not yet freed.
var live atomic.Int64

// allocHook, when set, is consulted before every node allocation and may
// refuse it.  Package tests use it to exercise the out-of-memory paths.
var allocHook func(Kind) bool

// Live returns the number of nodes allocated through this package which
// have not been released by Free.
func Live() int64 {
	return live.Load()
}

func newNode(k Kind) (*Node, error) {
	if allocHook != nil && !allocHook(k) {
		return nil, fmt.Errorf("%w: allocating %s node", ErrOutOfMemory, k)
	}
	live.Add(1)
	return &Node{kind: k}, nil
}

func release(n *Node) {
	n.parent = nil
	n.index = 0
	n.children = nil
	n.keys = nil
	n.value = nil
	n.data = nil
	n.freed = true
	live.Add(-1)
}

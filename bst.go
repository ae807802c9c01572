package bst

import (
	"cmp"
	"errors"
	"strconv"
)

const (
	Forward Direction = iota
	Reverse
)

var (
	ErrNoMoreKeys      = errors.New("There are no more keys in the tree")
	ErrTreeModified    = errors.New("tree was modified during traversal")
	ErrIncomparableKey = errors.New("key cannot be ordered against other keys")
	ErrInvalidTree     = errors.New("tree invariant violated")
)

type (
	tree[K cmp.Ordered] struct {
		size            int
		root            *node[K]
		allowDuplicates bool
		// bumped on every structural change, checked by live iterators
		version uint64
	}

	Direction int

	// lesser holds keys below key; greater holds keys above it, or equal
	// ones when duplicates are allowed.
	node[K cmp.Ordered] struct {
		key     K
		lesser  *node[K]
		greater *node[K]
	}

	iterator[K cmp.Ordered] struct {
		tree    *tree[K]
		dir     Direction
		version uint64
		stack   []*node[K]
	}
)

func newNode[K cmp.Ordered](key K) *node[K] {
	return &node[K]{key: key}
}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Reverse:
		return "Reverse"
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// orderable reports whether key takes part in the total order. NaN is the
// only cmp.Ordered value that does not.
func orderable[K cmp.Ordered](key K) bool {
	return key == key
}

package bst

import (
	"cmp"
	"io"
)

type Tree[K cmp.Ordered] interface {
	Insert(key K) (bool, error)
	Remove(key K) (bool, error)
	Contains(key K) bool
	TraverseForward() Iterator[K]
	TraverseReverse() Iterator[K]
	Keys() []K
	ReverseKeys() []K
	Height() int
	Size() int
	IsEmpty() bool
	Rebalance()
	Check() error
	Fprint(w io.Writer) int
}

type Iterator[K cmp.Ordered] interface {
	HasNext() bool
	Next() (K, error)
}

// New returns an empty tree. When allowDuplicates is false, inserting a key
// that is already present leaves the tree untouched.
func New[K cmp.Ordered](allowDuplicates bool) Tree[K] {
	return &tree[K]{allowDuplicates: allowDuplicates}
}

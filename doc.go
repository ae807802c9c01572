// Package bst is an unbalanced binary search tree over ordered keys with
// on-demand rebalancing to minimal height.
//
// Note: a tree is not safe for concurrent use. Guard each tree with a
// single mutex if it is shared between goroutines. Mutating a tree while
// one of its iterators is live makes that iterator fail with
// ErrTreeModified.
package bst

package bst

import (
	"cmp"
)

func replaceRef[K cmp.Ordered](slot **node[K], n *node[K]) {
	*slot = n
}

func (n *node[K]) isLeaf() bool {
	return n.lesser == nil && n.greater == nil
}

func (n *node[K]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.lesser.height(), n.greater.height())
}

// predecessor returns the link holding the in-order predecessor of n: the
// topmost node on the greater spine of the lesser subtree that carries the
// largest key. Any copies of that key hang below it on its greater side.
// n.lesser must not be nil.
func (n *node[K]) predecessor() **node[K] {
	slot := &n.lesser
	first := slot
	for (*slot).greater != nil {
		next := &(*slot).greater
		if (*next).key != (*slot).key {
			first = next
		}
		slot = next
	}
	return first
}

// leftmostGap returns the empty lesser link at the bottom of the lesser
// spine starting at slot.
func leftmostGap[K cmp.Ordered](slot **node[K]) **node[K] {
	for *slot != nil {
		slot = &(*slot).lesser
	}
	return slot
}

// collect appends the nodes of the subtree in ascending order.
func (n *node[K]) collect(nodes []*node[K]) []*node[K] {
	if n == nil {
		return nodes
	}
	nodes = n.lesser.collect(nodes)
	nodes = append(nodes, n)
	return n.greater.collect(nodes)
}

// build links sorted nodes into a minimal height subtree. The node at
// index len/2 becomes the root of each range, so even ranges lean left.
// A run of equal keys is split at its first member instead, since equal
// keys may only live in the greater subtree.
func build[K cmp.Ordered](nodes []*node[K]) *node[K] {
	if len(nodes) == 0 {
		return nil
	}

	mid := len(nodes) / 2
	for mid > 0 && nodes[mid-1].key == nodes[mid].key {
		mid--
	}
	n := nodes[mid]
	n.lesser = build(nodes[:mid])
	n.greater = build(nodes[mid+1:])
	return n
}

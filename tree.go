package bst

import (
	"strconv"
)

func (t *tree[K]) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *tree[K]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height is 0 for an empty tree and 1 for a lone root.
func (t *tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return t.root.height()
}

// Insert adds key and reports whether a node was created. A key equal to one
// already stored is dropped silently unless the tree allows duplicates, in
// which case it lands in the greater subtree.
func (t *tree[K]) Insert(key K) (bool, error) {
	if !orderable(key) {
		return false, ErrIncomparableKey
	}

	inserted := t.recursiveInsert(&t.root, key)
	if inserted {
		t.size++
		t.version++
	}
	return inserted, nil
}

func (t *tree[K]) recursiveInsert(curNode **node[K], key K) bool {
	curr := *curNode
	if curr == nil {
		replaceRef(curNode, newNode(key))
		return true
	}

	if key < curr.key {
		return t.recursiveInsert(&curr.lesser, key)
	}
	if key == curr.key && !t.allowDuplicates {
		return false
	}
	return t.recursiveInsert(&curr.greater, key)
}

func (t *tree[K]) Contains(key K) bool {
	if t == nil {
		return false
	}

	curr := t.root
	for curr != nil {
		if key == curr.key {
			return true
		}
		if key < curr.key {
			curr = curr.lesser
		} else {
			curr = curr.greater
		}
	}
	return false
}

// Remove deletes one node holding key and reports whether one was found.
func (t *tree[K]) Remove(key K) (bool, error) {
	if !orderable(key) {
		return false, ErrIncomparableKey
	}

	removed := t.recursiveRemove(&t.root, key)
	if !removed {
		return false, nil
	}

	t.size--
	t.version++
	if t.size == 0 {
		t.root = nil
	}
	return true, nil
}

// recursiveRemove walks down holding the parent's link to the current node,
// so the match can be replaced in place without parent pointers.
func (t *tree[K]) recursiveRemove(curNode **node[K], key K) bool {
	curr := *curNode
	if curr == nil {
		return false
	}

	switch {
	case key < curr.key:
		return t.recursiveRemove(&curr.lesser, key)
	case key > curr.key:
		return t.recursiveRemove(&curr.greater, key)
	}

	t.unlink(curNode)
	return true
}

// unlink detaches the node held by slot and splices a replacement into it.
func (t *tree[K]) unlink(slot **node[K]) {
	curr := *slot
	isRoot := slot == &t.root

	switch {
	case curr.isLeaf():
		replaceRef(slot, nil)

	case curr.lesser != nil && (curr.greater != nil || isRoot):
		// the root gives way to its in-order predecessor even with one child
		predSlot := curr.predecessor()
		pred := *predSlot
		replaceRef(predSlot, pred.lesser)

		// copies of pred's key must stay on its greater side, below
		// everything curr.greater holds
		copies := pred.greater

		// read after detaching: pred may have been curr.lesser itself
		pred.lesser = curr.lesser
		pred.greater = curr.greater
		if copies != nil {
			replaceRef(leftmostGap(&pred.greater), copies)
		}
		replaceRef(slot, pred)

	case curr.lesser != nil:
		replaceRef(slot, curr.lesser)

	default:
		replaceRef(slot, curr.greater)
	}

	curr.lesser, curr.greater = nil, nil
}

// Rebalance rebuilds the tree to minimal height, ceil(log2(n+1)), and
// relinks nodes in place, leaving the ascending key order unchanged. When
// duplicates are allowed the bound only holds for distinct keys: equal keys
// may only sit on each other's greater side, so a run of m copies still
// forms a chain m nodes high.
func (t *tree[K]) Rebalance() {
	if t.IsEmpty() {
		return
	}

	log.Tracef("Rebalancing %d keys from height %v", t.size, newLogClosure(func() string {
		return strconv.Itoa(t.root.height())
	}))

	nodes := t.root.collect(make([]*node[K], 0, t.size))
	t.root = build(nodes)
	t.version++

	log.Debugf("Rebalanced %d keys to height %v", t.size, newLogClosure(func() string {
		return strconv.Itoa(t.root.height())
	}))
}

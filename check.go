package bst

import (
	"fmt"
)

// Check walks the whole tree and verifies the ordering invariant under the
// duplicate policy, that no node is reachable twice and that the size counter
// matches the number of nodes. Failures wrap ErrInvalidTree.
func (t *tree[K]) Check() error {
	if (t.root == nil) != (t.size == 0) {
		return fmt.Errorf("%w: root present %t with size %d", ErrInvalidTree, t.root != nil, t.size)
	}

	seen := make(map[*node[K]]struct{}, t.size)
	if err := t.checkNode(t.root, nil, nil, seen); err != nil {
		return err
	}
	if len(seen) != t.size {
		return fmt.Errorf("%w: size %d but %d nodes reachable", ErrInvalidTree, t.size, len(seen))
	}
	return nil
}

// lo is the key of the closest ancestor the subtree hangs greater of, hi of
// the closest one it hangs lesser of.
func (t *tree[K]) checkNode(n *node[K], lo, hi *K, seen map[*node[K]]struct{}) error {
	if n == nil {
		return nil
	}
	if _, ok := seen[n]; ok {
		return fmt.Errorf("%w: node %v reachable twice", ErrInvalidTree, n.key)
	}
	seen[n] = struct{}{}

	if hi != nil && !(n.key < *hi) {
		return fmt.Errorf("%w: key %v not below %v", ErrInvalidTree, n.key, *hi)
	}
	if lo != nil {
		if n.key < *lo || (n.key == *lo && !t.allowDuplicates) {
			return fmt.Errorf("%w: key %v not above %v", ErrInvalidTree, n.key, *lo)
		}
	}

	if err := t.checkNode(n.lesser, lo, &n.key, seen); err != nil {
		return err
	}
	return t.checkNode(n.greater, &n.key, hi, seen)
}

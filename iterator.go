package bst

// TraverseForward returns an iterator over the keys in ascending order.
// Every call starts a new pass from the smallest key.
func (t *tree[K]) TraverseForward() Iterator[K] {
	return t.newIterator(Forward)
}

// TraverseReverse returns an iterator over the keys in descending order.
func (t *tree[K]) TraverseReverse() Iterator[K] {
	return t.newIterator(Reverse)
}

// Keys returns every key in ascending order.
func (t *tree[K]) Keys() []K {
	return t.drain(t.TraverseForward())
}

// ReverseKeys returns every key in descending order.
func (t *tree[K]) ReverseKeys() []K {
	return t.drain(t.TraverseReverse())
}

func (t *tree[K]) drain(it Iterator[K]) []K {
	keys := make([]K, 0, t.Size())
	for it.HasNext() {
		// nothing mutates the tree between calls, so Next cannot fail
		key, _ := it.Next()
		keys = append(keys, key)
	}
	return keys
}

func (t *tree[K]) newIterator(dir Direction) *iterator[K] {
	it := &iterator[K]{
		tree:    t,
		dir:     dir,
		version: t.version,
	}
	it.descend(t.root)
	return it
}

func (it *iterator[K]) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

// Next returns ErrTreeModified once the tree has changed since the iterator
// was created, and ErrNoMoreKeys after the last key.
func (it *iterator[K]) Next() (K, error) {
	var zero K
	if it == nil {
		return zero, ErrNoMoreKeys
	}
	if it.version != it.tree.version {
		return zero, ErrTreeModified
	}
	if !it.HasNext() {
		return zero, ErrNoMoreKeys
	}

	last := len(it.stack) - 1
	cur := it.stack[last]
	it.stack[last] = nil
	it.stack = it.stack[:last]

	it.descend(it.far(cur))
	return cur.key, nil
}

// descend stacks n and every node on the way to its first key in the
// iteration direction.
func (it *iterator[K]) descend(n *node[K]) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = it.near(n)
	}
}

func (it *iterator[K]) near(n *node[K]) *node[K] {
	if it.dir == Reverse {
		return n.greater
	}
	return n.lesser
}

func (it *iterator[K]) far(n *node[K]) *node[K] {
	if it.dir == Reverse {
		return n.lesser
	}
	return n.greater
}

package bst

import (
	"cmp"
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	lesserBranch
	greaterBranch
)

// Fprint writes an ASCII drawing of the tree to w, greater keys on top, and
// returns the depth drawn.
func (t *tree[K]) Fprint(w io.Writer) int {
	return fprintNode(w, t.root, "", rootBranch)
}

func fprintNode[K cmp.Ordered](w io.Writer, n *node[K], prefix string, br branch) int {
	if n == nil {
		return 0
	}

	gd := 0
	if n.greater != nil {
		t := "       "
		if br == lesserBranch {
			t = "|      "
		}
		gd = fprintNode(w, n.greater, prefix+t, greaterBranch)
	}

	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case lesserBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case greaterBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v\n", n.key)

	ld := 0
	if n.lesser != nil {
		t := "       "
		if br == greaterBranch {
			t = "|      "
		}
		ld = fprintNode(w, n.lesser, prefix+t, lesserBranch)
	}

	return 1 + max(gd, ld)
}

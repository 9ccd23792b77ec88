package symtab

import (
	"cmp"
	"fmt"
	"io"
)

// Check verifies symmetric order, subtree sizes and rank/select consistency.
// It writes one line to w for every violated invariant and reports whether
// the tree is sound. A nil w discards the report.
func (t *tree[K, V]) Check(w io.Writer) bool {
	if w == nil {
		w = io.Discard
	}

	ok := true
	if !t.isBST() {
		fmt.Fprintln(w, "Not in symmetric order")
		ok = false
	}
	if !t.isSizeConsistent() {
		fmt.Fprintln(w, "Subtree counts not consistent")
		ok = false
	}
	if !t.isRankConsistent() {
		fmt.Fprintln(w, "Ranks not consistent")
		ok = false
	}
	return ok
}

// isBST reports whether every key lies strictly between the bounds inherited
// from its ancestors. Strict order also rules out shared nodes.
func (t *tree[K, V]) isBST() bool {
	return isBSTHelper(t.root, nil, nil)
}

// isBSTHelper is a helper function of isBST. A nil bound is unconstrained.
func isBSTHelper[K cmp.Ordered, V any](current *node[K, V], lo, hi *K) bool {
	if current == nil {
		return true
	}
	if lo != nil && cmp.Compare(current.key, *lo) <= 0 {
		return false
	}
	if hi != nil && cmp.Compare(current.key, *hi) >= 0 {
		return false
	}
	return isBSTHelper(current.left, lo, &current.key) && isBSTHelper(current.right, &current.key, hi)
}

// isSizeConsistent reports whether every cached size matches its children.
func (t *tree[K, V]) isSizeConsistent() bool {
	return isSizeConsistentHelper(t.root)
}

func isSizeConsistentHelper[K cmp.Ordered, V any](current *node[K, V]) bool {
	if current == nil {
		return true
	}
	if current.size != 1+sizeOf(current.left)+sizeOf(current.right) {
		return false
	}
	return isSizeConsistentHelper(current.left) && isSizeConsistentHelper(current.right)
}

// isRankConsistent reports whether rank(select(i)) == i for every index and
// select(rank(k)) == k for every key.
func (t *tree[K, V]) isRankConsistent() bool {
	for i := 0; i < t.Size(); i++ {
		n := t.selectHelper(t.root, i)
		if n == nil || t.rankHelper(t.root, n.key) != i {
			return false
		}
	}
	for _, key := range t.Keys() {
		n := t.selectHelper(t.root, t.rankHelper(t.root, key))
		if n == nil || cmp.Compare(key, n.key) != 0 {
			return false
		}
	}
	return true
}

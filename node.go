package symtab

import (
	"cmp"
	"reflect"
)

// node is a binary search tree node. left and right are owned exclusively by
// this node; there are no parent links.
type node[K cmp.Ordered, V any] struct {
	key   K
	value V
	left  *node[K, V]
	right *node[K, V]
	size  int // nodes in the subtree rooted here, including itself
}

// newLeafNode creates a node with no children.
func newLeafNode[K cmp.Ordered, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value, size: 1}
}

// Key returns the key stored in the node.
func (n *node[K, V]) Key() K { return n.key }

// Value returns the value stored in the node.
func (n *node[K, V]) Value() V { return n.value }

// Size returns the cached subtree size.
func (n *node[K, V]) Size() int { return sizeOf(n) }

// sizeOf returns the subtree size of n, or 0 for a missing child.
func sizeOf[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.size
}

// resize recomputes the size of n from its children.
func (n *node[K, V]) resize() {
	n.size = 1 + sizeOf(n.left) + sizeOf(n.right)
}

// isLeaf returns whether n has no children.
func (n *node[K, V]) isLeaf() bool { return n.left == nil && n.right == nil }

// minimum returns the leftmost node of the subtree rooted at n.
func (n *node[K, V]) minimum() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// maximum returns the rightmost node of the subtree rooted at n.
func (n *node[K, V]) maximum() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// deleteMin detaches the leftmost node of the subtree rooted at n and returns
// the new subtree root.
func deleteMin[K cmp.Ordered, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	if n.left == nil {
		return n.right
	}
	n.left = deleteMin(n.left)
	n.resize()
	return n
}

// height returns the number of nodes on the longest path from n to a leaf.
func height[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// isAbsentKey reports whether key is outside the total order of K (NaN).
func isAbsentKey[K cmp.Ordered](key K) bool {
	return key != key
}

// isAbsentValue reports whether v is a nil interface, pointer, map, slice,
// func or channel.
func isAbsentValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

package symtab

import (
	"cmp"

	"github.com/pkg/errors"
)

// tree - unbalanced binary search tree with subtree sizes.
type tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
}

// newTree returns a tree with 0 nodes.
func newTree[K cmp.Ordered, V any]() *tree[K, V] {
	return &tree[K, V]{root: nil}
}

// Put inserts the passed in value indexed by the passed in key. A key that is
// already present is rejected and the tree is left unchanged.
func (t *tree[K, V]) Put(key K, value V) error {
	if isAbsentKey(key) {
		return errors.Wrap(ErrInvalidArgument, "put: key is not ordered")
	}
	if isAbsentValue(value) {
		return errors.Wrapf(ErrInvalidArgument, "put %v: nil value", key)
	}
	root, err := t.putHelper(t.root, key, value)
	if err != nil {
		return err
	}
	t.root = root
	return nil
}

// putHelper is a helper function for Put. It returns the new root of the
// subtree rooted at current.
func (t *tree[K, V]) putHelper(current *node[K, V], key K, value V) (*node[K, V], error) {
	if current == nil {
		return newLeafNode(key, value), nil
	}

	switch c := cmp.Compare(key, current.key); {
	case c < 0:
		left, err := t.putHelper(current.left, key, value)
		if err != nil {
			return nil, err
		}
		current.left = left
	case c > 0:
		right, err := t.putHelper(current.right, key, value)
		if err != nil {
			return nil, err
		}
		current.right = right
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "put %v: duplicate key", key)
	}

	current.resize()
	return current, nil
}

// Get returns the value associated with the passed in key.
func (t *tree[K, V]) Get(key K) (V, error) {
	var zero V
	if isAbsentKey(key) {
		return zero, errors.Wrap(ErrInvalidArgument, "get: key is not ordered")
	}
	n := t.searchHelper(t.root, key)
	if n == nil {
		return zero, errors.Wrapf(ErrNotFound, "get %v", key)
	}
	return n.value, nil
}

// Contains returns whether the passed in key is present. A missing key is
// not an error.
func (t *tree[K, V]) Contains(key K) (bool, error) {
	if isAbsentKey(key) {
		return false, errors.Wrap(ErrInvalidArgument, "contains: key is not ordered")
	}
	return t.searchHelper(t.root, key) != nil, nil
}

// searchHelper is a helper function for Get and Contains. It returns the node
// holding key, or nil if not found.
func (t *tree[K, V]) searchHelper(current *node[K, V], key K) *node[K, V] {
	if current == nil {
		return nil
	}
	switch c := cmp.Compare(key, current.key); {
	case c < 0:
		return t.searchHelper(current.left, key)
	case c > 0:
		return t.searchHelper(current.right, key)
	default:
		return current
	}
}

// Delete removes the passed in key and its value from the tree.
func (t *tree[K, V]) Delete(key K) error {
	if isAbsentKey(key) {
		return errors.Wrap(ErrInvalidArgument, "delete: key is not ordered")
	}
	root, err := t.deleteHelper(t.root, key)
	if err != nil {
		return err
	}
	t.root = root
	return nil
}

// deleteHelper is a helper function of Delete. It returns the new root of the
// subtree rooted at current.
func (t *tree[K, V]) deleteHelper(current *node[K, V], key K) (*node[K, V], error) {
	if current == nil {
		return nil, errors.Wrapf(ErrNotFound, "delete %v", key)
	}

	switch c := cmp.Compare(key, current.key); {
	case c < 0:
		left, err := t.deleteHelper(current.left, key)
		if err != nil {
			return nil, err
		}
		current.left = left
	case c > 0:
		right, err := t.deleteHelper(current.right, key)
		if err != nil {
			return nil, err
		}
		current.right = right
	default:
		if current.left == nil {
			return current.right, nil
		}
		if current.right == nil {
			return current.left, nil
		}

		// Hibbard deletion: the successor takes over both subtrees.
		removed := current
		current = removed.right.minimum()
		current.right = deleteMin(removed.right)
		current.left = removed.left
	}

	current.resize()
	return current, nil
}

// IsEmpty returns whether the tree holds no keys.
func (t *tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Size returns the number of keys in the tree.
func (t *tree[K, V]) Size() int {
	return sizeOf(t.root)
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *tree[K, V]) Height() int {
	return height(t.root)
}

// Keys returns all keys in ascending order.
func (t *tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Size())
	t.eachHelper(t.root, func(n Node[K, V]) {
		keys = append(keys, n.Key())
	})
	return keys
}

// Each iterates the whole tree in key order,
// and will call the given callback for each tree node.
func (t *tree[K, V]) Each(callback Callback[K, V]) {
	t.eachHelper(t.root, callback)
}

// eachHelper is a helper function of Each.
func (t *tree[K, V]) eachHelper(current *node[K, V], callback Callback[K, V]) {
	if current == nil {
		return
	}
	t.eachHelper(current.left, callback)
	callback(current)
	t.eachHelper(current.right, callback)
}

// Min returns the smallest key.
func (t *tree[K, V]) Min() (K, error) {
	if t.root == nil {
		var zero K
		return zero, errors.Wrap(ErrNotFound, "min: empty table")
	}
	return t.root.minimum().key, nil
}

// Max returns the largest key.
func (t *tree[K, V]) Max() (K, error) {
	if t.root == nil {
		var zero K
		return zero, errors.Wrap(ErrNotFound, "max: empty table")
	}
	return t.root.maximum().key, nil
}

// Rank returns the number of keys strictly less than key. key itself need
// not be present.
func (t *tree[K, V]) Rank(key K) (int, error) {
	if isAbsentKey(key) {
		return 0, errors.Wrap(ErrInvalidArgument, "rank: key is not ordered")
	}
	return t.rankHelper(t.root, key), nil
}

// rankHelper is a helper function for Rank.
func (t *tree[K, V]) rankHelper(current *node[K, V], key K) int {
	if current == nil {
		return 0
	}
	switch c := cmp.Compare(key, current.key); {
	case c < 0:
		return t.rankHelper(current.left, key)
	case c > 0:
		return 1 + sizeOf(current.left) + t.rankHelper(current.right, key)
	default:
		return sizeOf(current.left)
	}
}

// Select returns the key with exactly rank smaller keys.
func (t *tree[K, V]) Select(rank int) (K, error) {
	if rank < 0 || rank >= t.Size() {
		var zero K
		return zero, errors.Wrapf(ErrInvalidArgument, "select %d: rank out of range [0, %d)", rank, t.Size())
	}
	return t.selectHelper(t.root, rank).key, nil
}

// selectHelper is a helper function for Select. It returns nil only when the
// subtree sizes are inconsistent.
func (t *tree[K, V]) selectHelper(current *node[K, V], rank int) *node[K, V] {
	if current == nil {
		return nil
	}
	leftSize := sizeOf(current.left)
	switch {
	case leftSize > rank:
		return t.selectHelper(current.left, rank)
	case leftSize < rank:
		return t.selectHelper(current.right, rank-leftSize-1)
	default:
		return current
	}
}

package symtab

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// chain builds a right-leaning path of keys with consistent sizes.
func chain(keys ...int) *node[int, int] {
	var root *node[int, int]
	for i := len(keys) - 1; i >= 0; i-- {
		n := newLeafNode(keys[i], keys[i])
		n.right = root
		n.resize()
		root = n
	}
	return root
}

func TestLeafNode(t *testing.T) {
	n := newLeafNode("foo", 42)

	assert.Equal(t, "foo", n.Key())
	assert.Equal(t, 42, n.Value())
	assert.Equal(t, 1, n.Size())
	assert.True(t, n.isLeaf())
}

func TestSizeOfMissingChild(t *testing.T) {
	var n *node[string, int]

	assert.Zero(t, sizeOf(n))
	assert.Zero(t, n.Size())
}

func TestResize(t *testing.T) {
	n := newLeafNode(5, 5)
	n.left = newLeafNode(3, 3)
	n.right = chain(7, 8, 9)

	n.resize()
	assert.Equal(t, 5, n.size)

	n.left = nil
	n.resize()
	assert.Equal(t, 4, n.size)
	assert.False(t, n.isLeaf())
}

func TestMinimumMaximum(t *testing.T) {
	n := newLeafNode(5, 5)
	n.left = newLeafNode(3, 3)
	n.left.left = newLeafNode(1, 1)
	n.right = newLeafNode(8, 8)
	n.right.right = newLeafNode(9, 9)

	assert.Equal(t, 1, n.minimum().key)
	assert.Equal(t, 9, n.maximum().key)
	assert.Equal(t, 8, n.right.minimum().key)

	var empty *node[int, int]
	assert.Nil(t, empty.minimum())
	assert.Nil(t, empty.maximum())
}

func TestDeleteMin(t *testing.T) {
	n := newLeafNode(5, 5)
	n.left = newLeafNode(3, 3)
	n.left.right = newLeafNode(4, 4)
	n.left.resize()
	n.resize()

	n = deleteMin(n)
	assert.Equal(t, 5, n.key)
	assert.Equal(t, 4, n.left.key)
	assert.Equal(t, 2, n.size)

	n = deleteMin(n)
	assert.Equal(t, 5, n.key)
	assert.Nil(t, n.left)
	assert.Equal(t, 1, n.size)

	assert.Nil(t, deleteMin(n))
}

func TestHeight(t *testing.T) {
	assert.Zero(t, height[int, int](nil))
	assert.Equal(t, 1, height(newLeafNode(1, 1)))
	assert.Equal(t, 4, height(chain(1, 2, 3, 4)))
}

func TestIsAbsentKey(t *testing.T) {
	assert.True(t, isAbsentKey(math.NaN()))
	assert.False(t, isAbsentKey(math.Inf(1)))
	assert.False(t, isAbsentKey(0.0))
	assert.False(t, isAbsentKey(""))
	assert.False(t, isAbsentKey(0))
}

func TestIsAbsentValue(t *testing.T) {
	var p *int
	var s []byte
	var m map[string]int
	var f func()
	var e error

	assert.True(t, isAbsentValue(nil))
	assert.True(t, isAbsentValue(p))
	assert.True(t, isAbsentValue(s))
	assert.True(t, isAbsentValue(m))
	assert.True(t, isAbsentValue(f))
	assert.True(t, isAbsentValue(e))

	assert.False(t, isAbsentValue(0))
	assert.False(t, isAbsentValue(""))
	assert.False(t, isAbsentValue([]byte{}))
	assert.False(t, isAbsentValue(new(int)))
}

package symtab

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHealthyTree(t *testing.T) {
	tree := newTree[string, int]()
	putAll(t, tree, "j", "e", "p", "c", "s", "a", "z")

	var out bytes.Buffer
	assert.True(t, tree.Check(&out))
	assert.Empty(t, out.String())
}

func TestCheckDetectsSizeCorruption(t *testing.T) {
	tree := newTree[string, int]()
	putAll(t, tree, "j", "e", "p")
	tree.root.size = 5

	var out bytes.Buffer
	assert.False(t, tree.Check(&out))
	assert.True(t, tree.isBST())
	assert.False(t, tree.isSizeConsistent())
	assert.Contains(t, out.String(), "Subtree counts not consistent")
	assert.NotContains(t, out.String(), "Not in symmetric order")
}

func TestCheckDetectsOrderViolationAgainstAncestor(t *testing.T) {
	tree := newTree[string, int]()
	putAll(t, tree, "j", "e", "p", "g")

	// g sits at e.right; k is still greater than its parent e but not less
	// than the root j.
	tree.root.left.right.key = "k"

	var out bytes.Buffer
	assert.False(t, tree.Check(&out))
	assert.False(t, tree.isBST())
	assert.True(t, tree.isSizeConsistent())
	assert.Contains(t, out.String(), "Not in symmetric order")
}

func TestCheckDetectsDuplicateKeys(t *testing.T) {
	tree := newTree[string, int]()
	putAll(t, tree, "j", "e")
	tree.root.left.key = "j"

	assert.False(t, tree.isBST())
	assert.False(t, tree.Check(nil))
}

func TestCheckRankConsistency(t *testing.T) {
	tree := newTree[int, int]()
	for _, k := range []int{8, 4, 12, 2, 6, 10, 14} {
		assert.NoError(t, tree.Put(k, k))
	}
	assert.True(t, tree.isRankConsistent())

	// A subtree missing from the counts makes select disagree with rank.
	tree.root.left.size = 1
	assert.False(t, tree.isRankConsistent())
}

func TestCheckEmptyTree(t *testing.T) {
	tree := newTree[int, int]()

	var out bytes.Buffer
	assert.True(t, tree.Check(&out))
	assert.Empty(t, out.String())
}

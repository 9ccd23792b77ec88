package symtab

import (
	"cmp"
	"fmt"

	"github.com/xlab/treeprint"
)

// String renders the shape of the tree, one node per line labelled with its
// key and subtree size. Left and right children are tagged L and R; a missing
// sibling of a present child is shown as "-".
func (t *tree[K, V]) String() string {
	if t.root == nil {
		return treeprint.NewWithRoot("(empty)").String()
	}
	out := treeprint.NewWithRoot(nodeLabel(t.root))
	renderHelper(t.root, out)
	return out.String()
}

// renderHelper is a helper function of String.
func renderHelper[K cmp.Ordered, V any](current *node[K, V], branch treeprint.Tree) {
	if current.isLeaf() {
		return
	}
	for _, child := range []struct {
		side string
		n    *node[K, V]
	}{{"L", current.left}, {"R", current.right}} {
		if child.n == nil {
			branch.AddMetaNode(child.side, "-")
			continue
		}
		renderHelper(child.n, branch.AddMetaBranch(child.side, nodeLabel(child.n)))
	}
}

func nodeLabel[K cmp.Ordered, V any](n *node[K, V]) string {
	return fmt.Sprintf("%v (%d)", n.key, n.size)
}

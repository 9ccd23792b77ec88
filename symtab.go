package symtab

import (
	"cmp"
	"io"

	"github.com/pkg/errors"
)

// Errors returned by the table. Returned errors wrap one of these and can be
// matched with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("no such key")
)

// Node - read-only view of a tree node handed to Each callbacks.
type Node[K cmp.Ordered, V any] interface {
	Key() K
	Value() V
	// Size is the number of nodes in the subtree rooted at this node.
	Size() int
}

// Callback - callback function that is passed in Each.
type Callback[K cmp.Ordered, V any] func(node Node[K, V])

// SymbolTable - ordered symbol table interface.
//
// Keys are unique; Put rejects a key that is already present instead of
// replacing its value. The table is backed by an unbalanced binary search
// tree, so lookups, updates and order statistics cost O(h) where h is the
// current height. It is not safe for concurrent use.
type SymbolTable[K cmp.Ordered, V any] interface {
	Put(key K, value V) error
	Get(key K) (V, error)
	Delete(key K) error
	Contains(key K) (bool, error)
	IsEmpty() bool
	Size() int
	Keys() []K
	Each(cb Callback[K, V])
	Min() (K, error)
	Max() (K, error)
	Rank(key K) (int, error)
	Select(rank int) (K, error)
	Height() int
	Check(w io.Writer) bool
	String() string
}

// New - creates a new empty symbol table.
func New[K cmp.Ordered, V any]() SymbolTable[K, V] {
	return newTree[K, V]()
}

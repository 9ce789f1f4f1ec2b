package searchtree

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables holding
  rebuilt incarnations of nodes.

- A Tree is never empty: it carries at least its own node. Absence of a (sub-)tree is
  expressed one level up, as an option.Option[Tree[T]] holding nothing. This keeps
  every Tree method total over its receiver.

- We use a programming-style reminiscent of functional programming: every operation is
  a pure function from an immutable input tree to a new immutable output value.

*/

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/npillmayer/persistent/option"
)

// Tree is a persistent ordered binary search tree. A Tree value stands for the whole
// subtree rooted at its node: a payload value, two optional children, and cached
// size/height bookkeeping.
//
// The ordering invariant is the usual one: values in the left subtree are strictly
// smaller than the node's value, values in the right subtree are greater or equal
// (duplicates are kept and live in the right subtree).
//
// Trees are immutable once constructed. Deriving a new tree from an existing one
// never changes anything observable about the existing one, and both remain valid
// and independently usable. Concurrent readers need no locking.
type Tree[T constraints.Ordered] struct {
	value  T
	left   option.Option[Tree[T]]
	right  option.Option[Tree[T]]
	size   int
	height int
}

// New creates a single-node tree containing value.
func New[T constraints.Ordered](value T) Tree[T] {
	return Tree[T]{value: value, size: 1, height: 1}
}

// --- API -------------------------------------------------------------------

// Value returns the payload of the root node of t.
func (t Tree[T]) Value() T {
	return t.value
}

// Left returns the left child of t, which may be empty. No mutation of t is
// possible through the returned option.
func (t Tree[T]) Left() option.Option[Tree[T]] {
	return t.left
}

// Right returns the right child of t, which may be empty.
func (t Tree[T]) Right() option.Option[Tree[T]] {
	return t.right
}

// IsLeaf returns true iff t has neither a left nor a right child.
func (t Tree[T]) IsLeaf() bool {
	return t.left.IsNone() && t.right.IsNone()
}

// Size returns the number of values contained in t, including duplicates.
// Size is cached per node, making this O(1).
func (t Tree[T]) Size() int {
	return t.size
}

// Height returns the maximum node depth of t. A single-node tree has height 1.
// Height is cached per node, making this O(1).
func (t Tree[T]) Height() int {
	return t.height
}

// Min returns the smallest value contained in t, i.e. the value of the
// leftmost node.
func (t Tree[T]) Min() T {
	if t.left.IsSome() {
		return t.left.Ref().Min()
	}
	return t.value
}

// Max returns the greatest value contained in t, i.e. the value of the
// rightmost node.
func (t Tree[T]) Max() T {
	if t.right.IsSome() {
		return t.right.Ref().Max()
	}
	return t.value
}

// Contains returns true if value is contained in t.
func (t Tree[T]) Contains(value T) bool {
	switch {
	case value == t.value:
		return true
	case value < t.value:
		if t.left.IsSome() {
			return t.left.Ref().Contains(value)
		}
	default:
		if t.right.IsSome() {
			return t.right.Ref().Contains(value)
		}
	}
	return false
}

// Insert returns a new tree containing all values of t plus value, leaving t
// unchanged. Duplicates are permitted and retained: inserting a value already
// present grows the tree by one node. Only nodes on the root-to-insertion
// path are rebuilt; every other subtree is shared between t and the new tree.
// Each rebuilt node is rebalanced bottom-up.
func (t Tree[T]) Insert(value T) Tree[T] {
	tracer().Debugf("insert %v at node %v", value, t.value)
	if value < t.value { // strictly smaller values go left
		if t.left.IsNone() {
			return makeNode(t.value, some(New(value)), t.right).rebalance()
		}
		cow := t.left.Ref().Insert(value)
		return makeNode(t.value, some(cow), t.right).rebalance()
	}
	// ties go right: a duplicate is glued to the right subtree
	if t.right.IsNone() {
		return makeNode(t.value, t.left, some(New(value))).rebalance()
	}
	cow := t.right.Ref().Insert(value)
	return makeNode(t.value, t.left, some(cow)).rebalance()
}

// Remove returns a new tree with one occurrence of value removed, leaving t
// unchanged. It returns None iff the removal empties the tree, which can only
// happen when t consists of a single node holding value. Removing a value not
// contained in t is a no-op, not an error: the result is a tree equal to t.
//
// A removed inner node is replaced by its in-order predecessor (the maximum
// of its left subtree) if a left child exists, and by its in-order successor
// (the minimum of its right subtree) otherwise. All rebuilt ancestors are
// rebalanced bottom-up.
func (t Tree[T]) Remove(value T) option.Option[Tree[T]] {
	tracer().Debugf("remove %v at node %v", value, t.value)
	switch {
	case value == t.value:
		if t.IsLeaf() {
			return option.None[Tree[T]]()
		}
		if t.left.IsSome() {
			// splice in the in-order predecessor as the new subtree root
			rest, donor := t.left.Ref().popMax()
			return some(makeNode(donor.value, rest, t.right).rebalance())
		}
		// no left child: splice in the in-order successor
		assertThat(t.right.IsSome(), "non-leaf node misses both children")
		rest, donor := t.right.Ref().popMin()
		return some(makeNode(donor.value, t.left, rest).rebalance())
	case value < t.value:
		if t.left.IsNone() {
			return some(t) // not present
		}
		cow := t.left.Ref().Remove(value)
		return some(makeNode(t.value, cow, t.right).rebalance())
	default:
		if t.right.IsNone() {
			return some(t) // not present
		}
		cow := t.right.Ref().Remove(value)
		return some(makeNode(t.value, t.left, cow).rebalance())
	}
}

// IsBalanced returns true if the heights of the two child subtrees of the
// root node differ by at most one. This is a shallow check at the root only;
// it does not verify the balance invariant for every node of t.
func (t Tree[T]) IsBalanced() bool {
	lh, rh := heightOf(t.left), heightOf(t.right)
	return lh <= rh+1 && rh <= lh+1
}

// Equal returns true if t and other contain the same values in the same
// order, i.e. their sizes match and their in-order sequences are element-wise
// equal. Equality is independent of tree shape: differently balanced trees
// holding the same multiset of values are equal.
func (t Tree[T]) Equal(other Tree[T]) bool {
	if t.size != other.size {
		return false
	}
	it, jt := t.Iterator(), other.Iterator()
	for {
		v, ok := it.Next()
		if !ok {
			return true
		}
		w, _ := jt.Next() // sizes match, so jt yields in lockstep
		if v != w {
			return false
		}
	}
}

func (t Tree[T]) String() string {
	var sb strings.Builder
	sb.WriteRune('[')
	t.Each(func(value T) {
		if sb.Len() > 1 {
			sb.WriteRune(' ')
		}
		sb.WriteString(fmt.Sprintf("%v", value))
	})
	sb.WriteRune(']')
	return sb.String()
}

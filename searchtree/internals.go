package searchtree

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/npillmayer/persistent/option"
)

// makeNode builds a fresh node over existing child subtrees, recomputing the
// cached size and height from the children's cached values. The children are
// shared, not copied.
func makeNode[T constraints.Ordered](value T, left, right option.Option[Tree[T]]) Tree[T] {
	return Tree[T]{
		value:  value,
		left:   left,
		right:  right,
		size:   1 + sizeOf(left) + sizeOf(right),
		height: 1 + max(heightOf(left), heightOf(right)),
	}
}

// some wraps a tree in an option. The tree is copied into the option, which
// from then on shares it with every tree derived from it.
func some[T constraints.Ordered](t Tree[T]) option.Option[Tree[T]] {
	return option.Some(t)
}

// sizeOf treats an absent subtree as size 0.
func sizeOf[T constraints.Ordered](t option.Option[Tree[T]]) int {
	if t.IsNone() {
		return 0
	}
	return t.Ref().size
}

// heightOf treats an absent subtree as height 0.
func heightOf[T constraints.Ordered](t option.Option[Tree[T]]) int {
	if t.IsNone() {
		return 0
	}
	return t.Ref().height
}

// --- Balancing -------------------------------------------------------------

// rebalance checks the AVL balance invariant at the root of t and corrects a
// violation with a single rotation. Insert and Remove funnel every rebuilt
// node through rebalance, so the invariant is re-established bottom-up along
// the whole rebuilt path.
func (t Tree[T]) rebalance() Tree[T] {
	lh, rh := heightOf(t.left), heightOf(t.right)
	switch {
	case lh > rh+1:
		return t.rotateRight()
	case rh > lh+1:
		return t.rotateLeft()
	}
	return t
}

// rotateRight corrects a left-heavy node: the left child becomes the new
// subtree root and the former root is rebuilt as its right child, adopting
// the pivot's former right subtree. All unchanged grandchildren are shared,
// not copied.
//
//        t                  p
//       / \                / \
//      p   C     ⟹       A   t'
//     / \                    / \
//    A   B                  B   C
//
func (t Tree[T]) rotateRight() Tree[T] {
	if t.left.IsNone() {
		return t // nothing to rotate around
	}
	pivot := t.left.Ref()
	tracer().Debugf("rotate right around %v, pivot %v", t.value, pivot.value)
	cow := makeNode(t.value, pivot.right, t.right)
	return makeNode(pivot.value, pivot.left, some(cow))
}

// rotateLeft is the mirror image of rotateRight, correcting a right-heavy node.
func (t Tree[T]) rotateLeft() Tree[T] {
	if t.right.IsNone() {
		return t // nothing to rotate around
	}
	pivot := t.right.Ref()
	tracer().Debugf("rotate left around %v, pivot %v", t.value, pivot.value)
	cow := makeNode(t.value, t.left, pivot.left)
	return makeNode(pivot.value, some(cow), pivot.right)
}

// --- Donor extraction ------------------------------------------------------

// popMax splits t into its rightmost node (the maximum) and the remaining
// subtree, rebuilding and rebalancing the nodes along the right spine. The
// maximum node's own left subtree stays behind in the remainder.
func (t Tree[T]) popMax() (option.Option[Tree[T]], Tree[T]) {
	if t.right.IsSome() {
		rest, donor := t.right.Ref().popMax()
		cow := makeNode(t.value, t.left, rest).rebalance()
		return some(cow), donor
	}
	return t.left, t // t is the maximum
}

// popMin is the mirror image of popMax, splitting off the leftmost node.
func (t Tree[T]) popMin() (option.Option[Tree[T]], Tree[T]) {
	if t.left.IsSome() {
		rest, donor := t.left.Ref().popMin()
		cow := makeNode(t.value, rest, t.right).rebalance()
		return some(cow), donor
	}
	return t.right, t // t is the minimum
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("searchtree: "+msg, msgargs...)
		panic(msg)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package searchtree

import "golang.org/x/exp/constraints"

// Iterator walks a tree in-order, yielding values in ascending order.
// Iterators are created by Tree.Iterator and are independent of each other:
// starting a new iterator never disturbs a running one, and the underlying
// tree is never locked or modified.
type Iterator[T constraints.Ordered] struct {
	stack []*Tree[T]
}

// Iterator returns a fresh in-order iterator positioned before the smallest
// value of t. Each call starts a new traversal from scratch.
func (t Tree[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{stack: make([]*Tree[T], 0, t.height)}
	it.descend(&t)
	return it
}

// descend pushes node and its whole left spine onto the stack, so that the
// smallest not-yet-visited value ends up on top.
func (it *Iterator[T]) descend(node *Tree[T]) {
	for {
		it.stack = append(it.stack, node)
		if node.left.IsNone() {
			return
		}
		node = node.left.Ref()
	}
}

// Next returns the next value of the traversal, or the zero value of T and
// false when the traversal is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if len(it.stack) == 0 {
		var none T
		return none, false
	}
	node := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if node.right.IsSome() {
		it.descend(node.right.Ref())
	}
	return node.value, true
}

// Each calls f for every value of t, in ascending order.
func (t Tree[T]) Each(f func(value T)) {
	it := t.Iterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		f(v)
	}
}

// Values collects the in-order traversal of t into a slice, sorted ascending.
func (t Tree[T]) Values() []T {
	values := make([]T, 0, t.size)
	t.Each(func(value T) {
		values = append(values, value)
	})
	return values
}

/*
Package searchtree implements a persistent (immutable) ordered binary search tree.

Every mutating operation returns a new tree and leaves the input tree
untouched. New incarnations share every subtree not located on the
root-to-change path with their ancestors (structural sharing), making
copies cheap in terms of space- and time-complexity. Trees self-balance
with AVL-style rotations.

A good introduction to binary search trees and their algorithms may be found at
https://algorithmtutor.com/Data-Structures/Tree/Binary-Search-Trees/.
*/
package searchtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persistent.searchtree'.
func tracer() tracing.Trace {
	return tracing.Select("persistent.searchtree")
}

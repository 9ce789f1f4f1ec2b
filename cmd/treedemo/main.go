// Command treedemo builds a small persistent search tree and walks through the
// API: insert, remove, min/max, balance queries and in-order traversal. Older
// incarnations of the tree stay alive and are printed at the end to show that
// deriving new trees leaves them untouched.
package main

import (
	"fmt"

	tp "github.com/xlab/treeprint"

	"github.com/npillmayer/persistent/option"
	"github.com/npillmayer/persistent/searchtree"
)

func main() {
	tree := option.Some(searchtree.New(5))
	fmt.Printf("tree size (should be 1): %d\n", tree.Ref().Size())

	mod := option.Some(tree.Ref().Insert(4))
	fmt.Printf("mod (size should be 2): %d\n", mod.Ref().Size())
	printValues(mod)
	mod = option.Some(mod.Ref().Insert(7))
	mod = option.Some(mod.Ref().Insert(10))
	mod = option.Some(mod.Ref().Insert(0))

	fmt.Println("mod")
	printValues(mod)
	fmt.Println()
	fmt.Println("STATS:")
	fmt.Printf("size: %d height: %d\n", mod.Ref().Size(), mod.Ref().Height())
	fmt.Printf("min: %d\n", mod.Ref().Min())
	fmt.Printf("max: %d\n", mod.Ref().Max())
	fmt.Printf("balanced: %v\n", mod.Ref().IsBalanced())
	fmt.Printf("shape:\n%s\n", printShape(mod))

	fmt.Println("removed (5):")
	printValues(mod.Ref().Remove(5))
	fmt.Println("removed (7):")
	printValues(mod.Ref().Remove(7))
	fmt.Println("removed (0):")
	printValues(mod.Ref().Remove(0))
	fmt.Println("removed (3: non-elem):")
	printValues(mod.Ref().Remove(3))

	fmt.Println("same?")
	printValues(mod)

	fmt.Printf("tree contains 5? %v\n", mod.Ref().Contains(5))
	fmt.Printf("tree contains 3? %v\n", mod.Ref().Contains(3))

	fmt.Println("original tree is same?")
	printValues(tree)
}

// printValues prints the values of a possibly-absent tree in-order, one per line.
func printValues(tree option.Option[searchtree.Tree[int]]) {
	if tree.IsNone() {
		return
	}
	printValues(tree.Ref().Left())
	fmt.Println(tree.Ref().Value())
	printValues(tree.Ref().Right())
}

// printShape renders the shape of a tree, not just its in-order contents.
func printShape(tree option.Option[searchtree.Tree[int]]) string {
	p := tp.New()
	addNodes(p, tree)
	return p.String()
}

func addNodes(p tp.Tree, tree option.Option[searchtree.Tree[int]]) {
	if tree.IsNone() {
		return
	}
	node := tree.Ref()
	if node.IsLeaf() {
		p.AddNode(fmt.Sprintf("%d", node.Value()))
		return
	}
	branch := p.AddBranch(fmt.Sprintf("%d", node.Value()))
	addNodes(branch, node.Left())
	addNodes(branch, node.Right())
}

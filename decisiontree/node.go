// SPDX-License-Identifier: MIT

package decisiontree

// node is either *leaf or *split; the unexported method closes the set.
type node interface{ isNode() }

// leaf answers a fixed label code.
type leaf struct {
	answer int
}

// split routes on one feature. children[v] handles feature value v;
// answer is the plurality label of the rows that reached this node.
type split struct {
	feature  int
	answer   int
	children []node
}

func (*leaf) isNode()  {}
func (*split) isNode() {}

// depth counts split levels on the longest root-to-leaf path.
func depth(n node) int {
	switch n := n.(type) {
	case *split:
		deepest := 0
		for _, c := range n.children {
			deepest = max(deepest, depth(c))
		}

		return deepest + 1
	default:
		return 0
	}
}

// leaves counts terminal nodes.
func leaves(n node) int {
	switch n := n.(type) {
	case *split:
		total := 0
		for _, c := range n.children {
			total += leaves(c)
		}

		return total
	default:
		return 1
	}
}

package cfg

import (
	"strings"
)

// Node is a node of a parse tree under construction. Nodes own their
// children; a node is never shared between trees.
type Node struct {
	symbol   *Symbol
	children []*Node
	rule     int // serial of the rule which expanded or produced this node, -1 for leaves
}

func newLeaf(sym *Symbol) *Node {
	return &Node{symbol: sym, rule: -1}
}

// Symbol returns the grammar symbol of the node.
func (n *Node) Symbol() *Symbol {
	return n.symbol
}

// Children returns the children of a node, left to right. Clients must not
// modify the slice.
func (n *Node) Children() []*Node {
	return n.children
}

// RuleSerial returns the serial of the rule which expanded (derivation) or
// produced (reduction) this node, or -1 if the node is a leaf.
func (n *Node) RuleSerial() int {
	return n.rule
}

// IsLeaf is true for nodes which have not been subject to a rule. Nodes
// resulting from epsilon-rules have no children, but are not leaves.
func (n *Node) IsLeaf() bool {
	return n.rule < 0
}

// Leaves collects the leaves of the tree rooted at n, left to right.
// For a tree built by derivations only, this is the current sentential form.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	var collect func(*Node)
	collect = func(node *Node) {
		if node.IsLeaf() {
			leaves = append(leaves, node)
			return
		}
		for _, ch := range node.children {
			collect(ch)
		}
	}
	collect(n)
	return leaves
}

// WalkTree returns a fully bracketed representation of the tree rooted at n,
// e.g.
//
//    [A[M[V[i]]][+][M[V[i]]]]
//
func (n *Node) WalkTree() string {
	var b strings.Builder
	n.walk(&b)
	return b.String()
}

func (n *Node) walk(b *strings.Builder) {
	b.WriteByte('[')
	b.WriteString(n.symbol.Name())
	for _, ch := range n.children {
		ch.walk(b)
	}
	b.WriteByte(']')
}

func (n *Node) String() string {
	if n == nil {
		return "[]"
	}
	return n.WalkTree()
}

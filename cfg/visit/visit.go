package visit

import (
	"github.com/npillmayer/sentential"
	"github.com/npillmayer/sentential/cfg"
)

// RuleNode represents a node occuring during a parse tree walk.
type RuleNode struct {
	node  *cfg.Node
	span  sentential.Span
	Value interface{} // user-defined value of a node
}

// Symbol returns the grammar symbol a RuleNode refers to.
func (rnode *RuleNode) Symbol() *cfg.Symbol {
	return rnode.node.Symbol()
}

// Node returns the parse tree node a RuleNode refers to.
func (rnode *RuleNode) Node() *cfg.Node {
	return rnode.node
}

// Span returns the span of leaves this node covers.
func (rnode *RuleNode) Span() sentential.Span {
	return rnode.span
}

// A Cursor is a mark within a parse tree, from where a tree walk will start.
type Cursor struct {
	start *cfg.Node
	spans map[*cfg.Node]sentential.Span
}

// SetCursor sets up a cursor at a given tree node. Returns nil if root is nil.
//
// Leaf positions are counted from the leftmost leaf below root, which is
// position 0.
func SetCursor(root *cfg.Node) *Cursor {
	if root == nil {
		return nil
	}
	c := &Cursor{
		start: root,
		spans: make(map[*cfg.Node]sentential.Span),
	}
	c.measure(root, 0)
	return c
}

// measure assigns spans to all nodes of a sub-tree, where pos is the number
// of leaves left of node.
func (c *Cursor) measure(node *cfg.Node, pos uint64) sentential.Span {
	span := sentential.Span{pos, pos}
	if node.IsLeaf() {
		span[1] = pos + 1
	}
	for _, ch := range node.Children() {
		span = span.Extend(c.measure(ch, span.To()))
	}
	c.spans[node] = span
	return span
}

// TopDown traverses a sub-tree top-down, applying Listener-methods for all nodes
// encountered. It returns a user-defined value, calculated by the listener.
func (c *Cursor) TopDown(listener Listener, dir Direction, breakmode Breakmode) interface{} {
	tracer().Debugf("TopDown starting at node %v", c.start.Symbol())
	return c.traverseTopDown(c.rnode(c.start), listener, dir, breakmode, 0)
}

func (c *Cursor) rnode(node *cfg.Node) *RuleNode {
	return &RuleNode{node: node, span: c.spans[node]}
}

func (c *Cursor) traverseTopDown(current *RuleNode, listener Listener, dir Direction,
	breakmode Breakmode, level int) interface{} {
	//
	node := current.node
	if node.IsLeaf() {
		ctxt := makeCtxt(current.span, level, -1)
		return listener.Leaf(node.Symbol(), ctxt)
	}
	tracer().Debugf(">>> %s", node.Symbol())
	children := node.Children()
	rhsNodes := make([]*RuleNode, len(children))
	for i, ch := range children {
		rhsNodes[i] = c.rnode(ch)
	}
	ctxt := makeCtxt(current.span, level, node.RuleSerial())
	doContinue := listener.EnterRule(node.Symbol(), rhsNodes, ctxt)
	if doContinue || breakmode == Continue { // listener signalled us to traverse children nodes
		i, end := 0, len(rhsNodes)
		if dir == RtoL {
			i, end = len(rhsNodes)-1, -1
		}
		for ; i != end; i += int(dir) {
			chvalue := c.traverseTopDown(rhsNodes[i], listener, dir, breakmode, level+1)
			tracer().Debugf("child value[%d] = %v", i, chvalue)
			rhsNodes[i].Value = chvalue
		}
	}
	value := listener.ExitRule(node.Symbol(), rhsNodes, ctxt)
	tracer().Debugf("<<< %s", node.Symbol())
	return value
}

// Direction lets clients decide wether children nodes should be traversed left-to-right
// (default) or right-to-left.
type Direction int

// Children nodes may be traversed left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// Breakmode is a client hint wether to stop traversing on break-signals or not.
type Breakmode int

// Setting Continue will always traverse a complete (sub-)tree. Break will skip
// traversing sub-tree as soon as an Enter-function signals a break.
const (
	Continue Breakmode = iota
	Break
)

// --- Listener --------------------------------------------------------------

// Listener is a type for walking a parse tree.
//
// Arguments are:
//
//     - *cfg.Symbol: the grammar symbol at the current node
//     - []*RuleNode: the children of the current node, i.e. the right-hand
//                    side of the rule applied at this node
//     - RuleCtxt:    contextual information for the node
//
// EnterRule returns a boolean value indicating if the traversal should continue to
// the children of this node. ExitRule and Leaf may return user-defined values
// to be propagated upwards of the tree.
//
// Leaf is called for nodes no rule has been applied to. Note that for an
// unfinished derivation, these may be non-terminals.
type Listener interface {
	EnterRule(*cfg.Symbol, []*RuleNode, RuleCtxt) bool
	ExitRule(*cfg.Symbol, []*RuleNode, RuleCtxt) interface{}
	Leaf(*cfg.Symbol, RuleCtxt) interface{}
}

// RuleCtxt is a context structure for Listeners.
type RuleCtxt struct {
	Span      sentential.Span // span of leaves covered by this node
	Level     int             // nesting level
	RuleIndex int             // -1 for leaves
}

func makeCtxt(span sentential.Span, level int, rule int) RuleCtxt {
	return RuleCtxt{
		Span:      span,
		Level:     level,
		RuleIndex: rule,
	}
}

package visit

import (
	"errors"
	"fmt"

	"github.com/npillmayer/sentential/cfg"
	"github.com/pterm/pterm"
)

// Render returns a printable version of the tree rooted at root, drawn with
// box-drawing characters. Inner nodes are annotated with the serial of the
// rule applied to them:
//
//    A #0
//    └─M #3
//      └─V #6
//        └─i
//
func Render(root *cfg.Node) (string, error) {
	c := SetCursor(root)
	if c == nil {
		return "", errors.New("cannot render empty tree")
	}
	tree := c.TopDown(renderer{}, LtoR, Continue).(pterm.TreeNode)
	return pterm.DefaultTree.WithRoot(tree).Srender()
}

// renderer is a Listener which converts a parse tree into a pterm tree.
type renderer struct{}

func (renderer) EnterRule(*cfg.Symbol, []*RuleNode, RuleCtxt) bool {
	return true
}

func (renderer) ExitRule(sym *cfg.Symbol, rhs []*RuleNode, ctxt RuleCtxt) interface{} {
	node := pterm.TreeNode{
		Text:     fmt.Sprintf("%s #%d", sym.Name(), ctxt.RuleIndex),
		Children: make([]pterm.TreeNode, len(rhs)),
	}
	for i, r := range rhs {
		node.Children[i] = r.Value.(pterm.TreeNode)
	}
	return node
}

func (renderer) Leaf(sym *cfg.Symbol, ctxt RuleCtxt) interface{} {
	return pterm.TreeNode{Text: sym.Name()}
}

var _ Listener = renderer{}

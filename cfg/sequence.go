package cfg

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/gconf"
)

// Direction selects the end of a frontier from which RestrictedDerive searches
// for a non-terminal.
type Direction int

// Derivations may be restricted to the leftmost or the rightmost non-terminal.
const (
	Leftmost Direction = iota
	Rightmost
)

func (dir Direction) String() string {
	switch dir {
	case Leftmost:
		return "leftmost"
	case Rightmost:
		return "rightmost"
	}
	return fmt.Sprintf("Direction(%d)", int(dir))
}

// Sequence is the frontier of a sentential form: an ordered list of slots,
// each holding a tree node. A slot is either a bare leaf or the root of a
// sub-tree built by earlier steps.
//
// Sequences are created by a grammar and are not safe for concurrent use.
type Sequence struct {
	grammar  *Grammar
	frontier *arraylist.List // of *Node
	root     *Node
	steps    int
}

func newSequence(g *Grammar, syms ...*Symbol) *Sequence {
	seq := &Sequence{
		grammar:  g,
		frontier: arraylist.New(),
	}
	for _, sym := range syms {
		seq.frontier.Add(newLeaf(sym))
	}
	if seq.frontier.Size() == 1 {
		seq.root = seq.slot(0)
	}
	return seq
}

// Grammar returns the grammar this sequence has been created by.
func (seq *Sequence) Grammar() *Grammar {
	return seq.grammar
}

// Len returns the number of slots of the frontier.
func (seq *Sequence) Len() int {
	return seq.frontier.Size()
}

// Steps returns the number of successful derive, reduce and append steps
// performed so far.
func (seq *Sequence) Steps() int {
	return seq.steps
}

// Node returns the node at frontier position pos, or nil.
func (seq *Sequence) Node(pos int) *Node {
	if pos < 0 || pos >= seq.Len() {
		return nil
	}
	return seq.slot(pos)
}

func (seq *Sequence) slot(pos int) *Node {
	n, _ := seq.frontier.Get(pos)
	return n.(*Node)
}

// CurrentSymbols returns the current sentential form, i.e. the symbols of
// the frontier slots, left to right.
func (seq *Sequence) CurrentSymbols() []*Symbol {
	syms := make([]*Symbol, seq.Len())
	it := seq.frontier.Iterator()
	for it.Next() {
		syms[it.Index()] = it.Value().(*Node).symbol
	}
	return syms
}

// Tree returns the root of the parse tree, or nil if there is none.
//
// A sequence created from the start symbol is rooted at the start node from
// the beginning; derivations do not change the root. Reductions and appends
// re-anchor the root: afterwards there is a root if and only if the frontier
// consists of exactly one slot.
func (seq *Sequence) Tree() *Node {
	return seq.root
}

func (seq *Sequence) String() string {
	names := make([]string, 0, seq.Len())
	for _, sym := range seq.CurrentSymbols() {
		names = append(names, sym.Name())
	}
	return strings.Join(names, " ")
}

// --- Derivation ------------------------------------------------------------

// Derive replaces the non-terminal at frontier position pos by the right hand
// side of rule. The node at pos becomes the parent of fresh leaves, one for
// each symbol of the right hand side. For an epsilon-rule the slot simply
// vanishes.
//
// Derive returns an error wrapping ErrDerivation if pos is out of range, if
// the symbol at pos is not the left hand side of rule, or if the slot at pos
// holds a sub-tree built by a reduction.
func (seq *Sequence) Derive(pos int, rule *Rule) error {
	if err := seq.checkDerive(pos, rule); err != nil {
		return failed(err)
	}
	parent := seq.slot(pos)
	parent.children = make([]*Node, len(rule.rhs))
	parent.rule = rule.Serial
	leaves := make([]interface{}, len(rule.rhs))
	for i, sym := range rule.rhs {
		parent.children[i] = newLeaf(sym)
		leaves[i] = parent.children[i]
	}
	seq.frontier.Remove(pos)
	seq.frontier.Insert(pos, leaves...)
	if seq.root == nil && seq.Len() == 1 {
		seq.root = seq.slot(0)
	}
	seq.stepped("derive", pos, rule)
	return nil
}

// CanDerive checks if Derive(pos, rule) would succeed, without altering the
// frontier.
func (seq *Sequence) CanDerive(pos int, rule *Rule) bool {
	return seq.checkDerive(pos, rule) == nil
}

func (seq *Sequence) checkDerive(pos int, rule *Rule) error {
	if rule == nil {
		return fmt.Errorf("%w: no rule given", ErrDerivation)
	}
	if pos < 0 || pos >= seq.Len() {
		return fmt.Errorf("%w: position %d out of range [0…%d)", ErrDerivation, pos, seq.Len())
	}
	node := seq.slot(pos)
	if node.symbol != rule.LHS {
		return fmt.Errorf("%w: rule mismatch, expected %s, got %s", ErrDerivation, rule.LHS, node.symbol)
	}
	if !node.IsLeaf() {
		return fmt.Errorf("%w: %s at position %d has already been built by rule #%d",
			ErrDerivation, node.symbol, pos, node.rule)
	}
	return nil
}

// RestrictedDerive derives the leftmost or rightmost non-terminal of the
// frontier, depending on dir. It returns an error wrapping ErrDerivation if
// the frontier holds no non-terminal, or if rule does not apply to the
// non-terminal found.
func (seq *Sequence) RestrictedDerive(dir Direction, rule *Rule) error {
	pos, ok := seq.Position(dir)
	if !ok {
		return failed(fmt.Errorf("%w: no non-terminal found for %s derivation in [%s]",
			ErrDerivation, dir, seq))
	}
	return seq.Derive(pos, rule)
}

// Position returns the frontier position of the leftmost or rightmost
// non-terminal, depending on dir. If the frontier consists of terminals only,
// ok is false.
func (seq *Sequence) Position(dir Direction) (pos int, ok bool) {
	isNonTerm := func(value interface{}) bool {
		return seq.grammar.IsNonTerminal(value.(*Node).symbol)
	}
	switch dir {
	case Leftmost:
		it := seq.frontier.Iterator()
		for it.Next() {
			if isNonTerm(it.Value()) {
				return it.Index(), true
			}
		}
	case Rightmost:
		it := seq.frontier.Iterator()
		for it.End(); it.Prev(); {
			if isNonTerm(it.Value()) {
				return it.Index(), true
			}
		}
	}
	return -1, false
}

// --- Reduction -------------------------------------------------------------

// Reduce collapses the len(RHS) frontier slots starting at pos into a single
// new slot for the left hand side of rule. The nodes of the window become the
// children of the new node, in order. If the frontier is left with a single
// slot, this slot becomes the root of the parse tree.
//
// An epsilon-rule has an empty window, i.e. it inserts a node without
// children at pos, with 0 ≤ pos ≤ Len().
//
// Reduce returns an error wrapping ErrReduction if the window exceeds the
// frontier, or at the first slot not matching the corresponding right hand
// side symbol of rule.
func (seq *Sequence) Reduce(pos int, rule *Rule) error {
	if err := seq.checkReduce(pos, rule); err != nil {
		return failed(err)
	}
	parent := &Node{
		symbol:   rule.LHS,
		children: make([]*Node, len(rule.rhs)),
		rule:     rule.Serial,
	}
	for i := range rule.rhs {
		parent.children[i] = seq.slot(pos + i)
	}
	for range rule.rhs {
		seq.frontier.Remove(pos)
	}
	seq.frontier.Insert(pos, parent)
	seq.anchor()
	seq.stepped("reduce", pos, rule)
	return nil
}

// CanReduce checks if Reduce(pos, rule) would succeed, without altering the
// frontier.
func (seq *Sequence) CanReduce(pos int, rule *Rule) bool {
	return seq.checkReduce(pos, rule) == nil
}

func (seq *Sequence) checkReduce(pos int, rule *Rule) error {
	if rule == nil {
		return fmt.Errorf("%w: no rule given", ErrReduction)
	}
	if !seq.grammar.IsNonTerminal(rule.LHS) {
		return fmt.Errorf("%w: rule %s is not a rule of grammar %s", ErrReduction, rule, seq.grammar.name)
	}
	if pos < 0 || pos > seq.Len()-len(rule.rhs) {
		return fmt.Errorf("%w: window [%d…%d) out of range [0…%d)",
			ErrReduction, pos, pos+len(rule.rhs), seq.Len())
	}
	for i, expected := range rule.rhs {
		if sym := seq.slot(pos + i).symbol; sym != expected {
			return fmt.Errorf("%w: rule mismatch at position %d, expected %s, got %s",
				ErrReduction, pos+i, expected, sym)
		}
	}
	return nil
}

// ReduceTail reduces the suffix of the frontier, i.e. the len(RHS) slots
// appended most recently. This is the reduce-step of a shift-reduce trace.
func (seq *Sequence) ReduceTail(rule *Rule) error {
	if rule == nil {
		return failed(fmt.Errorf("%w: no rule given", ErrReduction))
	}
	return seq.Reduce(seq.Len()-len(rule.rhs), rule)
}

// Append pushes a new leaf for sym onto the tail of the frontier. This is the
// shift-step of a shift-reduce trace.
func (seq *Sequence) Append(sym *Symbol) {
	seq.frontier.Add(newLeaf(sym))
	seq.anchor()
	seq.stepped("append", seq.Len()-1, nil)
}

// anchor sets the root of the parse tree if the frontier has collapsed to a
// single slot, and clears it otherwise.
func (seq *Sequence) anchor() {
	if seq.Len() == 1 {
		seq.root = seq.slot(0)
	} else {
		seq.root = nil
	}
}

func (seq *Sequence) stepped(op string, pos int, rule *Rule) {
	seq.steps++
	if rule != nil {
		tracer().Debugf("%s @%d with %s", op, pos, rule)
	} else {
		tracer().Debugf("%s @%d", op, pos)
	}
	if gconf.GetBool("trace-frontier") {
		tracer().P("step", seq.steps).Debugf("frontier = [%s]", seq)
	}
}

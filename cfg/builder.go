package cfg

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// GrammarBuilder is a builder type for grammars. Terminals and non-terminals
// are inferred from their usage: names introduced with T() are terminals,
// names introduced with LHS() or N() are non-terminals.
// The start symbol defaults to the left hand side of the first rule.
//
//    b := cfg.NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a").End()  // S  ->  A a
//    b.LHS("A").T("b").End()         // A  ->  b
//    b.LHS("A").Epsilon()            // A  ->
//    g, err := b.Grammar()
//
type GrammarBuilder struct {
	name         string
	terminals    *linkedhashset.Set
	nonterminals *linkedhashset.Set
	rules        []RuleSpec
	start        string
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{
		name:         gname,
		terminals:    linkedhashset.New(),
		nonterminals: linkedhashset.New(),
	}
}

// RuleBuilder is a builder type for a single rule. Create one with
// GrammarBuilder.LHS().
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs string
	rhs []string
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	gb.nonterminals.Add(name)
	if gb.start == "" {
		gb.start = name
	}
	return &RuleBuilder{gb: gb, lhs: name}
}

// Start sets the start symbol. It must occur as the left hand side of a rule
// or as a non-terminal on a right hand side.
func (gb *GrammarBuilder) Start(name string) *GrammarBuilder {
	gb.start = name
	return gb
}

// N appends a non-terminal to the right hand side of a rule.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.gb.nonterminals.Add(name)
	rb.rhs = append(rb.rhs, name)
	return rb
}

// T appends a terminal to the right hand side of a rule.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.gb.terminals.Add(name)
	rb.rhs = append(rb.rhs, name)
	return rb
}

// End closes a rule and returns its serial number.
func (rb *RuleBuilder) End() int {
	rb.gb.rules = append(rb.gb.rules, RuleSpec{LHS: rb.lhs, RHS: rb.rhs})
	return len(rb.gb.rules) - 1
}

// Epsilon closes a rule with an empty right hand side and returns its serial
// number. Symbols appended before calling Epsilon are dropped.
func (rb *RuleBuilder) Epsilon() int {
	rb.rhs = nil
	return rb.End()
}

// Grammar returns the grammar built so far. It returns an error wrapping
// ErrGrammar for the same conditions as NewGrammar.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if len(gb.rules) == 0 {
		return nil, fmt.Errorf("%w: grammar %s has no rules", ErrGrammar, gb.name)
	}
	g, err := NewGrammar(names(gb.terminals), names(gb.nonterminals), gb.rules, gb.start)
	if err != nil {
		return nil, err
	}
	g.name = gb.name
	return g, nil
}

func names(set *linkedhashset.Set) []string {
	values := set.Values()
	nn := make([]string, len(values))
	for i, v := range values {
		nn[i] = v.(string)
	}
	return nn
}

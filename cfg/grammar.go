package cfg

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
)

// --- Rules -----------------------------------------------------------------

// Rule is a type for rules of a grammar. Rules cannot be shared between grammars.
type Rule struct {
	Serial int     // index of this rule within its grammar
	LHS    *Symbol // symbol of left hand side
	rhs    []*Symbol
}

// RHS returns the right hand side of a rule. Clients must not modify the slice.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// IsEpsilon is true for rules with an empty right hand side.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	names := make([]string, len(r.rhs))
	for i, sym := range r.rhs {
		names[i] = sym.Name()
	}
	return fmt.Sprintf("[%s] ::= [%s]", r.LHS.Name(), strings.Join(names, " "))
}

// RuleSpec is a rule given by symbol names, as handed over by grammar loaders.
type RuleSpec struct {
	LHS string
	RHS []string
}

// --- Grammar ---------------------------------------------------------------

// Grammar is a type for a context-free grammar. Grammars are immutable after
// construction and may safely be shared between goroutines. A grammar is the
// factory for symbols, rules and sequences.
type Grammar struct {
	name         string
	terminals    *symbolTable
	nonterminals *symbolTable
	rules        []*Rule
	start        *Symbol
}

// NewGrammar creates a grammar from its alphabets, rules and start symbol.
// Names occuring more than once in an alphabet are treated as a single symbol.
// Rules will be numbered in the order given.
//
// NewGrammar returns an error wrapping ErrGrammar if the alphabets intersect,
// if the start symbol or a left hand side is not a non-terminal, or if a
// right hand side refers to an undeclared symbol.
func NewGrammar(terminals, nonterminals []string, rules []RuleSpec, start string) (*Grammar, error) {
	g := &Grammar{
		name:         "G",
		terminals:    newSymbolTable(),
		nonterminals: newSymbolTable(),
	}
	for _, name := range terminals {
		if name == "" {
			return nil, fmt.Errorf("%w: empty terminal name", ErrGrammar)
		}
		g.terminals.resolveOrDefine(name)
	}
	for _, name := range nonterminals {
		if name == "" {
			return nil, fmt.Errorf("%w: empty non-terminal name", ErrGrammar)
		}
		if g.terminals.resolve(name) != nil {
			return nil, fmt.Errorf("%w: terminal and non-terminal sets intersect at %q", ErrGrammar, name)
		}
		g.nonterminals.resolveOrDefine(name)
	}
	if g.start = g.nonterminals.resolve(start); g.start == nil {
		return nil, fmt.Errorf("%w: start symbol %q is not a non-terminal", ErrGrammar, start)
	}
	g.rules = make([]*Rule, 0, len(rules))
	for serial, spec := range rules {
		r, err := g.makeRule(serial, spec)
		if err != nil {
			return nil, err
		}
		g.rules = append(g.rules, r)
	}
	tracer().Debugf("created grammar with %d terminals, %d non-terminals, %d rules",
		g.terminals.size(), g.nonterminals.size(), len(g.rules))
	return g, nil
}

func (g *Grammar) makeRule(serial int, spec RuleSpec) (*Rule, error) {
	lhs := g.nonterminals.resolve(spec.LHS)
	if lhs == nil {
		return nil, fmt.Errorf("%w: rule #%d: left hand side %q is not a non-terminal",
			ErrGrammar, serial, spec.LHS)
	}
	r := &Rule{
		Serial: serial,
		LHS:    lhs,
		rhs:    make([]*Symbol, len(spec.RHS)),
	}
	for i, name := range spec.RHS {
		if r.rhs[i] = g.SymbolByName(name); r.rhs[i] == nil {
			return nil, fmt.Errorf("%w: rule #%d: right hand side symbol %q is not declared",
				ErrGrammar, serial, name)
		}
	}
	return r, nil
}

// Name returns the name of the grammar. Grammars created by NewGrammar are
// named "G".
func (g *Grammar) Name() string {
	return g.name
}

// Start returns the start symbol.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// SymbolByName returns a terminal or non-terminal symbol for a name, or nil
// if the name is not declared.
func (g *Grammar) SymbolByName(name string) *Symbol {
	if sym := g.terminals.resolve(name); sym != nil {
		return sym
	}
	return g.nonterminals.resolve(name)
}

// SymbolsOf translates a run of names into symbols, e.g. for a tokenized
// input sentence. It is an error if any of the names is undeclared.
func (g *Grammar) SymbolsOf(names ...string) ([]*Symbol, error) {
	syms := make([]*Symbol, len(names))
	for i, name := range names {
		if syms[i] = g.SymbolByName(name); syms[i] == nil {
			return nil, fmt.Errorf("%w: symbol %q is not declared", ErrGrammar, name)
		}
	}
	return syms, nil
}

// Rule returns the grammar rule at index i.
func (g *Grammar) Rule(i int) (*Rule, error) {
	if i < 0 || i >= len(g.rules) {
		return nil, fmt.Errorf("%w: %d not in [0…%d)", ErrRuleIndex, i, len(g.rules))
	}
	return g.rules[i], nil
}

// Rules returns all rules of the grammar, ordered by serial.
func (g *Grammar) Rules() []*Rule {
	return append([]*Rule(nil), g.rules...)
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// IsTerminal is a predicate: is sym a terminal of this grammar?
func (g *Grammar) IsTerminal(sym *Symbol) bool {
	return g.terminals.contains(sym)
}

// IsNonTerminal is a predicate: is sym a non-terminal of this grammar?
func (g *Grammar) IsNonTerminal(sym *Symbol) bool {
	return g.nonterminals.contains(sym)
}

// Terminals returns the terminal symbols, ordered by name.
func (g *Grammar) Terminals() []*Symbol {
	return g.terminals.symbols()
}

// NonTerminals returns the non-terminal symbols, ordered by name.
func (g *Grammar) NonTerminals() []*Symbol {
	return g.nonterminals.symbols()
}

// NewEmptySequence creates an empty frontier, to be filled by Append.
// This is the starting point for shift-reduce traces.
func (g *Grammar) NewEmptySequence() *Sequence {
	return newSequence(g)
}

// NewSentenceFromStart creates a frontier holding a single leaf for the
// start symbol. This is the starting point for derivation traces.
func (g *Grammar) NewSentenceFromStart() *Sequence {
	return newSequence(g, g.start)
}

// Dump is a debugging helper, tracing the rules of a grammar.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ------------------------------", g.name)
	tracer().Debugf("T = %v", g.terminals.names())
	tracer().Debugf("N = %v", g.nonterminals.names())
	tracer().Debugf("S = %s", g.start)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------")
}

// --- Fingerprints ----------------------------------------------------------

type grammarDef struct {
	Terminals    []string
	NonTerminals []string
	Rules        []RuleSpec
	Start        string
}

// Fingerprint returns a hash of the grammar's definition. Grammars with equal
// alphabets, rules (in equal order) and start symbol have equal fingerprints,
// independent of their names and of the order the alphabets were declared in.
func (g *Grammar) Fingerprint() (string, error) {
	def := grammarDef{
		Terminals:    g.terminals.names(),
		NonTerminals: g.nonterminals.names(),
		Rules:        make([]RuleSpec, len(g.rules)),
		Start:        g.start.Name(),
	}
	for i, r := range g.rules {
		rhs := make([]string, len(r.rhs))
		for j, sym := range r.rhs {
			rhs[j] = sym.Name()
		}
		def.Rules[i] = RuleSpec{LHS: r.LHS.Name(), RHS: rhs}
	}
	return structhash.Hash(def, 1)
}

/*
Package cfg models context-free grammars and the frontier of a sentential form.

Building a Grammar

A grammar is given by its terminal and non-terminal alphabets, a list of
rules and a start symbol. Rules are addressed by their position in the list.

    g, err := cfg.NewGrammar(
        []string{"+", "i"},
        []string{"A", "V"},
        []cfg.RuleSpec{
            {LHS: "A", RHS: []string{"V"}},           // 0: [A] ::= [V]
            {LHS: "A", RHS: []string{"A", "+", "V"}}, // 1: [A] ::= [A + V]
            {LHS: "V", RHS: []string{"i"}},           // 2: [V] ::= [i]
        },
        "A")

Alternatively, clients may use a grammar builder:

    b := cfg.NewGrammarBuilder("G")
    b.LHS("A").N("V").End()              // A  ->  V
    b.LHS("A").N("A").T("+").N("V").End() // A  ->  A + V
    b.LHS("V").T("i").End()               // V  ->  i
    g, err := b.Grammar()

A grammar hands out exactly one Symbol per declared name. Symbols are compared
by identity, never by name, thus symbols of different grammars never match.

Derivations and Reductions

A Sequence is the frontier of a sentential form: an ordered list of tree
nodes, each either a bare leaf or the root of an already built sub-tree.
Sequences are created by a grammar, either empty (for shift-reduce traces) or
holding the start symbol (for derivation traces).

    seq := g.NewSentenceFromStart()
    A1, _ := g.Rule(1)
    err := seq.RestrictedDerive(cfg.Leftmost, A1)   // A  =>  A + V

    seq := g.NewEmptySequence()
    seq.Append(g.SymbolByName("i"))                  // shift i
    V2, _ := g.Rule(2)
    err := seq.ReduceTail(V2)                        // i  <=  V

Every step validates before it mutates. A failing step returns an error
matching one of ErrDerivation, ErrReduction and leaves the frontier untouched.
The parse tree is available with seq.Tree() as soon as the frontier is
anchored at a single root.

Configuration

Package cfg reads two flags from gconf: "trace-frontier" dumps the frontier
after every successful step, "panic-on-trace-error" turns failing steps into
panics, which helps for post-mortems of a trace in a debugger.

License

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package cfg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sentential.cfg'.
func tracer() tracing.Trace {
	return tracing.Select("sentential.cfg")
}

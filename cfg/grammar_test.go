package cfg

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// We use a small unambiguous expression grammar for testing.
//
//     A = M  |  A '+' M  |  A '-' M
//     M = V  |  M '*' V  |  M '/' V
//     V = i  |  '(' A ')'
//
var exprRules = []RuleSpec{
	{"A", []string{"M"}},           // 0
	{"A", []string{"A", "+", "M"}}, // 1
	{"A", []string{"A", "-", "M"}}, // 2
	{"M", []string{"V"}},           // 3
	{"M", []string{"M", "*", "V"}}, // 4
	{"M", []string{"M", "/", "V"}}, // 5
	{"V", []string{"i"}},           // 6
	{"V", []string{"(", "A", ")"}}, // 7
}

func makeExprGrammar(t *testing.T) *Grammar {
	g, err := NewGrammar(
		[]string{"+", "-", "*", "/", "i", "(", ")"},
		[]string{"A", "M", "V"},
		exprRules,
		"A")
	if err != nil {
		t.Fatalf("cannot create expression grammar: %v", err)
	}
	return g
}

func rule(t *testing.T, g *Grammar, i int) *Rule {
	r, err := g.Rule(i)
	if err != nil {
		t.Fatalf("cannot get rule #%d: %v", i, err)
	}
	return r
}

func TestGrammarRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sentential.cfg")
	defer teardown()
	//
	g := makeExprGrammar(t)
	g.Dump()
	if g.Size() != len(exprRules) {
		t.Fatalf("expected %d rules, have %d", len(exprRules), g.Size())
	}
	for i, spec := range exprRules {
		r := rule(t, g, i)
		if r.Serial != i {
			t.Errorf("rule #%d has serial %d", i, r.Serial)
		}
		if r.LHS != g.SymbolByName(spec.LHS) {
			t.Errorf("rule #%d: expected LHS %s, have %s", i, spec.LHS, r.LHS)
		}
		if len(r.RHS()) != len(spec.RHS) {
			t.Fatalf("rule #%d: expected |RHS| = %d, have %d", i, len(spec.RHS), len(r.RHS()))
		}
		for j, name := range spec.RHS {
			if r.RHS()[j] != g.SymbolByName(name) {
				t.Errorf("rule #%d: expected RHS[%d] = %s, have %s", i, j, name, r.RHS()[j])
			}
		}
	}
	if rules := g.Rules(); len(rules) != g.Size() || rules[4] != rule(t, g, 4) {
		t.Errorf("expected Rules() to mirror Rule(i)")
	}
	if s := rule(t, g, 1).String(); s != "[A] ::= [A + M]" {
		t.Errorf("unexpected rule string %q", s)
	}
}

func TestGrammarRuleIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sentential.cfg")
	defer teardown()
	//
	g := makeExprGrammar(t)
	for _, i := range []int{-1, 8, 100} {
		if _, err := g.Rule(i); !errors.Is(err, ErrRuleIndex) {
			t.Errorf("expected rule index error for %d, have %v", i, err)
		}
	}
}

func TestGrammarErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sentential.cfg")
	defer teardown()
	//
	tests := []struct {
		name  string
		T, N  []string
		rules []RuleSpec
		start string
	}{
		{"intersect", []string{"a", "S"}, []string{"S"}, nil, "S"},
		{"start", []string{"a"}, []string{"S"}, nil, "X"},
		{"start-is-terminal", []string{"a"}, []string{"S"}, nil, "a"},
		{"lhs", []string{"a"}, []string{"S"}, []RuleSpec{{"X", []string{"a"}}}, "S"},
		{"lhs-is-terminal", []string{"a"}, []string{"S"}, []RuleSpec{{"a", []string{"a"}}}, "S"},
		{"rhs", []string{"a"}, []string{"S"}, []RuleSpec{{"S", []string{"a", "b"}}}, "S"},
		{"empty-name", []string{""}, []string{"S"}, nil, "S"},
	}
	for _, test := range tests {
		g, err := NewGrammar(test.T, test.N, test.rules, test.start)
		if !errors.Is(err, ErrGrammar) {
			t.Errorf("%s: expected grammar error, have %v", test.name, err)
		}
		if g != nil {
			t.Errorf("%s: expected no grammar to be returned", test.name)
		}
	}
}

func TestGrammarEpsilonAndDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sentential.cfg")
	defer teardown()
	//
	g, err := NewGrammar([]string{"a", "a"}, []string{"S", "S"},
		[]RuleSpec{{"S", []string{"a", "S"}}, {"S", nil}}, "S")
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Terminals()) != 1 || len(g.NonTerminals()) != 1 {
		t.Errorf("expected duplicate names to collapse, have T=%v, N=%v", g.Terminals(), g.NonTerminals())
	}
	if !rule(t, g, 1).IsEpsilon() {
		t.Errorf("expected rule #1 to be an epsilon rule")
	}
}

func TestSymbolIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sentential.cfg")
	defer teardown()
	//
	g1 := makeExprGrammar(t)
	g2 := makeExprGrammar(t)
	if g1.SymbolByName("A") != g1.SymbolByName("A") {
		t.Errorf("expected a grammar to hand out canonical symbols")
	}
	if g1.SymbolByName("A") == g2.SymbolByName("A") {
		t.Errorf("expected symbols of different grammars to be distinct")
	}
	if g1.IsNonTerminal(g2.SymbolByName("A")) {
		t.Errorf("expected foreign symbol not to be classified")
	}
	if g1.SymbolByName("X") != nil {
		t.Errorf("expected undeclared symbol to be nil")
	}
	if g1.Start() != g1.SymbolByName("A") {
		t.Errorf("expected start symbol A, have %s", g1.Start())
	}
}

func TestClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sentential.cfg")
	defer teardown()
	//
	g := makeExprGrammar(t)
	for _, sym := range g.Terminals() {
		if !g.IsTerminal(sym) || g.IsNonTerminal(sym) {
			t.Errorf("expected %s to be a terminal", sym)
		}
	}
	for _, sym := range g.NonTerminals() {
		if g.IsTerminal(sym) || !g.IsNonTerminal(sym) {
			t.Errorf("expected %s to be a non-terminal", sym)
		}
	}
	if g.IsTerminal(nil) || g.IsNonTerminal(nil) {
		t.Errorf("expected nil not to be classified")
	}
	if n := g.NonTerminals(); n[0].Name() != "A" || n[1].Name() != "M" || n[2].Name() != "V" {
		t.Errorf("expected non-terminals ordered by name, have %v", n)
	}
}

func TestSymbolsOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sentential.cfg")
	defer teardown()
	//
	g := makeExprGrammar(t)
	syms, err := g.SymbolsOf("i", "*", "i")
	if err != nil {
		t.Fatal(err)
	}
	if syms[0] != g.SymbolByName("i") || syms[1] != g.SymbolByName("*") || syms[0] != syms[2] {
		t.Errorf("unexpected symbols %v", syms)
	}
	if _, err = g.SymbolsOf("i", "x"); !errors.Is(err, ErrGrammar) {
		t.Errorf("expected error for undeclared symbol, have %v", err)
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sentential.cfg")
	defer teardown()
	//
	g1 := makeExprGrammar(t)
	g2, err := NewGrammar(
		[]string{")", "(", "i", "/", "*", "-", "+"},
		[]string{"V", "M", "A"},
		exprRules,
		"A")
	if err != nil {
		t.Fatal(err)
	}
	g3, err := NewGrammar(
		[]string{"+", "-", "*", "/", "i", "(", ")"},
		[]string{"A", "M", "V"},
		exprRules[1:],
		"A")
	if err != nil {
		t.Fatal(err)
	}
	f1, err1 := g1.Fingerprint()
	f2, err2 := g2.Fingerprint()
	f3, err3 := g3.Fingerprint()
	if err1 != nil || err2 != nil || err3 != nil {
		t.Fatalf("fingerprinting failed: %v, %v, %v", err1, err2, err3)
	}
	t.Logf("fingerprint = %s", f1)
	if f1 != f2 {
		t.Errorf("expected declaration order not to change the fingerprint")
	}
	if f1 == f3 {
		t.Errorf("expected different rules to change the fingerprint")
	}
}

package cfg

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// Symbol is a grammar symbol, i.e. a terminal or a non-terminal.
// Symbols have no notion of their category: a symbol is a terminal or a
// non-terminal by membership in one of the alphabets of its grammar.
//
// Symbols are canonical per grammar. Two symbols with identical names, but
// created by different grammars, are different symbols.
type Symbol struct {
	name string
}

// Name returns the symbol's printable name.
func (sym *Symbol) Name() string {
	if sym == nil {
		return "<nil>"
	}
	return sym.name
}

func (sym *Symbol) String() string {
	return sym.Name()
}

// --- Symbol tables ---------------------------------------------------------

// symbolTable stores the canonical symbols of one alphabet (map-like
// semantics), ordered by name.
type symbolTable struct {
	table *treemap.Map // name -> *Symbol
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		table: treemap.NewWithStringComparator(),
	}
}

// resolve checks for a symbol in the table. Returns a symbol or nil.
func (t *symbolTable) resolve(name string) *Symbol {
	if sym, found := t.table.Get(name); found {
		return sym.(*Symbol)
	}
	return nil
}

// resolveOrDefine finds a symbol in the table, inserts a new one if not found.
// Returns the symbol and a flag, signalling wether the symbol has already
// been present.
func (t *symbolTable) resolveOrDefine(name string) (*Symbol, bool) {
	if sym := t.resolve(name); sym != nil {
		return sym, true
	}
	sym := &Symbol{name: name}
	t.table.Put(name, sym)
	return sym, false
}

// contains checks if sym is the very symbol stored under its name.
func (t *symbolTable) contains(sym *Symbol) bool {
	if sym == nil {
		return false
	}
	return t.resolve(sym.name) == sym
}

func (t *symbolTable) size() int {
	return t.table.Size()
}

// names returns the symbol names in ascending order.
func (t *symbolTable) names() []string {
	keys := t.table.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// symbols returns the symbols ordered by name.
func (t *symbolTable) symbols() []*Symbol {
	values := t.table.Values()
	syms := make([]*Symbol, len(values))
	for i, v := range values {
		syms[i] = v.(*Symbol)
	}
	return syms
}

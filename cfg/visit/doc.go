/*
Package visit walks parse trees built by derivation or reduction traces.

A Cursor is set on a node of a tree (usually seq.Tree()) and traverses the
sub-tree top-down, calling a Listener for every node encountered. Listeners
may return values which are propagated upwards, thus a tree walk may
compute attributes or build other structures from a parse tree. Render is
an example: it builds a printable tree from a parse tree.

License

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package visit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'sentential.visit'.
func tracer() tracing.Trace {
	return tracing.Select("sentential.visit")
}

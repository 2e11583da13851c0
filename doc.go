/*
Package sentential is a toolbox for tracing derivations and reductions of
context-free grammars by hand.

It is intended for teaching and for debugging grammars: every derivation or
reduction step is chosen by the caller, nothing is parsed automatically.
Package structure is as follows:

■ cfg: Package cfg implements grammars, symbols and rules, together with
the frontier of a sentential form (type Sequence), which offers derivation
and reduction steps and builds a parse tree as a side effect.

■ cfg/visit: Package visit implements listener-driven walks over parse trees
built by a Sequence, and renders them for display.

The base package contains data types which are used throughout all the other packages.

License

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package sentential

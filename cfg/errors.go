package cfg

import (
	"errors"

	"github.com/npillmayer/schuko/gconf"
)

// Error kinds. Errors returned by this package wrap one of these and may be
// checked with errors.Is.
var (
	// ErrGrammar signals an invalid grammar definition.
	ErrGrammar = errors.New("grammar error")
	// ErrDerivation signals a derivation step which does not apply.
	ErrDerivation = errors.New("derivation error")
	// ErrReduction signals a reduction step which does not apply.
	ErrReduction = errors.New("reduction error")
	// ErrRuleIndex signals a rule index out of range.
	ErrRuleIndex = errors.New("rule index out of range")
)

// failed passes an error of a trace step back to the caller. With
// configuration flag panic-on-trace-error set, it panics instead.
func failed(err error) error {
	if gconf.GetBool("panic-on-trace-error") {
		panic(`trace step failed.

Configuration flag panic-on-trace-error is set to true. It is aimed at helping
to do a post-mortem of a derivation or reduction trace. If you did not expect
this to panic, please unset panic-on-trace-error to its default (false).

` + err.Error())
	}
	return err
}

package charset

import (
	"fmt"
	"unicode"

	"github.com/dmitrijs2005/padre/internal/common"
)

// maxCompiled bounds the size of a compiled charset. It comfortably holds
// every printable ASCII character plus the extended tail of the wildcard
// class; anything larger is a runaway range expression.
const maxCompiled = 256

// extendedSymbols is the tail the "*" class adds on top of printable ASCII.
const extendedSymbols = "öäüµ€§°"

// resolveClass substitutes a named character class with its literal range
// expression. Exactly one substitution is applied, matched on exact spec
// equality; anything unrecognized is returned unchanged and goes through
// range expansion as-is.
//
// "*" is matched before the ""/":graph:" group so that it resolves to the
// extended superset (printable ASCII plus extendedSymbols) rather than being
// swallowed by the plain-ASCII alias.
func resolveClass(spec string) string {
	switch spec {
	case "*":
		return "!-~" + extendedSymbols
	case "", ":graph:":
		return "!-~"
	case ":alnum:":
		return "a-zA-Z0-9"
	case ":alpha:":
		return "a-zA-Z"
	case ":digit:":
		return "0-9"
	case ":lower:":
		return "a-z"
	case ":punct:":
		return "!-/:-@[-`{-~"
	case ":upper:":
		return "A-Z"
	case ":word:":
		return "A-Za-z0-9_"
	case ":xdigit:":
		return "A-Fa-f0-9"
	}
	return spec
}

// Compile expands spec into the ordered set of characters a derived password
// may contain. It returns common.ErrInvalidSpecification if the expansion
// resolves to an empty set or exceeds maxCompiled characters.
//
// The range expansion scans left to right with a pending range-start
// character and an "armed" dash flag:
//
//   - a '-' with no pending start is emitted verbatim,
//   - a '-' after a pending start arms the range operator,
//   - a character closing an armed range emits start..c inclusive, ascending
//     by code point (nothing is emitted when start > c),
//   - a character following an unarmed pending start flushes the start as a
//     literal and becomes the new pending start,
//   - whitespace is consumed without touching the pending state, so
//     "a - z" expands exactly like "a-z",
//   - at end of input a pending start is flushed as a literal, and an armed
//     operator emits a trailing '-'.
func Compile(spec string) (Charset, error) {
	resolved := resolveClass(spec)

	out := make(Charset, 0, 128)

	var start rune // left side of a pending character range
	armed := false // range operator ('-') seen after start

	for _, c := range resolved {
		if unicode.IsSpace(c) {
			continue
		}

		switch {
		case start == 0 && c == '-':
			out = append(out, c)
		case start == 0:
			start = c
		case c == '-':
			armed = true
		case armed:
			// The extra len guard keeps a runaway range (say "!-￿")
			// from ballooning before the overflow check below runs.
			for r := start; r <= c && len(out) <= maxCompiled; r++ {
				out = append(out, r)
			}
			armed = false
			start = 0
		default:
			out = append(out, start)
			start = c
		}

		if len(out) > maxCompiled {
			return nil, fmt.Errorf("%w: %q expands to more than %d characters", common.ErrInvalidSpecification, spec, maxCompiled)
		}
	}

	if start != 0 {
		out = append(out, start)
	}
	if armed {
		out = append(out, '-')
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q resolves to an empty set", common.ErrInvalidSpecification, spec)
	}
	if len(out) > maxCompiled {
		return nil, fmt.Errorf("%w: %q expands to more than %d characters", common.ErrInvalidSpecification, spec, maxCompiled)
	}

	return out, nil
}

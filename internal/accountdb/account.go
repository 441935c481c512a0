// Package accountdb models the flat-text account database: one derivation
// recipe per line, fields in strict order
//
//	domain,username,iteration,length,charset-spec
//
// The charset spec occupies the remainder of the line and may itself contain
// commas; there is no quoting or escaping, so no field can hold a newline.
package accountdb

// Account is one derivation recipe. It holds only public parameters; the
// password it describes is recomputed on demand and never stored.
type Account struct {
	// Domain identifies the service. Never empty in a parsed record.
	Domain string

	// Username identifies the account holder. Never empty in a parsed record.
	Username string

	// Iteration is a free-form rotation marker distinguishing password
	// versions for the same domain/username. May be empty.
	Iteration string

	// Length is the exact number of characters of the derived password.
	// Always strictly positive in a parsed record.
	Length int

	// CharsetSpec is the raw, uncompiled charset specification. Empty means
	// "all printable ASCII".
	CharsetSpec string
}

// Package shared provides helpers for wiping secret-bearing buffers.
package shared

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// This is used to remove sensitive data such as the master passphrase, salts
// and raw key-derivation output from memory after use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// WipeRuneArray overwrites the contents of the provided rune slice with zeros.
// Derived passwords are assembled as rune slices before conversion to string;
// callers that keep the intermediate slice around should wipe it.
func WipeRuneArray(r []rune) {
	if r == nil {
		return
	}
	for i := range r {
		r[i] = 0
	}
}

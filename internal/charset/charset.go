// Package charset compiles the compact charset-specification mini-language
// into a concrete, ordered set of permissible password characters.
//
// A specification is either one of the named classes (":alnum:", ":digit:",
// ...), the wildcard "*", the empty string, or a literal range expression
// such as "a-z0-9_". Whitespace inside an expression is ignored.
package charset

// Charset is an ordered sequence of permissible password characters.
//
// Order is significant: the byte-to-character mapping of the deriver indexes
// into it, so two charsets holding the same characters in different order are
// not interchangeable. Duplicates are legal and simply bias the mapping
// toward the repeated character.
type Charset []rune

func (c Charset) String() string {
	return string(c)
}

// Contains reports whether r is an element of the charset.
func (c Charset) Contains(r rune) bool {
	for _, e := range c {
		if e == r {
			return true
		}
	}
	return false
}

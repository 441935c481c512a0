package accountdb

import (
	"bytes"
	"strconv"
)

// Marshal renders accounts back to the flat-text database format, one record
// per line with a trailing newline. It is the inverse of Parse for any
// account that satisfies the parse invariants; an empty charset spec
// round-trips as a trailing empty field.
func Marshal(accounts []Account) []byte {
	var buf bytes.Buffer
	for _, a := range accounts {
		buf.WriteString(a.Domain)
		buf.WriteByte(',')
		buf.WriteString(a.Username)
		buf.WriteByte(',')
		buf.WriteString(a.Iteration)
		buf.WriteByte(',')
		buf.WriteString(strconv.Itoa(a.Length))
		buf.WriteByte(',')
		buf.WriteString(a.CharsetSpec)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

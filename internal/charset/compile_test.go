package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/padre/internal/common"
)

func TestCompile_Ranges(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want string
	}{
		{name: "simple range", spec: "a-c", want: "abc"},
		{name: "leading literal dash", spec: "-a", want: "-a"},
		{name: "trailing dash", spec: "a-", want: "a-"},
		{name: "lone dash", spec: "-", want: "-"},
		{name: "literals", spec: "ab", want: "ab"},
		{name: "literals reversed keep order", spec: "ba", want: "ba"},
		{name: "range then literal", spec: "a-c!", want: "abc!"},
		{name: "two ranges", spec: "a-c0-2", want: "abc012"},
		{name: "single char", spec: "x", want: "x"},
		{name: "duplicates are kept", spec: "aa-b", want: "aab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCompile_OrderIsSignificant(t *testing.T) {
	ab, err := Compile("ab")
	require.NoError(t, err)
	ba, err := Compile("ba")
	require.NoError(t, err)

	assert.NotEqual(t, ab, ba)
	assert.ElementsMatch(t, ab, ba)
}

func TestCompile_Whitespace(t *testing.T) {
	// Whitespace is consumed without touching the pending-range state,
	// so "a - z" expands exactly like "a-z".
	spaced, err := Compile("a - z")
	require.NoError(t, err)
	plain, err := Compile("a-z")
	require.NoError(t, err)
	assert.Equal(t, plain, spaced)

	split, err := Compile("a b")
	require.NoError(t, err)
	assert.Equal(t, "ab", split.String())
}

func TestCompile_NamedClasses(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{spec: ":digit:", want: "0123456789"},
		{spec: ":lower:", want: "abcdefghijklmnopqrstuvwxyz"},
		{spec: ":upper:", want: "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{spec: ":alpha:", want: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"},
		{spec: ":alnum:", want: "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"},
		{spec: ":word:", want: "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_"},
		{spec: ":xdigit:", want: "ABCDEFabcdef0123456789"},
		{spec: ":punct:", want: "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Compile(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCompile_Graph(t *testing.T) {
	for _, spec := range []string{"", ":graph:"} {
		got, err := Compile(spec)
		require.NoError(t, err)
		// All printable ASCII except space: '!' through '~'.
		require.Len(t, got, 94)
		assert.Equal(t, '!', got[0])
		assert.Equal(t, '~', got[93])
		for i := 1; i < len(got); i++ {
			assert.Equal(t, got[i-1]+1, got[i])
		}
	}
}

func TestCompile_Wildcard(t *testing.T) {
	// "*" resolves to the extended superset: printable ASCII plus the
	// extended Latin and currency tail, in that order.
	got, err := Compile("*")
	require.NoError(t, err)

	graph, err := Compile(":graph:")
	require.NoError(t, err)

	require.Len(t, got, len(graph)+7)
	assert.Equal(t, graph, got[:len(graph)])
	assert.Equal(t, "öäüµ€§°", string(got[len(graph):]))
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{name: "descending range resolves to nothing", spec: "c-a"},
		{name: "whitespace only", spec: "   "},
		{name: "runaway range exceeds capacity", spec: "!-￿"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.spec)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidSpecification)
		})
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompileErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      *CompileError
		expected string
	}{
		{
			name:     "top level",
			err:      New(E2002, "undefined function %q", "f"),
			expected: `compile error: undefined function "f"`,
		},
		{
			name:     "in function",
			err:      New(E2001, "undefined variable %q", "y").InFunction("inc"),
			expected: `compile error: undefined variable "y" (in function "inc")`,
		},
		{
			name: "with suggestion",
			err:  New(E2001, "undefined variable %q", "cout").WithSuggestions("cout", []string{"count", "x"}),
			expected: "compile error: undefined variable \"cout\"\n\n" +
				"hint: did you mean 'count'?",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestCodeMatching(t *testing.T) {
	err := fmt.Errorf("generating main: %w", New(E2008, "too many constants"))
	require.Equal(t, E2008, Code(err))
	require.True(t, HasCode(err, E2008))
	require.False(t, HasCode(err, E2001))
	require.Equal(t, ErrorCode(""), Code(stderrors.New("plain")))

	require.True(t, stderrors.Is(err, &CompileError{Code: E2008, Message: "too many constants"}))
	require.False(t, stderrors.Is(err, &CompileError{Code: E2008, Message: "other"}))
}

func TestCodes(t *testing.T) {
	require.Equal(t, "undefined variable", E2001.Description())
	require.Equal(t, "branch too far", E2016.Description())
	require.Equal(t, "unknown error", ErrorCode("E9999").Description())
	require.Equal(t, "compile", E2015.Category())
	require.Equal(t, "parse", ErrorCode("E1001").Category())
	require.Equal(t, "runtime", ErrorCode("E3001").Category())
	require.Equal(t, "unknown", ErrorCode("X").Category())
	require.Equal(t, "E2012", E2012.String())
}

func TestSuggestSimilar(t *testing.T) {
	suggestions := SuggestSimilar("fact", []string{"fac", "facts", "fib", "fact", "fac"})
	require.Equal(t, []Suggestion{{Value: "fac", Distance: 1}, {Value: "facts", Distance: 1}}, suggestions)

	require.Nil(t, SuggestSimilar("", []string{"a"}))
	require.Nil(t, SuggestSimilar("a", nil))
	require.Empty(t, SuggestSimilar("zzz", []string{"abc"}))

	many := SuggestSimilar("value", []string{"valuea", "valueb", "valuec", "valued"})
	require.Len(t, many, MaxSuggestions)
	require.Equal(t, "valuea", many[0].Value)
}

func TestFormatSuggestions(t *testing.T) {
	require.Equal(t, "", FormatSuggestions(nil))
	require.Equal(t, "did you mean 'x'?", FormatSuggestions([]Suggestion{{Value: "x"}}))
	require.Equal(t, "did you mean one of 'x', 'y'?",
		FormatSuggestions([]Suggestion{{Value: "x"}, {Value: "y"}}))
}

func TestEditDistance(t *testing.T) {
	require.Equal(t, 0, editDistance("abc", "abc"))
	require.Equal(t, 3, editDistance("", "abc"))
	require.Equal(t, 1, editDistance("abc", "ab"))
	require.Equal(t, 3, editDistance("kitten", "sitting"))
}

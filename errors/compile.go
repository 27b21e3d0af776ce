// Package errors defines the invalid-program errors reported by the regc
// code generator.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// CompileError reports an input program the generator cannot lower. The
// generator trusts its input to be validated upstream, so a CompileError
// always points at a defect in the parser or the program, never at a
// transient condition.
type CompileError struct {
	Code        ErrorCode
	Message     string
	Function    string // enclosing function, empty at top level
	Suggestions []Suggestion
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	var b strings.Builder
	b.WriteString("compile error: ")
	b.WriteString(e.Message)
	if e.Function != "" {
		fmt.Fprintf(&b, " (in function %q)", e.Function)
	}
	if hint := FormatSuggestions(e.Suggestions); hint != "" {
		b.WriteString("\n\nhint: ")
		b.WriteString(hint)
	}
	return b.String()
}

// Is reports whether target is a CompileError with the same code, so that
// errors.Is(err, &CompileError{Code: E2001}) matches any undefined
// variable error.
func (e *CompileError) Is(target error) bool {
	t, ok := target.(*CompileError)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

// New returns a CompileError with a formatted message.
func New(code ErrorCode, format string, args ...any) *CompileError {
	return &CompileError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// InFunction records the function being generated when the error occurred.
func (e *CompileError) InFunction(name string) *CompileError {
	e.Function = name
	return e
}

// WithSuggestions attaches "did you mean" candidates for name, chosen from
// the names that were in scope.
func (e *CompileError) WithSuggestions(name string, candidates []string) *CompileError {
	e.Suggestions = SuggestSimilar(name, candidates)
	return e
}

// Code returns the error code of the first CompileError in err's chain.
// Returns an empty code if there is none.
func Code(err error) ErrorCode {
	var ce *CompileError
	if stderrors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// HasCode reports whether err's chain contains a CompileError with code.
func HasCode(err error, code ErrorCode) bool {
	return stderrors.Is(err, &CompileError{Code: code})
}

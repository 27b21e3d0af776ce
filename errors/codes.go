package errors

// ErrorCode represents a unique identifier for error types.
// Code generation reports E2xxx codes; the numbering leaves room for the
// parser (E1xxx) and the VM (E3xxx) to share the scheme.
type ErrorCode string

const (
	E2001 ErrorCode = "E2001" // Undefined variable
	E2002 ErrorCode = "E2002" // Undefined function
	E2007 ErrorCode = "E2007" // Register window exhausted
	E2008 ErrorCode = "E2008" // Too many constants
	E2011 ErrorCode = "E2011" // Duplicate function
	E2012 ErrorCode = "E2012" // Invalid operator
	E2013 ErrorCode = "E2013" // Too many functions
	E2014 ErrorCode = "E2014" // Nested function definition
	E2015 ErrorCode = "E2015" // Empty conditional branch
	E2016 ErrorCode = "E2016" // Branch too far
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E2001: "undefined variable",
	E2002: "undefined function",
	E2007: "register window exhausted",
	E2008: "too many constants",
	E2011: "duplicate function",
	E2012: "invalid operator",
	E2013: "too many functions",
	E2014: "nested function definition",
	E2015: "empty conditional branch",
	E2016: "branch too far",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Category returns the error category based on the code prefix.
func (c ErrorCode) Category() string {
	if len(c) < 2 {
		return "unknown"
	}
	switch c[1] {
	case '1':
		return "parse"
	case '2':
		return "compile"
	case '3':
		return "runtime"
	default:
		return "unknown"
	}
}

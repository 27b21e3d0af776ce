package op

// Operator symbols are the spellings the parser uses in operator nodes.
var (
	binaryOperators = map[string]Code{
		"+":  Add,
		"-":  Subtract,
		"*":  Multiply,
		"/":  Divide,
		"&":  BitwiseAnd,
		"|":  BitwiseOr,
		"==": Equal,
		"<":  LessThan,
		"<=": LessThanOrEqual,
		">":  GreaterThan,
		">=": GreaterThanOrEqual,
		"!=": NotEqual,
	}
	unaryOperators = map[string]Code{
		"~":     BitwiseNot,
		"write": Write,
	}
	nullaryOperators = map[string]Code{
		"read": Read,
	}
)

// Binary returns the opcode implementing the binary operator symbol.
func Binary(symbol string) (Code, bool) {
	code, ok := binaryOperators[symbol]
	return code, ok
}

// Unary returns the opcode implementing the unary operator symbol.
func Unary(symbol string) (Code, bool) {
	code, ok := unaryOperators[symbol]
	return code, ok
}

// Nullary returns the opcode implementing the nullary operator symbol.
func Nullary(symbol string) (Code, bool) {
	code, ok := nullaryOperators[symbol]
	return code, ok
}

// Symbols returns every operator symbol accepted for the given arity
// (0, 1 or 2). The order is unspecified.
func Symbols(arity int) []string {
	var table map[string]Code
	switch arity {
	case 0:
		table = nullaryOperators
	case 1:
		table = unaryOperators
	case 2:
		table = binaryOperators
	default:
		return nil
	}
	symbols := make([]string, 0, len(table))
	for symbol := range table {
		symbols = append(symbols, symbol)
	}
	return symbols
}

// Symbol returns the operator symbol an opcode implements, or "" if the
// opcode is not an operator.
func Symbol(code Code) string {
	for _, table := range []map[string]Code{binaryOperators, unaryOperators, nullaryOperators} {
		for symbol, c := range table {
			if c == code {
				return symbol
			}
		}
	}
	return ""
}

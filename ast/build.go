package ast

// Constructors for building trees by hand, mostly in tests and embedding
// programs. Slices passed in are used as is.

// Int returns an integer literal.
func Int(v int64) *Integer { return &Integer{Value: v} }

// Binary returns the binary operation x op y.
func Binary(op string, x, y Node) *BinaryOp { return &BinaryOp{Op: op, X: x, Y: y} }

// Unary returns the unary operation op x.
func Unary(op string, x Node) *UnaryOp { return &UnaryOp{Op: op, X: x} }

// Nullary returns the nullary operation op.
func Nullary(op string) *NullaryOp { return &NullaryOp{Op: op} }

// Function returns a call of the named function.
func Function(name string, args ...Node) *Call { return &Call{Name: name, Args: args} }

// Def returns a function definition.
func Def(name string, params []string, body ...Node) *FunctionDefinition {
	return &FunctionDefinition{Name: name, Params: params, Body: body}
}

// LetIn returns a let block.
func LetIn(bindings []Binding, body ...Node) *Let {
	return &Let{Bindings: bindings, Body: body}
}

// Bind returns a let binding.
func Bind(name string, value Node) Binding { return Binding{Name: name, Value: value} }

// Var returns a variable reference.
func Var(name string) *Variable { return &Variable{Name: name} }

// If returns a conditional.
func If(cond Node, then, otherwise []Node) *Conditional {
	return &Conditional{Cond: cond, Then: then, Else: otherwise}
}

// Nodes is shorthand for a node list.
func Nodes(nodes ...Node) []Node { return nodes }

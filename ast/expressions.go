package ast

import (
	"bytes"
	"strconv"
	"strings"
)

// Integer is a 64-bit signed integer literal.
type Integer struct {
	Value int64
}

func (x *Integer) exprNode() {}

func (x *Integer) String() string { return strconv.FormatInt(x.Value, 10) }

// BinaryOp is an operator applied to two operands, like "x + 1".
type BinaryOp struct {
	Op string // operator symbol: "+", "-", "*", "/", "&", "|", "==", "<", ...
	X  Node   // left operand
	Y  Node   // right operand
}

func (x *BinaryOp) exprNode() {}

func (x *BinaryOp) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(" " + x.Op + " ")
	out.WriteString(x.Y.String())
	out.WriteString(")")
	return out.String()
}

// UnaryOp is an operator applied to a single operand, like "~x" or
// "write x".
type UnaryOp struct {
	Op string // operator symbol: "~", "write"
	X  Node   // operand
}

func (x *UnaryOp) exprNode() {}

func (x *UnaryOp) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.Op)
	if isWord(x.Op) {
		out.WriteString(" ")
	}
	out.WriteString(x.X.String())
	out.WriteString(")")
	return out.String()
}

// NullaryOp is an operator without operands, like "read".
type NullaryOp struct {
	Op string
}

func (x *NullaryOp) exprNode() {}

func (x *NullaryOp) String() string { return "(" + x.Op + ")" }

// Call is a call of a named function with positional arguments.
type Call struct {
	Name string
	Args []Node
}

func (x *Call) exprNode() {}

func (x *Call) String() string {
	var out bytes.Buffer
	out.WriteString(x.Name)
	out.WriteString("(")
	out.WriteString(join(x.Args, ", "))
	out.WriteString(")")
	return out.String()
}

// FunctionDefinition defines a named function. The value of the function is
// the value of the last expression of its body.
type FunctionDefinition struct {
	Name   string
	Params []string
	Body   []Node
}

func (x *FunctionDefinition) exprNode() {}

func (x *FunctionDefinition) String() string {
	var out bytes.Buffer
	out.WriteString("def ")
	out.WriteString(x.Name)
	out.WriteString("(")
	out.WriteString(strings.Join(x.Params, ", "))
	out.WriteString(") { ")
	out.WriteString(join(x.Body, "; "))
	out.WriteString(" }")
	return out.String()
}

// Let binds names to values for the duration of its body. Each binding may
// refer to the bindings declared before it.
type Let struct {
	Bindings []Binding
	Body     []Node
}

func (x *Let) exprNode() {}

func (x *Let) String() string {
	bindings := make([]string, 0, len(x.Bindings))
	for _, b := range x.Bindings {
		bindings = append(bindings, b.String())
	}
	var out bytes.Buffer
	out.WriteString("let ")
	out.WriteString(strings.Join(bindings, ", "))
	out.WriteString(" in { ")
	out.WriteString(join(x.Body, "; "))
	out.WriteString(" }")
	return out.String()
}

// Variable is a reference to a parameter or let binding.
type Variable struct {
	Name string
}

func (x *Variable) exprNode() {}

func (x *Variable) String() string { return x.Name }

// Conditional evaluates Then when Cond is non-zero and Else otherwise.
type Conditional struct {
	Cond Node
	Then []Node
	Else []Node
}

func (x *Conditional) exprNode() {}

func (x *Conditional) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	out.WriteString(x.Cond.String())
	out.WriteString(" { ")
	out.WriteString(join(x.Then, "; "))
	out.WriteString(" } else { ")
	out.WriteString(join(x.Else, "; "))
	out.WriteString(" }")
	return out.String()
}

func join(nodes []Node, sep string) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, sep)
}

func isWord(op string) bool {
	for _, r := range op {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return op != ""
}

// Package ast defines the abstract syntax tree consumed by the regc code
// generator. The language is expression oriented: every node, including a
// function definition, is an expression.
//
// Trees are produced by an external parser and are treated as read-only by
// the generator.
package ast

// Node represents a portion of the syntax tree.
type Node interface {
	// String returns a human friendly representation of the Node. This
	// should be similar to the original source code, but not necessarily
	// identical.
	String() string

	exprNode()
}

// Binding is one name = value pair of a Let block.
type Binding struct {
	Name  string
	Value Node
}

func (b Binding) String() string {
	return b.Name + " = " + b.Value.String()
}

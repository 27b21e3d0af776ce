package ast

import "iter"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
//
// Children are visited in evaluation order: let initializers before the
// body, a conditional's condition before Then and Else.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range Children(node) {
		Walk(v, child)
	}
}

// Inspect traverses an AST in depth-first order. It starts by calling
// f(node); if f returns true, Inspect invokes f recursively for each of the
// children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at node
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if !yield(n) {
				return false
			}
			for _, child := range Children(n) {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}

// Children returns the direct, non-nil children of node in evaluation
// order.
func Children(node Node) []Node {
	var children []Node
	add := func(nodes ...Node) {
		for _, n := range nodes {
			if n != nil {
				children = append(children, n)
			}
		}
	}
	switch n := node.(type) {
	case *BinaryOp:
		add(n.X, n.Y)
	case *UnaryOp:
		add(n.X)
	case *Call:
		add(n.Args...)
	case *FunctionDefinition:
		add(n.Body...)
	case *Let:
		for _, b := range n.Bindings {
			add(b.Value)
		}
		add(n.Body...)
	case *Conditional:
		add(n.Cond)
		add(n.Then...)
		add(n.Else...)
	}
	return children
}

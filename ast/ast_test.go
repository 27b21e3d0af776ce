package ast

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		node     Node
		expected string
	}{
		{Int(-7), "-7"},
		{Binary("+", Var("x"), Int(1)), "(x + 1)"},
		{Unary("~", Var("x")), "(~x)"},
		{Unary("write", Int(3)), "(write 3)"},
		{Nullary("read"), "(read)"},
		{Function("f", Int(1), Var("y")), "f(1, y)"},
		{Function("g"), "g()"},
		{
			Def("inc", []string{"x"}, Binary("+", Var("x"), Int(1))),
			"def inc(x) { (x + 1) }",
		},
		{
			LetIn([]Binding{Bind("a", Int(1)), Bind("b", Var("a"))}, Var("b")),
			"let a = 1, b = a in { b }",
		},
		{
			If(Int(1), Nodes(Int(2)), Nodes(Int(3), Int(4))),
			"if 1 { 2 } else { 3; 4 }",
		},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.node.String())
		})
	}
}

func TestWalk(t *testing.T) {
	// def f(x) { let y = x + 1 in { if y { f(y) } else { read } } }
	program := Def("f", []string{"x"},
		LetIn([]Binding{Bind("y", Binary("+", Var("x"), Int(1)))},
			If(Var("y"),
				Nodes(Function("f", Var("y"))),
				Nodes(Nullary("read")),
			),
		),
	)

	var visited []string
	Inspect(program, func(n Node) bool {
		visited = append(visited, fmt.Sprintf("%T", n))
		return true
	})
	require.Equal(t, []string{
		"*ast.FunctionDefinition",
		"*ast.Let",
		"*ast.BinaryOp",
		"*ast.Variable",
		"*ast.Integer",
		"*ast.Conditional",
		"*ast.Variable",
		"*ast.Call",
		"*ast.Variable",
		"*ast.NullaryOp",
	}, visited)
}

func TestInspectSkipsChildren(t *testing.T) {
	program := Binary("*", Binary("+", Int(1), Int(2)), Int(3))
	var ints []int64
	Inspect(program, func(n Node) bool {
		switch n := n.(type) {
		case *BinaryOp:
			return n.Op != "+"
		case *Integer:
			ints = append(ints, n.Value)
		}
		return true
	})
	require.Equal(t, []int64{3}, ints)
}

func TestPreorder(t *testing.T) {
	program := Function("g", Int(1), Unary("~", Int(2)), Int(3))
	var seen []string
	for n := range Preorder(program) {
		seen = append(seen, n.String())
		if len(seen) == 3 {
			break
		}
	}
	require.Equal(t, []string{"g(1, (~2), 3)", "1", "(~2)"}, seen)
}

func TestChildrenOfLeaves(t *testing.T) {
	require.Nil(t, Children(Int(1)))
	require.Nil(t, Children(Var("x")))
	require.Nil(t, Children(Nullary("read")))
	require.Nil(t, Children(Def("f", nil)))
}

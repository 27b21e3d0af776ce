package compiler

import (
	"github.com/deepnoodle-ai/regc/ast"
	"github.com/deepnoodle-ai/regc/bytecode"
	"github.com/deepnoodle-ai/regc/errors"
	"github.com/deepnoodle-ai/regc/op"
)

// expr emits the instructions that leave the value of node in register
// base. For a function definition it emits the function body instead.
func (g *generator) expr(node ast.Node, base int, scope *Scope, h hints) error {
	target, err := g.register(base, h)
	if err != nil {
		return err
	}
	switch node := node.(type) {
	case *ast.Integer:
		return g.loadInteger(node.Value, target, h)
	case *ast.BinaryOp:
		return g.binary(node, base, scope, h.child(false))
	case *ast.UnaryOp:
		return g.unary(node, base, scope, h.child(false))
	case *ast.NullaryOp:
		return g.nullary(node, target, h)
	case *ast.Call:
		return g.call(node, base, scope, h)
	case *ast.FunctionDefinition:
		if !h.topLevel {
			return g.fail(h, errors.E2014, "function %q must be defined at the top level", node.Name)
		}
		return g.function(node, base, scope, hints{function: node.Name, tail: true})
	case *ast.Let:
		return g.let(node, base, scope, h.child(false))
	case *ast.Variable:
		return g.variable(node, target, scope, h)
	case *ast.Conditional:
		return g.conditional(node, base, scope, h)
	case nil:
		return g.fail(h, errors.E2012, "missing expression")
	default:
		return g.fail(h, errors.E2012, "unsupported expression %T", node)
	}
}

// binary evaluates the operands into base+1 and base+2 and combines them
// into base.
func (g *generator) binary(node *ast.BinaryOp, base int, scope *Scope, h hints) error {
	opcode, ok := op.Binary(node.Op)
	if !ok {
		return g.fail(h, errors.E2012, "invalid binary operator %q", node.Op)
	}
	if err := g.expr(node.X, base+1, scope, h); err != nil {
		return err
	}
	if err := g.expr(node.Y, base+2, scope, h); err != nil {
		return err
	}
	g.emit(bytecode.Make(opcode, uint8(base), uint8(base+1), uint8(base+2)))
	return nil
}

// unary evaluates the operand into base+1.
func (g *generator) unary(node *ast.UnaryOp, base int, scope *Scope, h hints) error {
	opcode, ok := op.Unary(node.Op)
	if !ok {
		return g.fail(h, errors.E2012, "invalid unary operator %q", node.Op)
	}
	if err := g.expr(node.X, base+1, scope, h); err != nil {
		return err
	}
	g.emit(bytecode.Make(opcode, uint8(base), uint8(base+1), 0))
	return nil
}

func (g *generator) nullary(node *ast.NullaryOp, target uint8, h hints) error {
	opcode, ok := op.Nullary(node.Op)
	if !ok {
		return g.fail(h, errors.E2012, "invalid nullary operator %q", node.Op)
	}
	g.emit(bytecode.Make(opcode, target, 0, 0))
	return nil
}

func (g *generator) variable(node *ast.Variable, target uint8, scope *Scope, h hints) error {
	binding, ok := scope.Lookup(node.Name)
	if !ok {
		return g.fail(h, errors.E2001, "undefined variable %q", node.Name).
			WithSuggestions(node.Name, scope.Names())
	}
	g.emit(bytecode.Make(op.Move, target, binding.Register, 0))
	return nil
}

// let evaluates the bindings into base+1..base+n in declaration order, each
// one seeing the bindings before it. The body is generated into base+n+1,
// one register above the last binding rather than into the last binding's
// register, so that it cannot overwrite a binding it still reads. Its value
// is then moved into base.
func (g *generator) let(node *ast.Let, base int, scope *Scope, h hints) error {
	next := base
	for _, binding := range node.Bindings {
		next++
		if err := g.expr(binding.Value, next, scope, h); err != nil {
			return err
		}
		scope = scope.With(binding.Name, uint8(next))
	}
	body := next + 1
	if _, err := g.register(body, h); err != nil {
		return err
	}
	for _, expr := range node.Body {
		if err := g.expr(expr, body, scope, h); err != nil {
			return err
		}
	}
	g.emit(bytecode.Make(op.Move, uint8(base), uint8(body), 0))
	return nil
}

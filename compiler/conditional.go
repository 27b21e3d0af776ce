package compiler

import (
	"github.com/deepnoodle-ai/regc/ast"
	"github.com/deepnoodle-ai/regc/bytecode"
	"github.com/deepnoodle-ai/regc/op"
)

// conditional lays out a conditional as
//
//	    <cond>           -> base
//	P1: JUMP_IF_TRUE     base, T
//	    <else branch>    -> base
//	P2: JUMP_FORWARD     E
//	T:  <then branch>    -> base
//	E:
//
// Both branch offsets are relative to the branch instruction and patched
// once the code they skip has been emitted.
func (g *generator) conditional(node *ast.Conditional, base int, scope *Scope, h hints) error {
	if err := checkBranches(node); err != nil {
		return err.InFunction(h.function)
	}
	if err := g.expr(node.Cond, base, scope, h.child(false)); err != nil {
		return err
	}

	jumpIfTruePos := g.emit(bytecode.MakeImm16(op.JumpIfTrue, uint8(base), 0))
	if err := g.branch(node.Else, base, scope, h); err != nil {
		return err
	}
	// Skip the else branch and the JUMP_FORWARD that follows it
	if err := g.patchImm16(jumpIfTruePos, len(g.code)-jumpIfTruePos+1, h); err != nil {
		return err
	}

	jumpForwardPos := g.emit(bytecode.MakeImm24(op.JumpForward, 0))
	if err := g.branch(node.Then, base, scope, h); err != nil {
		return err
	}
	return g.patchImm24(jumpForwardPos, len(g.code)-jumpForwardPos, h)
}

// branch generates the expressions of one branch. Only the last one
// inherits the tail position of the conditional.
func (g *generator) branch(nodes []ast.Node, base int, scope *Scope, h hints) error {
	last := len(nodes) - 1
	for i, expr := range nodes {
		if err := g.expr(expr, base, scope, h.child(h.tail && i == last)); err != nil {
			return err
		}
	}
	return nil
}

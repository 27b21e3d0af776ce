package compiler

import (
	"github.com/deepnoodle-ai/regc/ast"
	"github.com/deepnoodle-ai/regc/bytecode"
	"github.com/deepnoodle-ai/regc/errors"
	"github.com/deepnoodle-ai/regc/op"
)

// call evaluates every argument into base+1, base+2, ... and then transfers
// them into the parameter registers of the callee. In tail position the
// transfers stay in the current frame and the call becomes a JUMP;
// otherwise they cross into the frame pushed by CALL and the result is
// loaded into base afterwards.
func (g *generator) call(node *ast.Call, base int, scope *Scope, h hints) error {
	index, ok := g.funcs.lookup(node.Name)
	if !ok {
		return g.fail(h, errors.E2002, "undefined function %q", node.Name).
			WithSuggestions(node.Name, g.funcs.names)
	}

	// Arguments are never in tail position
	args := h.child(false)
	for i, arg := range node.Args {
		if err := g.expr(arg, base+1+i, scope, args); err != nil {
			return err
		}
	}

	// All arguments are evaluated before the first transfer, so a transfer
	// never overwrites a register that a later argument reads
	for i := range node.Args {
		param, err := g.register(ParamBase+i, h)
		if err != nil {
			return err
		}
		src := uint8(base + 1 + i)
		if h.tail {
			g.emit(bytecode.Make(op.Move, param, src, 0))
		} else {
			g.emit(bytecode.Make(op.MoveOut, param, src, op.MoveOutMarker))
		}
	}

	if h.tail {
		g.emit(bytecode.MakeImm24(op.Jump, uint32(index)))
		return nil
	}
	g.emit(bytecode.MakeImm24(op.Call, uint32(index)))
	g.emit(bytecode.Make(op.LoadReturn, uint8(base), 0, 0))
	return nil
}

// function emits a function body at the current address. Parameters are
// bound to base, base+1, ... and the body is generated just above them.
// The last body expression is in tail position. The driver declares every
// top-level definition before any body is generated, so the index is
// always known here.
func (g *generator) function(node *ast.FunctionDefinition, base int, scope *Scope, h hints) error {
	index, _ := g.funcs.lookup(node.Name)
	address := len(g.code)
	g.funcs.define(index, address)

	for i, param := range node.Params {
		reg, err := g.register(base+i, h)
		if err != nil {
			return err
		}
		scope = scope.With(param, reg)
	}

	body := base + len(node.Params)
	bodyReg, err := g.register(body, h)
	if err != nil {
		return err
	}
	last := len(node.Body) - 1
	for i, expr := range node.Body {
		if err := g.expr(expr, body, scope, h.child(i == last)); err != nil {
			return err
		}
	}

	g.emit(bytecode.Make(op.Move, ReturnRegister, bodyReg, 0))
	g.emit(bytecode.Make(op.Return, 0, 0, 0))

	g.log.Debug().
		Str("function", node.Name).
		Int("index", index).
		Int("address", address).
		Int("size", len(g.code)-address).
		Msg("function generated")
	return nil
}

// Package compiler lowers an AST into register machine bytecode.
//
// # Two-Pass Generation
//
// Function bodies are hoisted to the front of the module so that every
// function has a fixed address before any top-level code runs:
//
//  1. Declaration: every top-level function definition gets the next
//     function index, in source order. Call sites refer to callees by
//     index, so functions may call functions defined after them.
//  2. Definitions: each function body is emitted and its entry address
//     recorded.
//  3. Statements: the module entry point is set to the current code length
//     and every other top-level expression is emitted.
//
// The module always ends with HALT.
//
// # Register Windows
//
// Every expression is generated into a destination register, its base.
// Sub-expressions are generated into base+1, base+2, and so on. Registers
// below base hold live bindings of enclosing scopes and are never written.
// There is no explicit deallocation: once an expression is done, the
// registers above its base are free again.
//
// Register 0 receives function results. Function parameters occupy
// registers 1..n of a frame; callers transfer arguments there with MOVE
// (tail calls, same frame) or MOVE_OUT (regular calls, next frame).
//
// # Tail Calls
//
// A call in tail position, the final expression of a function body or of
// a conditional branch that is itself in tail position, reuses the
// current frame: arguments are moved into the parameter registers and a
// JUMP replaces CALL. Every other call pushes a frame with CALL and copies
// the result into its base register with LOAD_RETURN.
package compiler

import (
	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/regc/ast"
	"github.com/deepnoodle-ai/regc/bytecode"
	"github.com/deepnoodle-ai/regc/op"
)

const (
	// ReturnRegister receives the value of a returning function. Top-level
	// expressions are generated into it.
	ReturnRegister = 0

	// ParamBase is the register of the first function parameter.
	ParamBase = 1

	// MaxRegister is the highest register index an operand byte can hold.
	MaxRegister = 255

	// MaxConstants is the capacity of the constant pool.
	MaxConstants = bytecode.MaxImm16
)

// Generator turns ASTs into modules. A Generator only holds configuration;
// it may be reused and shared between goroutines.
type Generator struct {
	cfg *config
}

// New returns a Generator configured with the given options.
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Generator{cfg: cfg}
}

// Generate lowers a program with the default configuration. See
// Generator.Generate.
func Generate(nodes []ast.Node, opts ...Option) (*bytecode.Module, error) {
	return New(opts...).Generate(nodes)
}

// Generate lowers the top-level expressions of a program into a module.
// Function definitions are emitted first, in source order, followed by
// every other expression. The returned error, if any, is an
// *errors.CompileError describing why the program is invalid.
func (gen *Generator) Generate(nodes []ast.Node) (*bytecode.Module, error) {
	g := &generator{
		log:   gen.cfg.logger,
		limit: gen.cfg.registerLimit,
		funcs: newFunctionTable(),
	}

	var definitions, statements []ast.Node
	for _, node := range nodes {
		if _, ok := node.(*ast.FunctionDefinition); ok {
			definitions = append(definitions, node)
		} else {
			statements = append(statements, node)
		}
	}

	// First pass: number the functions so that call sites can refer to
	// functions defined later in the source
	for _, node := range definitions {
		def := node.(*ast.FunctionDefinition)
		index, err := g.funcs.declare(def.Name)
		if err != nil {
			return nil, err
		}
		g.log.Debug().Str("function", def.Name).Int("index", index).Msg("function declared")
	}

	// Second pass: function bodies
	for _, node := range definitions {
		if err := g.expr(node, ParamBase, nil, hints{topLevel: true}); err != nil {
			return nil, err
		}
	}

	// Third pass: top-level statements
	entryPoint := len(g.code)
	g.log.Debug().Int("entry_point", entryPoint).Msg("function bodies generated")
	for _, node := range statements {
		if err := g.expr(node, ReturnRegister, nil, hints{}); err != nil {
			return nil, err
		}
	}

	// Always end with a halt instruction
	g.emit(bytecode.Make(op.Halt, 0, 0, 0))

	mod := bytecode.NewModule(bytecode.ModuleParams{
		Instructions:  g.code,
		Constants:     g.constants,
		Functions:     g.funcs.addresses,
		FunctionNames: g.funcs.names,
		EntryPoint:    entryPoint,
	})
	g.log.Debug().
		Int("instructions", mod.InstructionCount()).
		Int("constants", mod.ConstantCount()).
		Int("functions", mod.FunctionCount()).
		Msg("module generated")
	return mod, nil
}

// generator holds the state of one Generate call: the instruction stream
// and constant pool of the module under construction and the function
// table. All of it is discarded once the module is built.
type generator struct {
	log       zerolog.Logger
	limit     int
	code      []bytecode.Instruction
	constants []int64
	funcs     *functionTable
}

// hints is recomputed at every step of the descent. function names the
// function being generated, for diagnostics. tail is set when the node is
// in tail position. topLevel is only set by the driver and permits
// function definitions.
type hints struct {
	function string
	tail     bool
	topLevel bool
}

// child returns the hints for a sub-expression.
func (h hints) child(tail bool) hints {
	return hints{function: h.function, tail: tail}
}

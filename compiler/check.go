package compiler

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/deepnoodle-ai/regc/ast"
	"github.com/deepnoodle-ai/regc/errors"
	"github.com/deepnoodle-ai/regc/op"
)

// Check reports every invalid-program condition it can find in a program,
// instead of stopping at the first one like Generate does: undefined
// functions and variables, invalid operators, empty conditional branches,
// nested and duplicate function definitions. Limits that depend on the
// generated code (register window, constant pool, branch distance) are
// only detected by Generate.
//
// Each top-level node is checked in two passes: a structural pass over the
// tree, then a name resolution pass that follows the scoping rules of the
// generator.
//
// The returned error is a *multierror.Error whose entries are
// *errors.CompileError values, or nil if no problem was found.
func Check(nodes []ast.Node) error {
	c := &checker{declared: map[string]bool{}}

	for _, node := range nodes {
		def, ok := node.(*ast.FunctionDefinition)
		if !ok {
			continue
		}
		if c.declared[def.Name] {
			c.add(errors.New(errors.E2011, "function %q redefined", def.Name))
			continue
		}
		c.declared[def.Name] = true
		c.names = append(c.names, def.Name)
	}

	for _, node := range nodes {
		def, ok := node.(*ast.FunctionDefinition)
		if !ok {
			c.structure(node, "")
			c.resolve(node, nil, "")
			continue
		}
		c.structure(def, def.Name)
		var scope *Scope
		for i, param := range def.Params {
			scope = scope.With(param, uint8(ParamBase+i))
		}
		for _, expr := range def.Body {
			c.resolve(expr, scope, def.Name)
		}
	}

	if c.errs == nil {
		return nil
	}
	c.errs.ErrorFormat = formatErrors
	return c.errs
}

type checker struct {
	declared map[string]bool
	names    []string
	errs     *multierror.Error
}

func (c *checker) add(err *errors.CompileError) {
	c.errs = multierror.Append(c.errs, err)
}

// structure reports the problems that do not depend on scope: invalid
// operators, empty branches and definitions below the top level. The
// subtree of a nested definition is not inspected.
func (c *checker) structure(root ast.Node, function string) {
	ast.Inspect(root, func(node ast.Node) bool {
		switch node := node.(type) {
		case *ast.BinaryOp:
			if _, ok := op.Binary(node.Op); !ok {
				c.add(errors.New(errors.E2012, "invalid binary operator %q", node.Op).InFunction(function))
			}
		case *ast.UnaryOp:
			if _, ok := op.Unary(node.Op); !ok {
				c.add(errors.New(errors.E2012, "invalid unary operator %q", node.Op).InFunction(function))
			}
		case *ast.NullaryOp:
			if _, ok := op.Nullary(node.Op); !ok {
				c.add(errors.New(errors.E2012, "invalid nullary operator %q", node.Op).InFunction(function))
			}
		case *ast.FunctionDefinition:
			if node != root {
				c.add(errors.New(errors.E2014, "function %q must be defined at the top level", node.Name).InFunction(function))
				return false
			}
		case *ast.Conditional:
			if err := checkBranches(node); err != nil {
				c.add(err.InFunction(function))
			}
		}
		return true
	})
}

// resolve reports undefined functions, undefined variables and missing
// operands.
func (c *checker) resolve(node ast.Node, scope *Scope, function string) {
	switch node := node.(type) {
	case nil:
		c.add(errors.New(errors.E2012, "missing expression").InFunction(function))
	case *ast.BinaryOp:
		c.resolve(node.X, scope, function)
		c.resolve(node.Y, scope, function)
	case *ast.UnaryOp:
		c.resolve(node.X, scope, function)
	case *ast.Call:
		if !c.declared[node.Name] {
			c.add(errors.New(errors.E2002, "undefined function %q", node.Name).
				InFunction(function).
				WithSuggestions(node.Name, c.names))
		}
		for _, arg := range node.Args {
			c.resolve(arg, scope, function)
		}
	case *ast.Variable:
		if !scope.IsDefined(node.Name) {
			c.add(errors.New(errors.E2001, "undefined variable %q", node.Name).
				InFunction(function).
				WithSuggestions(node.Name, scope.Names()))
		}
	case *ast.Let:
		// Bindings see the bindings declared before them
		inner := scope
		for i, binding := range node.Bindings {
			c.resolve(binding.Value, inner, function)
			inner = inner.With(binding.Name, uint8(i+1))
		}
		for _, expr := range node.Body {
			c.resolve(expr, inner, function)
		}
	case *ast.Conditional:
		c.resolve(node.Cond, scope, function)
		for _, expr := range node.Then {
			c.resolve(expr, scope, function)
		}
		for _, expr := range node.Else {
			c.resolve(expr, scope, function)
		}
	}
}

// checkBranches rejects a conditional with an empty branch, which has no
// value to leave in the base register.
func checkBranches(node *ast.Conditional) *errors.CompileError {
	var missing []string
	if len(node.Then) == 0 {
		missing = append(missing, "then")
	}
	if len(node.Else) == 0 {
		missing = append(missing, "else")
	}
	if len(missing) == 0 {
		return nil
	}
	return errors.New(errors.E2015, "conditional has an empty %s branch", strings.Join(missing, " and "))
}

// formatErrors lists the errors as "[i/n] message". Continuation lines of
// an entry, such as its hint, are indented below it.
func formatErrors(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	var b strings.Builder
	for i, err := range errs {
		if i > 0 {
			b.WriteString("\n")
		}
		for j, line := range strings.Split(err.Error(), "\n") {
			switch {
			case j == 0:
				fmt.Fprintf(&b, "[%d/%d] %s", i+1, len(errs), line)
			case line != "":
				b.WriteString("\n    ")
				b.WriteString(line)
			}
		}
	}
	return b.String()
}

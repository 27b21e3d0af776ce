package compiler

import (
	"github.com/deepnoodle-ai/regc/bytecode"
	"github.com/deepnoodle-ai/regc/errors"
)

// MaxFunctions is the number of function indices a 24-bit call operand can
// address.
const MaxFunctions = bytecode.MaxImm24 + 1

// functionTable numbers functions globally for one Generate call. Indices
// are handed out in declaration order; entry addresses are filled in as
// function bodies are emitted.
type functionTable struct {
	indices   map[string]int
	names     []string
	addresses []int
}

func newFunctionTable() *functionTable {
	return &functionTable{indices: map[string]int{}}
}

// declare assigns the next function index to name.
func (t *functionTable) declare(name string) (int, error) {
	if _, found := t.indices[name]; found {
		return 0, errors.New(errors.E2011, "function %q redefined", name)
	}
	index := len(t.names)
	if index >= MaxFunctions {
		return 0, errors.New(errors.E2013, "too many functions (limit %d)", MaxFunctions)
	}
	t.indices[name] = index
	t.names = append(t.names, name)
	t.addresses = append(t.addresses, -1)
	return index, nil
}

func (t *functionTable) lookup(name string) (int, bool) {
	index, ok := t.indices[name]
	return index, ok
}

// define records the entry address of a declared function.
func (t *functionTable) define(index, address int) {
	t.addresses[index] = address
}

package compiler

import (
	"math"

	"github.com/deepnoodle-ai/regc/bytecode"
	"github.com/deepnoodle-ai/regc/errors"
	"github.com/deepnoodle-ai/regc/op"
)

// emit appends an instruction and returns its address.
func (g *generator) emit(inst bytecode.Instruction) int {
	pos := len(g.code)
	g.code = append(g.code, inst)
	return pos
}

// fail returns an error annotated with the enclosing function.
func (g *generator) fail(h hints, code errors.ErrorCode, format string, args ...any) *errors.CompileError {
	return errors.New(code, format, args...).InFunction(h.function)
}

// register checks that r lies inside the register window.
func (g *generator) register(r int, h hints) (uint8, error) {
	if r < 0 || r > g.limit {
		return 0, g.fail(h, errors.E2007, "register window exhausted (r%d exceeds r%d)", r, g.limit)
	}
	return uint8(r), nil
}

// constant appends v to the constant pool and returns its index.
func (g *generator) constant(v int64, h hints) (uint16, error) {
	if len(g.constants) >= MaxConstants {
		return 0, g.fail(h, errors.E2008, "too many constants (limit %d)", MaxConstants)
	}
	g.constants = append(g.constants, v)
	return uint16(len(g.constants) - 1), nil
}

// loadInteger emits the load of an integer literal into target. Values
// that fit a signed 16-bit immediate are encoded in the instruction, all
// others go through the constant pool.
func (g *generator) loadInteger(v int64, target uint8, h hints) error {
	if v >= math.MinInt16 && v <= math.MaxInt16 {
		g.emit(bytecode.MakeImm16(op.LoadImmediate, target, uint16(int16(v))))
		return nil
	}
	index, err := g.constant(v, h)
	if err != nil {
		return err
	}
	g.emit(bytecode.MakeImm16(op.LoadConst, target, index))
	return nil
}

// patchImm16 rewrites the 16-bit offset of the branch at pos.
func (g *generator) patchImm16(pos, offset int, h hints) error {
	if offset < 0 || offset > bytecode.MaxImm16 {
		return g.fail(h, errors.E2016, "branch at %d too far (offset %d)", pos, offset)
	}
	g.code[pos].SetImm16(uint16(offset))
	return nil
}

// patchImm24 rewrites the 24-bit offset of the branch at pos.
func (g *generator) patchImm24(pos, offset int, h hints) error {
	if offset < 0 || offset > bytecode.MaxImm24 {
		return g.fail(h, errors.E2016, "branch at %d too far (offset %d)", pos, offset)
	}
	g.code[pos].SetImm24(uint32(offset))
	return nil
}

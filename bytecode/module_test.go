package bytecode

import (
	"testing"

	"github.com/deepnoodle-ai/regc/op"
	"github.com/stretchr/testify/require"
)

func TestNewModuleImmutability(t *testing.T) {
	instructions := []Instruction{
		Make(op.Return, 0, 0, 0),
		MakeImm16(op.LoadConst, 0, 0),
		Make(op.Halt, 0, 0, 0),
	}
	constants := []int64{100000}
	functions := []int{0}
	names := []string{"f"}

	mod := NewModule(ModuleParams{
		Instructions:  instructions,
		Constants:     constants,
		Functions:     functions,
		FunctionNames: names,
		EntryPoint:    1,
	})

	instructions[0] = Make(op.Halt, 0, 0, 0)
	constants[0] = 1
	functions[0] = 99
	names[0] = "modified"

	require.Equal(t, op.Return, mod.InstructionAt(0).Op)
	require.Equal(t, int64(100000), mod.ConstantAt(0))
	require.Equal(t, 0, mod.FunctionAt(0))
	require.Equal(t, "f", mod.FunctionNameAt(0))
	require.Equal(t, 1, mod.EntryPoint())
}

func TestModuleAccessors(t *testing.T) {
	mod := NewModule(ModuleParams{
		Instructions: []Instruction{
			MakeImm16(op.LoadImmediate, 0, 5),
			Make(op.Halt, 0, 0, 0),
		},
	})
	require.Equal(t, 2, mod.InstructionCount())
	require.Equal(t, 0, mod.ConstantCount())
	require.Equal(t, 0, mod.FunctionCount())
	require.Equal(t, "", mod.FunctionNameAt(0))
	require.Equal(t, "", mod.FunctionNameAt(-1))
	require.Equal(t, []byte{1, 0, 5, 0, 26, 0, 0, 0}, mod.Code())
}

func TestModuleStats(t *testing.T) {
	mod := NewModule(ModuleParams{
		Instructions: []Instruction{
			Make(op.Move, 0, 1, 0),
			Make(op.Return, 0, 0, 0),
			MakeImm16(op.LoadConst, 0, 0),
			Make(op.Halt, 0, 0, 0),
		},
		Constants:  []int64{1 << 40},
		Functions:  []int{0},
		EntryPoint: 2,
	})
	require.Equal(t, Stats{
		InstructionCount:     4,
		ConstantCount:        1,
		FunctionCount:        1,
		FunctionInstructions: 2,
		CodeBytes:            16,
	}, mod.Stats())
}

package bytecode

// Module is the output of code generation: one instruction stream holding
// every function body followed by the top-level statements, the constant
// pool for integers that do not fit an immediate, and the entry address of
// each function. It is immutable after creation and safe for concurrent use.
type Module struct {
	instructions  []Instruction
	constants     []int64
	functions     []int
	functionNames []string
	entryPoint    int
}

// ModuleParams contains parameters for creating a new Module.
type ModuleParams struct {
	Instructions []Instruction
	Constants    []int64

	// Functions holds the entry address of each function, indexed by
	// function table index.
	Functions []int

	// FunctionNames is parallel to Functions and only used for debugging
	// and disassembly. It may be nil.
	FunctionNames []string

	// EntryPoint is the address of the first top-level instruction.
	EntryPoint int
}

// NewModule creates a new immutable Module from the given parameters.
// Input slices are copied to ensure immutability.
func NewModule(params ModuleParams) *Module {
	return &Module{
		instructions:  copyInstructions(params.Instructions),
		constants:     copyInt64s(params.Constants),
		functions:     copyInts(params.Functions),
		functionNames: copyStrings(params.FunctionNames),
		entryPoint:    params.EntryPoint,
	}
}

// InstructionCount returns the number of instructions.
func (m *Module) InstructionCount() int {
	return len(m.instructions)
}

// InstructionAt returns the instruction at the given address.
func (m *Module) InstructionAt(index int) Instruction {
	return m.instructions[index]
}

// ConstantCount returns the number of pooled constants.
func (m *Module) ConstantCount() int {
	return len(m.constants)
}

// ConstantAt returns the pooled constant at the given index.
func (m *Module) ConstantAt(index int) int64 {
	return m.constants[index]
}

// FunctionCount returns the number of functions in the function table.
func (m *Module) FunctionCount() int {
	return len(m.functions)
}

// FunctionAt returns the entry address of the function with the given
// function table index.
func (m *Module) FunctionAt(index int) int {
	return m.functions[index]
}

// FunctionNameAt returns the name of the function with the given index.
// Returns an empty string if no names were recorded.
func (m *Module) FunctionNameAt(index int) string {
	if index < 0 || index >= len(m.functionNames) {
		return ""
	}
	return m.functionNames[index]
}

// EntryPoint returns the address where top-level execution begins. It is
// always the address right after the last function body.
func (m *Module) EntryPoint() int {
	return m.entryPoint
}

// Code returns the encoded instruction stream, Width bytes per instruction.
// The returned slice is newly allocated.
func (m *Module) Code() []byte {
	return Encode(m.instructions)
}

// Stats returns statistics about this module.
func (m *Module) Stats() Stats {
	functionInstructions := m.entryPoint
	return Stats{
		InstructionCount:     len(m.instructions),
		ConstantCount:        len(m.constants),
		FunctionCount:        len(m.functions),
		FunctionInstructions: functionInstructions,
		CodeBytes:            len(m.instructions) * Width,
	}
}

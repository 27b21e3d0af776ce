package bytecode

// Stats contains statistics about a generated module.
// This is useful for auditing programs before execution.
type Stats struct {
	// InstructionCount is the total number of instructions.
	InstructionCount int

	// ConstantCount is the number of entries in the constant pool.
	ConstantCount int

	// FunctionCount is the number of functions in the function table.
	FunctionCount int

	// FunctionInstructions is the number of instructions that belong to
	// function bodies, which always precede the entry point.
	FunctionInstructions int

	// CodeBytes is the size of the encoded instruction stream.
	CodeBytes int
}

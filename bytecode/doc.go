// Package bytecode provides the instruction format and the immutable module
// produced by the regc code generator.
//
// # Instruction Format
//
// Every instruction is Width (4) bytes: opcode, target, left, right. The
// three operand bytes are registers for most opcodes. Values wider than a
// byte are packed little-endian:
//
//   - 16-bit values (immediates, constant pool indices, conditional branch
//     offsets) occupy left and right.
//   - 24-bit values (function indices, unconditional branch offsets) occupy
//     target, left and right.
//
// # Module
//
// A [Module] holds one instruction stream. Function bodies come first, in
// definition order, followed by the top-level statements starting at
// [Module.EntryPoint]. The stream always ends with a HALT instruction.
//
// Like the rest of this package, Module is immutable after construction:
//
//   - All fields are unexported
//   - NewModule copies its input slices
//   - Accessors are index-based and never return internal slices
//
// Example:
//
//	mod, err := compiler.Generate(program)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Instructions: %d\n", mod.InstructionCount())
//	fmt.Printf("Constants: %d\n", mod.ConstantCount())
//	raw := mod.Code() // 4 bytes per instruction
//
// # Package Dependencies
//
// This package depends only on the op package.
package bytecode

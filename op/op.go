// Package op defines the opcodes of the register machine targeted by the
// regc code generator.
package op

// Code is a one byte opcode that indicates an operation to execute.
// The numeric values are part of the wire format shared with the VM and
// must not be renumbered.
type Code uint8

const (
	Invalid Code = 0

	// Load
	LoadImmediate Code = 1 // target = int16(left | right<<8)
	LoadConst     Code = 2 // target = constants[left | right<<8]

	// Arithmetic and bitwise
	Add        Code = 3
	Subtract   Code = 4
	Multiply   Code = 5
	Divide     Code = 6
	BitwiseAnd Code = 7
	BitwiseOr  Code = 8

	// Comparison
	Equal              Code = 9
	LessThan           Code = 10
	LessThanOrEqual    Code = 11
	GreaterThan        Code = 12
	GreaterThanOrEqual Code = 13
	NotEqual           Code = 14

	// Unary and nullary
	BitwiseNot Code = 15
	Write      Code = 16
	Read       Code = 17

	// Register transfer
	Move    Code = 18 // same frame
	MoveOut Code = 19 // into the frame about to be pushed; right is MoveOutMarker

	// Calls
	Jump       Code = 20 // tail call, function index in target/left/right
	Call       Code = 21 // push frame, function index in target/left/right
	LoadReturn Code = 22 // target = return register of the finished callee

	// Branches
	JumpIfTrue  Code = 23 // if target != 0 skip left | right<<8 instructions
	JumpForward Code = 24 // skip target | left<<8 | right<<16 instructions

	// Execution
	Return Code = 25
	Halt   Code = 26
)

// MoveOutMarker is written to the right operand of every MoveOut so the
// frame-crossing transfer can be told apart at the instruction level.
const MoveOutMarker = 0xFF

// Format describes how the three operand bytes of an instruction are used.
type Format uint8

const (
	// FormatNone instructions ignore all operand bytes.
	FormatNone Format = iota
	// FormatA uses the target register only.
	FormatA
	// FormatAB uses the target and left registers.
	FormatAB
	// FormatABC uses all three bytes as registers.
	FormatABC
	// FormatAImm16 uses the target register and a 16-bit value packed
	// little-endian across left and right.
	FormatAImm16
	// FormatImm24 packs a 24-bit value little-endian across target, left
	// and right.
	FormatImm24
)

// String returns a short name of the format, as shown by the disassembler.
func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatA:
		return "A"
	case FormatAB:
		return "AB"
	case FormatABC:
		return "ABC"
	case FormatAImm16:
		return "A imm16"
	case FormatImm24:
		return "imm24"
	default:
		return ""
	}
}

// Info contains information about an opcode.
type Info struct {
	Code   Code
	Name   string
	Format Format
}

var infos = make([]Info, 256)

func init() {
	type opInfo struct {
		op     Code
		name   string
		format Format
	}
	ops := []opInfo{
		{Add, "ADD", FormatABC},
		{BitwiseAnd, "AND", FormatABC},
		{BitwiseNot, "NOT", FormatAB},
		{BitwiseOr, "OR", FormatABC},
		{Call, "CALL", FormatImm24},
		{Divide, "DIV", FormatABC},
		{Equal, "EQ", FormatABC},
		{GreaterThan, "GT", FormatABC},
		{GreaterThanOrEqual, "GE", FormatABC},
		{Halt, "HALT", FormatNone},
		{Jump, "JUMP", FormatImm24},
		{JumpForward, "JUMP_FORWARD", FormatImm24},
		{JumpIfTrue, "JUMP_IF_TRUE", FormatAImm16},
		{LessThan, "LT", FormatABC},
		{LessThanOrEqual, "LE", FormatABC},
		{LoadConst, "LOAD_CONST", FormatAImm16},
		{LoadImmediate, "LOAD_IMM", FormatAImm16},
		{LoadReturn, "LOAD_RETURN", FormatA},
		{Move, "MOVE", FormatAB},
		{MoveOut, "MOVE_OUT", FormatAB},
		{Multiply, "MUL", FormatABC},
		{NotEqual, "NE", FormatABC},
		{Read, "READ", FormatA},
		{Return, "RETURN", FormatNone},
		{Subtract, "SUB", FormatABC},
		{Write, "WRITE", FormatAB},
	}
	for _, o := range ops {
		infos[o.op] = Info{
			Name:   o.name,
			Code:   o.op,
			Format: o.format,
		}
	}
}

// GetInfo returns information about the given opcode. Unknown opcodes
// yield a zero Info with an empty name.
func GetInfo(op Code) Info {
	return infos[op]
}

// IsValid reports whether the opcode belongs to the instruction set.
func (c Code) IsValid() bool {
	return infos[c].Name != ""
}

// String returns the mnemonic of the opcode.
func (c Code) String() string {
	if name := infos[c].Name; name != "" {
		return name
	}
	return "INVALID"
}

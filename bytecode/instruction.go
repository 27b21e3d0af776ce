package bytecode

import (
	"fmt"

	"github.com/deepnoodle-ai/regc/op"
)

// Width is the size of one encoded instruction in bytes.
const Width = 4

const (
	// MaxImm16 is the largest value that fits a 16-bit operand field.
	MaxImm16 = 1<<16 - 1
	// MaxImm24 is the largest value that fits a 24-bit operand field.
	MaxImm24 = 1<<24 - 1
)

// Instruction is a fixed width register machine instruction: an opcode
// followed by three operand bytes. Values wider than one byte are packed
// little-endian across the operand bytes, see MakeImm16 and MakeImm24.
type Instruction struct {
	Op     op.Code
	Target uint8
	Left   uint8
	Right  uint8
}

// Make returns an instruction with the given opcode and operand bytes.
func Make(opcode op.Code, target, left, right uint8) Instruction {
	return Instruction{Op: opcode, Target: target, Left: left, Right: right}
}

// MakeImm16 returns an instruction whose left and right bytes hold v,
// low byte first.
func MakeImm16(opcode op.Code, target uint8, v uint16) Instruction {
	return Instruction{
		Op:     opcode,
		Target: target,
		Left:   uint8(v),
		Right:  uint8(v >> 8),
	}
}

// MakeImm24 returns an instruction whose target, left and right bytes hold
// the low 24 bits of v, low byte first.
func MakeImm24(opcode op.Code, v uint32) Instruction {
	return Instruction{
		Op:     opcode,
		Target: uint8(v),
		Left:   uint8(v >> 8),
		Right:  uint8(v >> 16),
	}
}

// Imm16 returns the 16-bit value packed across the left and right bytes.
func (i Instruction) Imm16() uint16 {
	return uint16(i.Left) | uint16(i.Right)<<8
}

// Int16 returns Imm16 reinterpreted as a signed immediate.
func (i Instruction) Int16() int16 {
	return int16(i.Imm16())
}

// Imm24 returns the 24-bit value packed across target, left and right.
func (i Instruction) Imm24() uint32 {
	return uint32(i.Target) | uint32(i.Left)<<8 | uint32(i.Right)<<16
}

// SetImm16 rewrites the left and right bytes in place. It is used to patch
// branch offsets once the branch target is known.
func (i *Instruction) SetImm16(v uint16) {
	i.Left = uint8(v)
	i.Right = uint8(v >> 8)
}

// SetImm24 rewrites the target, left and right bytes in place.
func (i *Instruction) SetImm24(v uint32) {
	i.Target = uint8(v)
	i.Left = uint8(v >> 8)
	i.Right = uint8(v >> 16)
}

// Bytes returns the wire encoding of the instruction.
func (i Instruction) Bytes() [Width]byte {
	return [Width]byte{byte(i.Op), i.Target, i.Left, i.Right}
}

// String returns the instruction as "NAME target left right".
func (i Instruction) String() string {
	return fmt.Sprintf("%s %d %d %d", i.Op, i.Target, i.Left, i.Right)
}

// Decode reads one instruction from the first Width bytes of b.
func Decode(b []byte) (Instruction, error) {
	if len(b) < Width {
		return Instruction{}, fmt.Errorf("bytecode: short instruction (got %d bytes, need %d)", len(b), Width)
	}
	inst := Make(op.Code(b[0]), b[1], b[2], b[3])
	if !inst.Op.IsValid() {
		return Instruction{}, fmt.Errorf("bytecode: invalid opcode %d", b[0])
	}
	return inst, nil
}

// Encode returns the raw instruction stream for the given instructions.
func Encode(instructions []Instruction) []byte {
	out := make([]byte, 0, len(instructions)*Width)
	for _, inst := range instructions {
		b := inst.Bytes()
		out = append(out, b[:]...)
	}
	return out
}

// DecodeAll decodes a raw instruction stream produced by Encode.
func DecodeAll(b []byte) ([]Instruction, error) {
	if len(b)%Width != 0 {
		return nil, fmt.Errorf("bytecode: stream length %d is not a multiple of %d", len(b), Width)
	}
	instructions := make([]Instruction, 0, len(b)/Width)
	for offset := 0; offset < len(b); offset += Width {
		inst, err := Decode(b[offset:])
		if err != nil {
			return nil, fmt.Errorf("at offset %d: %w", offset/Width, err)
		}
		instructions = append(instructions, inst)
	}
	return instructions, nil
}

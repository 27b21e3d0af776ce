package bytecode

import (
	"testing"

	"github.com/deepnoodle-ai/regc/op"
	"github.com/stretchr/testify/require"
)

func TestMakeImm16(t *testing.T) {
	tests := []struct {
		value uint16
		left  uint8
		right uint8
	}{
		{0, 0, 0},
		{1, 1, 0},
		{0x1234, 0x34, 0x12},
		{0xFFFF, 0xFF, 0xFF},
	}
	for _, tt := range tests {
		inst := MakeImm16(op.LoadConst, 7, tt.value)
		require.Equal(t, uint8(7), inst.Target)
		require.Equal(t, tt.left, inst.Left)
		require.Equal(t, tt.right, inst.Right)
		require.Equal(t, tt.value, inst.Imm16())
	}
}

func TestSignedImmediate(t *testing.T) {
	for _, v := range []int16{-32768, -1, 0, 1, 255, 256, 32767} {
		inst := MakeImm16(op.LoadImmediate, 0, uint16(v))
		require.Equal(t, v, inst.Int16())
	}
	inst := MakeImm16(op.LoadImmediate, 0, uint16(0xFFFF))
	require.Equal(t, uint8(0xFF), inst.Left)
	require.Equal(t, uint8(0xFF), inst.Right)
	require.Equal(t, int16(-1), inst.Int16())
}

func TestMakeImm24(t *testing.T) {
	inst := MakeImm24(op.Call, 0x0A0B0C)
	require.Equal(t, Instruction{Op: op.Call, Target: 0x0C, Left: 0x0B, Right: 0x0A}, inst)
	require.Equal(t, uint32(0x0A0B0C), inst.Imm24())

	// Bits above 24 are dropped
	inst = MakeImm24(op.Jump, 0x01FFFFFF)
	require.Equal(t, uint32(MaxImm24), inst.Imm24())
}

func TestPatchInPlace(t *testing.T) {
	code := []Instruction{
		MakeImm16(op.JumpIfTrue, 3, 0),
		MakeImm24(op.JumpForward, 0),
	}
	code[0].SetImm16(0x0102)
	code[1].SetImm24(0x030201)
	require.Equal(t, Instruction{Op: op.JumpIfTrue, Target: 3, Left: 0x02, Right: 0x01}, code[0])
	require.Equal(t, Instruction{Op: op.JumpForward, Target: 0x01, Left: 0x02, Right: 0x03}, code[1])
}

func TestBytesAndString(t *testing.T) {
	inst := Make(op.MoveOut, 1, 2, op.MoveOutMarker)
	require.Equal(t, [Width]byte{19, 1, 2, 0xFF}, inst.Bytes())
	require.Equal(t, "MOVE_OUT 1 2 255", inst.String())
}

func TestEncodeDecode(t *testing.T) {
	code := []Instruction{
		MakeImm16(op.LoadImmediate, 0, 2),
		Make(op.Add, 0, 1, 2),
		Make(op.Halt, 0, 0, 0),
	}
	raw := Encode(code)
	require.Equal(t, []byte{1, 0, 2, 0, 3, 0, 1, 2, 26, 0, 0, 0}, raw)

	decoded, err := DecodeAll(raw)
	require.Nil(t, err)
	require.Equal(t, code, decoded)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte{1, 2})
	require.NotNil(t, err)
	require.Equal(t, "bytecode: short instruction (got 2 bytes, need 4)", err.Error())

	_, err = Decode([]byte{0, 0, 0, 0})
	require.NotNil(t, err)
	require.Equal(t, "bytecode: invalid opcode 0", err.Error())

	_, err = DecodeAll([]byte{26, 0, 0})
	require.NotNil(t, err)

	_, err = DecodeAll([]byte{26, 0, 0, 0, 99, 0, 0, 0})
	require.NotNil(t, err)
	require.Equal(t, "at offset 1: bytecode: invalid opcode 99", err.Error())
}

// Package dis supports analysis of regc modules by disassembling them.
// This works with the opcodes defined in the `op` package and reads
// instructions through the accessors of bytecode.Module.
package dis

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/deepnoodle-ai/regc/bytecode"
	"github.com/deepnoodle-ai/regc/internal/table"
	"github.com/deepnoodle-ai/regc/op"
)

// EntryLabel marks the module entry point.
const EntryLabel = "<entry>"

// Instruction represents a single instruction and its decoded operands.
type Instruction struct {
	Offset     int
	Label      string
	Name       string
	Opcode     op.Code
	Operands   []int
	Annotation string
	Constant   any
}

// Disassemble returns a parsed representation of the given module.
func Disassemble(mod *bytecode.Module) ([]Instruction, error) {
	labels := map[int]string{}
	for i := 0; i < mod.FunctionCount(); i++ {
		labels[mod.FunctionAt(i)] = mod.FunctionNameAt(i)
	}
	labels[mod.EntryPoint()] = EntryLabel

	instructions := make([]Instruction, 0, mod.InstructionCount())
	for offset := 0; offset < mod.InstructionCount(); offset++ {
		inst := mod.InstructionAt(offset)
		info := op.GetInfo(inst.Op)
		if info.Name == "" {
			return nil, fmt.Errorf("invalid opcode %d at offset %d", inst.Op, offset)
		}
		var constant any
		var annotation string
		switch inst.Op {
		case op.LoadImmediate:
			annotation = strconv.Itoa(int(inst.Int16()))
		case op.LoadConst:
			index := int(inst.Imm16())
			if index >= mod.ConstantCount() {
				return nil, fmt.Errorf("constant index out of range: %d", index)
			}
			constant = mod.ConstantAt(index)
		case op.Call, op.Jump:
			index := int(inst.Imm24())
			if index >= mod.FunctionCount() {
				return nil, fmt.Errorf("function index out of range: %d", index)
			}
			annotation = fmt.Sprintf("%s @%d", mod.FunctionNameAt(index), mod.FunctionAt(index))
		case op.JumpIfTrue:
			annotation = fmt.Sprintf("if r%d -> %d", inst.Target, offset+int(inst.Imm16()))
		case op.JumpForward:
			annotation = fmt.Sprintf("-> %d", offset+int(inst.Imm24()))
		default:
			annotation = operator(inst)
		}
		instructions = append(instructions, Instruction{
			Offset:     offset,
			Label:      labels[offset],
			Name:       info.Name,
			Opcode:     inst.Op,
			Operands:   operands(inst, info.Format),
			Annotation: annotation,
			Constant:   constant,
		})
	}
	return instructions, nil
}

func operands(inst bytecode.Instruction, format op.Format) []int {
	switch format {
	case op.FormatA:
		return []int{int(inst.Target)}
	case op.FormatAB:
		return []int{int(inst.Target), int(inst.Left)}
	case op.FormatABC:
		return []int{int(inst.Target), int(inst.Left), int(inst.Right)}
	case op.FormatAImm16:
		return []int{int(inst.Target), int(inst.Imm16())}
	case op.FormatImm24:
		return []int{int(inst.Imm24())}
	default:
		return nil
	}
}

// operator describes an operator instruction in infix form.
func operator(inst bytecode.Instruction) string {
	symbol := op.Symbol(inst.Op)
	if symbol == "" {
		return ""
	}
	switch op.GetInfo(inst.Op).Format {
	case op.FormatABC:
		return fmt.Sprintf("r%d %s r%d", inst.Left, symbol, inst.Right)
	case op.FormatAB:
		return fmt.Sprintf("%s r%d", symbol, inst.Left)
	default:
		return symbol
	}
}

var (
	bold    = color.New(color.Bold).SprintFunc()
	yellow  = color.New(color.FgYellow).SprintFunc()
	magenta = color.New(color.FgMagenta).SprintFunc()
	cyan    = color.New(color.FgHiCyan).SprintFunc()
)

// Print a string representation of the given instructions to the given writer.
func Print(instructions []Instruction, writer io.Writer) {
	var lines [][]string
	for _, instr := range instructions {
		var values []string
		values = append(values, strconv.Itoa(instr.Offset))
		values = append(values, magenta(instr.Label))
		values = append(values, bold(instr.Name))
		values = append(values, formatOperands(instr.Operands))
		if instr.Constant != nil {
			values = append(values, yellow(fmt.Sprintf("%v", instr.Constant)))
		} else if instr.Annotation != "" {
			values = append(values, cyan(instr.Annotation))
		} else {
			values = append(values, "")
		}
		lines = append(lines, values)
	}

	table.NewTable(writer).
		WithHeader([]string{"OFFSET", "LABEL", "OPCODE", "OPERANDS", "INFO"}).
		WithColumnAlignment([]table.Alignment{
			table.AlignRight,
			table.AlignLeft,
			table.AlignLeft,
			table.AlignRight,
			table.AlignLeft,
		}).
		WithHeaderAlignment([]table.Alignment{
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
			table.AlignCenter,
		}).
		WithRows(lines).
		Render()
}

func formatOperands(operands []int) string {
	var sb strings.Builder
	for i, operand := range operands {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(operand))
	}
	return sb.String()
}

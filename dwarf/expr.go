package dwarf

import (
	"bytes"
	"encoding/binary"

	"github.com/adobe-type-tools/orc/die"
	"github.com/adobe-type-tools/orc/leb128"
)

// DWARF expression opcodes this reduced evaluator understands. Every other
// opcode trips the "passover" path.
const (
	opConst1u = 0x08
	opConst1s = 0x09
	opConst2u = 0x0a
	opConst2s = 0x0b
	opConst4u = 0x0c
	opConst4s = 0x0d
	opConst8u = 0x0e
	opConst8s = 0x0f
	opConstu  = 0x10
	opConsts  = 0x11
	opDup     = 0x12
	opLit0    = 0x30
	opLit31   = 0x4f
	opReg0    = 0x50
	opReg31   = 0x6f
	opRegx    = 0x90
)

// evaluateExprloc is the reduced DWARF expression stack evaluator spec.md
// section 4.6 describes: it understands literal/register opcodes and a
// handful of constant-pushing opcodes, and marks anything else as
// "passover" rather than attempting to interpret it. On success the value
// is the integer left on top of the stack.
func evaluateExprloc(data []byte) die.AttributeValue {
	var v die.AttributeValue
	r := bytes.NewReader(data)

	var stack []int64
	push := func(x int64) { stack = append(stack, x) }

	passover := false

loop:
	for r.Len() > 0 {
		opcode, err := r.ReadByte()
		if err != nil {
			passover = true
			break
		}

		switch {
		case opcode >= opLit0 && opcode <= opLit31:
			push(int64(opcode - opLit0))

		case opcode >= opReg0 && opcode <= opReg31:
			push(int64(opcode - opReg0))

		case opcode == opConst1u:
			b, err := r.ReadByte()
			if err != nil {
				passover = true
				break loop
			}
			push(int64(b))

		case opcode == opConst1s:
			b, err := r.ReadByte()
			if err != nil {
				passover = true
				break loop
			}
			push(int64(int8(b)))

		case opcode == opConst2u:
			x, ok := readFixed(r, 2)
			if !ok {
				passover = true
				break loop
			}
			push(int64(x))

		case opcode == opConst2s:
			x, ok := readFixed(r, 2)
			if !ok {
				passover = true
				break loop
			}
			push(int64(int16(x)))

		case opcode == opConst4u:
			x, ok := readFixed(r, 4)
			if !ok {
				passover = true
				break loop
			}
			push(int64(x))

		case opcode == opConst4s:
			x, ok := readFixed(r, 4)
			if !ok {
				passover = true
				break loop
			}
			push(int64(int32(x)))

		case opcode == opConst8u:
			x, ok := readFixed(r, 8)
			if !ok {
				passover = true
				break loop
			}
			push(int64(x))

		case opcode == opConst8s:
			x, ok := readFixed(r, 8)
			if !ok {
				passover = true
				break loop
			}
			push(int64(x))

		case opcode == opConstu:
			x, err := leb128.ReadULEB128(r)
			if err != nil {
				passover = true
				break loop
			}
			push(int64(x))

		case opcode == opConsts:
			x, err := leb128.ReadSLEB128(r)
			if err != nil {
				passover = true
				break loop
			}
			push(int64(x))

		case opcode == opRegx:
			x, err := leb128.ReadULEB128(r)
			if err != nil {
				passover = true
				break loop
			}
			push(int64(x))

		case opcode == opDup:
			if len(stack) == 0 {
				passover = true
				break loop
			}
			push(stack[len(stack)-1])

		default:
			passover = true
			break loop
		}
	}

	if passover || len(stack) == 0 {
		v.Passover()
		return v
	}

	v.SetSint(int32(stack[len(stack)-1]))
	return v
}

func readFixed(r *bytes.Reader, n int) (uint64, bool) {
	buf := make([]byte, n)
	if _, err := r.Read(buf); err != nil {
		return 0, false
	}
	switch n {
	case 2:
		return uint64(binary.LittleEndian.Uint16(buf)), true
	case 4:
		return uint64(binary.LittleEndian.Uint32(buf)), true
	case 8:
		return binary.LittleEndian.Uint64(buf), true
	default:
		return 0, false
	}
}

package leb128_test

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/adobe-type-tools/orc/leb128"
	"github.com/adobe-type-tools/orc/test"
)

func reader(b ...byte) *bufio.Reader {
	return bufio.NewReader(bytes.NewReader(b))
}

func TestULEB128(t *testing.T) {
	v, err := leb128.ReadULEB128(reader(0x00))
	test.Equate(t, err, nil)
	test.Equate(t, v, uint32(0))

	v, err = leb128.ReadULEB128(reader(0x02))
	test.Equate(t, err, nil)
	test.Equate(t, v, uint32(2))

	// 624485, the worked example from the DWARF standard: 0xE5 0x8E 0x26
	v, err = leb128.ReadULEB128(reader(0xe5, 0x8e, 0x26))
	test.Equate(t, err, nil)
	test.Equate(t, v, uint32(624485))

	// maximum representable 32-bit value
	v, err = leb128.ReadULEB128(reader(0xff, 0xff, 0xff, 0xff, 0x0f))
	test.Equate(t, err, nil)
	test.Equate(t, v, uint32(0xffffffff))
}

func TestSLEB128(t *testing.T) {
	v, err := leb128.ReadSLEB128(reader(0x00))
	test.Equate(t, err, nil)
	test.Equate(t, v, int32(0))

	// -2, single byte 0x7e
	v, err = leb128.ReadSLEB128(reader(0x7e))
	test.Equate(t, err, nil)
	test.Equate(t, v, int32(-2))

	// 2, single byte 0x02 (no continuation, bit 0x40 unset)
	v, err = leb128.ReadSLEB128(reader(0x02))
	test.Equate(t, err, nil)
	test.Equate(t, v, int32(2))

	// -624485, the signed worked example from the DWARF standard: 0x9B 0xF1 0x59
	v, err = leb128.ReadSLEB128(reader(0x9b, 0xf1, 0x59))
	test.Equate(t, err, nil)
	test.Equate(t, v, int32(-624485))
}

func TestLEB128ConsumesFullEncoding(t *testing.T) {
	// a ULEB128 encoding wider than 32 bits still has every byte consumed;
	// the trailing marker byte proves the cursor advanced past all of them
	r := reader(0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01, 0xAB)
	_, err := leb128.ReadULEB128(r)
	test.Equate(t, err, nil)

	marker, err := r.ReadByte()
	test.Equate(t, err, nil)
	test.Equate(t, marker, byte(0xAB))
}

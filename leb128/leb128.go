// Package leb128 decodes the variable-length integer encodings used
// throughout DWARF: unsigned (ULEB128) and signed (SLEB128) little-endian
// base-128. Both decoders always return a 32-bit result, matching every use
// of LEB128 in the DWARF subset this analyzer consumes (abbreviation codes,
// attribute forms, string-table indices, line-table fields). A value whose
// true magnitude needs more than 32 bits still has every one of its bytes
// consumed — the high bits are discarded, not rejected — because the cursor
// must always end up positioned after the full encoded value regardless of
// whether the caller cares about its upper bits.
//
// Decoding algorithm per figures 46 and 47 of the DWARF4 standard, page 218.
package leb128

import "io"

// ReadULEB128 decodes an unsigned LEB128 value from r, returning its
// low 32 bits.
func ReadULEB128(r io.ByteReader) (uint32, error) {
	var result uint32
	var shift uint

	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}

		if shift < 32 {
			result |= uint32(b&0x7f) << shift
		}
		shift += 7

		if b&0x80 == 0 {
			break
		}
	}

	return result, nil
}

// ReadSLEB128 decodes a signed LEB128 value from r, returning its low 32
// bits, sign-extended from the position of the final continuation byte.
func ReadSLEB128(r io.ByteReader) (int32, error) {
	var result uint32
	var shift uint
	var b byte

	for {
		var err error
		b, err = r.ReadByte()
		if err != nil {
			return 0, err
		}

		if shift < 32 {
			result |= uint32(b&0x7f) << shift
		}
		shift += 7

		if b&0x80 == 0 {
			break
		}
	}

	// sign extend if the final byte's sign bit (0x40, the top bit of the
	// last septet) is set and we haven't already filled all 32 bits
	if shift < 32 && b&0x40 != 0 {
		result |= ^uint32(0) << shift
	}

	return int32(result), nil
}

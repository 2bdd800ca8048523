package dwarf

import (
	"encoding/binary"
	"fmt"

	"github.com/adobe-type-tools/orc/die"
	"github.com/adobe-type-tools/orc/leb128"
	"github.com/adobe-type-tools/orc/reader"
)

// fixedWidthForms gives the encoded length of every form this analyzer
// never interprets but still has to step over correctly, mirroring
// original_source/src/dwarf.cpp's form_length() (the forms it handles with
// a plain numeric return, i.e. every form not read directly in the switch
// below). strx3/addrx3 return 4, not 3, matching that original table's own
// quirk — preserved rather than corrected, same as FormSdata's ULEB read
// below, since passover width only has to match what produced the file.
var fixedWidthForms = map[Form]int{
	FormData16:   16,
	FormRefSig8:  8,
	FormRefSup4:  4,
	FormRefSup8:  8,
	FormStrpSup:  4,
	FormLineStrp: 4,
	FormStrx1:    1,
	FormStrx2:    2,
	FormStrx3:    4,
	FormStrx4:    4,
	FormAddrx1:   1,
	FormAddrx2:   2,
	FormAddrx3:   4,
	FormAddrx4:   4,
	FormGnuRefAlt:  4,
	FormGnuStrpAlt: 4,
}

// evaluateForm reads one attribute's encoded value per the form table in
// spec.md section 4.6, producing the materialized AttributeValue. cuOffset
// is the owning compilation unit's own starting offset in .debug_info — the
// base that ref1/2/4/8 values (CU-relative) are added to.
func (p *Parser) evaluateForm(r *reader.Reader, form Form, cuOffset uint32) (die.AttributeValue, error) {
	var v die.AttributeValue

	switch form {
	case FormAddr:
		x, err := r.ReadUint64(binary.LittleEndian)
		if err != nil {
			return v, err
		}
		v.SetUint(x)

	case FormData1:
		x, err := r.ReadByte()
		if err != nil {
			return v, err
		}
		v.SetUint(uint64(x))

	case FormData2:
		x, err := r.ReadUint16(binary.LittleEndian)
		if err != nil {
			return v, err
		}
		v.SetUint(uint64(x))

	case FormData4:
		x, err := r.ReadUint32(binary.LittleEndian)
		if err != nil {
			return v, err
		}
		v.SetUint(uint64(x))

	case FormData8:
		x, err := r.ReadUint64(binary.LittleEndian)
		if err != nil {
			return v, err
		}
		v.SetUint(x)

	case FormSdata:
		// The original analyzer this is ported from reads DW_FORM_sdata as
		// an unsigned LEB128 rather than sign-extending it — preserved
		// here rather than "corrected", since fatal-attribute comparison
		// only cares that two equal encodings compare equal.
		x, err := leb128.ReadULEB128(r)
		if err != nil {
			return v, err
		}
		v.SetUint(uint64(x))

	case FormUdata, FormImplicitConst:
		x, err := leb128.ReadULEB128(r)
		if err != nil {
			return v, err
		}
		v.SetUint(uint64(x))

	case FormString:
		s, err := r.ReadCString()
		if err != nil {
			return v, err
		}
		v.SetString(p.pool.Empool(s))

	case FormStrp, FormLineStrp, FormStrpSup:
		offset, err := r.ReadUint32(binary.LittleEndian)
		if err != nil {
			return v, err
		}
		v.SetDeferredString(p, offset)

	case FormFlag:
		x, err := r.ReadByte()
		if err != nil {
			return v, err
		}
		v.SetUint(uint64(x))

	case FormFlagPresent:
		v.SetUint(1)

	case FormSecOffset:
		x, err := r.ReadUint32(binary.LittleEndian)
		if err != nil {
			return v, err
		}
		v.SetUint(uint64(x))

	case FormRefAddr:
		x, err := r.ReadUint32(binary.LittleEndian)
		if err != nil {
			return v, err
		}
		v.SetReference(x)

	case FormRef1:
		x, err := r.ReadByte()
		if err != nil {
			return v, err
		}
		v.SetReference(cuOffset + uint32(x))

	case FormRef2:
		x, err := r.ReadUint16(binary.LittleEndian)
		if err != nil {
			return v, err
		}
		v.SetReference(cuOffset + uint32(x))

	case FormRef4:
		x, err := r.ReadUint32(binary.LittleEndian)
		if err != nil {
			return v, err
		}
		v.SetReference(cuOffset + x)

	case FormRef8:
		x, err := r.ReadUint64(binary.LittleEndian)
		if err != nil {
			return v, err
		}
		v.SetReference(cuOffset + uint32(x))

	case FormExprloc:
		length, err := leb128.ReadULEB128(r)
		if err != nil {
			return v, err
		}
		data := make([]byte, length)
		if err := r.ReadExactly(data); err != nil {
			return v, err
		}
		v = evaluateExprloc(data)

	case FormBlock:
		length, err := leb128.ReadULEB128(r)
		if err != nil {
			return v, err
		}
		if err := skipBytes(r, int(length)); err != nil {
			return v, err
		}
		v.Passover()

	case FormBlock1:
		length, err := r.ReadByte()
		if err != nil {
			return v, err
		}
		if err := skipBytes(r, int(length)); err != nil {
			return v, err
		}
		v.Passover()

	case FormBlock2:
		length, err := r.ReadUint16(binary.LittleEndian)
		if err != nil {
			return v, err
		}
		if err := skipBytes(r, int(length)); err != nil {
			return v, err
		}
		v.Passover()

	case FormBlock4:
		length, err := r.ReadUint32(binary.LittleEndian)
		if err != nil {
			return v, err
		}
		if err := skipBytes(r, int(length)); err != nil {
			return v, err
		}
		v.Passover()

	case FormRefUdata, FormStrx, FormAddrx, FormLoclistx, FormRnglistx,
		FormGnuAddrIndex, FormGnuStrIndex:
		if _, err := leb128.ReadULEB128(r); err != nil {
			return v, err
		}
		v.Passover()

	case FormIndirect:
		return v, fmt.Errorf("dwarf: indirect form is not supported")

	default:
		// fixedWidthForms now covers the entire DWARF4/5 + GNU vendor
		// extension form space this analyzer doesn't read directly above,
		// so this only errors for a form code outside that space entirely
		// — at that point the declared length can't be known, so the
		// cursor can't be safely advanced and the CU can't keep being read.
		width, ok := fixedWidthForms[form]
		if !ok {
			return v, fmt.Errorf("dwarf: unrecognized form 0x%x", uint32(form))
		}
		if err := skipBytes(r, width); err != nil {
			return v, err
		}
		v.Passover()
	}

	return v, nil
}

func skipBytes(r *reader.Reader, n int) error {
	if n == 0 {
		return nil
	}
	_, err := r.Seek(int64(n), 1)
	return err
}

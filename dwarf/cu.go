package dwarf

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/adobe-type-tools/orc/curated"
	"github.com/adobe-type-tools/orc/leb128"
	"github.com/adobe-type-tools/orc/reader"
)

// dwarf64SentinelLength is the 4-byte length value that, per the DWARF
// standard, signals a 64-bit-offset ("DWARF64") unit. spec.md section 4.6
// calls this out explicitly: values at or above this sentinel are an error,
// not a format this analyzer supports.
const dwarf64SentinelLength = 0xFFFFFFF0

// UnsupportedDWARF64 is the curated error pattern ParseCUHeader raises when
// a unit's length field signals the 64-bit-offset DWARF64 format — fatal to
// the task parsing that compile unit.
const UnsupportedDWARF64 = "dwarf: DWARF64 unit at offset %d is unsupported"

// CUHeader is a compilation-unit header from .debug_info.
type CUHeader struct {
	// Offset is this CU's own starting offset within .debug_info.
	Offset uint32
	// Length is the byte length of the unit, not counting the length field
	// itself.
	Length uint32
	// Version is the DWARF version of this unit (4 or 5 in practice).
	Version uint16
	// AbbrevOffset is the byte offset into .debug_abbrev of this unit's
	// abbreviation declarations.
	AbbrevOffset uint32
	// AddressSize is the size, in bytes, of a target address in this unit.
	AddressSize uint8
}

// End returns the offset one past the end of the unit.
func (h CUHeader) End() uint32 { return h.Offset + 4 + h.Length }

// ParseCUHeader reads one compilation-unit header at the reader's current
// position, per spec.md section 4.6: "4-byte length (error if >=
// 0xFFFFFFF0 ... ), 2-byte version, 4-byte abbrev offset, 1-byte address
// size."
func ParseCUHeader(r *reader.Reader) (CUHeader, error) {
	offset := uint32(r.Tell())

	length, err := r.ReadUint32(binary.LittleEndian)
	if err != nil {
		return CUHeader{}, fmt.Errorf("dwarf: cu length: %w", err)
	}
	if length >= dwarf64SentinelLength {
		return CUHeader{}, curated.Errorf(UnsupportedDWARF64, offset)
	}

	version, err := r.ReadUint16(binary.LittleEndian)
	if err != nil {
		return CUHeader{}, fmt.Errorf("dwarf: cu version: %w", err)
	}

	abbrevOffset, err := r.ReadUint32(binary.LittleEndian)
	if err != nil {
		return CUHeader{}, fmt.Errorf("dwarf: cu abbrev_offset: %w", err)
	}

	addrSize, err := r.ReadByte()
	if err != nil {
		return CUHeader{}, fmt.Errorf("dwarf: cu address_size: %w", err)
	}

	return CUHeader{
		Offset:       offset,
		Length:       length,
		Version:      version,
		AbbrevOffset: abbrevOffset,
		AddressSize:  addrSize,
	}, nil
}

// FileEntry is one row of a line-table file table: an interned path and the
// raw fields DWARF carries alongside it.
type FileEntry struct {
	Path           string
	DirectoryIndex uint32
	Mtime          uint32
	Length         uint32
}

// LineFileTable is the recovered file table of one .debug_line program.
// spec.md section 4.6 only asks that the file table be recovered — the
// rest of the line-number program is left unconsumed.
type LineFileTable struct {
	IncludeDirectories []string
	Files              []FileEntry
}

// qualifiedPath returns dir+"/"+name, or name alone when dirIndex is 0 (the
// compilation directory, which carries no separate include-directories
// entry).
func qualifiedPath(dirs []string, dirIndex uint32, name string) string {
	if dirIndex == 0 || int(dirIndex) > len(dirs) {
		return name
	}
	return dirs[dirIndex-1] + "/" + name
}

// ParseLineFileTable reads a line-number program header at offset within
// .debug_line far enough to recover the file table, per spec.md section
// 4.6: a NUL-terminated list of include directories (terminated by an empty
// string) followed by file records (name, directory_index: ULEB, mtime:
// ULEB, length: ULEB), themselves terminated by an empty name.
//
// This reads only the legacy (DWARF <= 4) line-header file-table layout;
// every object this analyzer targets emits that form.
func ParseLineFileTable(r *reader.Reader, offset int64) (LineFileTable, error) {
	var table LineFileTable

	err := r.TempSeek(offset, 0, func() error {
		// unit_length, version, header_length, minimum_instruction_length,
		// (maximum_operations_per_instruction for DWARF >= 4),
		// default_is_stmt, line_base, line_range, opcode_base, and the
		// opcode_base-1 standard_opcode_lengths bytes are all skipped: only
		// the file table matters here.
		unitLength, err := r.ReadUint32(binary.LittleEndian)
		if err != nil {
			return fmt.Errorf("dwarf: line unit_length: %w", err)
		}
		unitEnd := r.Tell() + int64(unitLength)

		version, err := r.ReadUint16(binary.LittleEndian)
		if err != nil {
			return fmt.Errorf("dwarf: line version: %w", err)
		}

		if _, err := r.ReadUint32(binary.LittleEndian); err != nil { // header_length
			return fmt.Errorf("dwarf: line header_length: %w", err)
		}
		if _, err := r.ReadByte(); err != nil { // minimum_instruction_length
			return err
		}
		if version >= 4 {
			if _, err := r.ReadByte(); err != nil { // maximum_operations_per_instruction
				return err
			}
		}
		if _, err := r.ReadByte(); err != nil { // default_is_stmt
			return err
		}
		if _, err := r.ReadByte(); err != nil { // line_base (signed, value unused)
			return err
		}
		if _, err := r.ReadByte(); err != nil { // line_range
			return err
		}
		opcodeBase, err := r.ReadByte()
		if err != nil {
			return err
		}
		for i := 0; i < int(opcodeBase)-1; i++ {
			if _, err := r.ReadByte(); err != nil {
				return err
			}
		}

		for {
			dir, err := r.ReadCString()
			if err != nil {
				return fmt.Errorf("dwarf: line include_directory: %w", err)
			}
			if dir == "" {
				break
			}
			table.IncludeDirectories = append(table.IncludeDirectories, dir)
		}

		for {
			name, err := r.ReadCString()
			if err != nil {
				return fmt.Errorf("dwarf: line file_name: %w", err)
			}
			if name == "" {
				break
			}
			dirIndex, err := leb128.ReadULEB128(r)
			if err != nil {
				return err
			}
			mtime, err := leb128.ReadULEB128(r)
			if err != nil {
				return err
			}
			flen, err := leb128.ReadULEB128(r)
			if err != nil {
				return err
			}

			table.Files = append(table.Files, FileEntry{
				Path:           qualifiedPath(table.IncludeDirectories, dirIndex, name),
				DirectoryIndex: dirIndex,
				Mtime:          mtime,
				Length:         flen,
			})
		}

		if unitEnd > 0 {
			_, _ = r.Seek(unitEnd, io.SeekStart)
		}
		return nil
	})

	return table, err
}

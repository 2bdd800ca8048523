// Package macho walks a single Mach-O slice's load commands, recovers the
// four DWARF sections the analyzer cares about from its __DWARF segment,
// and dispatches the DWARF parse. Grounded on
// original_source/src/macho.cpp's read_load_command/read_lc_segment_64.
package macho

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/adobe-type-tools/orc/die"
	"github.com/adobe-type-tools/orc/dwarf"
	"github.com/adobe-type-tools/orc/ofile"
	"github.com/adobe-type-tools/orc/strpool"
)

const (
	lcSegment64 = 0x19

	machHeaderLen   = 28
	machHeader64Len = 32

	// cmd,cmdsize,segname[16],vmaddr,vmsize,fileoff,filesize,maxprot,initprot,nsects,flags
	segmentCommand64Len = 72
	section64Len        = 80
)

// RegisterDies matches container.RegisterDies without importing container
// (macho is a leaf package consumed by container, not the reverse).
type RegisterDies func(ofdIndex int, batch []*die.Die)

// Process reads data as one Mach-O slice, registers it in the process-wide
// object-file registry, walks its load commands to find the __DWARF
// segment's sections, and runs the DWARF parser over them. If submit is
// non-nil the parse is scheduled as an independent task; otherwise it runs
// inline (the parallel_processing = false fallback). A fatal-to-this-task
// error from the DWARF parse (a malformed DWARF64 unit, an unresolvable
// abbrev code or reference, ...) is handed to onError rather than crashing
// the worker running it — nil discards it.
func Process(ancestry ofile.Ancestry, data []byte, details ofile.Details, submit func(func()), register RegisterDies, onError func(error)) error {
	sections, err := findDwarfSections(data, details)
	if err != nil {
		return fmt.Errorf("macho: %s: %w", ancestry.String(), err)
	}

	ofdIndex := ofile.Register(ancestry, details)
	archName := details.Arch.String()

	task := func() {
		p := dwarf.NewParser(sections, strpool.Default(), archName, ofdIndex)
		err := p.ProcessAllDies(func(batch []*die.Die) {
			if register != nil {
				register(ofdIndex, batch)
			}
		})
		if err != nil && onError != nil {
			onError(fmt.Errorf("macho: %s: %w", ancestry.String(), err))
		}
	}

	if submit != nil {
		submit(task)
	} else {
		task()
	}

	return nil
}

// findDwarfSections walks the load commands of a single Mach-O slice and
// slices out its __DWARF segment's __debug_* sections.
func findDwarfSections(data []byte, details ofile.Details) (dwarf.Sections, error) {
	order := byteOrderOf(details)

	headerLen := machHeaderLen
	if details.Is64Bit {
		headerLen = machHeader64Len
	}
	if len(data) < headerLen {
		return dwarf.Sections{}, fmt.Errorf("header truncated")
	}

	ncmds := order.Uint32(data[16:20])

	var sections dwarf.Sections
	pos := headerLen

	for i := uint32(0); i < ncmds; i++ {
		if pos+8 > len(data) {
			return dwarf.Sections{}, fmt.Errorf("load command %d truncated", i)
		}
		cmd := order.Uint32(data[pos : pos+4])
		cmdsize := order.Uint32(data[pos+4 : pos+8])
		if cmdsize < 8 || pos+int(cmdsize) > len(data) {
			return dwarf.Sections{}, fmt.Errorf("load command %d has invalid cmdsize %d", i, cmdsize)
		}

		if cmd == lcSegment64 {
			if err := readSegment64(data, pos, int(cmdsize), order, &sections); err != nil {
				return dwarf.Sections{}, fmt.Errorf("load command %d: %w", i, err)
			}
		}

		pos += int(cmdsize)
	}

	return sections, nil
}

// readSegment64 reads one LC_SEGMENT_64 command starting at data[cmdStart:]
// and, if it is the __DWARF segment, slices each of its sections' bytes out
// of data (whose offsets are file-relative, i.e. relative to the start of
// this Mach-O slice) into sections.
func readSegment64(data []byte, cmdStart, cmdsize int, order binary.ByteOrder, sections *dwarf.Sections) error {
	lc := data[cmdStart : cmdStart+cmdsize]
	if len(lc) < segmentCommand64Len {
		return fmt.Errorf("segment_command_64 truncated")
	}

	segname := cstr(lc[8:24])
	if segname != "__DWARF" {
		return nil
	}

	nsects := order.Uint32(lc[64:68])
	pos := segmentCommand64Len

	for i := uint32(0); i < nsects; i++ {
		if pos+section64Len > len(lc) {
			return fmt.Errorf("section_64 record %d truncated", i)
		}
		rec := lc[pos : pos+section64Len]

		sectname := cstr(rec[0:16])
		size := order.Uint64(rec[40:48])
		offset := order.Uint32(rec[48:52])

		if int(offset)+int(size) > len(data) {
			return fmt.Errorf("section %q [%d,%d) out of range", sectname, offset, uint64(offset)+size)
		}
		bytes := data[offset : uint64(offset)+size]

		switch sectname {
		case "__debug_str":
			sections.DebugStr = bytes
		case "__debug_info":
			sections.DebugInfo = bytes
		case "__debug_abbrev":
			sections.DebugAbbrev = bytes
		case "__debug_line":
			sections.DebugLine = bytes
		}

		pos += section64Len
	}

	return nil
}

func cstr(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

func byteOrderOf(details ofile.Details) binary.ByteOrder {
	if details.NeedsByteswap {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

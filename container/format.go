// Package container classifies an input byte range by its leading magic
// number and recurses through the nestable container formats — BSD archives
// and Mach-O fat binaries — down to the individual Mach-O slices a macho
// reader can walk. Grounded on original_source/src/parse_file.cpp's
// detect_file/parse_file pair, ar.cpp, and fat.cpp.
package container

import (
	"encoding/binary"
	"fmt"

	"github.com/adobe-type-tools/orc/curated"
	"github.com/adobe-type-tools/orc/ofile"
)

// UnknownContainerMagic is the curated error pattern Detect raises when the
// leading 4 bytes don't match any recognized Mach-O/fat/archive magic
// number — fatal to the task parsing that input.
const UnknownContainerMagic = "container: unrecognized magic number %#08x"

// Magic numbers as the leading 4 bytes read as a big-endian uint32 — the
// byte order spec.md section 4.5 quotes them in. A CIGAM ("magic" reversed)
// variant means the rest of that container's multi-byte header fields are
// also byte-swapped relative to the canonical big-endian layout Mach-O/fat
// headers use on disk; ByteOrder below turns that flag back into the
// binary.ByteOrder subsequent readers need.
const (
	magicMachO32      = 0xfeedface
	magicMachOCigam32 = 0xcefaedfe
	magicMachO64      = 0xfeedfacf
	magicMachOCigam64 = 0xcffaedfe

	magicFat32      = 0xcafebabe
	magicFatCigam32 = 0xbebafeca
	magicFat64      = 0xcafebabf
	magicFatCigam64 = 0xbfbafeca

	magicAr     = 0x213c6172 // "!<ar"
	magicArSwap = 0x72613c21 // "ra<!"
)

const (
	cpuTypeX86     = 7
	cpuTypeX8664   = 0x01000007
	cpuTypeArm     = 12
	cpuTypeArm64   = 0x0100000c
	cpuTypeArm6432 = 0x0200000c
)

// Detect classifies the leading bytes of data, per spec.md section 4.5's
// magic-number table. It does not consume data; offsetInContainer is
// recorded as-is into the returned Details.
func Detect(data []byte, offsetInContainer int64) (ofile.Details, error) {
	if len(data) < 4 {
		return ofile.Details{}, fmt.Errorf("container: %d bytes too short to hold a magic number", len(data))
	}

	magic := binary.BigEndian.Uint32(data[:4])

	details := ofile.Details{OffsetInContainer: offsetInContainer}

	switch magic {
	case magicMachO32:
		details.Format = ofile.FormatMachO
	case magicMachOCigam32:
		details.Format = ofile.FormatMachO
		details.NeedsByteswap = true
	case magicMachO64:
		details.Format = ofile.FormatMachO
		details.Is64Bit = true
	case magicMachOCigam64:
		details.Format = ofile.FormatMachO
		details.Is64Bit = true
		details.NeedsByteswap = true
	case magicFat32:
		details.Format = ofile.FormatFat
	case magicFatCigam32:
		details.Format = ofile.FormatFat
		details.NeedsByteswap = true
	case magicFat64:
		details.Format = ofile.FormatFat
		details.Is64Bit = true
	case magicFatCigam64:
		details.Format = ofile.FormatFat
		details.Is64Bit = true
		details.NeedsByteswap = true
	case magicAr:
		details.Format = ofile.FormatArchive
	case magicArSwap:
		details.Format = ofile.FormatArchive
		details.NeedsByteswap = true
	default:
		return ofile.Details{}, curated.Errorf(UnknownContainerMagic, magic)
	}

	if details.Format == ofile.FormatMachO {
		arch, err := detectArch(data, details.NeedsByteswap)
		if err != nil {
			return ofile.Details{}, err
		}
		details.Arch = arch
	}

	return details, nil
}

// ByteOrder returns the order subsequent multi-byte header fields in this
// container should be read with: big-endian canonically, little-endian when
// Detect found a byte-swapped (CIGAM) magic.
func ByteOrder(needsByteswap bool) binary.ByteOrder {
	if needsByteswap {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func detectArch(data []byte, needsByteswap bool) (ofile.Arch, error) {
	if len(data) < 8 {
		return ofile.ArchUnknown, fmt.Errorf("container: %d bytes too short to hold a cputype", len(data))
	}

	cputype := ByteOrder(needsByteswap).Uint32(data[4:8])

	switch cputype {
	case cpuTypeX86:
		return ofile.ArchX86, nil
	case cpuTypeX8664:
		return ofile.ArchX86_64, nil
	case cpuTypeArm:
		return ofile.ArchArm, nil
	case cpuTypeArm64:
		return ofile.ArchArm64, nil
	case cpuTypeArm6432:
		return ofile.ArchArm64_32, nil
	default:
		return ofile.ArchUnknown, nil
	}
}

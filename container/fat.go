package container

import (
	"fmt"

	"github.com/adobe-type-tools/orc/ofile"
)

const (
	fatArchLen   = 20 // cputype, cpusubtype, offset, size, align: all uint32
	fatArch64Len = 32 // cputype, cpusubtype, offset(u64), size(u64), align, reserved
)

// readFat reads a universal (fat) binary's array of per-architecture slice
// records and recurses into each one via Dispatch. Grounded on
// original_source/src/fat.cpp's read_fat.
func readFat(ancestry ofile.Ancestry, data []byte, details ofile.Details, h Handler) error {
	order := ByteOrder(details.NeedsByteswap)

	if len(data) < 8 {
		return fmt.Errorf("container: fat header too short")
	}
	nfatArch := order.Uint32(data[4:8])

	pos := int64(8)
	for i := uint32(0); i < nfatArch; i++ {
		var offset, size int64

		if details.Is64Bit {
			if pos+fatArch64Len > int64(len(data)) {
				return fmt.Errorf("container: truncated fat_arch_64 record %d", i)
			}
			rec := data[pos : pos+fatArch64Len]
			offset = int64(order.Uint64(rec[8:16]))
			size = int64(order.Uint64(rec[16:24]))
			pos += fatArch64Len
		} else {
			if pos+fatArchLen > int64(len(data)) {
				return fmt.Errorf("container: truncated fat_arch record %d", i)
			}
			rec := data[pos : pos+fatArchLen]
			offset = int64(order.Uint32(rec[8:12]))
			size = int64(order.Uint32(rec[12:16]))
			pos += fatArchLen
		}

		if offset < 0 || offset+size > int64(len(data)) {
			return fmt.Errorf("container: fat slice %d [%d,%d) out of range", i, offset, offset+size)
		}

		// A slice's own parse failure is fatal only to that architecture
		// slice, not to the rest of the fat binary — offset/size are
		// already validated, so the loop can continue regardless.
		name := fmt.Sprintf("slice-%d", i)
		if err := Dispatch(name, ancestry, data[offset:offset+size], h); err != nil {
			if h.OnError != nil {
				h.OnError(err)
			}
		}
	}

	return nil
}

package container

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adobe-type-tools/orc/ofile"
)

const (
	arGlobalMagicLen = 8  // "!<arch>\n"
	arHeaderLen      = 60 // name[16] mtime[12] uid[6] gid[6] mode[8] size[10] end[2]
)

// readArchive walks a BSD ar archive's fixed 60-byte member headers,
// recursing into members whose effective name ends in ".o" and skipping
// everything else by seeking past its declared size. Grounded on
// original_source/src/ar.cpp's read_ar.
func readArchive(ancestry ofile.Ancestry, data []byte, h Handler) error {
	if len(data) < arGlobalMagicLen {
		return fmt.Errorf("container: archive too short for magic")
	}

	pos := int64(arGlobalMagicLen)
	end := int64(len(data))

	for pos < end {
		if pos+arHeaderLen > end {
			return fmt.Errorf("container: truncated archive member header at offset %d", pos)
		}

		hdr := data[pos : pos+arHeaderLen]
		name := strings.TrimRight(string(hdr[0:16]), " ")
		sizeField := strings.TrimSpace(string(hdr[48:58]))
		pos += arHeaderLen

		size, err := strconv.Atoi(sizeField)
		if err != nil {
			return fmt.Errorf("container: archive member %q: malformed size field %q: %w", name, sizeField, err)
		}

		// BSD extended naming: "#1/<n>" means the real name is the first n
		// bytes of the member body, already counted in size.
		if strings.HasPrefix(name, "#1/") {
			n, err := strconv.Atoi(name[3:])
			if err != nil {
				return fmt.Errorf("container: archive member: malformed extended name length %q: %w", name, err)
			}
			if pos+int64(n) > end {
				return fmt.Errorf("container: archive member: extended name runs past end of archive")
			}
			name = strings.TrimRight(string(data[pos:pos+int64(n)]), " \x00")
			size -= n
			pos += int64(n)
		}

		memberEnd := pos + int64(size)
		if memberEnd > end {
			return fmt.Errorf("container: archive member %q: size runs past end of archive", name)
		}

		if strings.HasSuffix(name, ".o") {
			// A member's own parse failure (e.g. unknown magic inside a
			// nested container) is fatal only to that member, not to the
			// rest of the archive — pos/memberEnd are already known, so
			// scanning can continue regardless of what Dispatch found.
			if err := Dispatch(name, ancestry, data[pos:memberEnd], h); err != nil {
				if h.OnError != nil {
					h.OnError(err)
				}
			}
		}

		pos = memberEnd
	}

	return nil
}

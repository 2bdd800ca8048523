package dwarf

import (
	"fmt"
	"sort"

	"github.com/adobe-type-tools/orc/leb128"
	"github.com/adobe-type-tools/orc/reader"
)

// AbbrevAttr is one (name, form) pair inside an abbreviation declaration.
type AbbrevAttr struct {
	Name At
	Form Form
}

// Abbrev is a single entry of .debug_abbrev: the template an encoded DIE
// refers to by code.
type Abbrev struct {
	Code        uint32
	Tag         Tag
	HasChildren bool
	Attrs       []AbbrevAttr
}

// AbbrevTable is the abbreviation declarations for one compilation unit,
// sorted by code for binary-search lookup.
type AbbrevTable struct {
	entries []Abbrev
}

// Lookup finds the abbreviation with the given code.
func (t *AbbrevTable) Lookup(code uint32) (Abbrev, bool) {
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].Code >= code })
	if i < len(t.entries) && t.entries[i].Code == code {
		return t.entries[i], true
	}
	return Abbrev{}, false
}

// ParseAbbrevTable scans .debug_abbrev starting at offset and reads
// declarations until the terminating (code 0) entry, per spec.md section
// 4.6: "(code:ULEB, tag:ULEB, has_children:byte, attributes:[(name:ULEB,
// form:ULEB)]* terminated by (0,0))".
func ParseAbbrevTable(r *reader.Reader, offset int64) (*AbbrevTable, error) {
	t := &AbbrevTable{}

	err := r.TempSeek(offset, 0, func() error {
		for {
			code, err := leb128.ReadULEB128(r)
			if err != nil {
				return fmt.Errorf("dwarf: abbrev code: %w", err)
			}
			if code == 0 {
				return nil
			}

			tag, err := leb128.ReadULEB128(r)
			if err != nil {
				return fmt.Errorf("dwarf: abbrev tag: %w", err)
			}

			hasChildren, err := r.ReadByte()
			if err != nil {
				return fmt.Errorf("dwarf: abbrev has_children: %w", err)
			}

			var attrs []AbbrevAttr
			for {
				name, err := leb128.ReadULEB128(r)
				if err != nil {
					return fmt.Errorf("dwarf: abbrev attr name: %w", err)
				}
				form, err := leb128.ReadULEB128(r)
				if err != nil {
					return fmt.Errorf("dwarf: abbrev attr form: %w", err)
				}
				if name == 0 && form == 0 {
					break
				}
				attrs = append(attrs, AbbrevAttr{Name: At(name), Form: Form(form)})
			}

			t.entries = append(t.entries, Abbrev{
				Code:        code,
				Tag:         Tag(tag),
				HasChildren: hasChildren != 0,
				Attrs:       attrs,
			})
		}
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(t.entries, func(i, j int) bool { return t.entries[i].Code < t.entries[j].Code })
	return t, nil
}

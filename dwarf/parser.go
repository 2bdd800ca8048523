package dwarf

import (
	"fmt"
	"io"

	"github.com/adobe-type-tools/orc/curated"
	"github.com/adobe-type-tools/orc/die"
	"github.com/adobe-type-tools/orc/leb128"
	"github.com/adobe-type-tools/orc/reader"
	"github.com/adobe-type-tools/orc/strpool"
)

// AbbrevCodeNotFound is the curated error pattern processCU raises when a
// DIE's abbreviation code has no matching declaration in the unit's
// .debug_abbrev table — fatal to the task parsing that compile unit.
const AbbrevCodeNotFound = "dwarf: abbrev code %d not found at offset %d"

// Sections is the set of DWARF section byte ranges recovered from one
// Mach-O slice's __DWARF segment by the macho reader.
type Sections struct {
	DebugStr    []byte
	DebugInfo   []byte
	DebugAbbrev []byte
	DebugLine   []byte
}

// Parser processes one object-file slice's DWARF sections into batches of
// fully resolved die.Die values, one batch per compilation unit, handed off
// through the register callback passed to ProcessAllDies.
type Parser struct {
	sections Sections
	pool     *strpool.Pool
	archName string
	ofdIndex int

	strReader *reader.Reader
}

// NewParser constructs a DWARF parser instance over sections, tagging every
// DIE it produces with archName (used in die hashing) and ofdIndex (the
// object-file registry index this slice was registered under).
func NewParser(sections Sections, pool *strpool.Pool, archName string, ofdIndex int) *Parser {
	return &Parser{
		sections:  sections,
		pool:      pool,
		archName:  archName,
		ofdIndex:  ofdIndex,
		strReader: reader.NewFromBytes(sections.DebugStr),
	}
}

// ResolveString implements die.StringResolver: resolving a deferred
// .debug_str offset the first time some caller asks for that attribute's
// string value, rather than eagerly reading every string up front.
func (p *Parser) ResolveString(offset uint32) strpool.Handle {
	var h strpool.Handle
	_ = p.strReader.TempSeek(int64(offset), io.SeekStart, func() error {
		s, err := p.strReader.ReadCString()
		if err != nil {
			return err
		}
		h = p.pool.Empool(s)
		return nil
	})
	return h
}

// ProcessAllDies walks every compilation unit in the slice's .debug_info,
// producing one fully resolved DIE batch per unit and handing each to
// register. A slice missing any of .debug_info/.debug_abbrev/.debug_line is
// silently skipped — there's nothing here to analyze.
func (p *Parser) ProcessAllDies(register func([]*die.Die)) error {
	if len(p.sections.DebugInfo) == 0 || len(p.sections.DebugAbbrev) == 0 || len(p.sections.DebugLine) == 0 {
		return nil
	}

	info := reader.NewFromBytes(p.sections.DebugInfo)
	abbrevSection := reader.NewFromBytes(p.sections.DebugAbbrev)
	lineSection := reader.NewFromBytes(p.sections.DebugLine)

	fileTable, err := ParseLineFileTable(lineSection, 0)
	if err != nil {
		return fmt.Errorf("dwarf: line file table: %w", err)
	}

	var baseDeclFiles []strpool.Handle
	for _, f := range fileTable.Files {
		baseDeclFiles = append(baseDeclFiles, p.pool.Empool(f.Path))
	}

	sectionEnd := int64(len(p.sections.DebugInfo))

	for info.Tell() < sectionEnd {
		if err := p.processCU(info, abbrevSection, baseDeclFiles, register); err != nil {
			return err
		}
	}

	return nil
}

// processCU reads, materializes, and resolves one compilation unit's worth
// of DIEs, per spec.md section 4.6's DIE tree walk.
func (p *Parser) processCU(info, abbrevSection *reader.Reader, baseDeclFiles []strpool.Handle, register func([]*die.Die)) error {
	header, err := ParseCUHeader(info)
	if err != nil {
		return fmt.Errorf("dwarf: cu header: %w", err)
	}

	abbrevTable, err := ParseAbbrevTable(abbrevSection, int64(header.AbbrevOffset))
	if err != nil {
		return fmt.Errorf("dwarf: abbrev table: %w", err)
	}

	declFiles := append([]strpool.Handle(nil), baseDeclFiles...)

	pathStack := []strpool.Handle{{}}
	var batch []*die.Die

	for {
		dieOffset := uint32(info.Tell())

		code, err := leb128.ReadULEB128(info)
		if err != nil {
			return fmt.Errorf("dwarf: abbrev code at %d: %w", dieOffset, err)
		}

		if code == 0 {
			pathStack = pathStack[:len(pathStack)-1]
			if len(pathStack) == 1 {
				// back down to the root frame: every child of this
				// compilation unit has been closed out.
				break
			}
			continue
		}

		abbrev, ok := abbrevTable.Lookup(code)
		if !ok {
			return curated.Errorf(AbbrevCodeNotFound, code, dieOffset)
		}

		d := &die.Die{
			OfdIndex:        p.ofdIndex,
			DebugInfoOffset: dieOffset,
			Tag:             abbrev.Tag,
			HasChildren:     abbrev.HasChildren,
		}

		for _, a := range abbrev.Attrs {
			value, err := p.evaluateForm(info, a.Form, header.Offset)
			if err != nil {
				return fmt.Errorf("dwarf: attribute %s at offset %d: %w", a.Name, dieOffset, err)
			}
			attr := die.Attribute{Name: a.Name, Form: a.Form, Value: value}
			p.postProcessAttribute(&attr, declFiles)
			d.Attributes = append(d.Attributes, attr)
		}

		if d.Tag == TagCompileUnit || d.Tag == TagPartialUnit {
			if nameAttr, ok := d.Attribute(AtName); ok && nameAttr.Value.HasString() {
				declFiles = append([]strpool.Handle{nameAttr.Value.String()}, declFiles...)
			}
			if !d.HasChildren {
				// some compilers emit an empty, childless compile unit with
				// no terminating null entry.
				pathStack[len(pathStack)-1] = p.dieIdentifier(d)
				d.Path = p.pool.Empool(p.qualifiedSymbolName(d, pathStack))
				d.ComputeHash(p.archName)
				d.ComputeFatalAttributeHash()
				batch = append(batch, d)
				break
			}
		}

		pathStack[len(pathStack)-1] = p.dieIdentifier(d)
		d.Path = p.pool.Empool(p.qualifiedSymbolName(d, pathStack))

		if d.HasChildren {
			pathStack = append(pathStack, strpool.Handle{})
		}

		d.ComputeHash(p.archName)
		d.ComputeFatalAttributeHash()
		batch = append(batch, d)
	}

	if err := resolveReferences(batch); err != nil {
		return err
	}

	// hashes were computed before reference resolution installed die
	// back-edges on fatal type attributes; recompute now that those
	// attributes carry their final (string-bearing) value.
	for _, d := range batch {
		d.ComputeFatalAttributeHash()
	}

	if len(batch) > 0 {
		register(batch)
	}

	return nil
}

package dwarf

import (
	"github.com/adobe-type-tools/orc/die"
	"github.com/adobe-type-tools/orc/strpool"
)

// identifierAttributes is the ordered list of attributes die_identifier
// consults, per spec.md section 4.6: the first one present that carries a
// string value names the DIE.
var identifierAttributes = []At{
	AtLinkageName,
	AtName,
	AtType,
	AtImport,
	AtAbstractOrigin,
	AtSpecification,
}

// dieIdentifier derives the single path-frame name for d, per spec.md
// section 4.6. Compile and partial units always get the synthetic "[u]"
// frame; everything else falls back through identifierAttributes, or the
// empty handle if d is anonymous.
func (p *Parser) dieIdentifier(d *die.Die) strpool.Handle {
	if d.Tag == TagCompileUnit || d.Tag == TagPartialUnit {
		return p.pool.Empool("[u]")
	}

	if len(d.Attributes) == 0 {
		return strpool.Handle{}
	}

	for _, at := range identifierAttributes {
		if a, ok := d.Attribute(at); ok && a.Value.HasString() {
			return a.Value.String()
		}
	}

	return strpool.Handle{}
}

// qualifiedAttributes is consulted before falling back to the name-path
// stack: a DIE carrying a mangled linkage name or a specification is better
// identified by that string than by its structural path.
var qualifiedAttributes = []At{
	AtLinkageName,
	AtSpecification,
}

// qualifiedSymbolName builds the fully qualified symbol name for d given
// the current name-path stack, per spec.md section 4.6.
func (p *Parser) qualifiedSymbolName(d *die.Die, pathStack []strpool.Handle) string {
	for _, at := range qualifiedAttributes {
		if a, ok := d.Attribute(at); ok && a.Value.HasString() {
			return "::[u]::" + a.Value.String().String()
		}
	}

	for _, frame := range pathStack {
		if frame.Empty() {
			return ""
		}
	}

	var result string
	for _, frame := range pathStack {
		result += "::" + frame.String()
	}
	return result
}

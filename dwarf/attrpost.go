package dwarf

import (
	"github.com/adobe-type-tools/orc/die"
	"github.com/adobe-type-tools/orc/strpool"
)

var callingConventionNames = map[uint64]string{
	0x01: "normal",
	0x02: "program",
	0x03: "nocall",
	0x04: "pass by reference",
	0x05: "pass by value",
	0x40: "lo user",
	0xff: "hi user",
}

var virtualityNames = map[uint64]string{
	0: "none",
	1: "virtual",
	2: "pure virtual",
}

var visibilityNames = map[uint64]string{
	1: "local",
	2: "exported",
	3: "qualified",
}

// applePropertyNames maps the exact single-bit values spec.md section 4.6
// lists for apple_property. This is not full bitfield decomposition — a
// value combining more than one bit (which the Apple property encoding
// technically allows) is left as its raw uint, matching the original
// analyzer this is ported from.
var applePropertyNames = map[uint64]string{
	0x01:   "readonly",
	0x02:   "getter",
	0x04:   "assign",
	0x08:   "readwrite",
	0x10:   "retain",
	0x20:   "copy",
	0x40:   "nonatomic",
	0x80:   "setter",
	0x100:  "atomic",
	0x200:  "weak",
	0x400:  "strong",
	0x800:  "unsafe_unretained",
	0x1000: "nullability",
	0x2000: "null_resettable",
	0x4000: "class",
}

// postProcessAttribute rewrites specific attribute values after form
// evaluation, per spec.md section 4.6. declFiles is the owning CU's
// current file table (index 0 is the most recently seen compile/partial
// unit name, per the original analyzer's prepend-on-each-unit behavior).
func (p *Parser) postProcessAttribute(attr *die.Attribute, declFiles []strpool.Handle) {
	switch attr.Name {
	case AtDeclFile:
		idx := attr.Value.Uint()
		if int(idx) < len(declFiles) {
			attr.Value.SetString(declFiles[idx])
		}

	case AtCallingConv:
		if name, ok := callingConventionNames[attr.Value.Uint()]; ok {
			attr.Value.SetString(p.pool.Empool(name))
		}

	case AtVirtuality:
		if name, ok := virtualityNames[attr.Value.Uint()]; ok {
			attr.Value.SetString(p.pool.Empool(name))
		}

	case AtVisibility:
		if name, ok := visibilityNames[attr.Value.Uint()]; ok {
			attr.Value.SetString(p.pool.Empool(name))
		}

	case AtAppleProperty:
		if name, ok := applePropertyNames[attr.Value.Uint()]; ok {
			attr.Value.SetString(p.pool.Empool(name))
		}

	default:
		if attr.Form == FormFlag || attr.Form == FormFlagPresent {
			if attr.Value.Uint() != 0 {
				attr.Value.SetString(p.pool.Empool("true"))
			} else {
				attr.Value.SetString(p.pool.Empool("false"))
			}
		}
	}
}

package die

import (
	"sort"

	"github.com/adobe-type-tools/orc/hashutil"
	"github.com/adobe-type-tools/orc/strpool"
)

// Die is one Debugging Information Entry, carrying just enough of its
// DWARF attributes to classify and compare it against other definitions of
// the same symbol.
type Die struct {
	Path strpool.Handle
	Next *Die

	Hash                uint64
	FatalAttributeHash  uint64

	OfdIndex         int
	DebugInfoOffset  uint32
	Tag              Tag

	HasChildren bool
	Conflict    bool
	Skippable   bool

	Attributes []Attribute
}

// Attribute returns the attribute named name and whether it is present.
func (d *Die) Attribute(name At) (Attribute, bool) {
	for _, a := range d.Attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// HasAttribute reports whether d carries an attribute named name.
func (d *Die) HasAttribute(name At) bool {
	_, ok := d.Attribute(name)
	return ok
}

// nonfatalAttributes is the closed set of DW_AT names spec.md section 3
// classifies as non-fatal: disagreement on these alone never constitutes an
// ODRV. Grounded directly on the original implementation's
// nonfatal_attribute() table, including its decision to leave high_pc OUT
// of the list (a differing function size between two definitions of the
// same symbol is itself an ODRV).
var nonfatalAttributes = map[At]bool{
	AtAppleBlock:             true,
	AtAppleFlags:             true,
	AtAppleIsa:               true,
	AtAppleMajorRuntimeVers:  true,
	AtAppleObjcCompleteType:  true,
	AtAppleObjcDirect:        true,
	AtAppleOmitFramePtr:      true,
	AtAppleOptimized:         true,
	AtAppleProperty:          true,
	AtApplePropertyAttribute: true,
	AtApplePropertyGetter:    true,
	AtApplePropertyName:      true,
	AtApplePropertySetter:    true,
	AtAppleRuntimeClass:      true,
	AtAppleSdk:               true,
	AtCallColumn:             true,
	AtCallFile:               true,
	AtCallLine:               true,
	AtCallOrigin:             true,
	AtCallReturnPC:           true,
	AtContainingType:         true,
	AtDeclColumn:             true,
	AtDeclFile:               true,
	AtDeclLine:               true,
	AtFrameBase:              true,
	AtLocation:               true,
	AtLowpc:                  true,
	AtName:                   true,
	AtPrototyped:             true,
}

// NonFatal reports whether at is classified non-fatal — a difference on
// this attribute alone does not constitute an ODRV.
func NonFatal(at At) bool { return nonfatalAttributes[at] }

// Fatal reports whether at is classified fatal.
func Fatal(at At) bool { return !nonfatalAttributes[at] }

// skipTags are the tags the registration step never hands to the conflict
// detector: compile/partial units describe a translation unit, not a
// symbol, and variables/formal parameters are comparable only as part of
// the enclosing subprogram's signature.
var skipTags = map[Tag]bool{
	TagCompileUnit:     true,
	TagPartialUnit:     true,
	TagVariable:        true,
	TagFormalParameter: true,
}

// ComputeHash derives d.Hash from the slice's architecture tag, the DIE's
// own tag, and its qualified path — the key used to bucket same-symbol
// definitions together in the global registration map.
func (d *Die) ComputeHash(archName string) {
	d.Hash = hashutil.CombineAll(0,
		hashutil.Murmur3_64([]byte(archName), 0),
		uint64(d.Tag),
		d.Path.Hash(),
	)
}

// ComputeFatalAttributeHash derives d.FatalAttributeHash from the subset of
// attributes classified fatal, order-independent (attributes combine by
// addition, not positionally) so that two DIEs whose fatal attributes were
// simply parsed in a different order still produce the same hash.
func (d *Die) ComputeFatalAttributeHash() {
	var h uint64
	for _, a := range d.Attributes {
		if NonFatal(a.Name) {
			continue
		}
		h += attributeValueHash(a)
	}
	d.FatalAttributeHash = hashutil.Combine(0, h)
}

func attributeValueHash(a Attribute) uint64 {
	v := a.Value
	switch {
	case v.HasString():
		return hashutil.CombineAll(uint64(a.Name), v.String().Hash())
	case v.HasUint():
		return hashutil.CombineAll(uint64(a.Name), v.Uint())
	case v.HasSint():
		return hashutil.CombineAll(uint64(a.Name), uint64(v.Sint()))
	default:
		return hashutil.CombineAll(uint64(a.Name), uint64(a.Form))
	}
}

// ShouldSkip applies the registration-time skip filters from spec.md
// section 4.7 step 1. symbolIgnore is the configured list of fully
// qualified symbols (the path with its "::[u]::" compile-unit prefix
// stripped) to never register.
func (d *Die) ShouldSkip(symbolIgnore map[string]bool) bool {
	if skipTags[d.Tag] {
		return true
	}
	if d.Tag == TagSubprogram && !d.HasAttribute(AtExternal) {
		return true
	}
	if d.Path.Empty() {
		return true
	}
	path := d.Path.String()
	if containsReserved(path) {
		return true
	}
	if d.HasAttribute(AtAppleRuntimeClass) {
		return true
	}
	if symbolIgnore[stripUnitPrefix(path)] {
		return true
	}
	if t, ok := d.Attribute(AtType); ok && t.Value.HasDie() {
		if td := t.Value.Die(); td != nil && len(td.Attributes) == 0 {
			return true
		}
	}
	return false
}

func containsReserved(path string) bool {
	return indexOf(path, "::__") >= 0 || indexOf(path, "lambda") >= 0
}

func indexOf(s, sub string) int {
	n, m := len(s), len(sub)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == sub {
			return i
		}
	}
	return -1
}

const unitPrefix = "::[u]::"

func stripUnitPrefix(path string) string {
	if len(path) >= len(unitPrefix) && path[:len(unitPrefix)] == unitPrefix {
		return path[len(unitPrefix):]
	}
	return path
}

// FindDieConflict returns the first fatal DW_AT on which x and y disagree,
// or AtNone if they agree on every fatal attribute present in either.
// Grounded directly on the original implementation's find_die_conflict.
func FindDieConflict(x, y *Die) At {
	if x.Tag != y.Tag {
		return tagConflictSentinel
	}

	for _, xa := range x.Attributes {
		if NonFatal(xa.Name) {
			continue
		}
		ya, ok := y.Attribute(xa.Name)
		if !ok {
			return xa.Name
		}
		if xa.Name == AtType {
			if TypeEquivalent(xa, ya) {
				continue
			}
			return xa.Name
		}
		if xa.Value.Equal(ya.Value) {
			continue
		}
		return xa.Name
	}

	for _, ya := range y.Attributes {
		if NonFatal(ya.Name) {
			continue
		}
		if _, ok := x.Attribute(ya.Name); !ok {
			return ya.Name
		}
	}

	return AtNone
}

// tagConflictSentinel stands in for "the DIEs are different tags entirely"
// in contexts that report a single DW_AT; spec.md section 4.7 calls this
// out explicitly as the sentinel "tag" rather than a real attribute name.
const tagConflictSentinel = At(0xffffffff)

// TagConflict reports whether at is the synthetic sentinel FindDieConflict
// returns when two DIEs don't even share a tag.
func TagConflict(at At) bool { return at == tagConflictSentinel }

// TypeEquivalent implements the type-attribute comparison spec.md section
// 4.7 describes: two type attributes are equivalent if their references,
// string hashes, or (recursively) their resolved DIEs agree.
func TypeEquivalent(x, y Attribute) bool {
	xv, yv := x.Value, y.Value

	if xv.HasReference() && yv.HasReference() && xv.Reference() == yv.Reference() {
		return true
	}
	if xv.HasString() && yv.HasString() && xv.StringHash() == yv.StringHash() {
		return true
	}
	if xv.HasDie() && yv.HasDie() && FindDieConflict(xv.Die(), yv.Die()) == AtNone {
		return true
	}

	return false
}

// SortChain orders a collision chain by (ancestry, debug_info_offset), the
// stable ordering spec.md section 4.7 requires before conflict detection
// and reporting. ancestryOf resolves a DIE's object-file ancestry string.
func SortChain(chain []*Die, ancestryOf func(*Die) string) {
	sort.SliceStable(chain, func(i, j int) bool {
		ai, aj := ancestryOf(chain[i]), ancestryOf(chain[j])
		if ai != aj {
			return ai < aj
		}
		return chain[i].DebugInfoOffset < chain[j].DebugInfoOffset
	})
}

// Package die implements the DIE (Debugging Information Entry) model: the
// tagged attribute-value representation, fatal/non-fatal attribute
// classification, and the conflict-detection algorithm that decides whether
// two definitions of the same symbol disagree.
package die

import (
	"github.com/adobe-type-tools/orc/strpool"
)

// ValueKind is a bitset over the shapes an AttributeValue can carry. Unlike
// a union, several bits can be set at once — most notably a deferred string
// value sets both the string and stringDeferred bits so callers can test
// "is this a string" without caring whether it has been resolved yet.
type ValueKind uint8

const (
	KindNone ValueKind = 0
	KindPassover ValueKind = 1 << 0
	KindUint ValueKind = 1 << 1
	KindSint ValueKind = 1 << 2
	KindString ValueKind = 1 << 3
	KindStringDeferred ValueKind = 1 << 4
	KindReference ValueKind = 1 << 5
	KindDie ValueKind = 1 << 6
)

// Has reports whether every bit in want is set in k.
func (k ValueKind) Has(want ValueKind) bool { return k&want == want }

// StringResolver resolves a deferred debug_str offset to an interned
// string, lazily — the form evaluator records the offset without touching
// .debug_str until a reader actually asks for the value.
type StringResolver interface {
	ResolveString(offset uint32) strpool.Handle
}

// deferredString pairs a resolver with the offset to resolve against it.
type deferredString struct {
	resolver StringResolver
	offset   uint32
}

// AttributeValue is the tagged value an Attribute carries. The zero value is
// KindNone.
type AttributeValue struct {
	kind ValueKind

	u    uint64
	s    int32
	str  strpool.Handle
	ref  uint32
	d    *Die
	defr deferredString
}

// Passover marks a well-formed but uninterpreted form.
func (v *AttributeValue) Passover() { v.kind = KindPassover }

func (v AttributeValue) IsPassover() bool { return v.kind.Has(KindPassover) }

// SetUint records an unsigned integer value.
func (v *AttributeValue) SetUint(x uint64) {
	v.kind |= KindUint
	v.u = x
}

func (v AttributeValue) HasUint() bool { return v.kind.Has(KindUint) }
func (v AttributeValue) Uint() uint64  { return v.u }

// SetSint records a signed integer value.
func (v *AttributeValue) SetSint(x int32) {
	v.kind |= KindSint
	v.s = x
}

func (v AttributeValue) HasSint() bool { return v.kind.Has(KindSint) }
func (v AttributeValue) Sint() int32   { return v.s }

// SetString records a resolved interned string, clearing any pending
// deferred resolution — a type attribute that starts out deferred and is
// later replaced during reference resolution takes this path.
func (v *AttributeValue) SetString(s strpool.Handle) {
	v.kind &^= KindStringDeferred
	v.kind |= KindString
	v.str = s
}

// SetDeferredString records a lazy debug_str lookup. HasString reports true
// immediately even though resolution hasn't happened yet.
func (v *AttributeValue) SetDeferredString(r StringResolver, offset uint32) {
	v.kind |= KindString | KindStringDeferred
	v.defr = deferredString{resolver: r, offset: offset}
}

func (v AttributeValue) HasString() bool { return v.kind.Has(KindString) }

// String resolves and returns the string value, resolving a deferred
// reference on first access.
func (v *AttributeValue) String() strpool.Handle {
	if v.kind.Has(KindStringDeferred) {
		v.SetString(v.defr.resolver.ResolveString(v.defr.offset))
	}
	return v.str
}

// StringHash returns the hash of the string value without forcing
// resolution of the handle's bytes beyond what resolution already requires.
func (v *AttributeValue) StringHash() uint64 { return v.String().Hash() }

// SetReference records an offset into .debug_info, not yet resolved to a DIE.
func (v *AttributeValue) SetReference(offset uint32) {
	v.kind |= KindReference
	v.u = uint64(offset)
}

func (v AttributeValue) HasReference() bool { return v.kind.Has(KindReference) }
func (v AttributeValue) Reference() uint32  { return uint32(v.u) }

// SetDie installs a back-edge to the resolved DIE; any reference offset
// already recorded is kept alongside it.
func (v *AttributeValue) SetDie(d *Die) {
	v.kind |= KindDie
	v.d = d
}

func (v AttributeValue) HasDie() bool { return v.kind.Has(KindDie) }
func (v AttributeValue) Die() *Die    { return v.d }

// Equal implements the attribute-value equality spec.md section 3 defines:
// string compares beat everything else, then uint, then sint; references
// and die back-edges are not directly comparable across compilation units
// and fall through to false unless the caller has already normalized them
// (type attributes get special handling in FindDieConflict/TypeEquivalent
// rather than here).
func (v AttributeValue) Equal(o AttributeValue) bool {
	if v.HasString() && o.HasString() {
		return v.String().Hash() == o.String().Hash()
	}
	if v.HasUint() && o.HasUint() {
		return v.u == o.u
	}
	if v.HasSint() && o.HasSint() {
		return v.s == o.s
	}
	return false
}

// Attribute is a (name, form, value) triple.
type Attribute struct {
	Name  At
	Form  Form
	Value AttributeValue
}

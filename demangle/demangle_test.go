package demangle_test

import (
	"testing"

	"github.com/adobe-type-tools/orc/demangle"
	"github.com/adobe-type-tools/orc/test"
)

func TestDemangleNestedName(t *testing.T) {
	name, ok := demangle.Demangle("_ZN3Foo3barEv")
	test.Equate(t, ok, true)
	test.Equate(t, name, "Foo::bar")
}

func TestDemangleSimpleName(t *testing.T) {
	name, ok := demangle.Demangle("_Z3foov")
	test.Equate(t, ok, true)
	test.Equate(t, name, "foo")
}

func TestDemangleFallsBackOnUnmangledInput(t *testing.T) {
	name, ok := demangle.Demangle("plain_c_symbol")
	test.Equate(t, ok, false)
	test.Equate(t, name, "plain_c_symbol")
}

func TestDemangleResolvesCompressedSubstitution(t *testing.T) {
	// "S_" refers back to the first substitutable component ("Foo") — the
	// case the hand-rolled predecessor of this package gave up on.
	name, ok := demangle.Demangle("_ZN3FooS_3barEv")
	test.Equate(t, ok, true)
	test.Equate(t, name, "Foo::Foo::bar")
}

func TestDemangleFallsBackOnMalformedEncoding(t *testing.T) {
	name, ok := demangle.Demangle("_ZN3Foo")
	test.Equate(t, ok, false)
	test.Equate(t, name, "_ZN3Foo")
}

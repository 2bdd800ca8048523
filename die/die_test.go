package die_test

import (
	"testing"

	"github.com/adobe-type-tools/orc/die"
	"github.com/adobe-type-tools/orc/strpool"
	"github.com/adobe-type-tools/orc/test"
)

func mkDie(tag die.Tag, attrs ...die.Attribute) *die.Die {
	return &die.Die{Tag: tag, Attributes: attrs}
}

func uintAttr(name die.At, v uint64) die.Attribute {
	var av die.AttributeValue
	av.SetUint(v)
	return die.Attribute{Name: name, Value: av}
}

func TestNonFatalClassification(t *testing.T) {
	test.Equate(t, die.NonFatal(die.AtDeclLine), true)
	test.Equate(t, die.NonFatal(die.AtLowpc), true)
	test.Equate(t, die.NonFatal(die.AtHighpc), false)
	test.Equate(t, die.Fatal(die.AtByteSize), true)
}

func TestFindDieConflictNoneWhenIdentical(t *testing.T) {
	x := mkDie(die.TagStructType, uintAttr(die.AtByteSize, 8))
	y := mkDie(die.TagStructType, uintAttr(die.AtByteSize, 8))

	test.Equate(t, die.FindDieConflict(x, y), die.AtNone)
}

func TestFindDieConflictDetectsFatalMismatch(t *testing.T) {
	x := mkDie(die.TagStructType, uintAttr(die.AtByteSize, 8))
	y := mkDie(die.TagStructType, uintAttr(die.AtByteSize, 16))

	test.Equate(t, die.FindDieConflict(x, y), die.AtByteSize)
}

func TestFindDieConflictIgnoresNonFatalMismatch(t *testing.T) {
	x := mkDie(die.TagStructType, uintAttr(die.AtDeclLine, 10))
	y := mkDie(die.TagStructType, uintAttr(die.AtDeclLine, 99))

	test.Equate(t, die.FindDieConflict(x, y), die.AtNone)
}

func TestFindDieConflictTagMismatch(t *testing.T) {
	x := mkDie(die.TagStructType)
	y := mkDie(die.TagClassType)

	test.Equate(t, die.TagConflict(die.FindDieConflict(x, y)), true)
}

func TestFindDieConflictMissingAttributeInY(t *testing.T) {
	x := mkDie(die.TagStructType, uintAttr(die.AtByteSize, 8))
	y := mkDie(die.TagStructType)

	test.Equate(t, die.FindDieConflict(x, y), die.AtByteSize)
}

func TestFindDieConflictExtraFatalAttributeInY(t *testing.T) {
	x := mkDie(die.TagStructType)
	y := mkDie(die.TagStructType, uintAttr(die.AtByteSize, 8))

	test.Equate(t, die.FindDieConflict(x, y), die.AtByteSize)
}

func TestTypeEquivalentByReference(t *testing.T) {
	var xv, yv die.AttributeValue
	xv.SetReference(100)
	yv.SetReference(100)

	test.Equate(t, die.TypeEquivalent(
		die.Attribute{Name: die.AtType, Value: xv},
		die.Attribute{Name: die.AtType, Value: yv},
	), true)
}

func TestTypeEquivalentByString(t *testing.T) {
	pool := strpool.NewPool()
	h := pool.Empool("MyStruct")

	var xv, yv die.AttributeValue
	xv.SetString(h)
	yv.SetString(h)

	test.Equate(t, die.TypeEquivalent(
		die.Attribute{Name: die.AtType, Value: xv},
		die.Attribute{Name: die.AtType, Value: yv},
	), true)
}

func TestTypeEquivalentMismatch(t *testing.T) {
	var xv, yv die.AttributeValue
	xv.SetReference(100)
	yv.SetReference(200)

	test.Equate(t, die.TypeEquivalent(
		die.Attribute{Name: die.AtType, Value: xv},
		die.Attribute{Name: die.AtType, Value: yv},
	), false)
}

func TestShouldSkipEmptyPath(t *testing.T) {
	d := &die.Die{Tag: die.TagStructType}
	test.Equate(t, d.ShouldSkip(nil), true)
}

func TestShouldSkipReservedName(t *testing.T) {
	pool := strpool.NewPool()
	d := &die.Die{Tag: die.TagStructType, Path: pool.Empool("::ns::__hidden")}
	test.Equate(t, d.ShouldSkip(nil), true)
}

func TestShouldSkipNonExternalSubprogram(t *testing.T) {
	pool := strpool.NewPool()
	d := &die.Die{Tag: die.TagSubprogram, Path: pool.Empool("::ns::fn")}
	test.Equate(t, d.ShouldSkip(nil), true)
}

func TestShouldSkipSymbolIgnoreList(t *testing.T) {
	pool := strpool.NewPool()
	d := &die.Die{Tag: die.TagStructType, Path: pool.Empool("::[u]::ns::Foo")}
	test.Equate(t, d.ShouldSkip(map[string]bool{"ns::Foo": true}), true)
	test.Equate(t, d.ShouldSkip(nil), false)
}

func TestComputeHashStableForEqualInputs(t *testing.T) {
	pool := strpool.NewPool()
	path := pool.Empool("::[u]::ns::Foo")

	a := &die.Die{Tag: die.TagStructType, Path: path}
	b := &die.Die{Tag: die.TagStructType, Path: path}

	a.ComputeHash("arm64")
	b.ComputeHash("arm64")

	test.Equate(t, a.Hash, b.Hash)
}

func TestComputeFatalAttributeHashIgnoresNonFatal(t *testing.T) {
	a := &die.Die{Tag: die.TagStructType, Attributes: []die.Attribute{
		uintAttr(die.AtByteSize, 8),
		uintAttr(die.AtDeclLine, 1),
	}}
	b := &die.Die{Tag: die.TagStructType, Attributes: []die.Attribute{
		uintAttr(die.AtByteSize, 8),
		uintAttr(die.AtDeclLine, 999),
	}}

	a.ComputeFatalAttributeHash()
	b.ComputeFatalAttributeHash()

	test.Equate(t, a.FatalAttributeHash, b.FatalAttributeHash)
}

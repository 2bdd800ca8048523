package odrv

import (
	"strings"
	"testing"

	"github.com/adobe-type-tools/orc/curated"
	"github.com/adobe-type-tools/orc/die"
	"github.com/adobe-type-tools/orc/ofile"
	"github.com/adobe-type-tools/orc/strpool"
	"github.com/adobe-type-tools/orc/test"
)

func mkDie(hash uint64, tag die.Tag, path string, attrs ...die.Attribute) *die.Die {
	d := &die.Die{Hash: hash, Tag: tag, Attributes: attrs}
	d.Path = strpool.Empool(path)
	d.ComputeFatalAttributeHash()
	return d
}

func uintAttr(name die.At, v uint64) die.Attribute {
	var av die.AttributeValue
	av.SetUint(v)
	return die.Attribute{Name: name, Value: av}
}

func TestRegisterSkipsEmptyPath(t *testing.T) {
	r := NewRegistry(Config{})
	d := &die.Die{Tag: die.TagStructType, Hash: 1}

	r.Register(0, []*die.Die{d})

	test.Equate(t, r.RegisteredCount(), uint64(0))
}

func TestRegisterSpliceInsertsAfterHead(t *testing.T) {
	r := NewRegistry(Config{})
	head := mkDie(42, die.TagStructType, "::[u]::foo", uintAttr(die.AtByteSize, 8))
	second := mkDie(42, die.TagStructType, "::[u]::foo", uintAttr(die.AtByteSize, 16))

	r.Register(0, []*die.Die{head})
	r.Register(0, []*die.Die{second})

	test.Equate(t, r.RegisteredCount(), uint64(2))
	test.Equate(t, head.Next, second)
}

func TestFinalizeDetectsConflict(t *testing.T) {
	r := NewRegistry(Config{})
	ofd := ofile.Register(ofile.NewAncestry("a.o"), ofile.Details{})

	x := mkDie(7, die.TagStructType, "::[u]::conflict_type", uintAttr(die.AtByteSize, 4))
	y := mkDie(7, die.TagStructType, "::[u]::conflict_type", uintAttr(die.AtByteSize, 8))
	x.OfdIndex, y.OfdIndex = ofd, ofd
	y.DebugInfoOffset = 1

	r.Register(0, []*die.Die{x})
	r.Register(0, []*die.Die{y})

	reports := r.Finalize()
	test.Equate(t, len(reports), 1)
	test.Equate(t, reports[0].Conflict, die.AtByteSize)
	test.Equate(t, reports[0].Symbol, "conflict_type")
}

func TestFinalizeSkipsNonConflictingChain(t *testing.T) {
	r := NewRegistry(Config{})
	x := mkDie(9, die.TagStructType, "::[u]::same", uintAttr(die.AtByteSize, 8))
	y := mkDie(9, die.TagStructType, "::[u]::same", uintAttr(die.AtByteSize, 8))

	r.Register(0, []*die.Die{x})
	r.Register(0, []*die.Die{y})

	test.Equate(t, len(r.Finalize()), 0)
}

func TestDistinctVariantsDedupesByFatalAttributeHash(t *testing.T) {
	a := mkDie(1, die.TagStructType, "::[u]::x", uintAttr(die.AtByteSize, 8))
	b := mkDie(1, die.TagStructType, "::[u]::x", uintAttr(die.AtByteSize, 8))
	c := mkDie(1, die.TagStructType, "::[u]::x", uintAttr(die.AtByteSize, 16))
	a.Next, b.Next = b, c

	test.Equate(t, len(distinctVariants(a)), 2)
}

func TestSymbolFromPathStripsUnitPrefix(t *testing.T) {
	test.Equate(t, symbolFromPath("::[u]::example_typedef::conflict_type"), "example_typedef::conflict_type")
	test.Equate(t, symbolFromPath("::[u]"), "")
}

func TestEmitFiltersByViolationIgnore(t *testing.T) {
	foo := Report{Symbol: "foo", Head: mkDie(1, die.TagStructType, "::[u]::foo"), Conflict: die.AtByteSize}
	bar := Report{Symbol: "bar", Head: mkDie(2, die.TagTypedef, "::[u]::bar"), Conflict: die.AtByteSize}

	cfg := Config{ViolationIgnore: map[string]bool{foo.Category(): true}}
	out, err := cfg.Emit([]Report{foo, bar})

	test.ExpectedSuccess(t, err)
	test.Equate(t, strings.Contains(out, "bar"), true)
	test.Equate(t, strings.Contains(out, "`foo`"), false)
}

func TestEmitViolationReportIsAllowList(t *testing.T) {
	foo := Report{Symbol: "foo", Head: mkDie(1, die.TagStructType, "::[u]::foo"), Conflict: die.AtByteSize}
	bar := Report{Symbol: "bar", Head: mkDie(2, die.TagTypedef, "::[u]::bar"), Conflict: die.AtByteSize}

	cfg := Config{ViolationReport: map[string]bool{foo.Category(): true}}
	out, err := cfg.Emit([]Report{foo, bar})

	test.ExpectedSuccess(t, err)
	test.Equate(t, strings.Contains(out, "`foo`"), true)
	test.Equate(t, strings.Contains(out, "bar"), false)
}

func TestEmitStopsAtMaxViolationCount(t *testing.T) {
	foo := Report{Symbol: "foo", Head: mkDie(1, die.TagStructType, "::[u]::foo"), Conflict: die.AtByteSize}
	bar := Report{Symbol: "bar", Head: mkDie(2, die.TagTypedef, "::[u]::bar"), Conflict: die.AtByteSize}

	cfg := Config{MaxViolationCount: 1}
	out, err := cfg.Emit([]Report{foo, bar})

	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, MaxViolationCountReached), true)
	test.Equate(t, strings.Contains(out, "`foo`"), true)
	test.Equate(t, strings.Contains(out, "`bar`"), false)
}

func TestResetEmptiesRegistry(t *testing.T) {
	r := NewRegistry(Config{})
	d := mkDie(5, die.TagStructType, "::[u]::thing")
	r.Register(0, []*die.Die{d})
	test.Equate(t, r.RegisteredCount(), uint64(1))

	r.Reset()

	test.Equate(t, r.RegisteredCount(), uint64(0))
	test.Equate(t, len(r.Finalize()), 0)
}

package die_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adobe-type-tools/orc/die"
)

// TestFindDieConflictMatrix exercises FindDieConflict across the cross
// product of tag-equality and several attribute shapes at once — a richer
// assertion than the single-case tests in die_test.go, using testify/require the
// way a table-driven conflict matrix calls for.
func TestFindDieConflictMatrix(t *testing.T) {
	cases := []struct {
		name     string
		x, y     *die.Die
		conflict die.At
		isTag    bool
	}{
		{
			name:     "identical byte size",
			x:        mkDie(die.TagStructType, uintAttr(die.AtByteSize, 8)),
			y:        mkDie(die.TagStructType, uintAttr(die.AtByteSize, 8)),
			conflict: die.AtNone,
		},
		{
			name:     "differing byte size",
			x:        mkDie(die.TagStructType, uintAttr(die.AtByteSize, 8)),
			y:        mkDie(die.TagStructType, uintAttr(die.AtByteSize, 12)),
			conflict: die.AtByteSize,
		},
		{
			name:     "differing tag entirely",
			x:        mkDie(die.TagStructType, uintAttr(die.AtByteSize, 8)),
			y:        mkDie(die.TagUnionType, uintAttr(die.AtByteSize, 8)),
			isTag:    true,
			conflict: die.AtNone, // placeholder, checked via isTag branch below
		},
		{
			name:     "non-fatal decl_line ignored alongside matching fatal attribute",
			x:        mkDie(die.TagStructType, uintAttr(die.AtByteSize, 8), uintAttr(die.AtDeclLine, 1)),
			y:        mkDie(die.TagStructType, uintAttr(die.AtByteSize, 8), uintAttr(die.AtDeclLine, 2)),
			conflict: die.AtNone,
		},
		{
			name:     "multiple fatal attributes, first mismatch wins",
			x:        mkDie(die.TagStructType, uintAttr(die.AtByteSize, 8), uintAttr(die.AtBitSize, 4)),
			y:        mkDie(die.TagStructType, uintAttr(die.AtByteSize, 8), uintAttr(die.AtBitSize, 6)),
			conflict: die.AtBitSize,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := die.FindDieConflict(c.x, c.y)
			if c.isTag {
				require.True(t, die.TagConflict(got), "expected a tag-mismatch conflict")
				return
			}
			require.Equal(t, c.conflict, got)
		})
	}
}

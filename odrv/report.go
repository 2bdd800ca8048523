package odrv

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adobe-type-tools/orc/die"
	"github.com/adobe-type-tools/orc/ofile"
)

// Report is one confirmed ODRV: a qualified symbol whose surviving
// definitions disagree on a fatal attribute. Head anchors the chain of
// every definition, re-linked in (ancestry, debug_info_offset) order by
// Finalize; Conflict names the first fatal DW_AT the sorted-first
// definition disagreed on, or the tag-mismatch sentinel.
type Report struct {
	Symbol   string
	Head     *die.Die
	Conflict die.At
}

// Category renders "<tag>:<attr>", or the sentinel "tag" when the
// conflicting DIEs don't even share a DWARF tag. Grounded on
// odrv_report::category().
func (r Report) Category() string {
	if die.TagConflict(r.Conflict) {
		return "tag"
	}
	return r.Head.Tag.String() + ":" + r.Conflict.String()
}

// String renders r collapsing redundant chain entries (filter_redundant's
// default per original_source/include/orc/settings.hpp). Use render
// directly to control that behavior from a Config.
func (r Report) String() string {
	return r.render(true)
}

// render is the plain-text report format spec.md section 6 prescribes: a
// header line naming the category and symbol, followed by one indented
// line per surviving definition. Symbol is left mangled — demangling is
// presentation, handled by a collaborator outside this package, per
// spec.md's "absence or failure must not affect classification, only
// presentation". When collapseRedundant is true, chain entries sharing a
// FatalAttributeHash are deduplicated to one representative (spec.md section
// 4.7 step 4); when false, every chain entry is listed.
func (r Report) render(collapseRedundant bool) string {
	variants := chainEntries(r.Head)
	if collapseRedundant {
		variants = distinctVariants(r.Head)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ODRV (%s); conflict in `%s`\n", r.Category(), r.Symbol)
	for _, d := range variants {
		fmt.Fprintf(&b, "  %s\n", describeDie(d))
	}
	return b.String()
}

// chainEntries returns every DIE in the chain anchored at head, in chain
// order, with no deduplication.
func chainEntries(head *die.Die) []*die.Die {
	var out []*die.Die
	for d := head; d != nil; d = d.Next {
		out = append(out, d)
	}
	return out
}

// distinctVariants walks the chain anchored at head and keeps one DIE per
// distinct FatalAttributeHash, first-seen order — spec.md section 4.7 step
// 4's "deduplicate chain entries whose fatal_attribute_hash matches: only
// one representative per distinct fatal-attribute configuration appears in
// the output".
func distinctVariants(head *die.Die) []*die.Die {
	seen := make(map[uint64]bool)
	var out []*die.Die
	for d := head; d != nil; d = d.Next {
		if seen[d.FatalAttributeHash] {
			continue
		}
		seen[d.FatalAttributeHash] = true
		out = append(out, d)
	}
	return out
}

func describeDie(d *die.Die) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", d.Tag, d.Path.String())
	for _, a := range d.Attributes {
		if die.NonFatal(a.Name) {
			continue
		}
		fmt.Fprintf(&b, " %s=%s", a.Name, attributeValueString(a.Value))
	}
	return b.String()
}

func attributeValueString(v die.AttributeValue) string {
	switch {
	case v.HasString():
		return v.String().String()
	case v.HasUint():
		return fmt.Sprintf("%d", v.Uint())
	case v.HasSint():
		return fmt.Sprintf("%d", v.Sint())
	case v.HasReference():
		return fmt.Sprintf("@%#x", v.Reference())
	default:
		return "?"
	}
}

// Finalize walks every collision chain in the registry, sorts each one by
// (ancestry, debug_info_offset), and emits a Report for every chain whose
// sorted-first definition conflicts with at least one other member.
// Grounded on orc_process's main-thread pass over global_die_map() after
// every worker has quiesced — call this only once every DIE batch has been
// registered.
func (r *Registry) Finalize() []Report {
	type bucket struct {
		hash uint64
		head *die.Die
	}
	var buckets []bucket
	r.buckets.Range(func(key, value any) bool {
		buckets = append(buckets, bucket{hash: key.(uint64), head: value.(*die.Die)})
		return true
	})
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].hash < buckets[j].hash })

	var reports []Report
	for _, b := range buckets {
		var chain []*die.Die
		for d := b.head; d != nil; d = d.Next {
			chain = append(chain, d)
		}
		if len(chain) <= 1 {
			continue
		}

		die.SortChain(chain, ancestryOf)

		for i := 1; i < len(chain); i++ {
			chain[i-1].Next = chain[i] // re-link in sort order for reporting
		}
		chain[len(chain)-1].Next = nil

		conflict := die.AtNone
		for i := 1; i < len(chain); i++ {
			conflict = die.FindDieConflict(chain[0], chain[i])
			if conflict != die.AtNone {
				break
			}
		}
		if conflict == die.AtNone {
			continue
		}

		chain[0].Conflict = true
		reports = append(reports, Report{
			Symbol:   symbolFromPath(chain[0].Path.String()),
			Head:     chain[0],
			Conflict: conflict,
		})
	}

	return reports
}

func ancestryOf(d *die.Die) string {
	return ofile.Fetch(d.OfdIndex).Ancestry.String()
}

// symbolPrefixLen is the length of the "::[u]::" compile-unit prefix every
// qualified path carries.
const symbolPrefixLen = len("::[u]::")

// symbolFromPath lops the compile-unit prefix off a qualified path,
// returning "" for a bare top-level compile-unit path ("::[u]") that names
// no symbol. Grounded on orc.cpp's path_to_symbol.
func symbolFromPath(path string) string {
	if len(path) < symbolPrefixLen {
		return ""
	}
	return path[symbolPrefixLen:]
}

package dwarf

import (
	"sort"

	"github.com/adobe-type-tools/orc/curated"
	"github.com/adobe-type-tools/orc/die"
)

// ReferenceNotFound is the curated error pattern raised when a DIE
// reference attribute's offset doesn't resolve to any DIE in the current
// compile unit — an invariant of .debug_info, so fatal to the task parsing
// that unit rather than something to silently skip over.
const ReferenceNotFound = "dwarf: reference to offset %d from die at %d not found in compile unit"

// resolveReferences performs the intra-CU reference resolution spec.md
// section 4.6 describes, in place over one compilation unit's DIE batch:
// every reference attribute other than type becomes a back-edge to the
// resolved DIE; type attributes chase their reference chain to its base
// and install that as the resolved value.
func resolveReferences(batch []*die.Die) error {
	sort.SliceStable(batch, func(i, j int) bool {
		return batch[i].DebugInfoOffset < batch[j].DebugInfoOffset
	})

	byOffset := make(map[uint32]*die.Die, len(batch))
	for _, d := range batch {
		byOffset[d.DebugInfoOffset] = d
	}

	lookup := func(offset uint32) (*die.Die, bool) {
		d, ok := byOffset[offset]
		return d, ok
	}

	for _, d := range batch {
		if err := resolveReferenceAttributes(d, lookup); err != nil {
			return err
		}
	}

	for _, d := range batch {
		if err := resolveTypeAttribute(d, lookup); err != nil {
			return err
		}
	}

	return nil
}

func resolveReferenceAttributes(d *die.Die, lookup func(uint32) (*die.Die, bool)) error {
	for i := range d.Attributes {
		attr := &d.Attributes[i]
		if attr.Name == AtType {
			continue
		}
		if !attr.Value.HasReference() {
			continue
		}
		resolved, ok := lookup(attr.Value.Reference())
		if !ok {
			return curated.Errorf(ReferenceNotFound, attr.Value.Reference(), d.DebugInfoOffset)
		}
		attr.Value.SetDie(resolved)
		attr.Value.SetString(resolved.Path)
	}
	return nil
}

// findBaseReference chases d's attribute named at through successive
// reference resolutions until it reaches a DIE with no such attribute —
// the "base" of the chain. spec.md section 9's "Cyclic DIE graph" design
// note calls for detecting a cycle by re-entering the same
// debug_info_offset, not just the immediately preceding node — a 3+ node
// cycle (A.type -> B, B.type -> C, C.type -> A) never repeats a node
// on consecutive hops, so the full visited set is tracked here. On a
// cycle, the type is recorded as self-referential by returning the DIE
// where the cycle was detected, the same outcome as reaching a true base.
func findBaseReference(d *die.Die, at At, lookup func(uint32) (*die.Die, bool)) (*die.Die, error) {
	start := d
	visited := map[uint32]bool{d.DebugInfoOffset: true}

	for {
		attr, ok := d.Attribute(at)
		if !ok {
			return d, nil
		}
		if !attr.Value.HasReference() && !attr.Value.HasDie() {
			return d, nil
		}
		var next *die.Die
		if attr.Value.HasDie() {
			next = attr.Value.Die()
		} else {
			n, found := lookup(attr.Value.Reference())
			if !found {
				return nil, curated.Errorf(ReferenceNotFound, attr.Value.Reference(), d.DebugInfoOffset)
			}
			next = n
		}
		if visited[next.DebugInfoOffset] {
			return start, nil
		}
		visited[next.DebugInfoOffset] = true
		d = next
	}
}

func resolveTypeAttribute(d *die.Die, lookup func(uint32) (*die.Die, bool)) error {
	typeIdx := -1
	for i, a := range d.Attributes {
		if a.Name == AtType {
			typeIdx = i
			break
		}
	}
	if typeIdx == -1 {
		return nil
	}

	base, err := findBaseReference(d, AtType, lookup)
	if err != nil {
		return err
	}

	attr := &d.Attributes[typeIdx]
	attr.Value.SetDie(base)
	if nameAttr, ok := base.Attribute(AtName); ok && nameAttr.Value.HasString() {
		attr.Value.SetString(nameAttr.Value.String())
	}
	return nil
}

// Package ofile is the object-file registry: a concurrent, append-only
// vector mapping a small integer index to the provenance of one Mach-O
// slice — its container ancestry and format/arch details — so that every
// DIE can carry a compact ofd_index instead of copying that information
// per-DIE.
package ofile

import "sync"

// Format classifies the container a slice was found in.
type Format int

const (
	FormatUnknown Format = iota
	FormatMachO
	FormatArchive
	FormatFat
)

func (f Format) String() string {
	switch f {
	case FormatMachO:
		return "macho"
	case FormatArchive:
		return "ar"
	case FormatFat:
		return "fat"
	default:
		return "unknown"
	}
}

// Arch identifies the CPU architecture of a Mach-O slice.
type Arch int

const (
	ArchUnknown Arch = iota
	ArchX86
	ArchX86_64
	ArchArm
	ArchArm64
	ArchArm64_32
)

func (a Arch) String() string {
	switch a {
	case ArchX86:
		return "x86"
	case ArchX86_64:
		return "x86_64"
	case ArchArm:
		return "arm"
	case ArchArm64:
		return "arm64"
	case ArchArm64_32:
		return "arm64_32"
	default:
		return "unknown"
	}
}

// maxAncestryDepth bounds the nested-container depth spec.md allows:
// archive-of-fat-of-archive..., capped at 5 per section 6.
const maxAncestryDepth = 5

// Ancestry is the ordered sequence of interned path components leading from
// the outermost container (a .a archive or a bare .o on disk) inward to a
// specific member or fat slice. Fixed capacity per spec.md section 3.
type Ancestry struct {
	components [maxAncestryDepth]string
	depth      int
}

// NewAncestry builds an Ancestry from path components, outermost first.
// Any component beyond maxAncestryDepth is dropped; callers are expected to
// respect the depth-5 limit documented in spec.md section 6.
func NewAncestry(components ...string) Ancestry {
	var a Ancestry
	for _, c := range components {
		if a.depth >= maxAncestryDepth {
			break
		}
		a.components[a.depth] = c
		a.depth++
	}
	return a
}

// Push returns a new Ancestry with component appended innermost. The
// original is left untouched — ancestries are value types so that a
// container reader can fork one per recursive descent without the
// recursive calls stepping on each other's state.
func (a Ancestry) Push(component string) Ancestry {
	if a.depth >= maxAncestryDepth {
		return a
	}
	next := a
	next.components[next.depth] = component
	next.depth++
	return next
}

// Components returns the ordered path components, outermost first.
func (a Ancestry) Components() []string {
	return append([]string(nil), a.components[:a.depth]...)
}

// Less orders ancestries lexicographically by component, the ordering
// spec.md section 3 requires for stable reporting.
func (a Ancestry) Less(b Ancestry) bool {
	for i := 0; i < a.depth && i < b.depth; i++ {
		if a.components[i] != b.components[i] {
			return a.components[i] < b.components[i]
		}
	}
	return a.depth < b.depth
}

// String renders the ancestry as a single path, components joined by "!".
func (a Ancestry) String() string {
	s := ""
	for i := 0; i < a.depth; i++ {
		if i > 0 {
			s += "!"
		}
		s += a.components[i]
	}
	return s
}

// Details is the per-slice format/architecture/offset information spec.md
// section 3 calls file_details.
type Details struct {
	OffsetInContainer int64
	Format            Format
	Arch              Arch
	Is64Bit           bool
	NeedsByteswap     bool
}

// Descriptor pairs an Ancestry with its Details — exactly the
// (ancestry, file_details) tuple spec.md section 3 describes.
type Descriptor struct {
	Ancestry Ancestry
	Details  Details
}

// Registry is the concurrent, append-only object-file registry. The zero
// value is ready to use.
type Registry struct {
	mu   sync.RWMutex
	rows []Descriptor
}

// Register appends a descriptor and returns its monotonically increasing,
// 0-based index. Growing the backing slice never invalidates indices
// already handed out: Fetch always re-reads under the lock.
func (r *Registry) Register(ancestry Ancestry, details Details) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := len(r.rows)
	r.rows = append(r.rows, Descriptor{Ancestry: ancestry, Details: details})
	return idx
}

// Fetch returns the descriptor at index, which must have been returned by
// a prior call to Register.
func (r *Registry) Fetch(index int) Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rows[index]
}

// Len returns the number of registered object files.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows)
}

// defaultRegistry is the process-wide singleton. Like the string pool, it
// persists across orc.Reset() calls: DIEs retained from a prior run (there
// shouldn't be any after a reset, but the invariant costs nothing to keep)
// would otherwise carry indices into a truncated registry.
var defaultRegistry = &Registry{}

// Register appends to the process-wide registry.
func Register(ancestry Ancestry, details Details) int {
	return defaultRegistry.Register(ancestry, details)
}

// Fetch reads from the process-wide registry.
func Fetch(index int) Descriptor {
	return defaultRegistry.Fetch(index)
}

// Len reports the size of the process-wide registry.
func Len() int {
	return defaultRegistry.Len()
}

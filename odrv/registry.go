package odrv

import (
	"sync"
	"sync/atomic"

	"github.com/adobe-type-tools/orc/die"
)

// chainStripes is the number of mutexes striped across collision-chain
// splices. 67 is prime, chosen (per the original implementation) to spread
// hash bias across the stripes rather than concentrating collisions on a
// power-of-two subset of them.
const chainStripes = 67

// Registry is the process-wide concurrent DIE registration map: every DIE a
// DWARF parse batch produces is hashed into here, chained on collision.
// Grounded on original_source/src/orc.cpp's global_die_map (a
// tbb::concurrent_unordered_map<hash, die*>) and register_dies. The
// lock-free insert-if-absent becomes a sync.Map; the striped-mutex splice
// for a losing insert is carried as-is.
type Registry struct {
	cfg Config

	buckets    sync.Map
	chainLocks [chainStripes]sync.Mutex

	processedCount  uint64
	registeredCount uint64
}

// NewRegistry returns an empty Registry governed by cfg.
func NewRegistry(cfg Config) *Registry {
	return &Registry{cfg: cfg}
}

// Register is a container.RegisterDies/macho.RegisterDies-compatible
// callback: it registers every DIE in batch. ofdIndex is unused directly —
// each DIE already carries its own OfdIndex, stamped during DWARF parsing —
// but is kept in the signature so a Registry can be wired in as-is wherever
// that callback type is expected.
func (r *Registry) Register(ofdIndex int, batch []*die.Die) {
	for _, d := range batch {
		r.registerDie(d)
	}
}

// registerDie applies the registration-time skip filter and then either
// claims d's hash as a new chain head or splices d into the existing head's
// chain. The splice inserts d directly after the head — not at the tail —
// matching the original's "d._next_die = d_in_map._next_die; d_in_map._next_die
// = &d" (a commented-out tail-walking alternative exists in the source but
// is dead code).
func (r *Registry) registerDie(d *die.Die) {
	if d.ShouldSkip(r.cfg.SymbolIgnore) {
		return
	}
	atomic.AddUint64(&r.processedCount, 1)

	actual, loaded := r.buckets.LoadOrStore(d.Hash, d)
	if !loaded {
		atomic.AddUint64(&r.registeredCount, 1)
		return
	}

	head := actual.(*die.Die)
	lock := &r.chainLocks[d.Hash%chainStripes]
	lock.Lock()
	d.Next = head.Next
	head.Next = d
	lock.Unlock()

	atomic.AddUint64(&r.registeredCount, 1)
}

// ProcessedCount is the number of DIEs that survived the skip filter and
// were hashed, whether or not they ended up as a chain head.
func (r *Registry) ProcessedCount() uint64 { return atomic.LoadUint64(&r.processedCount) }

// RegisteredCount is the number of DIEs actually inserted into the map —
// identical to ProcessedCount in this port, since every non-skipped DIE is
// either a new head or a splice; kept distinct because the original tracks
// them separately (a registration can fail for reasons this port's
// sync.Map-based insert never does).
func (r *Registry) RegisteredCount() uint64 { return atomic.LoadUint64(&r.registeredCount) }

// Reset empties the map and its counters. This is the odrv half of
// orc.Reset's contract (spec.md section 9 "Global state"): the string pool
// and object-file registry are untouched by this call.
func (r *Registry) Reset() {
	r.buckets.Range(func(key, _ any) bool {
		r.buckets.Delete(key)
		return true
	})
	atomic.StoreUint64(&r.processedCount, 0)
	atomic.StoreUint64(&r.registeredCount, 0)
}

// defaultRegistry is the process-wide singleton spec.md section 9 describes
// ("the DIE batch list, DIE map... are all process-scoped singletons"),
// letting the core be driven repeatedly within one process (the test
// harness's use case named in that section). orc.Run configures it via
// Configure before each drive; orc.Reset clears it between drives.
var defaultRegistry = NewRegistry(Config{})

// Configure replaces the filter policy the process-wide registry applies to
// subsequent registrations. It does not touch already-registered DIEs.
func Configure(cfg Config) {
	defaultRegistry.cfg = cfg
}

// Register registers batch against the process-wide registry. Matches the
// container.RegisterDies/macho.RegisterDies callback shape.
func Register(ofdIndex int, batch []*die.Die) {
	defaultRegistry.Register(ofdIndex, batch)
}

// Finalize runs the conflict-detection pass over the process-wide registry.
func Finalize() []Report {
	return defaultRegistry.Finalize()
}

// ProcessedCount reports the process-wide registry's processed-DIE count.
func ProcessedCount() uint64 { return defaultRegistry.ProcessedCount() }

// RegisteredCount reports the process-wide registry's registered-DIE count.
func RegisteredCount() uint64 { return defaultRegistry.RegisteredCount() }

// Reset empties the process-wide registry.
func Reset() {
	defaultRegistry.Reset()
}

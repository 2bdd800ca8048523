// Package strpool interns byte strings into a process-wide pool, handing
// back small handles that compare by pointer identity and carry
// precomputed length and hash. Every qualified symbol path, file-table
// entry, and deferred debug_str value flows through here exactly once.
//
// spec.md describes the handle as a machine word pointing into a
// hand-managed arena, with length and hash stored in the two words
// immediately preceding it — a layout that exists in the original C++
// implementation to avoid a pointer indirection per access. Go's garbage
// collector never relocates heap objects, so a *entry obtained here is
// already stable for the life of the process without any manual arena
// bookkeeping; Handle keeps the same external contract (pointer-identity
// equality, precomputed length/hash, a nil handle for the empty string)
// without reimplementing a custom allocator to get it.
package strpool

import (
	"sync"

	"github.com/adobe-type-tools/orc/hashutil"
)

type entry struct {
	hash   uint64
	length uint32
	data   string
}

// Handle is an interned string. The zero Handle represents the empty
// string. Two handles compare equal with == iff the underlying bytes are
// equal — Handle wraps a single pointer, so Go's struct equality already
// gives us pointer-identity comparison.
type Handle struct {
	e *entry
}

// Empty reports whether h is the nil handle (the empty string).
func (h Handle) Empty() bool {
	return h.e == nil
}

// String returns the interned bytes.
func (h Handle) String() string {
	if h.e == nil {
		return ""
	}
	return h.e.data
}

// Len returns the precomputed byte length.
func (h Handle) Len() uint32 {
	if h.e == nil {
		return 0
	}
	return h.e.length
}

// Hash returns the precomputed hash. Stable for the life of the process.
func (h Handle) Hash() uint64 {
	if h.e == nil {
		return emptyHash
	}
	return h.e.hash
}

var emptyHash = hashutil.Murmur3_64(nil, 0)

// Pool is an intern table. The zero value is not usable; call NewPool.
type Pool struct {
	mu      sync.RWMutex
	buckets map[uint64][]*entry

	bytesInterned uint64
	stringCount   uint64
}

// NewPool creates an empty, concurrency-safe intern pool.
func NewPool() *Pool {
	return &Pool{buckets: make(map[uint64][]*entry)}
}

// Empool interns s, returning its handle. Concurrent calls from any number
// of goroutines are safe; repeated calls with equal bytes return the same
// handle.
func (p *Pool) Empool(s string) Handle {
	if len(s) == 0 {
		return Handle{}
	}

	h := hashutil.Murmur3_64([]byte(s), 0)

	p.mu.RLock()
	for _, e := range p.buckets[h] {
		if e.data == s {
			p.mu.RUnlock()
			return Handle{e}
		}
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// another goroutine may have interned the same string between the
	// read-lock release above and this write-lock acquisition
	for _, e := range p.buckets[h] {
		if e.data == s {
			return Handle{e}
		}
	}

	e := &entry{hash: h, length: uint32(len(s)), data: s}
	p.buckets[h] = append(p.buckets[h], e)
	p.bytesInterned += uint64(len(s))
	p.stringCount++

	return Handle{e}
}

// Stats reports the number of distinct strings interned and their total
// byte length, for diagnostics.
func (p *Pool) Stats() (count, bytes uint64) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stringCount, p.bytesInterned
}

// defaultPool is the process-wide singleton spec.md describes: it persists
// for the entire process lifetime, surviving orc.Reset() calls, because
// handles and the indices derived from them must never be invalidated.
var defaultPool = NewPool()

// Empool interns s in the process-wide pool.
func Empool(s string) Handle {
	return defaultPool.Empool(s)
}

// Stats reports statistics for the process-wide pool.
func Stats() (count, bytes uint64) {
	return defaultPool.Stats()
}

// Default returns the process-wide pool, for components (the Mach-O
// reader) that need a *Pool handle rather than the package-level
// free functions.
func Default() *Pool {
	return defaultPool
}

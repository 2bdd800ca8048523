// This file is part of ORC.
//
// ORC is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ORC is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ORC.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is a process-wide, concurrency-safe ring-buffer log. Entries
// are tagged short strings ("macho", "dwarf", "scheduler", ...) paired with a
// formatted message. Nothing in the core calls out to stdout/stderr directly;
// everything funnels through here so that cmd/orc (or a test) controls where
// the output actually goes and at what verbosity.
package logger

import (
	"fmt"
	"io"
	"sync"
)

// entry is a single log line, not yet rendered to text.
type entry struct {
	tag     string
	message string
}

func (e entry) String() string {
	return fmt.Sprintf("%s: %s\n", e.tag, e.message)
}

// maxEntries bounds the ring buffer. A run over a large archive set can
// recover thousands of per-file parse errors; we keep the most recent ones
// and silently drop the rest rather than let the log grow unbounded.
const maxEntries = 10000

var (
	mu      sync.Mutex
	entries []entry
	head    int // index of the oldest live entry when len(entries) == maxEntries
)

// Log appends a formatted entry under the given tag. Safe for concurrent use
// by any number of worker goroutines.
func Log(tag, format string, args ...interface{}) {
	e := entry{tag: tag, message: fmt.Sprintf(format, args...)}

	mu.Lock()
	defer mu.Unlock()

	if len(entries) < maxEntries {
		entries = append(entries, e)
		return
	}

	entries[head] = e
	head = (head + 1) % maxEntries
}

// Clear empties the log. Exposed for tests.
func Clear() {
	mu.Lock()
	defer mu.Unlock()
	entries = nil
	head = 0
}

// Write renders every retained entry, oldest first, to w.
func Write(w io.Writer) {
	mu.Lock()
	ordered := orderedLocked()
	mu.Unlock()

	for _, e := range ordered {
		io.WriteString(w, e.String())
	}
}

// Tail renders at most the n most recent entries, oldest first. Asking for
// more entries than exist, or for zero, is not an error.
func Tail(w io.Writer, n int) {
	if n <= 0 {
		return
	}

	mu.Lock()
	ordered := orderedLocked()
	mu.Unlock()

	if n < len(ordered) {
		ordered = ordered[len(ordered)-n:]
	}

	for _, e := range ordered {
		io.WriteString(w, e.String())
	}
}

// orderedLocked returns entries oldest-first. Caller must hold mu.
func orderedLocked() []entry {
	if len(entries) < maxEntries {
		out := make([]entry, len(entries))
		copy(out, entries)
		return out
	}

	out := make([]entry, 0, maxEntries)
	out = append(out, entries[head:]...)
	out = append(out, entries[:head]...)
	return out
}

// Package odrv is the registration and conflict-detection engine: every
// parsed DIE lands in a concurrent, hash-bucketed collision map, and once
// every object file has been processed each multi-entry chain is sorted and
// compared attribute-by-attribute to decide whether it names a genuine One
// Definition Rule Violation. Grounded on original_source/src/orc.cpp's
// skip_die/global_die_map/register_dies/orc_process/operator<<(odrv_report).
package odrv

// Config is the subset of the top-level settings the registration and
// report stages consume. SymbolIgnore gates registration (a listed fully
// qualified symbol is never hashed into the map at all); ViolationIgnore,
// ViolationReport and MaxViolationCount gate which already-detected
// conflicts are actually emitted.
type Config struct {
	SymbolIgnore      map[string]bool
	ViolationIgnore   map[string]bool
	ViolationReport   map[string]bool
	MaxViolationCount int

	// FilterRedundant collapses chain entries sharing a FatalAttributeHash
	// down to one representative when rendering a Report. Defaults to false
	// here (Go zero value); orc.DefaultSettings sets it true to match
	// original_source/include/orc/settings.hpp's _filter_redundant{true}.
	FilterRedundant bool
}

// MaxViolationCountReached is the curated error pattern Emit returns once
// the configured quota of emitted reports has been reached. It names a
// recoverable condition: the underlying analysis already ran to
// completion, this only tells the caller to stop printing.
const MaxViolationCountReached = "odrv: max violation count reached"

// allows reports whether category passes the configured filter policy.
// ViolationIgnore is preferred over ViolationReport when both are
// non-empty, exactly as spec.md section 6 describes (and as
// original_source/src/orc.cpp's operator<< implements, ignore-list checked
// first).
func (cfg Config) allows(category string) bool {
	if len(cfg.ViolationIgnore) > 0 {
		return !cfg.ViolationIgnore[category]
	}
	if len(cfg.ViolationReport) > 0 {
		return cfg.ViolationReport[category]
	}
	return true
}

// Package orc ties the file reader, format dispatcher, DWARF parser, task
// scheduler and conflict detector together into the single entry point
// spec.md sections 2 and 6 describe: parse every input path, detect One
// Definition Rule Violations across all of them, and return a summary.
// Grounded on original_source/src/orc.cpp's top-level driver (open inputs,
// dispatch, join, run the single-threaded conflict pass) and
// original_source/include/orc/settings.hpp's settings/globals pair.
package orc

import "github.com/adobe-type-tools/orc/odrv"

// LogLevel controls how much non-ODRV output cmd/orc prints; Run itself
// does not consult it. This is spec.md section 6's log_level option.
type LogLevel int

const (
	LogSilent LogLevel = iota
	LogWarning
	LogInfo
	LogVerbose
)

// OutputFileMode selects how cmd/orc serializes a completed report set.
// The core itself always returns the same []odrv.Report regardless of this
// field — per SPEC_FULL.md, serialization is entirely a cmd/orc concern.
type OutputFileMode int

const (
	OutputText OutputFileMode = iota
	OutputJSON
)

// Settings is the full set of recognized options spec.md section 6's
// configuration-surface table lists. original_source/include/orc/settings.hpp
// carries several additional fields — _forward_to_linker, _standalone_mode,
// _dylib_scan_mode, _print_object_file_list — that exist to support linking
// the analyzed objects onward or running outside the per-input-path model
// this analyzer uses; none has a SPEC_FULL.md component to exercise it; they
// are not ported.
type Settings struct {
	GracefulExit       bool
	MaxViolationCount  int
	LogLevel           LogLevel
	ParallelProcessing bool
	SymbolIgnore       []string
	ViolationReport    []string
	ViolationIgnore    []string
	FilterRedundant    bool
	OutputFileMode     OutputFileMode
}

// DefaultSettings mirrors original_source/include/orc/settings.hpp's field
// initializers: parallel processing and fatal-attribute-hash collapsing are
// on by default, every list/count is empty/unbounded.
func DefaultSettings() Settings {
	return Settings{
		ParallelProcessing: true,
		FilterRedundant:    true,
	}
}

// ODRVConfig projects the registration/reporting subset of s into the form
// the odrv package consumes. cmd/orc uses this directly to render a
// Summary's reports (odrv.Config.Emit) with the same filter policy Run
// applied during detection.
func (s Settings) ODRVConfig() odrv.Config {
	return odrv.Config{
		SymbolIgnore:      toSet(s.SymbolIgnore),
		ViolationIgnore:   toSet(s.ViolationIgnore),
		ViolationReport:   toSet(s.ViolationReport),
		MaxViolationCount: s.MaxViolationCount,
		FilterRedundant:   s.FilterRedundant,
	}
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

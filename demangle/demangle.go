// Package demangle turns a mangled Itanium C++ linker name into a readable
// symbol, the external collaborator spec.md's design notes describe:
// "treat the demangler as an external collaborator producing a readable
// string from a mangled linker name; its absence or failure must not
// affect classification, only presentation." odrv.Report deliberately
// leaves Symbol mangled; cmd/orc calls here only when rendering output.
//
// Demangle wraps github.com/ianlancetaylor/demangle, the library both
// other_examples/f50a6955_google-osv-scalibr__enricher-reachability-rust-client.go.go
// (via demangle.ToString) and
// other_examples/9ca428ac_rhysh-go-perf__perfsession-symbolize.go.go (via
// demangle.Filter) in the retrieval pack reach for to turn a linker symbol
// into source form — it covers templates, operator overloads, and
// compressed substitutions a hand-rolled <nested-name> parser would have to
// give up on.
package demangle

import "github.com/ianlancetaylor/demangle"

// Demangle attempts to recover a readable name from mangled. ok reports
// whether the attempt succeeded; on failure mangled is returned unchanged so
// callers can fall back to it without a nil check.
func Demangle(mangled string) (name string, ok bool) {
	out, err := demangle.ToString(mangled, demangle.NoParams, demangle.NoTemplateParams)
	if err != nil {
		return mangled, false
	}
	return out, true
}

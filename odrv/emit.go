package odrv

import (
	"strings"

	"github.com/adobe-type-tools/orc/curated"
)

// Emit renders the subset of reports the configured filter policy allows,
// in the order given, and stops once MaxViolationCount reports have been
// emitted. Grounded on original_source/src/orc.cpp's
// operator<<(ostream&, odrv_report&): the ignore/report category filter and
// the violation-count quota are both evaluated per report at emission time,
// not at detection time — Finalize already ran to completion by the time
// Emit is called, so a quota hit only stops further printing.
//
// The returned error is a recoverable curated.Errorf(MaxViolationCountReached)
// once the quota is reached; callers should still use the text already
// accumulated.
func (cfg Config) Emit(reports []Report) (string, error) {
	var b strings.Builder
	count := 0

	for _, r := range reports {
		if !cfg.allows(r.Category()) {
			continue
		}

		b.WriteString(r.render(cfg.FilterRedundant))
		b.WriteString("\n")
		count++

		if cfg.MaxViolationCount > 0 && count >= cfg.MaxViolationCount {
			return b.String(), curated.Errorf(MaxViolationCountReached)
		}
	}

	return b.String(), nil
}

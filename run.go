package orc

import (
	"fmt"
	"os"
	"sync"

	"github.com/adobe-type-tools/orc/container"
	"github.com/adobe-type-tools/orc/curated"
	"github.com/adobe-type-tools/orc/logger"
	"github.com/adobe-type-tools/orc/odrv"
	"github.com/adobe-type-tools/orc/ofile"
	"github.com/adobe-type-tools/orc/reader"
	"github.com/adobe-type-tools/orc/scheduler"
)

// InputMissing is the curated error pattern recorded in
// Summary.RecoveredErrors when an input path can't be stat'd before parsing
// begins — per spec.md section 7, fatal to that task only ("other tasks
// continue"), not to the whole run.
const InputMissing = "orc: input missing: %s"

// Summary is everything Run produces: the confirmed ODRV reports plus
// bookkeeping a caller uses to pick an exit code and print recovered-error
// diagnostics. RecoveredErrors holds one entry per task that failed with a
// fatal-to-that-task error (spec.md section 7's "recovered errors are
// counted and summarized at exit"), a missing input included — Run itself
// only returns a non-nil error for something that aborts the whole run.
type Summary struct {
	Reports            []odrv.Report
	RecoveredErrors    []error
	ObjectFileCount    int
	DieProcessedCount  uint64
	DieRegisteredCount uint64
}

// Run parses every input path — each may be a bare Mach-O object, a fat
// Mach-O, or a BSD archive nested to spec.md section 6's depth-5 limit —
// registers every DIE it finds, and returns the confirmed ODRV reports once
// every worker has quiesced. Each input's readers stay mapped until every
// submitted task has joined, since a submitted DWARF parse closes over the
// mapped bytes of the reader that produced it.
//
// Per spec.md section 7's failure-isolation table, a missing input, an
// unreadable file, or a container-level parse failure (unknown magic, a
// truncated archive/fat/Mach-O header) is fatal only to that one path: it
// is recorded in Summary.RecoveredErrors and the remaining paths are still
// processed. Run's own non-nil return is reserved for something that
// aborts the whole run rather than one input.
func Run(paths []string, settings Settings) (Summary, error) {
	odrv.Configure(settings.ODRVConfig())

	var pool *scheduler.Pool
	var submit func(func())
	if settings.ParallelProcessing {
		pool = scheduler.Default()
		submit = pool.Submit
	}

	var mu sync.Mutex
	var recovered []error
	onError := func(err error) {
		mu.Lock()
		recovered = append(recovered, err)
		mu.Unlock()
		logger.Log("orc", "%v", err)
	}

	var readers []*reader.Reader
	defer func() {
		for _, r := range readers {
			_ = r.Close()
		}
	}()

	handler := container.Handler{
		Submit:   submit,
		Register: odrv.Register,
		OnError:  onError,
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			onError(curated.Errorf(InputMissing, path))
			continue
		}

		r, err := reader.New(path)
		if err != nil {
			onError(fmt.Errorf("orc: %s: %w", path, err))
			continue
		}
		readers = append(readers, r)

		data, err := r.Slice(0, r.Size())
		if err != nil {
			onError(fmt.Errorf("orc: %s: %w", path, err))
			continue
		}

		if err := container.Dispatch(path, ofile.Ancestry{}, data, handler); err != nil {
			onError(fmt.Errorf("orc: %s: %w", path, err))
			continue
		}
	}

	if pool != nil {
		pool.Join()
		pool.Shutdown()
	}

	return Summary{
		Reports:            odrv.Finalize(),
		RecoveredErrors:    recovered,
		ObjectFileCount:    ofile.Len(),
		DieProcessedCount:  odrv.ProcessedCount(),
		DieRegisteredCount: odrv.RegisteredCount(),
	}, nil
}

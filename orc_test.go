package orc_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/adobe-type-tools/orc"
	"github.com/adobe-type-tools/orc/test"
)

// machO64 builds a minimal, valid (but DWARF-less) 64-bit Mach-O object: a
// mach_header_64 with zero load commands. Process's findDwarfSections sees
// no __DWARF segment and ProcessAllDies never runs, which is enough to
// exercise Run's dispatch/registration/join plumbing without needing a real
// DWARF fixture.
func machO64(cputype uint32) []byte {
	h := make([]byte, 32)
	binary.BigEndian.PutUint32(h[0:4], 0xfeedfacf) // MH_MAGIC_64
	binary.BigEndian.PutUint32(h[4:8], cputype)
	binary.BigEndian.PutUint32(h[16:20], 0) // ncmds
	return h
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestRunRegistersEachInputObjectFile(t *testing.T) {
	defer orc.Reset()

	path := writeTemp(t, "thing.o", machO64(0x0100000c))

	before := 0
	settings := orc.DefaultSettings()
	settings.ParallelProcessing = false

	summary, err := orc.Run([]string{path}, settings)
	test.ExpectedSuccess(t, err)
	test.Equate(t, summary.ObjectFileCount-before >= 1, true)
	test.Equate(t, len(summary.Reports), 0)
	test.Equate(t, len(summary.RecoveredErrors), 0)
}

func TestRunRecordsInputMissingAsRecoveredError(t *testing.T) {
	defer orc.Reset()

	summary, err := orc.Run([]string{filepath.Join(t.TempDir(), "does-not-exist.o")}, orc.DefaultSettings())
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(summary.RecoveredErrors), 1)
}

// TestRunIsolatesPerPathFailures exercises spec.md section 7's failure
// isolation: a missing input alongside a valid one must not stop the valid
// one from being processed, and Run itself must not fail the whole batch.
func TestRunIsolatesPerPathFailures(t *testing.T) {
	defer orc.Reset()

	good := writeTemp(t, "thing.o", machO64(0x0100000c))
	missing := filepath.Join(t.TempDir(), "does-not-exist.o")

	settings := orc.DefaultSettings()
	settings.ParallelProcessing = false

	summary, err := orc.Run([]string{missing, good}, settings)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(summary.RecoveredErrors), 1)
	test.Equate(t, summary.ObjectFileCount >= 1, true)
}

// TestRunIsolatesUnknownContainerMagic exercises the same isolation for a
// container-level parse failure (rather than a missing-file failure): a
// garbage input alongside a valid one must still let the valid one through.
func TestRunIsolatesUnknownContainerMagic(t *testing.T) {
	defer orc.Reset()

	garbage := writeTemp(t, "garbage.o", []byte{0, 0, 0, 0})
	good := writeTemp(t, "thing.o", machO64(0x0100000c))

	settings := orc.DefaultSettings()
	settings.ParallelProcessing = false

	summary, err := orc.Run([]string{garbage, good}, settings)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(summary.RecoveredErrors), 1)
	test.Equate(t, summary.ObjectFileCount >= 1, true)
}

func TestResetClearsDetectionStateBetweenDrives(t *testing.T) {
	defer orc.Reset()

	path := writeTemp(t, "thing.o", machO64(0x0100000c))

	settings := orc.DefaultSettings()
	settings.ParallelProcessing = false

	_, err := orc.Run([]string{path}, settings)
	test.ExpectedSuccess(t, err)

	orc.Reset()

	summary, err := orc.Run([]string{path}, settings)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(summary.Reports), 0)
}

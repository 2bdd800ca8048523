package container

import (
	"fmt"

	"github.com/adobe-type-tools/orc/die"
	"github.com/adobe-type-tools/orc/macho"
	"github.com/adobe-type-tools/orc/ofile"
)

// RegisterDies is handed every DIE batch a Mach-O slice's DWARF parser
// produces, tagged with the object-file index the slice was registered
// under. The caller (ultimately the odrv package, via the root orc package)
// decides what to do with it.
type RegisterDies func(ofdIndex int, batch []*die.Die)

// Handler bundles the ways container/macho hand work back out: Submit
// schedules a Mach-O slice's DWARF parse as an independent unit of work
// (nil means run it inline, honoring a configured parallel_processing =
// false), Register receives its completed DIE batches, and OnError receives
// any fatal-to-that-task error a submitted parse encounters (nil discards
// it) — the root orc package wires this to its recovered-error summary.
type Handler struct {
	Submit   func(task func())
	Register RegisterDies
	OnError  func(error)
}

// Dispatch classifies data — the byte range of one object, archive, or fat
// container — and recurses until every contained Mach-O slice has been
// handed to the macho reader. objectName is appended to ancestry as this
// object's own path component, mirroring parse_file's
// "new_ancestry.emplace_back(empool(object_name))" before dispatch.
func Dispatch(objectName string, ancestry ofile.Ancestry, data []byte, h Handler) error {
	newAncestry := ancestry.Push(objectName)

	details, err := Detect(data, 0)
	if err != nil {
		return fmt.Errorf("container: %s: %w", objectName, err)
	}

	switch details.Format {
	case ofile.FormatMachO:
		return macho.Process(newAncestry, data, details, h.Submit, macho.RegisterDies(h.Register), h.OnError)
	case ofile.FormatArchive:
		return readArchive(newAncestry, data, h)
	case ofile.FormatFat:
		return readFat(newAncestry, data, details, h)
	default:
		return fmt.Errorf("container: %s: unknown format", objectName)
	}
}

package orc

import "github.com/adobe-type-tools/orc/odrv"

// Reset empties the process-wide DIE registration map so Run can be driven
// again in the same process — spec.md section 9's "Global state" describes
// exactly this (the test harness is the stated reason), and is explicit
// that the string pool and object-file registry are NOT touched by a
// reset: their handles and indices must stay valid for any DIE batch
// retained from a prior drive. Grounded on original_source/src/orc.cpp's
// orc_reset(), which empties global_die_map() and the DIE batch list only.
func Reset() {
	odrv.Reset()
}

// Package texconv is the public surface of the DDS<->GTF codec: it
// drives one direction end to end (parse header, classify/synthesize
// the other side's descriptor, plan the sub-image layout, move bytes)
// and exposes the packed-GTF builder. It plays the role spec.md's §2
// Codec and PackedGtfBuilder components name.
package texconv

import (
	"log"

	"github.com/mogaika/ddsgtf/internal/config"
)

// Options re-exports the two DDS->GTF conversion knobs spec.md §6
// names at the interface boundary. They are ignored on GTF->DDS.
type Options = config.Options

var verbose bool

// SetVerbose toggles the package's diagnostic trace logging. It is off
// by default: a codec library should not write log lines on every call
// the way a one-off importer tool can. When on, lines go through the
// standard log package (stderr unless redirected).
func SetVerbose(v bool) {
	verbose = v
}

func logf(format string, args ...interface{}) {
	if verbose {
		log.Printf(format, args...)
	}
}

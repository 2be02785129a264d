// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// Formats maps an output format name to its writer. Entries are added in
// init() blocks of the format files.
var Formats = map[string]func(w io.Writer, r Report) error{}

// Register adds or replaces the writer for format (last wins).
func Register(format string, fn func(io.Writer, Report) error) { Formats[format] = fn }

// Names lists the registered formats, sorted.
func Names() []string {
	out := make([]string, 0, len(Formats))
	for k := range Formats {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Write dispatches r to the writer registered for format.
func Write(format string, w io.Writer, r Report) error {
	fn, ok := Formats[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, r)
}

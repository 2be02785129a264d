package cli

import (
	"fmt"
	"io"
	"strings"

	"gibbs/internal/engine"
	"gibbs/internal/version"
	"gibbs/internal/writers"
)

// PrintUsage writes the help text.
func PrintUsage(out io.Writer, name string) {
	fmt.Fprintf(out, "%s – Gibbs motif sampler\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintf(out, "Usage: %s [flags] <sequences.fasta> <motif-length>\n", name)
	fmt.Fprintf(out, "Example: %s data/E.coliRpoN-sequences-16-100nt.fasta 20\n", name)

	fmt.Fprintln(out, "\nSampler:")
	fmt.Fprintf(out, "      --restarts int          Independent chains [%d]\n", engine.DefaultRestarts)
	fmt.Fprintf(out, "      --max-iter int          Iteration ceiling per chain [%d]\n", engine.DefaultMaxIter)
	fmt.Fprintf(out, "      --prob-shift float      Chance of a shift round per iteration [%.2f]\n", engine.DefaultProbShift)
	fmt.Fprintf(out, "      --pseudocount float     Pseudocount per PWM/background cell [%g]\n", engine.DefaultPseudocount)
	fmt.Fprintln(out, "      --seed uint             Master random seed, 0 = entropy [0]")

	fmt.Fprintln(out, "\nPerformance:")
	fmt.Fprintln(out, "  -t, --threads int           Chains run at once (0=one per restart) [0]")

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output string         Output: %s [text]\n", strings.Join(writers.Names(), " | "))
	fmt.Fprintln(out, "      --verbose               Debug logging on stderr")
	fmt.Fprintln(out, "  -q, --quiet                 Errors only on stderr")

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
}

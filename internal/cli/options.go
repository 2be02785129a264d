// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gibbs/internal/engine"
	"gibbs/internal/writers"
)

var (
	// ErrUsage marks argument mistakes; the caller prints usage and exits 1.
	ErrUsage = errors.New("usage")
	// ErrHelp is returned after -h/--help was requested.
	ErrHelp = errors.New("help requested")
)

// Options holds the positional arguments and flags.
type Options struct {
	SeqFile  string
	MotifLen int

	// Sampler
	Restarts    int
	MaxIter     int
	ProbShift   float64
	Pseudocount float64
	Seed        uint64
	Threads     int

	// Output
	Output  string
	Verbose bool
	Quiet   bool
	Version bool
}

// Config returns the sampler configuration selected by the flags.
func (o Options) Config() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Restarts = o.Restarts
	cfg.MaxIter = o.MaxIter
	cfg.ProbShift = o.ProbShift
	cfg.Pseudocount = o.Pseudocount
	cfg.Seed = o.Seed
	cfg.Workers = o.Threads
	return cfg
}

// NewCommand builds the root command. Parsed values land in opt; RunE only
// records the positionals, the caller does the work.
func NewCommand(name string, opt *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name + " [flags] <sequences.fasta> <motif-length>",
		Short:         "Gibbs-style motif sampler",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(_ *cobra.Command, args []string) error {
			if opt.Version {
				return nil
			}
			if len(args) != 2 {
				return fmt.Errorf("%w: %s requires 2 arguments, but %d were given", ErrUsage, name, len(args))
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if opt.Version {
				return nil
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: motif length %q is not an integer", ErrUsage, args[1])
			}
			opt.SeqFile, opt.MotifLen = args[0], n
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	fs := cmd.Flags()
	fs.IntVar(&opt.Restarts, "restarts", engine.DefaultRestarts, "independent chains")
	fs.IntVar(&opt.MaxIter, "max-iter", engine.DefaultMaxIter, "iteration ceiling per chain")
	fs.Float64Var(&opt.ProbShift, "prob-shift", engine.DefaultProbShift, "chance of a shift round per iteration")
	fs.Float64Var(&opt.Pseudocount, "pseudocount", engine.DefaultPseudocount, "pseudocount per PWM/background cell")
	fs.Uint64Var(&opt.Seed, "seed", 0, "master random seed (0 = entropy)")
	fs.IntVarP(&opt.Threads, "threads", "t", 0, "chains run at once (0 = one per restart)")
	fs.StringVarP(&opt.Output, "output", "o", "text", "output: "+strings.Join(writers.Names(), " | "))
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug logging on stderr")
	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "errors only on stderr")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit")
	return cmd
}

// ParseArgs parses argv into Options. It returns ErrHelp when help was
// requested and an error wrapping ErrUsage on argument mistakes.
func ParseArgs(name string, argv []string) (Options, error) {
	var opt Options
	helped := false
	cmd := NewCommand(name, &opt)
	// cobra falls back to os.Args on nil.
	cmd.SetArgs(append([]string{}, positionalsLast(cmd.Flags(), argv)...))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetHelpFunc(func(*cobra.Command, []string) { helped = true })

	if err := cmd.Execute(); err != nil {
		return opt, err
	}
	if helped {
		return opt, ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	return opt, Validate(opt)
}

// Validate applies flag invariants that cobra cannot express.
func Validate(o Options) error {
	if _, ok := writers.Formats[o.Output]; !ok {
		return fmt.Errorf("%w: invalid --output %q (want %s)", ErrUsage, o.Output, strings.Join(writers.Names(), " | "))
	}
	if err := o.Config().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

var negInt = regexp.MustCompile(`^-[0-9]+$`)

// positionalsLast moves every positional behind "--" when one of them is a
// negative integer, which pflag would otherwise parse as a shorthand flag.
// Values of flags that take one stay next to their flag.
func positionalsLast(fs *pflag.FlagSet, argv []string) []string {
	var flags, pos []string
	neg := false
scan:
	for i := 0; i < len(argv); i++ {
		a := argv[i]
		switch {
		case a == "--":
			pos = append(pos, argv[i+1:]...)
			break scan
		case negInt.MatchString(a):
			pos = append(pos, a)
			neg = true
		case len(a) > 1 && a[0] == '-':
			flags = append(flags, a)
			if takesValue(fs, a) && i+1 < len(argv) {
				i++
				flags = append(flags, argv[i])
			}
		default:
			pos = append(pos, a)
		}
	}
	if !neg {
		return argv
	}
	out := append(flags, "--")
	return append(out, pos...)
}

// takesValue reports whether flag token a consumes the next argument.
func takesValue(fs *pflag.FlagSet, a string) bool {
	if strings.Contains(a, "=") {
		return false
	}
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(a, "--"); ok {
		f = fs.Lookup(name)
	} else {
		f = fs.ShorthandLookup(a[len(a)-1:])
	}
	return f != nil && f.NoOptDefVal == ""
}

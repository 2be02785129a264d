// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gibbs/internal/appcore"
	"gibbs/internal/cli"
	"gibbs/internal/cmdutil"
	"gibbs/internal/version"
	"gibbs/internal/writers"
)

// Name is the program name used in usage text.
const Name = "gibbs"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	opts, err := cli.ParseArgs(Name, argv)
	switch {
	case errors.Is(err, cli.ErrHelp):
		cli.PrintUsage(outw, Name)
		return flush(outw, stderr, appcore.ExitOK)
	case errors.Is(err, cli.ErrUsage):
		_, _ = fmt.Fprintf(outw, "[ERROR] %v\n", unwrapUsage(err))
		cli.PrintUsage(outw, Name)
		return flush(outw, stderr, appcore.ExitUsage)
	case err != nil:
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", Name, version.Version)
		return flush(outw, stderr, appcore.ExitOK)
	}

	log := cmdutil.NewLogger(stderr, opts.Verbose, opts.Quiet)
	defer func() { _ = log.Sync() }()

	return appcore.Run(parent, stdout, log, appcore.Options{
		SeqFile:  opts.SeqFile,
		MotifLen: opts.MotifLen,
		Config:   opts.Config(),
		Output:   opts.Output,
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitOutput
	}
	return code
}

// unwrapUsage strips the "usage: " prefix added by the ErrUsage wrapping.
func unwrapUsage(err error) string {
	msg, _ := strings.CutPrefix(err.Error(), cli.ErrUsage.Error()+": ")
	return msg
}

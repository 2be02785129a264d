// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gibbs/internal/engine"
	"gibbs/internal/fasta"
	"gibbs/internal/pipeline"
	"gibbs/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 1
	ExitInput    = 2
	ExitOutput   = 3
	ExitCanceled = 130
)

type Options struct {
	SeqFile  string
	MotifLen int
	Config   engine.Config
	Output   string
}

// Run loads the sequences, runs the sampler and writes the report. It
// returns the process exit code; diagnostics go to log.
func Run(parent context.Context, stdout io.Writer, log *zap.Logger, o Options) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	runID := uuid.NewString()
	log = log.With(zap.String("run_id", runID))

	recs, err := fasta.ReadAll(ctx, o.SeqFile)
	if err != nil {
		return fail(log, err, ExitInput)
	}
	seqs := make([]engine.Sequence, 0, len(recs))
	names := make([]string, 0, len(recs))
	raw := make([][]byte, 0, len(recs))
	for _, r := range recs {
		if len(r.Seq) == 0 {
			log.Warn("skipping record without sequence", zap.String("name", r.Name))
			continue
		}
		seqs = append(seqs, engine.Sequence{Name: r.Name, Residues: r.Seq})
		names = append(names, r.Name)
		raw = append(raw, r.Seq)
	}
	if len(seqs) == 0 {
		return fail(log, fmt.Errorf("%s: %w", o.SeqFile, fasta.ErrEmpty), ExitInput)
	}
	corpus := engine.NewCorpus(seqs)
	log.Debug("loaded sequences",
		zap.String("file", o.SeqFile),
		zap.Int("count", corpus.Len()),
		zap.Int("min_len", corpus.MinLen()))

	res, err := pipeline.Run(ctx, corpus, o.MotifLen, o.Config, log)
	if err != nil {
		return fail(log, err, ExitInput)
	}

	rep := writers.Report{
		RunID:        runID,
		InputFile:    o.SeqFile,
		RequestedLen: o.MotifLen,
		// Motif-length mutation is not implemented, so the length never changes.
		MotifLen:  o.MotifLen,
		Names:     names,
		Seqs:      raw,
		Seed:      res.Seed,
		BestIndex: res.BestIndex,
		Chains:    res.Chains,
		Config:    o.Config,
	}

	outw := bufio.NewWriter(stdout)
	if err := writers.Write(o.Output, outw, rep); writers.IgnoreBrokenPipe(err) != nil {
		return fail(log, err, ExitOutput)
	}
	if err := outw.Flush(); writers.IgnoreBrokenPipe(err) != nil {
		return fail(log, err, ExitOutput)
	}
	return ExitOK
}

// fail logs err and returns code, or ExitCanceled when err is a
// cancellation.
func fail(log *zap.Logger, err error, code int) int {
	if errors.Is(err, context.Canceled) {
		log.Warn("interrupted", zap.Error(err))
		return ExitCanceled
	}
	log.Error("run failed", zap.Error(err))
	return code
}

package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gibbs/internal/engine"
)

// Result is the outcome of one run: every chain in chain order plus the
// winner.
type Result struct {
	Seed      uint64 // master seed the chain seeds were derived from
	Chains    []engine.ChainResult
	BestIndex int
}

// Best returns the winning chain.
func (r Result) Best() engine.ChainResult { return r.Chains[r.BestIndex] }

// Run forks cfg.Restarts chains, waits for all of them and picks the best.
// Each chain owns its state and generator and writes only its own slot in
// the result slice. A chain that has not started when ctx is done is
// skipped and Run returns ctx.Err(); started chains always run to the end.
func Run(ctx context.Context, corpus *engine.Corpus, width int, cfg engine.Config, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	// Checked once so every chain fails the same way.
	if err := corpus.CheckMotifLen(width); err != nil {
		return Result{}, err
	}

	master := cfg.Seed
	if master == 0 {
		s, err := EntropySeed()
		if err != nil {
			return Result{}, err
		}
		master = s
	}
	seeds := ChainSeeds(master, cfg.Restarts)
	results := make([]engine.ChainResult, len(seeds))

	log.Debug("starting chains",
		zap.Int("restarts", cfg.Restarts),
		zap.Int("workers", cfg.Workers),
		zap.Uint64("seed", master),
		zap.Int("sequences", corpus.Len()),
		zap.Int("motif_len", width))

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i := range seeds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ch, err := engine.NewChain(corpus, width, cfg, seeds[i])
			if err != nil {
				return fmt.Errorf("chain %d: %w", i, err)
			}
			clog := log.With(zap.Int("chain", i))
			if clog.Core().Enabled(zap.DebugLevel) {
				ch.OnStep = func(ev engine.StepEvent) {
					clog.Debug("step",
						zap.Int("iter", ev.Iteration),
						zap.Stringer("phase", ev.Phase),
						zap.Int("changes", ev.Changes),
						zap.Float64("score", ev.Score),
						zap.Float64("best", ev.Best))
				}
			}
			start := time.Now()
			results[i] = ch.Run()
			clog.Debug("chain done",
				zap.Stringer("state", results[i].State),
				zap.Int("iterations", results[i].Iterations),
				zap.Int("shift_rounds", results[i].ShiftRounds),
				zap.Float64("score", results[i].Score),
				zap.Duration("elapsed", time.Since(start)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Seed: master, Chains: results, BestIndex: BestIndex(results)}
	log.Info("run complete",
		zap.Int("best_chain", res.BestIndex),
		zap.Float64("score", res.Best().Score))
	return res, nil
}

// BestIndex returns the index of the highest-scoring chain; ties go to the
// lowest index.
func BestIndex(results []engine.ChainResult) int {
	best := 0
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[best].Score {
			best = i
		}
	}
	return best
}

package writers

import (
	"gibbs/internal/engine"
	"gibbs/pkg/api"
)

// Report is everything a writer needs about a finished run.
type Report struct {
	RunID        string
	InputFile    string
	RequestedLen int
	MotifLen     int
	Names        []string
	Seqs         [][]byte
	Seed         uint64
	BestIndex    int
	Chains       []engine.ChainResult
	Config       engine.Config
}

// Best returns the winning chain.
func (r Report) Best() engine.ChainResult { return r.Chains[r.BestIndex] }

// Motifs lists the winning window of every sequence, 1-based inclusive.
func (r Report) Motifs() []api.MotifV1 {
	best := r.Best()
	out := make([]api.MotifV1, len(r.Names))
	for i, p := range best.Positions {
		out[i] = api.MotifV1{
			SequenceID: r.Names[i],
			Start:      p + 1,
			End:        p + r.MotifLen,
			Seq:        string(r.Seqs[i][p : p+r.MotifLen]),
		}
	}
	return out
}

// ToAPI converts r into the v1 wire type.
func ToAPI(r Report) api.ResultV1 {
	chains := make([]api.ChainV1, len(r.Chains))
	for i, c := range r.Chains {
		chains[i] = api.ChainV1{
			Index:       i,
			Score:       c.Score,
			Iterations:  c.Iterations,
			ShiftRounds: c.ShiftRounds,
			State:       c.State.String(),
		}
	}
	return api.ResultV1{
		RunID:                r.RunID,
		InputFile:            r.InputFile,
		RequestedMotifLength: r.RequestedLen,
		FinalMotifLength:     r.MotifLen,
		Score:                r.Best().Score,
		Seed:                 r.Seed,
		BestChain:            r.BestIndex,
		Motifs:               r.Motifs(),
		Chains:               chains,
		Params: &api.ParamsV1{
			Restarts:      r.Config.Restarts,
			MaxIter:       r.Config.MaxIter,
			ProbShift:     r.Config.ProbShift,
			ProbChangeLen: r.Config.ProbChangeLen,
			Pseudocount:   r.Config.Pseudocount,
		},
	}
}

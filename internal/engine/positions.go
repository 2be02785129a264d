package engine

import "math/rand/v2"

// Positions holds one motif start per sequence, in corpus order.
type Positions []int

// Clone returns an independent copy.
func (p Positions) Clone() Positions {
	return append(Positions(nil), p...)
}

// Seed is the 128-bit state for one chain's PCG source.
type Seed struct {
	Hi uint64 `json:"hi"`
	Lo uint64 `json:"lo"`
}

// Rand returns a fresh generator for s. Every call builds a new source, so
// two chains never share one.
func (s Seed) Rand() *rand.Rand {
	return rand.New(rand.NewPCG(s.Hi, s.Lo))
}

// InitPositions draws a uniform start in [0, len_i-width] for every
// sequence.
func InitPositions(c *Corpus, width int, rng *rand.Rand) (Positions, error) {
	if err := c.CheckMotifLen(width); err != nil {
		return nil, err
	}
	pos := make(Positions, c.Len())
	for i := range pos {
		pos[i] = rng.IntN(c.SeqLen(i) - width + 1)
	}
	return pos, nil
}

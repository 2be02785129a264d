package engine

import "math/rand/v2"

// State is the terminal condition of a chain's main loop.
type State int

const (
	Running State = iota
	Converged
	MaxIterExceeded
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Converged:
		return "converged"
	case MaxIterExceeded:
		return "max-iter"
	}
	return "unknown"
}

// Phase names the step that produced a StepEvent.
type Phase int

const (
	PhaseUpdate Phase = iota
	PhaseShiftLeft
	PhaseShiftRight
	PhasePolish
)

func (p Phase) String() string {
	switch p {
	case PhaseUpdate:
		return "update"
	case PhaseShiftLeft:
		return "shift-left"
	case PhaseShiftRight:
		return "shift-right"
	case PhasePolish:
		return "polish"
	}
	return "unknown"
}

// StepEvent is reported after every snapshot check.
type StepEvent struct {
	Iteration int
	Phase     Phase
	Changes   int     // changes counted so far in this iteration
	Score     float64 // live total score
	Best      float64 // snapshot score after the check
}

// Snapshot is the best configuration a chain has seen. It starts empty; the
// first offer is always taken, later ones only when strictly higher.
type Snapshot struct {
	Score     float64
	Positions Positions
	Valid     bool
}

// Offer copies (score, pos) into the snapshot if it improves on it.
func (s *Snapshot) Offer(score float64, pos Positions) bool {
	if s.Valid && !(score > s.Score) {
		return false
	}
	s.Score = score
	s.Positions = append(s.Positions[:0], pos...)
	s.Valid = true
	return true
}

// ChainResult is what one chain reports at the join.
type ChainResult struct {
	Seed        Seed
	Score       float64
	Positions   Positions
	Iterations  int
	ShiftRounds int
	State       State
}

// Chain is one independent search. It is not safe for concurrent use; run
// each chain on its own goroutine.
type Chain struct {
	cfg    Config
	corpus *Corpus
	width  int
	seed   Seed
	rng    *rand.Rand
	model  *Model

	pos    Positions
	scores []float64
	dirty  bool // scores lag behind pos

	best        Snapshot
	iter        int
	shiftRounds int

	// OnStep, when set, observes every snapshot check.
	OnStep func(StepEvent)
}

// NewChain seeds a private generator and draws the initial positions.
func NewChain(c *Corpus, width int, cfg Config, seed Seed) (*Chain, error) {
	rng := seed.Rand()
	pos, err := InitPositions(c, width, rng)
	if err != nil {
		return nil, err
	}
	return &Chain{
		cfg:    cfg,
		corpus: c,
		width:  width,
		seed:   seed,
		rng:    rng,
		model:  NewModel(c, width, cfg.Pseudocount),
		pos:    pos,
		scores: make([]float64, c.Len()),
		dirty:  true,
	}, nil
}

// Positions returns a copy of the live positions.
func (ch *Chain) Positions() Positions { return ch.pos.Clone() }

// Best returns a copy of the snapshot.
func (ch *Chain) Best() Snapshot {
	b := ch.best
	b.Positions = b.Positions.Clone()
	return b
}

// Score returns the live total score: the sum over sequences of each
// window's leave-one-out score at the current positions.
func (ch *Chain) Score() float64 {
	ch.refresh()
	var total float64
	for _, s := range ch.scores {
		total += s
	}
	return total
}

// Run drives the chain to convergence or the iteration ceiling, polishes,
// and returns the best configuration seen.
func (ch *Chain) Run() ChainResult {
	state := Running
	changes := 1
	for state == Running {
		switch {
		case changes == 0:
			state = Converged
			continue
		case ch.iter >= ch.cfg.MaxIter:
			state = MaxIterExceeded
			continue
		}
		ch.iter++

		changes = ch.UpdatePositions()
		ch.recordBest(PhaseUpdate, changes)

		if ch.rng.Float64() <= ch.cfg.ProbShift {
			// A shift round always forces another iteration.
			changes++
			ch.shiftRounds++
			ch.ShiftLeft(ch.cfg.ShiftLeft)
			ch.recordBest(PhaseShiftLeft, changes)
			ch.ShiftRight(ch.cfg.ShiftRight)
			ch.recordBest(PhaseShiftRight, changes)
		}
	}

	ch.FinalScan()
	ch.recordBest(PhasePolish, 0)

	return ChainResult{
		Seed:        ch.seed,
		Score:       ch.best.Score,
		Positions:   ch.best.Positions.Clone(),
		Iterations:  ch.iter,
		ShiftRounds: ch.shiftRounds,
		State:       state,
	}
}

// UpdatePositions runs one leave-one-out pass in input order and moves each
// sequence to its argmax window. Later sequences see the already-moved
// earlier ones. It returns how many positions changed value.
func (ch *Chain) UpdatePositions() int {
	changes := 0
	for k := range ch.pos {
		ch.model.Build(ch.pos, k)
		p, s := ch.model.Best()
		if p != ch.pos[k] {
			ch.pos[k] = p
			changes++
		}
		ch.scores[k] = s
	}
	// With no moves every model above saw the final positions.
	ch.dirty = changes > 0
	return changes
}

// ShiftLeft slides every window left by offset, clamped at 0.
func (ch *Chain) ShiftLeft(offset int) { ch.shift(-offset) }

// ShiftRight slides every window right by offset, clamped at the last
// valid start.
func (ch *Chain) ShiftRight(offset int) { ch.shift(offset) }

func (ch *Chain) shift(offset int) {
	for i, p := range ch.pos {
		p += offset
		if last := ch.corpus.SeqLen(i) - ch.width; p > last {
			p = last
		}
		if p < 0 {
			p = 0
		}
		ch.pos[i] = p
	}
	ch.dirty = true
	ch.refresh()
}

// FinalScan is the polishing phase: one argmax pass per sequence, change
// counts discarded.
func (ch *Chain) FinalScan() {
	for range ch.pos {
		ch.UpdatePositions()
	}
}

// refresh rescores every sequence at its current window.
func (ch *Chain) refresh() {
	if !ch.dirty {
		return
	}
	for k, p := range ch.pos {
		ch.model.Build(ch.pos, k)
		ch.scores[k] = ch.model.WindowScore(p)
	}
	ch.dirty = false
}

// recordBest offers the live configuration to the snapshot.
func (ch *Chain) recordBest(phase Phase, changes int) {
	score := ch.Score()
	ch.best.Offer(score, ch.pos)
	if ch.OnStep != nil {
		ch.OnStep(StepEvent{
			Iteration: ch.iter,
			Phase:     phase,
			Changes:   changes,
			Score:     score,
			Best:      ch.best.Score,
		})
	}
}

package engine

import (
	"errors"
	"fmt"
)

// Defaults for Config.
const (
	DefaultRestarts      = 20
	DefaultMaxIter       = 1000
	DefaultProbShift     = 0.20
	DefaultProbChangeLen = 0.01
	DefaultShiftLeft     = 1
	DefaultShiftRight    = 2
	DefaultPseudocount   = 1.0
)

// Config holds the sampler tunables. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	Restarts int    // independent chains per run
	MaxIter  int    // hard ceiling on main-loop iterations per chain
	Workers  int    // chains running at once (0 = one goroutine per restart)
	Seed     uint64 // master seed for chain seeds (0 = draw from entropy)

	ProbShift  float64 // chance per iteration of a shift round
	ShiftLeft  int     // offset of the left slide in a shift round
	ShiftRight int     // offset of the right slide in a shift round

	// ProbChangeLen is reserved for motif-length mutation, which is not
	// implemented. The value is validated and reported but has no effect.
	ProbChangeLen float64

	Pseudocount float64 // added to every PWM and background cell
}

// DefaultConfig returns the stock sampler settings.
func DefaultConfig() Config {
	return Config{
		Restarts:      DefaultRestarts,
		MaxIter:       DefaultMaxIter,
		ProbShift:     DefaultProbShift,
		ShiftLeft:     DefaultShiftLeft,
		ShiftRight:    DefaultShiftRight,
		ProbChangeLen: DefaultProbChangeLen,
		Pseudocount:   DefaultPseudocount,
	}
}

// Validate reports the first setting that cannot drive a run.
func (c Config) Validate() error {
	switch {
	case c.Restarts < 1:
		return errors.New("restarts must be ≥ 1")
	case c.MaxIter < 1:
		return errors.New("max-iter must be ≥ 1")
	case c.Workers < 0:
		return errors.New("threads must be ≥ 0")
	case c.ProbShift < 0 || c.ProbShift > 1:
		return fmt.Errorf("prob-shift %g outside [0,1]", c.ProbShift)
	case c.ProbChangeLen < 0 || c.ProbChangeLen > 1:
		return fmt.Errorf("prob-change-len %g outside [0,1]", c.ProbChangeLen)
	case c.ShiftLeft < 0 || c.ShiftRight < 0:
		return errors.New("shift offsets must be ≥ 0")
	case !(c.Pseudocount > 0):
		return errors.New("pseudocount must be > 0")
	}
	return nil
}

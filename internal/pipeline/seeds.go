package pipeline

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"gibbs/internal/engine"
)

// ChainSeeds derives n chain seeds from one master seed. The derivation is
// sequential and happens before any chain starts, so chain i always gets the
// same seed for a given master.
func ChainSeeds(master uint64, n int) []engine.Seed {
	src := rand.New(rand.NewPCG(master, master^0x9e3779b97f4a7c15))
	seeds := make([]engine.Seed, n)
	for i := range seeds {
		seeds[i] = engine.Seed{Hi: src.Uint64(), Lo: src.Uint64()}
	}
	return seeds
}

// EntropySeed draws a non-zero master seed from the OS.
func EntropySeed() (uint64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("entropy: %w", err)
		}
		if s := binary.LittleEndian.Uint64(b[:]); s != 0 {
			return s, nil
		}
	}
}

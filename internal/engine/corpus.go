package engine

import (
	"errors"
	"fmt"
)

// Residue indices. Everything outside A/C/G/T (IUPAC ambiguity codes, gaps,
// stray symbols) folds onto N.
const (
	ResA = iota
	ResC
	ResG
	ResT
	ResN

	AlphabetSize
)

// Alphabet lists the residue symbols in index order.
const Alphabet = "ACGTN"

var residueIndex = func() (t [256]uint8) {
	for i := range t {
		t[i] = ResN
	}
	for i := 0; i < 4; i++ {
		up := Alphabet[i]
		t[up] = uint8(i)
		t[up+'a'-'A'] = uint8(i)
	}
	return t
}()

// ErrMotifTooLong is returned when the motif length cannot fit in every
// sequence (or is not positive).
var ErrMotifTooLong = errors.New("motif too long")

// Sequence is one named input sequence.
type Sequence struct {
	Name     string
	Residues []byte
}

// Corpus is the encoded input shared read-only by every chain.
type Corpus struct {
	names []string
	seqs  [][]uint8
	comp  [][AlphabetSize]int
}

// NewCorpus encodes seqs once. Input order is preserved and defines the
// order positions are reported in.
func NewCorpus(seqs []Sequence) *Corpus {
	c := &Corpus{
		names: make([]string, len(seqs)),
		seqs:  make([][]uint8, len(seqs)),
		comp:  make([][AlphabetSize]int, len(seqs)),
	}
	for i, s := range seqs {
		c.names[i] = s.Name
		enc := make([]uint8, len(s.Residues))
		for j, b := range s.Residues {
			r := residueIndex[b]
			enc[j] = r
			c.comp[i][r]++
		}
		c.seqs[i] = enc
	}
	return c
}

// Len returns the number of sequences.
func (c *Corpus) Len() int { return len(c.seqs) }

// SeqLen returns the length of sequence i.
func (c *Corpus) SeqLen(i int) int { return len(c.seqs[i]) }

// MinLen returns the shortest sequence length, or 0 for an empty corpus.
func (c *Corpus) MinLen() int {
	if len(c.seqs) == 0 {
		return 0
	}
	m := len(c.seqs[0])
	for _, s := range c.seqs[1:] {
		if len(s) < m {
			m = len(s)
		}
	}
	return m
}

// CheckMotifLen verifies that a window of width fits every sequence.
func (c *Corpus) CheckMotifLen(width int) error {
	if width <= 0 {
		return fmt.Errorf("%w: motif length must be > 0, got %d", ErrMotifTooLong, width)
	}
	for i, s := range c.seqs {
		if width > len(s) {
			return fmt.Errorf("%w: length %d exceeds sequence %q (%d nt)", ErrMotifTooLong, width, c.names[i], len(s))
		}
	}
	return nil
}

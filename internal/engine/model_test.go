package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpusOf(seqs ...string) *Corpus {
	in := make([]Sequence, len(seqs))
	for i, s := range seqs {
		in[i] = Sequence{Name: string(rune('a' + i)), Residues: []byte(s)}
	}
	return NewCorpus(in)
}

func TestCorpusEncodesAmbiguityAsN(t *testing.T) {
	c := corpusOf("ACGTNRYacgt-")
	assert.Equal(t, []uint8{ResA, ResC, ResG, ResT, ResN, ResN, ResN, ResA, ResC, ResG, ResT, ResN}, c.seqs[0])
	assert.Equal(t, [AlphabetSize]int{2, 2, 2, 2, 4}, c.comp[0])
}

func TestCheckMotifLen(t *testing.T) {
	c := corpusOf("ACGTACGT", "ACGTA")
	require.NoError(t, c.CheckMotifLen(5))
	assert.ErrorIs(t, c.CheckMotifLen(6), ErrMotifTooLong)
	assert.ErrorIs(t, c.CheckMotifLen(0), ErrMotifTooLong)
	assert.ErrorIs(t, c.CheckMotifLen(-2), ErrMotifTooLong)
	assert.Equal(t, 5, c.MinLen())
}

func TestModelShape(t *testing.T) {
	c := corpusOf(
		"ACGTACGTACGTACGTACGT",
		"TTTTTTTTTTTTTTTTTTTT",
		"GGGGGGGGGGGGGGGGGGGG",
		"CCCCCCCCCCCCCCCCCCCC",
	)
	m := NewModel(c, 6, 1)
	m.Build(Positions{0, 3, 7, 14}, 0)

	pwm := m.PWM()
	require.Len(t, pwm, 6)
	for j, col := range pwm {
		var sum float64
		for _, f := range col {
			sum += f
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "column %d", j)
	}
	var bgSum float64
	for _, f := range m.Background() {
		bgSum += f
	}
	assert.InDelta(t, 1.0, bgSum, 1e-12)

	scores := m.Scan(nil)
	assert.Len(t, scores, 15)
}

func TestModelLeavesTargetOut(t *testing.T) {
	c := corpusOf("AAAAAA", "CCCCCC", "CCCCCC")
	m := NewModel(c, 3, 1)
	m.Build(Positions{0, 0, 0}, 0)

	// two C windows, pseudocount 1 over 5 rows: (2+1)/(2+5)
	for _, col := range m.PWM() {
		assert.InDelta(t, 3.0/7.0, col[ResC], 1e-12)
		assert.InDelta(t, 1.0/7.0, col[ResA], 1e-12)
	}
	// background: 3 C residues outside windows of each other sequence
	bg := m.Background()
	assert.InDelta(t, 7.0/11.0, bg[ResC], 1e-12)
	assert.InDelta(t, 1.0/11.0, bg[ResA], 1e-12)

	want := 3 * math.Log((1.0/7.0)/(1.0/11.0))
	assert.InDelta(t, want, m.WindowScore(0), 1e-12)
}

func TestModelBestFindsPlantedWindow(t *testing.T) {
	c := corpusOf(
		"TTTTTTTTGATTACATTTTT",
		"TTGATTACATTTTTTTTTTT",
		"TTTTTTTTTTTTTGATTACA",
		"ATTTTTTTTTTTTTTTTTTT",
	)
	m := NewModel(c, 6, 0.5)
	m.Build(Positions{8, 2, 13, 0}, 3)
	p, s := m.Best()
	scores := m.Scan(nil)
	assert.Equal(t, s, scores[p])
	for q, sq := range scores {
		assert.LessOrEqual(t, sq, s, "start %d", q)
	}

	m.Build(Positions{8, 2, 13, 0}, 0)
	p, _ = m.Best()
	assert.Equal(t, 8, p)
}

func TestModelBestTiesKeepLowestStart(t *testing.T) {
	c := corpusOf("AAAAAAAA", "AAAAAAAA")
	m := NewModel(c, 3, 1)
	m.Build(Positions{2, 2}, 0)
	p, _ := m.Best()
	assert.Equal(t, 0, p)
}

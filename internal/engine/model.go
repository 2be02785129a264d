package engine

import "math"

// Column is one PWM column indexed by residue.
type Column [AlphabetSize]float64

// Model is the leave-one-out scoring model. Build fits a PWM and a
// background from every sequence except a target; the scan methods then
// score windows of that target. A Model owns its scratch buffers and must
// not be shared between chains.
type Model struct {
	corpus *Corpus
	width  int
	pseudo float64

	target  int
	counts  []Column // per column residue counts over the other sequences
	pwm     []Column
	logOdds []Column
	bg      Column
}

// NewModel allocates scratch for windows of the given width.
func NewModel(c *Corpus, width int, pseudocount float64) *Model {
	return &Model{
		corpus:  c,
		width:   width,
		pseudo:  pseudocount,
		target:  -1,
		counts:  make([]Column, width),
		pwm:     make([]Column, width),
		logOdds: make([]Column, width),
	}
}

// Build fits the model from the windows at pos of every sequence except
// target. The background counts every residue of those sequences outside
// their current window.
func (m *Model) Build(pos Positions, target int) {
	m.target = target
	for j := range m.counts {
		m.counts[j] = Column{}
	}
	var bgCounts [AlphabetSize]int
	others := 0
	for i, seq := range m.corpus.seqs {
		if i == target {
			continue
		}
		others++
		win := seq[pos[i] : pos[i]+m.width]
		for j, r := range win {
			m.counts[j][r]++
			bgCounts[r]--
		}
		for r, n := range m.corpus.comp[i] {
			bgCounts[r] += n
		}
	}

	bgTotal := 0
	for _, n := range bgCounts {
		bgTotal += n
	}
	bgDen := float64(bgTotal) + AlphabetSize*m.pseudo
	for r := range m.bg {
		m.bg[r] = (float64(bgCounts[r]) + m.pseudo) / bgDen
	}

	colDen := float64(others) + AlphabetSize*m.pseudo
	for j := range m.counts {
		for r := 0; r < AlphabetSize; r++ {
			f := (m.counts[j][r] + m.pseudo) / colDen
			m.pwm[j][r] = f
			m.logOdds[j][r] = math.Log(f / m.bg[r])
		}
	}
}

// PWM returns a copy of the smoothed column frequencies.
func (m *Model) PWM() []Column {
	return append([]Column(nil), m.pwm...)
}

// Background returns the smoothed background frequencies.
func (m *Model) Background() Column { return m.bg }

// WindowScore is the log-odds score of the window of the target starting
// at p.
func (m *Model) WindowScore(p int) float64 {
	win := m.corpus.seqs[m.target][p : p+m.width]
	var s float64
	for j, r := range win {
		s += m.logOdds[j][r]
	}
	return s
}

// Scan scores every valid start of the target into dst (reused when large
// enough) and returns it.
func (m *Model) Scan(dst []float64) []float64 {
	n := len(m.corpus.seqs[m.target]) - m.width + 1
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	for p := range dst {
		dst[p] = m.WindowScore(p)
	}
	return dst
}

// Best returns the highest-scoring start of the target. Ties keep the
// lowest start.
func (m *Model) Best() (int, float64) {
	last := len(m.corpus.seqs[m.target]) - m.width
	best, bestScore := 0, m.WindowScore(0)
	for p := 1; p <= last; p++ {
		if s := m.WindowScore(p); s > bestScore {
			best, bestScore = p, s
		}
	}
	return best, bestScore
}

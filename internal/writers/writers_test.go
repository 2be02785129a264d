package writers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gibbs/internal/engine"
	"gibbs/pkg/api"
)

func sampleReport() Report {
	return Report{
		RunID:        "run-1",
		InputFile:    "data/seqs.fa",
		RequestedLen: 4,
		MotifLen:     4,
		Names:        []string{"alpha", "beta"},
		Seqs:         [][]byte{[]byte("ACGTTGCA"), []byte("TTGCAA")},
		Seed:         99,
		BestIndex:    1,
		Chains: []engine.ChainResult{
			{Score: 1.5, Positions: engine.Positions{0, 0}, Iterations: 3, State: engine.Converged},
			{Score: 2.25, Positions: engine.Positions{3, 1}, Iterations: 5, ShiftRounds: 1, State: engine.MaxIterExceeded},
		},
		Config: engine.DefaultConfig(),
	}
}

func TestWriteTextLayout(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("text", &b, sampleReport()))
	want := "\nGibbs motif sampler output:\n\n" +
		"\tInput file          : data/seqs.fa\n" +
		"\tInitial motif length: 4\n" +
		"\tFinal motif length  : 4\n" +
		"\tFinal score         : 2.250000\n\n" +
		"Motif sequences and locations:\n\n" +
		"TTGC\t4-7\talpha\n" +
		"TGCA\t2-5\tbeta\n" +
		"\n\n"
	assert.Equal(t, want, b.String())
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("json", &b, sampleReport()))
	var got api.ResultV1
	require.NoError(t, json.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, 2.25, got.Score)
	assert.Equal(t, 1, got.BestChain)
	assert.Equal(t, []api.MotifV1{
		{SequenceID: "alpha", Start: 4, End: 7, Seq: "TTGC"},
		{SequenceID: "beta", Start: 2, End: 5, Seq: "TGCA"},
	}, got.Motifs)
	require.Len(t, got.Chains, 2)
	assert.Equal(t, "max-iter", got.Chains[1].State)
	require.NotNil(t, got.Params)
	assert.Equal(t, engine.DefaultRestarts, got.Params.Restarts)
}

func TestWriteYAML(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Write("yaml", &b, sampleReport()))
	assert.Contains(t, b.String(), "run_id: run-1")

	var got api.ResultV1
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &got))
	assert.Equal(t, uint64(99), got.Seed)
	assert.Len(t, got.Motifs, 2)
}

func TestUnknownFormat(t *testing.T) {
	err := Write("nope-format", io.Discard, sampleReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"json", "text", "yaml"}, Names())
}

func TestIgnoreBrokenPipe(t *testing.T) {
	assert.NoError(t, IgnoreBrokenPipe(fmt.Errorf("write: %w", io.ErrClosedPipe)))
	assert.True(t, IsBrokenPipe(io.ErrClosedPipe))
	assert.Error(t, IgnoreBrokenPipe(io.ErrUnexpectedEOF))
}

// pkg/api/result_v1.go
package api

// ResultV1 is the stable JSON/YAML schema for a sampler run.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	RunID                string    `json:"run_id" yaml:"run_id"`
	InputFile            string    `json:"input_file" yaml:"input_file"`
	RequestedMotifLength int       `json:"requested_motif_length" yaml:"requested_motif_length"`
	FinalMotifLength     int       `json:"final_motif_length" yaml:"final_motif_length"`
	Score                float64   `json:"score" yaml:"score"`
	Seed                 uint64    `json:"seed" yaml:"seed"`
	BestChain            int       `json:"best_chain" yaml:"best_chain"`
	Motifs               []MotifV1 `json:"motifs" yaml:"motifs"`
	Chains               []ChainV1 `json:"chains,omitempty" yaml:"chains,omitempty"`
	Params               *ParamsV1 `json:"params,omitempty" yaml:"params,omitempty"`
}

// MotifV1 is one motif occurrence. Start and End are 1-based inclusive.
type MotifV1 struct {
	SequenceID string `json:"sequence_id" yaml:"sequence_id"`
	Start      int    `json:"start" yaml:"start"`
	End        int    `json:"end" yaml:"end"`
	Seq        string `json:"seq" yaml:"seq"`
}

// ChainV1 summarizes one restart.
type ChainV1 struct {
	Index       int     `json:"index" yaml:"index"`
	Score       float64 `json:"score" yaml:"score"`
	Iterations  int     `json:"iterations" yaml:"iterations"`
	ShiftRounds int     `json:"shift_rounds" yaml:"shift_rounds"`
	State       string  `json:"state" yaml:"state"` // "converged" | "max-iter"
}

// ParamsV1 echoes the sampler settings used.
type ParamsV1 struct {
	Restarts      int     `json:"restarts" yaml:"restarts"`
	MaxIter       int     `json:"max_iter" yaml:"max_iter"`
	ProbShift     float64 `json:"prob_shift" yaml:"prob_shift"`
	ProbChangeLen float64 `json:"prob_change_len" yaml:"prob_change_len"`
	Pseudocount   float64 `json:"pseudocount" yaml:"pseudocount"`
}

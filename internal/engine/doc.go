// Package engine contains the motif sampling core: the encoded corpus, the
// per-chain position state, the leave-one-out scoring model and the chain
// loop itself. It never imports app, writers, cli, or pipeline; keep it
// domain-only.
//
// Position updates are greedy: every scan moves a sequence to its
// highest-scoring window instead of drawing a window with probability
// proportional to its score as textbook Gibbs sampling does. Restarts and
// shift rounds provide the randomness.
//
// External outputs must not depend on the internal shape here. Use pkg/api
// for stable wire types.
package engine

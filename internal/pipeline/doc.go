// Package pipeline runs independent sampler chains as a fork-join and
// reduces them to one result. It owns scheduling only; all scoring lives in
// engine.
package pipeline

// Package writers renders a finished run.
//
// Design:
//   - Writers own all presentation knowledge (text report, JSON, YAML).
//   - Engine stays domain-only; pipeline stays orchestration-only.
//   - JSON and YAML go through pkg/api (v1) for a stable wire format.
package writers

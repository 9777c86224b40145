// Package synth generates deterministic synthetic datasets.
//
// When a tool's real input CSV is absent, its loader falls back to a
// Spec-described dataset so the analysis still runs in demo mode. All
// draws come from one seeded source in column declaration order, which
// makes the output reproducible byte for byte.
package synth

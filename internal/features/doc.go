// Package features provides the building blocks of the feature
// engineering stage: fixed-edge bucketing, run-time percentile
// thresholds, guarded ratios, and rule-table scoring. Every derived
// column is a deterministic, total function of existing columns.
package features

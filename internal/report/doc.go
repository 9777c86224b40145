// Package report computes group-by summary tables and named business
// metrics from an engineered dataset, renders charts, and writes the
// executive summary record. Summary tables are derived read-only views,
// recomputed wholesale each run; their only persistence is the exported
// files.
package report

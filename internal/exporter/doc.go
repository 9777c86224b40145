// Package exporter writes summary tables to flat files: CSV for the
// processed-data directory and XLSX workbooks for the executive summary.
// Output files are overwritten on every run; there is no versioning.
package exporter

// Package config provides layered configuration for the analysis tools.
//
// Configuration loads in three layers, later layers winning:
//
//  1. struct-tag defaults
//  2. an optional YAML config file
//  3. INSIGHT_-prefixed environment variables
//
// CLI flags on the individual commands override resolved paths last,
// via NewPaths. The loaded Config is validated with struct tags before
// use.
package config

// Package pipeline provides the shared staged runner for the case-study
// tools. Control flow is strictly linear and synchronous: stages run
// once, in order, in a single goroutine.
package pipeline

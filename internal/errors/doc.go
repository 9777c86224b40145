// Package errors provides the typed error values used across the
// analysis pipelines.
//
// All failures surface as *AppError, which carries an ErrorType, a
// human-readable message, an optional wrapped cause, and free-form
// context. Constructors exist for each error type so call sites stay
// terse:
//
//	return errors.NewSchemaError("orders dataset missing columns", missing)
//
// The only failure the tools recover from is a missing input file (the
// loader falls back to synthetic data); every other AppError propagates
// to main, which logs it and exits non-zero.
package errors

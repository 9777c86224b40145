// Package infrastructure provides process-wide initialization: the
// structured slog logger and the chart style defaults. Both are one-time,
// idempotent setup calls made from main before any pipeline work starts.
package infrastructure

// Package logging provides zerolog-based structured logging for batchview.
//
// Loggers are built from a Config, carried on a context.Context, and tagged
// with a per-invocation trace ID (a ULID) so that every event emitted during
// one command can be correlated.
package logging

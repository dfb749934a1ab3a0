// Package logging provides the structured logging interface used by the
// application layer. It hides zerolog behind a small Logger interface so
// components log with typed fields and tests can swap in a standard-library
// bridge.
package logging

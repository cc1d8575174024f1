// Package logging provides a minimal logging interface and adapters for
// roundtable.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) the scheduler and agents use for observability. This package
// includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NewTintLogger for colorized terminal output
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewTintLogger(os.Stderr, slog.LevelDebug)
//	c, err := chat.New(cond, participants, chat.WithLogger(logger))
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging

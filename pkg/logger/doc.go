// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers that keep key names consistent.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("loader")),
//	)
//	log.Warn("document rejected", logger.Path(path), logger.Error(err))
//
// New defaults to info-level text written to stderr, so command output on
// stdout stays machine readable. WithFormat panics on anything other than
// FormatJSON or FormatText; use ParseLevel to turn configuration strings into
// slog levels.
//
// Error returns an empty attribute for a nil error, which slog drops, so it
// can be passed unconditionally.
package logger

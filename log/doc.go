// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Loggers are configured at creation time with functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithCaller(true))
//
//	logger.Info("parsed arguments", slog.Int("tokens", 4))
//
// The package-level functions ([Debug], [Info], [Warn], [Error] and their
// Context variants) write through a default logger on standard error, which
// [Config] reconfigures in place.
//
// # Levels
//
// Five levels are defined: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Records below the configured level are
// discarded. The zero [Logger] discards everything.
//
// # Formats
//
// [FormatText] (default) writes key=value records and [FormatJSON] writes
// one JSON object per record. With [WithPretty], text records are styled
// with terminal colors; styling is dropped when the output is not a
// terminal.
//
// # Time Formatting
//
// [WithTimeLayout] accepts any named layout of the [time] package (such as
// "RFC3339" or "Kitchen"), a custom layout, or "none" to omit timestamps.
package log

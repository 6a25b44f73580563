// Package logger provides a small leveled logger that writes either to the
// console or to an append-only text file.
//
// # Record Format
//
// Every record is one line. Fields are separated by a single space:
//
//	[INFO]: v1 v2 ... vn
//	[DEBUG]: function: v1 ... vn
//	[ERROR]: file:line:function: v1 ... vn
//	[SUCCESS]: function
//
// Records written to the file sink are prefixed with a UTC timestamp:
//
//	[2024-05-01 13:37:00] [SUCCESS]: main
//
// Values are rendered with their default text form (fmt's %v).
//
// # Sinks
//
// The Console sink writes INFO, DEBUG and SUCCESS to standard output and
// ERROR to standard error. The File sink appends to log.txt in the working
// directory unless another path is configured. The file is opened on the
// first record and kept open until the stream switches back to Console,
// the path changes, or Close is called.
//
// If the log file cannot be opened or written, the record is dropped and a
// one-line [ERROR]: diagnostic is written to standard error. Logging calls
// never return errors and never panic.
//
// # Features
//
//   - Logger values with their own stream, path and levels, plus a default
//     logger behind package-level functions
//   - Optional ANSI colors around console tags via Config.Colorize
//   - Call-site helpers DebugHere, ErrorHere and SuccessHere
//   - Severity filtering via Config.Levels or LOGGER_LEVELS
//   - TOML configuration with LOGGER_STREAM and LOGGER_FILE overrides
//   - Live config reloads via Watch
//   - Journald priority prefixes for plain console output when JOURNAL_STREAM is set
//
// # Usage
//
//	logger.Init(logger.Config{Colorize: true})
//	logger.LogInfo("listening on", 8080)
//	logger.LogDebug("serve", "workers=", 4)
//	logger.ErrorHere("dial failed:", err)
//
//	logger.SetStream(logger.File)
//	defer logger.Close()
//	logger.LogSuccess("main")
//
// All functions and methods are safe for concurrent use; each record is
// written with a single write.
package logger

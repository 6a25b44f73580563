package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Severity is the categorical importance of a record.
type Severity int

const (
	// InfoLevel tags plain informational records.
	InfoLevel Severity = iota
	// DebugLevel tags records that carry the enclosing function name.
	DebugLevel
	// ErrorLevel tags records that carry file, line and function.
	ErrorLevel
	// SuccessLevel tags records that only name the function that completed.
	SuccessLevel
)

// AllSeverities returns every supported severity.
func AllSeverities() []Severity {
	return []Severity{InfoLevel, DebugLevel, ErrorLevel, SuccessLevel}
}

func (s Severity) String() string {
	switch s {
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case ErrorLevel:
		return "ERROR"
	case SuccessLevel:
		return "SUCCESS"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Tag returns the bracketed marker written at the start of every record,
// e.g. "[INFO]:".
func (s Severity) Tag() string {
	return "[" + s.String() + "]:"
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	if s < InfoLevel || s > SuccessLevel {
		return nil, fmt.Errorf("unknown severity %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are case-insensitive.
func (s *Severity) UnmarshalText(text []byte) error {
	sev, ok := parseSeverity(string(text))
	if !ok {
		return fmt.Errorf("unknown severity %q", text)
	}
	*s = sev
	return nil
}

func parseSeverity(name string) (Severity, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "INFO":
		return InfoLevel, true
	case "DEBUG":
		return DebugLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "SUCCESS":
		return SuccessLevel, true
	}
	return 0, false
}

// SinkMode selects where records go.
type SinkMode int

const (
	// Console writes to standard output, or standard error for errors.
	Console SinkMode = iota
	// File appends to the configured log file.
	File
)

func (m SinkMode) String() string {
	switch m {
	case Console:
		return "console"
	case File:
		return "file"
	default:
		return fmt.Sprintf("SinkMode(%d)", int(m))
	}
}

// ParseSinkMode parses "console" or "file" (case-insensitive).
func ParseSinkMode(s string) (SinkMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "console":
		return Console, nil
	case "file":
		return File, nil
	}
	return Console, fmt.Errorf("unknown sink mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m SinkMode) MarshalText() ([]byte, error) {
	if m != Console && m != File {
		return nil, fmt.Errorf("unknown sink mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SinkMode) UnmarshalText(text []byte) error {
	mode, err := ParseSinkMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// DefaultFilePath is the file used by the File sink when no path is configured.
const DefaultFilePath = "log.txt"

// ErrSinkUnavailable is reported when the log file cannot be opened or written.
var ErrSinkUnavailable = errors.New("log sink unavailable")

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// Logger formats records and routes them to the selected sink.
// All methods are safe for concurrent use; each record is written whole.
type Logger struct {
	mu sync.Mutex

	mode    SinkMode
	path    string
	file    io.WriteCloser
	enabled map[Severity]bool
	retired bool

	colorize bool
	journald bool
	tags     map[Severity]string

	stdout io.Writer
	stderr io.Writer
	now    func() time.Time
}

// New returns a Logger configured by cfg. The File sink is not opened
// until the first record is written to it.
func New(cfg Config) *Logger {
	l := &Logger{
		stdout:   outStdout,
		stderr:   outStderr,
		now:      time.Now,
		journald: shouldUseSyslogPrefix(),
	}
	l.Apply(cfg)
	return l
}

// Apply reconfigures the logger. Changing the stream or file path only
// affects records written afterwards.
func (l *Logger) Apply(cfg Config) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.enabled = resolveLevels(cfg.Levels)
	l.colorize = cfg.Colorize
	if cfg.Colorize {
		l.tags = colorTags(l.stdout)
	} else {
		l.tags = plainTags()
	}
	l.setFileLocked(cfg.FilePath)
	l.setStreamLocked(cfg.Stream)
}

// SetStream selects the sink for all subsequent records.
// Switching back to Console releases the log file. Modes other than File
// select Console.
func (l *Logger) SetStream(mode SinkMode) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setStreamLocked(mode)
}

// Stream returns the currently selected sink.
func (l *Logger) Stream() SinkMode {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mode
}

// SetFile changes the path used by the File sink. An empty path selects
// DefaultFilePath.
func (l *Logger) SetFile(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setFileLocked(path)
}

// Close closes the log file if it is open. A later File record reopens it.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closeLocked()
}

func (l *Logger) setStreamLocked(mode SinkMode) {
	if mode != File {
		mode = Console
	}
	if mode == l.mode {
		return
	}
	if mode == Console {
		_ = l.closeLocked()
	}
	l.mode = mode
}

func (l *Logger) setFileLocked(path string) {
	if path == "" {
		path = DefaultFilePath
	}
	if path == l.path {
		return
	}
	_ = l.closeLocked()
	l.path = path
}

func (l *Logger) closeLocked() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Info logs values at info level.
func (l *Logger) Info(v ...any) {
	l.log(InfoLevel, "", v)
}

// Debug logs values at debug level, prefixed by the enclosing function name.
func (l *Logger) Debug(function string, v ...any) {
	l.log(DebugLevel, functionHeader(function), v)
}

// Error logs values at error level, prefixed by file, line and function.
// On the console it always goes to standard error.
func (l *Logger) Error(file, function string, line int, v ...any) {
	l.log(ErrorLevel, callSiteHeader(file, function, line), v)
}

// Success logs that function completed.
func (l *Logger) Success(function string) {
	l.log(SuccessLevel, "", []any{function})
}

func (l *Logger) log(sev Severity, header string, values []any) {
	l.mu.Lock()
	if l.retired {
		// Replaced by Init while this call was in flight.
		l.mu.Unlock()
		Default().log(sev, header, values)
		return
	}
	defer l.mu.Unlock()

	if !l.enabled[sev] {
		return
	}
	if l.mode == File {
		l.writeFile(sev, header, values)
		return
	}
	l.writeConsole(sev, header, values)
}

// report writes err as an error line on the console, regardless of the
// selected stream and the enabled severities.
func (l *Logger) report(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeConsole(ErrorLevel, "", []any{err})
}

func resolveLevels(levels []Severity) map[Severity]bool {
	if levels != nil {
		return levelsFromSlice(levels)
	}
	if env := os.Getenv("LOGGER_LEVELS"); env != "" {
		return parseLevels(env)
	}
	return levelsFromSlice(AllSeverities())
}

func levelsFromSlice(levels []Severity) map[Severity]bool {
	m := make(map[Severity]bool, len(levels))
	for _, level := range levels {
		m[level] = true
	}
	return m
}

// parseLevels parses a comma-separated list of severity names.
// Unknown names are ignored; an empty string enables everything.
func parseLevels(s string) map[Severity]bool {
	if strings.TrimSpace(s) == "" {
		return levelsFromSlice(AllSeverities())
	}
	m := map[Severity]bool{}
	for _, p := range strings.Split(s, ",") {
		if sev, ok := parseSeverity(p); ok {
			m[sev] = true
		}
	}
	return m
}

// --- Default logger ---

var std atomic.Pointer[Logger]

func init() {
	std.Store(New(Config{}))
}

// Default returns the logger used by the package-level functions.
func Default() *Logger {
	return std.Load()
}

// Init replaces the default logger with one built from cfg and closes the
// previous one's log file. Records that still reach the previous logger
// are forwarded to the new one.
func Init(cfg Config) {
	if old := std.Swap(New(cfg)); old != nil {
		old.retire()
	}
}

func (l *Logger) retire() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.retired = true
	_ = l.closeLocked()
}

// Close closes the default logger's log file.
func Close() error {
	return Default().Close()
}

// SetStream selects the sink of the default logger.
func SetStream(mode SinkMode) {
	Default().SetStream(mode)
}

// Stream returns the sink of the default logger.
func Stream() SinkMode {
	return Default().Stream()
}

// SetFile changes the log file path of the default logger.
func SetFile(path string) {
	Default().SetFile(path)
}

// LogInfo writes "[INFO]: v1 v2 ... vn" through the default logger.
func LogInfo(v ...any) {
	Default().Info(v...)
}

// LogDebug writes a debug record naming function through the default logger.
func LogDebug(function string, v ...any) {
	Default().Debug(function, v...)
}

// LogError writes an error record with its call site through the default logger.
func LogError(file, function string, line int, v ...any) {
	Default().Error(file, function, line, v...)
}

// LogSuccess writes a success record naming function through the default logger.
func LogSuccess(function string) {
	Default().Success(function)
}

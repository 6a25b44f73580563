package logger

import (
	"fmt"
	"io"
	"os"
)

// writeConsole writes one record to stdout, or stderr for errors.
// Caller must hold l.mu.
func (l *Logger) writeConsole(sev Severity, header string, values []any) {
	out := l.stdout
	if sev == ErrorLevel {
		out = l.stderr
	}
	buf := make([]byte, 0, 128)
	if l.journald && !l.colorize {
		buf = append(buf, syslogPrefixForSeverity(sev)...)
	}
	buf = append(buf, l.tags[sev]...)
	buf = appendRecord(buf, header, values)
	_, _ = out.Write(buf)
}

// writeFile appends one timestamped record to the log file. If the file
// cannot be opened or written the record is dropped and a diagnostic goes
// to the console error stream. Caller must hold l.mu.
func (l *Logger) writeFile(sev Severity, header string, values []any) {
	f, err := l.openFileLocked()
	if err != nil {
		l.writeConsole(ErrorLevel, "", []any{err})
		return
	}
	buf := make([]byte, 0, 128)
	buf = appendTimestamp(buf, l.now())
	buf = append(buf, sev.Tag()...)
	buf = appendRecord(buf, header, values)
	if _, err := f.Write(buf); err != nil {
		l.writeConsole(ErrorLevel, "", []any{fmt.Errorf("%w: %w", ErrSinkUnavailable, err)})
	}
}

func (l *Logger) openFileLocked() (io.Writer, error) {
	if l.file != nil {
		return l.file, nil
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSinkUnavailable, err)
	}
	l.file = f
	return f, nil
}

func shouldUseSyslogPrefix() bool {
	return os.Getenv("JOURNAL_STREAM") != ""
}

// syslogPrefixForSeverity returns the journald priority marker for sev.
func syslogPrefixForSeverity(sev Severity) string {
	switch sev {
	case ErrorLevel:
		return "<3>"
	case SuccessLevel:
		return "<5>"
	case InfoLevel:
		return "<6>"
	case DebugLevel:
		return "<7>"
	default:
		return ""
	}
}

package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func captureConsole(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdoutBuf, stderrBuf bytes.Buffer
	oldStdout, oldStderr := outStdout, outStderr
	t.Cleanup(func() { outStdout, outStderr = oldStdout, oldStderr })
	outStdout = &stdoutBuf
	outStderr = &stderrBuf
	t.Setenv("JOURNAL_STREAM", "")
	return &stdoutBuf, &stderrBuf
}

func TestStdoutStderrRouting(t *testing.T) {
	stdoutBuf, stderrBuf := captureConsole(t)

	Init(Config{})

	LogInfo("hello")
	LogDebug("main", "dbg")
	LogSuccess("main")
	LogError("main.go", "main", 7, "boom")

	got := stdoutBuf.String()
	if !strings.Contains(got, "hello") || !strings.Contains(got, "dbg") || !strings.Contains(got, "[SUCCESS]: main") {
		t.Fatalf("stdout missing expected logs, got: %q", got)
	}
	if strings.Contains(got, "boom") {
		t.Fatalf("error record should not go to stdout, got: %q", got)
	}
	if got := stderrBuf.String(); got != "[ERROR]: main.go:7:main: boom\n" {
		t.Fatalf("stderr = %q", got)
	}
}

func TestInfo_ExactFormat(t *testing.T) {
	cases := []struct {
		name   string
		values []any
		want   string
	}{
		{"none", nil, "[INFO]: \n"},
		{"single", []any{"hello"}, "[INFO]: hello\n"},
		{"mixed", []any{"x", 1, 2.5, true}, "[INFO]: x 1 2.5 true\n"},
		{"stringer", []any{Console, File}, "[INFO]: console file\n"},
		{"error", []any{errors.New("bad thing")}, "[INFO]: bad thing\n"},
		{"no escaping", []any{"a  b", "[x]", "tab\there"}, "[INFO]: a  b [x] tab\there\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdoutBuf, _ := captureConsole(t)
			l := New(Config{})
			l.Info(tc.values...)
			if got := stdoutBuf.String(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDebug_FunctionThenValues(t *testing.T) {
	stdoutBuf, _ := captureConsole(t)
	l := New(Config{})

	l.Debug("compute", "x=", 5)
	l.Debug("idle")

	want := "[DEBUG]: compute: x= 5\n[DEBUG]: idle:\n"
	if got := stdoutBuf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestError_CallSiteOrder(t *testing.T) {
	_, stderrBuf := captureConsole(t)
	l := New(Config{})

	l.Error("server.go", "serve", 42, "listen failed:", "port in use")

	line := stderrBuf.String()
	if line != "[ERROR]: server.go:42:serve: listen failed: port in use\n" {
		t.Fatalf("got %q", line)
	}
	fi, li, fni := strings.Index(line, "server.go"), strings.Index(line, "42"), strings.Index(line, "serve:")
	if !(fi < li && li < fni) {
		t.Fatalf("expected file, line, function in order, got %q", line)
	}
}

func TestSuccess_FunctionOnly(t *testing.T) {
	stdoutBuf, _ := captureConsole(t)
	l := New(Config{})

	l.Success("main")

	if got := stdoutBuf.String(); got != "[SUCCESS]: main\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPlainOutput_NoAnsi(t *testing.T) {
	stdoutBuf, stderrBuf := captureConsole(t)

	l := New(Config{})
	l.Info("plain-info")
	l.Error("f.go", "f", 1, "plain-error")

	if strings.Contains(stdoutBuf.String(), "\033[") || strings.Contains(stderrBuf.String(), "\033[") {
		t.Fatalf("output should be plain (no ANSI codes), got stdout=%q stderr=%q", stdoutBuf.String(), stderrBuf.String())
	}
}

func TestColorizedOutput_WrapsTagOnly(t *testing.T) {
	stdoutBuf, _ := captureConsole(t)

	l := New(Config{Colorize: true})
	l.Info("color-info", 3)

	got := stdoutBuf.String()
	if !strings.HasPrefix(got, "\033[") {
		t.Fatalf("expected ANSI color codes when Colorize is enabled, got: %q", got)
	}
	if !strings.Contains(got, "[INFO]:") {
		t.Fatalf("colored output should keep the tag text, got: %q", got)
	}
	if !strings.HasSuffix(got, "m color-info 3\n") {
		t.Fatalf("values should follow the colored tag uncolored, got: %q", got)
	}
}

func TestLevelFiltering(t *testing.T) {
	stdoutBuf, _ := captureConsole(t)

	l := New(Config{Levels: []Severity{InfoLevel}})
	l.Debug("f", "debug-disabled")
	l.Info("info-enabled")

	got := stdoutBuf.String()
	if strings.Contains(got, "debug-disabled") {
		t.Fatalf("debug should be disabled by config, got: %q", got)
	}
	if !strings.Contains(got, "info-enabled") {
		t.Fatalf("info should be enabled by config, got: %q", got)
	}
}

func TestLevelFiltering_FromEnv(t *testing.T) {
	stdoutBuf, stderrBuf := captureConsole(t)
	t.Setenv("LOGGER_LEVELS", "error, success")

	l := New(Config{})
	l.Info("hidden")
	l.Success("shown")
	l.Error("f.go", "f", 1, "shown-too")

	if strings.Contains(stdoutBuf.String(), "hidden") {
		t.Fatalf("info should be filtered by LOGGER_LEVELS, got: %q", stdoutBuf.String())
	}
	if !strings.Contains(stdoutBuf.String(), "shown") || !strings.Contains(stderrBuf.String(), "shown-too") {
		t.Fatalf("enabled levels missing: stdout=%q stderr=%q", stdoutBuf.String(), stderrBuf.String())
	}
}

func TestParseLevels(t *testing.T) {
	m := parseLevels("INFO,bogus, Debug ")
	if !m[InfoLevel] || !m[DebugLevel] || m[ErrorLevel] || m[SuccessLevel] {
		t.Fatalf("parseLevels = %v", m)
	}
	if all := parseLevels("  "); len(all) != len(AllSeverities()) {
		t.Fatalf("empty list should enable all levels, got %v", all)
	}
}

func TestSyslogPrefixWhenJournalStreamSet(t *testing.T) {
	stdoutBuf, _ := captureConsole(t)
	t.Setenv("JOURNAL_STREAM", "1:2")

	l := New(Config{})
	l.Debug("f", "dbg")

	if got := stdoutBuf.String(); got != "<7>[DEBUG]: f: dbg\n" {
		t.Fatalf("stdout should include syslog prefix when JOURNAL_STREAM is set, got: %q", got)
	}
}

func TestSyslogPrefixForSeverities(t *testing.T) {
	cases := map[Severity]string{
		ErrorLevel:   "<3>",
		SuccessLevel: "<5>",
		InfoLevel:    "<6>",
		DebugLevel:   "<7>",
	}
	for sev, want := range cases {
		if got := syslogPrefixForSeverity(sev); got != want {
			t.Fatalf("syslogPrefixForSeverity(%v) = %q, want %q", sev, got, want)
		}
	}
}

func TestSeverityText(t *testing.T) {
	for _, sev := range AllSeverities() {
		text, err := sev.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", sev, err)
		}
		var back Severity
		if err := back.UnmarshalText([]byte(strings.ToLower(string(text)))); err != nil || back != sev {
			t.Fatalf("UnmarshalText(%q) = %v, %v", text, back, err)
		}
		if sev.Tag() != "["+string(text)+"]:" {
			t.Fatalf("Tag() = %q", sev.Tag())
		}
	}
	var s Severity
	if err := s.UnmarshalText([]byte("WARNING")); err == nil {
		t.Fatalf("expected error for unknown severity")
	}
}

func TestParseSinkMode(t *testing.T) {
	if m, err := ParseSinkMode(" File "); err != nil || m != File {
		t.Fatalf("ParseSinkMode(File) = %v, %v", m, err)
	}
	if m, err := ParseSinkMode("console"); err != nil || m != Console {
		t.Fatalf("ParseSinkMode(console) = %v, %v", m, err)
	}
	if _, err := ParseSinkMode("syslog"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

package logger

import (
	"path/filepath"
	"runtime"
	"strings"
)

// callerSite returns the base file name, "package.Function" and line of the
// frame selected by skip, counted as in runtime.Caller.
func callerSite(skip int) (file, function string, line int) {
	pc, path, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", "unknown", 0
	}
	function = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		// Strip package path, keep package.Function
		if i := strings.LastIndex(function, "/"); i >= 0 && i+1 < len(function) {
			function = function[i+1:]
		}
	}
	return filepath.Base(path), function, line
}

// DebugHere is Debug with the calling function filled in.
func (l *Logger) DebugHere(v ...any) {
	_, function, _ := callerSite(2)
	l.Debug(function, v...)
}

// ErrorHere is Error with the calling file, function and line filled in.
func (l *Logger) ErrorHere(v ...any) {
	file, function, line := callerSite(2)
	l.Error(file, function, line, v...)
}

// SuccessHere is Success with the calling function filled in.
func (l *Logger) SuccessHere() {
	_, function, _ := callerSite(2)
	l.Success(function)
}

// DebugHere logs through the default logger with the calling function filled in.
func DebugHere(v ...any) {
	_, function, _ := callerSite(2)
	Default().Debug(function, v...)
}

// ErrorHere logs through the default logger with the calling file, function
// and line filled in.
func ErrorHere(v ...any) {
	file, function, line := callerSite(2)
	Default().Error(file, function, line, v...)
}

// SuccessHere logs through the default logger with the calling function filled in.
func SuccessHere() {
	_, function, _ := callerSite(2)
	Default().Success(function)
}

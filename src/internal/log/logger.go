package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
)

var (
	mu          sync.Mutex
	verbose     = false
	disableLogs = false
	forceStdErr = false
	stdout      io.Writer = os.Stdout
	stderr      io.Writer = os.Stderr
	logPrefixes = map[int]string{
		levelDebug: "\033[37m[DBG]\033[0m", // White
		levelInfo:  "\033[36m[INF]\033[0m", // Cyan
		levelWarn:  "\033[33m[WRN]\033[0m", // Yellow
		levelError: "\033[31m[ERR]\033[0m", // Red
	}
)

// SetVerbose sets the logging verbosity. If true, all log levels are displayed.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose logging is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// DisableLogs disables all logging.
func DisableLogs() {
	mu.Lock()
	defer mu.Unlock()
	disableLogs = true
}

// EnableLogs re-enables logging after DisableLogs.
func EnableLogs() {
	mu.Lock()
	defer mu.Unlock()
	disableLogs = false
}

// IsDisabled returns true if logging is disabled.
func IsDisabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return disableLogs
}

// SetForceStdErr sends every level to the error stream. CLI commands use it
// so that stdout carries only command output.
func SetForceStdErr(v bool) {
	mu.Lock()
	defer mu.Unlock()
	forceStdErr = v
}

// SetOutput replaces the output streams. A nil writer keeps the current one.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// Debugf logs a debug message if verbose is true.
func Debugf(format string, args ...interface{}) {
	if IsVerbose() {
		logMessage(levelDebug, format, args...)
	}
}

// Infof logs an info message.
func Infof(format string, args ...interface{}) {
	logMessage(levelInfo, format, args...)
}

// Warnf logs a warning message.
func Warnf(format string, args ...interface{}) {
	logMessage(levelWarn, format, args...)
}

// Errorf logs an error message.
func Errorf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
}

// Fatalf logs an error message and exits the program.
func Fatalf(format string, args ...interface{}) {
	logMessage(levelError, format, args...)
	os.Exit(1)
}

// logMessage formats and writes a log message with the specified log level.
func logMessage(level int, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if disableLogs {
		return
	}
	prefix := logPrefixes[level]
	message := fmt.Sprintf(format, args...)
	output := prefix + " " + message + "\n"

	// Write the output to the appropriate stream
	if forceStdErr || level == levelError {
		_, _ = io.WriteString(stderr, output)
	} else {
		_, _ = io.WriteString(stdout, output)
	}
}

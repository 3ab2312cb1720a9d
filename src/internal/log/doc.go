// Package log provides simple leveled logging for disk2iso-web.
//
// This package implements a lightweight logging system with colored output
// and support for different log levels: DEBUG, INFO, WARN, and ERROR.
// It provides global logging functions that can be used throughout the application.
//
// # Log Levels
//
//   - DEBUG: Detailed diagnostic information (only shown in verbose mode),
//     e.g. the stderr of a failed config-store call
//   - INFO: General informational messages (HTTP access lines, startup)
//   - WARN: Warning messages, e.g. a service restart that was not accepted
//   - ERROR: Error messages for failures
//
// # Example Usage
//
//	log.Infof("Starting API server on %s", addr)
//	log.Warnf("Restart of %s failed: exit code %d", service, code)
//	log.Errorf("Failed to load configuration: %v", err)
//
// Enabling verbose mode for debug output:
//
//	log.SetVerbose(true)
//	log.Debugf("config_get_value_conf stderr: %s", stderr)
//
// Output control:
//
//	log.SetForceStdErr(true)     // Send all logs to stderr
//	log.SetOutput(&buf, &buf)    // Redirect both streams (tests)
//
// All functions are safe for concurrent use.
package log

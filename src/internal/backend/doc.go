// Package backend bridges disk2iso-web to the external configuration store.
//
// The store exposes two operations, get(scope, key) and set(scope, key, value).
// Three transports implement domain.ConfigBackend:
//
//   - ShellBackend sources libsettings.sh in a shell and calls
//     config_get_value_conf / config_set_value_conf. This is the production
//     transport. A read returns the trimmed stdout of the script as the
//     literal value.
//   - FileBackend edits <conf_dir>/<scope>.conf directly.
//   - MemoryBackend keeps values in process memory.
//
// Adapter sits on top of any transport and turns every result, error or
// panic into a domain.Outcome.
package backend

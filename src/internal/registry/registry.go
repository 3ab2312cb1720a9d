// Package registry holds the closed set of configuration keys that may be
// read and written through disk2iso-web, together with the service each key
// requires to be restarted after a write.
package registry

import "fmt"

// ServiceDisk2ISO is the main disk2iso daemon unit.
const ServiceDisk2ISO = "disk2iso"

// Key describes a single configuration key.
type Key struct {
	// Name is the exact variable name in disk2iso.conf.
	Name string
	// RestartService is the service to restart after a successful write.
	// Empty means no restart is needed.
	RestartService string
}

// RequiresRestart reports whether writing the key demands a service restart.
func (k Key) RequiresRestart() bool {
	return k.RestartService != ""
}

// defaultKeys is the core settings section of disk2iso.conf.
var defaultKeys = []Key{
	{Name: "DEFAULT_OUTPUT_DIR", RestartService: ServiceDisk2ISO},
	{Name: "DDRESCUE_RETRIES"},
	{Name: "USB_DRIVE_DETECTION_ATTEMPTS"},
	{Name: "USB_DRIVE_DETECTION_DELAY"},
}

var defaultRegistry = New(defaultKeys...)

// Registry is an immutable, ordered set of keys. It is safe for concurrent use.
type Registry struct {
	keys  []Key
	index map[string]int
}

// New builds a registry from the given keys, preserving their order.
// It panics on duplicate names or empty names, since the key table is static.
func New(keys ...Key) *Registry {
	r := &Registry{
		keys:  make([]Key, 0, len(keys)),
		index: make(map[string]int, len(keys)),
	}
	for _, k := range keys {
		if k.Name == "" {
			panic("registry: empty key name")
		}
		if _, dup := r.index[k.Name]; dup {
			panic(fmt.Sprintf("registry: duplicate key %q", k.Name))
		}
		r.index[k.Name] = len(r.keys)
		r.keys = append(r.keys, k)
	}
	return r
}

// Default returns the process-wide registry of disk2iso core settings.
func Default() *Registry {
	return defaultRegistry
}

// IsKnown reports whether key is part of the registry. Matching is exact and case-sensitive.
func (r *Registry) IsKnown(key string) bool {
	_, ok := r.index[key]
	return ok
}

// Lookup returns the key definition for name.
func (r *Registry) Lookup(name string) (Key, bool) {
	i, ok := r.index[name]
	if !ok {
		return Key{}, false
	}
	return r.keys[i], true
}

// NeedsRestart reports whether writing key requires a restart and of which service.
// Unknown keys never require a restart.
func (r *Registry) NeedsRestart(key string) (bool, string) {
	k, ok := r.Lookup(key)
	if !ok || !k.RequiresRestart() {
		return false, ""
	}
	return true, k.RestartService
}

// Keys returns a copy of all keys in registry order.
func (r *Registry) Keys() []Key {
	out := make([]Key, len(r.keys))
	copy(out, r.keys)
	return out
}

// Names returns all key names in registry order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.keys))
	for i, k := range r.keys {
		out[i] = k.Name
	}
	return out
}

// Len returns the number of keys.
func (r *Registry) Len() int {
	return len(r.keys)
}

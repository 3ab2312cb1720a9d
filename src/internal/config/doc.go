// Package config handles the disk2iso-web service configuration.
//
// The configuration file is TOML by default; a .yaml or .yml extension
// selects YAML. Every field has a built-in default, so a file only needs to
// list what differs from a standard installation under /opt/disk2iso, and a
// missing file at DefaultConfigPath is not an error.
//
// # Configuration Structure
//
//   - general: installation directory, config scope and backend transport
//   - shell: interpreter, settings library, read/write script templates and timeouts
//   - file: directory holding <scope>.conf for the file backend
//   - restart: restart command template and timeout
//   - api: listen address and private network restriction
//
// # Example Usage
//
//	cfg, err := config.LoadAndValidate("/opt/disk2iso/conf/disk2iso-web.toml")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	fmt.Println(cfg.GetAbsLibraryPath())
//
// Script and command templates use {{variable}} placeholders. Validation
// rejects placeholders that the consuming component does not provide.
package config

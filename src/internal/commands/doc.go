// Package commands implements CLI command handlers for disk2iso-web.
//
// Each command implements the Runner interface and delegates business logic
// to the service layer, so the CLI and the HTTP API share one code path.
//
// # Command Structure
//
// All commands follow a consistent pattern:
//   - Init(): Parse arguments, load and validate configuration
//   - Run(): Execute command using service layer
//   - Name(): Return command name for routing
//
// # Available Commands
//
//   - server: Run the HTTP API until SIGINT or SIGTERM
//   - get KEY: Print the value of one key
//   - set KEY VALUE: Store a value and restart the dependent service if needed
//   - dump: Print every known key
//   - keys: List known keys and their restart targets
//   - check-config: Validate the configuration file
//
// get, set, dump and keys print the same JSON bodies as the HTTP API and
// fail when the outcome is unsuccessful.
//
// # Example Usage
//
//	cmd := commands.CreateGetCommand()
//	ctx := &commands.AppContext{
//	    ConfigPath: "/opt/disk2iso/conf/disk2iso-web.toml",
//	}
//	if err := cmd.Init([]string{"DEFAULT_OUTPUT_DIR"}, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/disk2iso/disk2iso-web/src/internal/api"
	"github.com/disk2iso/disk2iso-web/src/internal/commands"
	"github.com/disk2iso/disk2iso-web/src/internal/config"
	"github.com/disk2iso/disk2iso-web/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{
		Version: api.VersionInfo{Version: version, Commit: commit, Date: date},
	}

	flag.StringVar(&ctx.ConfigPath, "config", config.DefaultConfigPath, "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "disk2iso web configuration service\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  server [-bind addr]     Run the HTTP API server\n")
		fmt.Fprintf(os.Stderr, "  get KEY                 Print the value of a config key\n")
		fmt.Fprintf(os.Stderr, "  set KEY VALUE           Store a config value, restarting the dependent service if needed\n")
		fmt.Fprintf(os.Stderr, "  dump                    Print all config values\n")
		fmt.Fprintf(os.Stderr, "  keys                    List known config keys\n")
		fmt.Fprintf(os.Stderr, "  check-config [-print]   Validate the configuration file\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateServerCommand(),
		commands.CreateGetCommand(),
		commands.CreateSetCommand(),
		commands.CreateDumpCommand(),
		commands.CreateKeysCommand(),
		commands.CreateCheckConfigCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	// Commands other than server print JSON on stdout.
	log.SetForceStdErr(subcommand != "server")

	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}

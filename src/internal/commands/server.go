package commands

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/disk2iso/disk2iso-web/src/internal/api"
	"github.com/disk2iso/disk2iso-web/src/internal/config"
	"github.com/disk2iso/disk2iso-web/src/internal/core"
	"github.com/disk2iso/disk2iso-web/src/internal/log"
)

const shutdownTimeout = 30 * time.Second

// ServerCommand implements the server command for running the HTTP API server.
type ServerCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	cfg  *config.Config
	deps *core.AppDependencies

	bindAddr string

	// ready receives the bound address once the listener is open.
	ready chan<- net.Addr
}

// CreateServerCommand creates a new server command.
func CreateServerCommand() Runner {
	return &ServerCommand{}
}

// Name returns the command name.
func (c *ServerCommand) Name() string {
	return "server"
}

// Init initializes the server command with arguments.
func (c *ServerCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet("server", flag.ContinueOnError)

	c.fs.StringVar(&c.bindAddr, "bind", "", "Address to bind the HTTP server, overrides api.bind_address (e.g., 0.0.0.0:8080)")

	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, deps, err := loadDependencies(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.deps = deps

	if c.bindAddr == "" {
		c.bindAddr = cfg.API.BindAddress
	}

	return nil
}

// Run starts the HTTP API server and blocks until SIGINT or SIGTERM.
func (c *ServerCommand) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return c.RunContext(ctx)
}

// RunContext serves the HTTP API until ctx is cancelled, then shuts down gracefully.
func (c *ServerCommand) RunContext(ctx context.Context) error {
	log.Infof("Starting disk2iso-web API server on %s", c.bindAddr)
	log.Infof("Configuration loaded from: %s", c.ctx.ConfigPath)
	log.Infof("Config backend: %s (scope %q)", c.deps.Backend().Name(), c.cfg.General.Scope)
	if c.cfg.API.PrivateOnly {
		log.Infof("Access restricted to private subnets only")
	}

	handler := api.NewHandler(c.deps.ConfigService(), c.ctx.Version)
	router := api.NewRouter(handler, api.RouterOptions{
		PrivateOnly: c.cfg.API.PrivateOnly,
		Metrics:     c.deps.Metrics(),
	})
	server := api.NewServer(c.bindAddr, router)

	listener, err := net.Listen("tcp", c.bindAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.bindAddr, err)
	}
	if c.ready != nil {
		c.ready <- listener.Addr()
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Serve(listener)
	}()

	select {
	case err := <-serverErrors:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case <-ctx.Done():
		log.Infof("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
	}

	return nil
}

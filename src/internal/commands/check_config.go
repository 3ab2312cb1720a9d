package commands

import (
	"flag"
	"fmt"

	"github.com/disk2iso/disk2iso-web/src/internal/config"
	"github.com/disk2iso/disk2iso-web/src/internal/log"
)

// CheckConfigCommand validates the configuration file.
type CheckConfigCommand struct {
	fs  *flag.FlagSet
	ctx *AppContext
	cfg *config.Config

	printConfig bool
}

func CreateCheckConfigCommand() Runner {
	return &CheckConfigCommand{}
}

func (c *CheckConfigCommand) Name() string {
	return "check-config"
}

func (c *CheckConfigCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.fs.BoolVar(&c.printConfig, "print", false, "Print the effective configuration as TOML")
	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	return nil
}

func (c *CheckConfigCommand) Run() error {
	if c.printConfig {
		buf, err := c.cfg.SerializeConfig()
		if err != nil {
			return fmt.Errorf("failed to serialize configuration: %w", err)
		}
		if _, err := buf.WriteTo(c.ctx.stdout()); err != nil {
			return err
		}
	}

	log.Infof("Configuration %s is valid (backend %s, scope %q)",
		c.cfg.GetConfigFilePath(), c.cfg.General.Backend, c.cfg.General.Scope)
	return nil
}

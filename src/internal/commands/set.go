package commands

import (
	"context"
	"flag"

	"github.com/disk2iso/disk2iso-web/src/internal/api"
	"github.com/disk2iso/disk2iso-web/src/internal/core"
)

// SetCommand stores a value and restarts the dependent service when the key requires it.
type SetCommand struct {
	fs    *flag.FlagSet
	ctx   *AppContext
	deps  *core.AppDependencies
	key   string
	value string
}

func CreateSetCommand() Runner {
	return &SetCommand{}
}

func (c *SetCommand) Name() string {
	return "set"
}

func (c *SetCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if err := requireArgs(c.Name(), c.fs.Args(), "KEY", "VALUE"); err != nil {
		return err
	}
	c.key = c.fs.Arg(0)
	c.value = c.fs.Arg(1)

	_, deps, err := loadDependencies(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.deps = deps
	return nil
}

func (c *SetCommand) Run() error {
	out := c.deps.ConfigService().Set(context.Background(), c.key, c.value)
	_, body := api.WriteBody(out)
	if err := printJSON(c.ctx.stdout(), body); err != nil {
		return err
	}
	return outcomeError(out)
}

package commands

import (
	"context"
	"flag"

	"github.com/disk2iso/disk2iso-web/src/internal/api"
	"github.com/disk2iso/disk2iso-web/src/internal/core"
)

// GetCommand prints the value of a single key.
type GetCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	deps *core.AppDependencies
	key  string
}

func CreateGetCommand() Runner {
	return &GetCommand{}
}

func (c *GetCommand) Name() string {
	return "get"
}

func (c *GetCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if err := requireArgs(c.Name(), c.fs.Args(), "KEY"); err != nil {
		return err
	}
	c.key = c.fs.Arg(0)

	_, deps, err := loadDependencies(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.deps = deps
	return nil
}

func (c *GetCommand) Run() error {
	out := c.deps.ConfigService().Get(context.Background(), c.key)
	_, body := api.ReadBody(out)
	if err := printJSON(c.ctx.stdout(), body); err != nil {
		return err
	}
	return outcomeError(out)
}

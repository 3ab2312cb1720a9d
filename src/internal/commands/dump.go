package commands

import (
	"context"
	"flag"

	"github.com/disk2iso/disk2iso-web/src/internal/api"
	"github.com/disk2iso/disk2iso-web/src/internal/core"
	"github.com/disk2iso/disk2iso-web/src/internal/log"
)

// DumpCommand prints every known key as one flat JSON object.
// Keys that cannot be read are printed as null.
type DumpCommand struct {
	fs   *flag.FlagSet
	ctx  *AppContext
	deps *core.AppDependencies
}

func CreateDumpCommand() Runner {
	return &DumpCommand{}
}

func (c *DumpCommand) Name() string {
	return "dump"
}

func (c *DumpCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if err := requireArgs(c.Name(), c.fs.Args()); err != nil {
		return err
	}

	_, deps, err := loadDependencies(ctx.ConfigPath)
	if err != nil {
		return err
	}
	c.deps = deps
	return nil
}

func (c *DumpCommand) Run() error {
	batch := c.deps.ConfigService().GetAll(context.Background())
	for _, k := range batch.Keys {
		if batch.Values[k] == nil {
			log.Warnf("Could not read %s", k)
		}
	}
	return printJSON(c.ctx.stdout(), api.AllValuesResponse{Keys: batch.Keys, Values: batch.Values})
}

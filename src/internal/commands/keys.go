package commands

import (
	"flag"

	"github.com/disk2iso/disk2iso-web/src/internal/api"
	"github.com/disk2iso/disk2iso-web/src/internal/registry"
)

// KeysCommand lists the known keys and their restart targets.
// It needs no config store, so only the registry is consulted.
type KeysCommand struct {
	fs       *flag.FlagSet
	ctx      *AppContext
	registry *registry.Registry
}

func CreateKeysCommand() Runner {
	return &KeysCommand{}
}

func (c *KeysCommand) Name() string {
	return "keys"
}

func (c *KeysCommand) Init(args []string, ctx *AppContext) error {
	c.ctx = ctx
	c.fs = flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	if err := c.fs.Parse(args); err != nil {
		return err
	}
	if err := requireArgs(c.Name(), c.fs.Args()); err != nil {
		return err
	}
	c.registry = registry.Default()
	return nil
}

func (c *KeysCommand) Run() error {
	return printJSON(c.ctx.stdout(), api.KeysBody(c.registry.Keys()))
}

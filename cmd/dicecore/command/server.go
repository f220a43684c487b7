package command

import (
	"github.com/mapdice/dicecore/server"
	"github.com/urfave/cli"
)

// ServerCommand starts the HTTP server described by server.Run, using the
// --http, --debug, and --pretty flags registered on its cli.Command.
func ServerCommand(c *cli.Context) error {
	return server.Run(server.Config{
		Addr:   c.String("http"),
		Debug:  c.Bool("debug"),
		Pretty: c.Bool("pretty"),
	})
}

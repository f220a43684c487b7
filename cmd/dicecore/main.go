/*
Command dicecore is a CLI for the dice package: rolling single dice
sub-expressions, evaluating full compound expressions, evaluating plain
arithmetic, an interactive REPL, and an HTTP server.
*/
package main

import (
	"fmt"
	"os"
	"sort"

	dice "github.com/mapdice/dicecore"
	"github.com/mapdice/dicecore/cmd/dicecore/command"
	"github.com/urfave/cli"
)

func init() {
	dice.MaxRollsPerEvaluate = 10000
}

func main() {
	cmd := cli.NewApp()
	cmd.Name = "dicecore"
	cmd.Usage = "MapTool-style dice expression roller"
	cmd.Version = "0.1.0"

	globalFlags := []cli.Flag{
		&cli.StringFlag{
			Name:   "format",
			Value:  "",
			Usage:  "output format (table, json, yaml)",
			EnvVar: "FORMAT",
		},
	}

	httpFlags := []cli.Flag{
		&cli.StringFlag{
			Name:   "http",
			Value:  ":6436", // hex("d6")
			Usage:  "HTTP service address",
			EnvVar: "HTTP",
		},
		&cli.BoolFlag{
			Name:   "pretty",
			Usage:  "prettify output logs instead of emitting JSON",
			EnvVar: "PRETTY",
		},
		&cli.BoolFlag{
			Name:   "debug",
			Usage:  "enable debug-level logging",
			EnvVar: "DEBUG",
		},
	}

	cmd.Commands = []cli.Command{
		{
			Name:    "roll",
			Aliases: []string{"r"},
			Usage:   "roll a single dice sub-expression, e.g. \"4d6k3\"",
			Flags:   globalFlags,
			Action: func(c *cli.Context) error {
				return command.RollCommand(c)
			},
		},
		{
			Name:    "eval",
			Aliases: []string{"e"},
			Usage:   "evaluate a full compound dice expression, e.g. \"2d20+5\"",
			Flags:   globalFlags,
			Action: func(c *cli.Context) error {
				return command.EvalCommand(c)
			},
		},
		{
			Name:  "calc",
			Usage: "evaluate a plain arithmetic expression (standard precedence)",
			Flags: globalFlags,
			Action: func(c *cli.Context) error {
				return command.CalcCommand(c)
			},
		},
		{
			Name:  "repl",
			Usage: "enter an interactive dice/calc REPL",
			Flags: globalFlags,
			Action: func(c *cli.Context) error {
				return command.REPLCommand(c)
			},
		},
		{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "start an HTTP server exposing the roller",
			Flags:   httpFlags,
			Action: func(c *cli.Context) error {
				return command.ServerCommand(c)
			},
		},
	}

	sort.Sort(cli.FlagsByName(cmd.Flags))
	sort.Sort(cli.CommandsByName(cmd.Commands))

	if err := cmd.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

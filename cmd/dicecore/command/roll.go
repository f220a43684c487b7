package command

import (
	"context"
	"fmt"

	dice "github.com/mapdice/dicecore"
	"github.com/urfave/cli"
)

// RollCommand parses its first argument as a single dice sub-expression
// ("4d6k3", "10d10es8") and rolls it, printing the result.
func RollCommand(c *cli.Context) error {
	arg := c.Args().Get(0)

	d, err := dice.ParseDice(arg)
	if err != nil {
		return err
	}
	result, err := d.Roll(context.Background())
	if err != nil {
		return err
	}
	out, err := Output(c, result)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

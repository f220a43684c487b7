package command

import (
	"context"
	"fmt"

	dice "github.com/mapdice/dicecore"
	"github.com/urfave/cli"
)

// EvalCommand evaluates its first argument as a full compound dice
// expression ("2d20+5", "4d6-3d5+30") and prints the result.
func EvalCommand(c *cli.Context) error {
	expr := c.Args().Get(0)

	roll, err := dice.Parse(expr)
	if err != nil {
		return err
	}
	result, err := roll.Evaluate(context.Background())
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

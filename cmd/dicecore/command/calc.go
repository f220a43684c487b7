package command

import (
	"fmt"

	"github.com/mapdice/dicecore/calc"
	"github.com/urfave/cli"
)

// CalcCommand evaluates its first argument as a plain arithmetic
// expression, with standard operator precedence and calc.Functions
// available (min, max, floor, ceil, round, abs).
func CalcCommand(c *cli.Context) error {
	expr := c.Args().Get(0)

	result, err := calc.Evaluate(expr)
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

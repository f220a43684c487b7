package command

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	dice "github.com/mapdice/dicecore"
	"github.com/mapdice/dicecore/calc"
	"github.com/urfave/cli"
)

const replPrompt = ">>> "

// REPLCommand reads lines from stdin and evaluates each: first as a
// compound dice expression, falling back to a plain calc expression if
// that fails to parse. "quit" exits.
func REPLCommand(c *cli.Context) error {
	scanner := bufio.NewScanner(os.Stdin)

	in, _ := os.Stdin.Stat()
	interactive := (in.Mode() & os.ModeCharDevice) != 0

	for {
		if interactive {
			fmt.Fprint(os.Stderr, replPrompt)
		}
		if !scanner.Scan() {
			return nil
		}

		line := scanner.Text()
		if line == "quit" {
			return nil
		}
		if line == "" {
			continue
		}

		out, err := evalLine(c, line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(out)
	}
}

func evalLine(c *cli.Context, line string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if roll, err := dice.Parse(line); err == nil {
		result, err := roll.Evaluate(ctx)
		if err != nil {
			return "", err
		}
		return Output(c, result)
	}

	result, err := calc.Evaluate(line)
	if err != nil {
		return "", err
	}
	return Output(c, result)
}

package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"
)

// Output prints an interface based on the desired format: plain (default,
// fmt.Stringer), a columnize table, JSON, or YAML.
func Output(c *cli.Context, i interface{}) (string, error) {
	switch format := strings.ToLower(c.String("format")); format {
	case "":
		return fmt.Sprintf("%s", i), nil
	case "table":
		return toTable(i)
	case "json":
		return toJSON(i)
	case "yaml", "yml":
		data, err := toMapStringInterface(i)
		if err != nil {
			return "", err
		}
		return toYaml(data)
	default:
		return "", fmt.Errorf("requested format %v unhandled", format)
	}
}

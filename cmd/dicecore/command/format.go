package command

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ryanuber/columnize"
	yaml "gopkg.in/yaml.v2"

	dice "github.com/mapdice/dicecore"
)

var (
	// delim separates columns in columnize's input lines; it's chosen to be
	// a character a die face/seq/total never contains.
	delim = `⚅`
)

// generic `interface{}` to `map[string]interface{}` converter.
func toMapStringInterface(i interface{}) (map[string]interface{}, error) {
	if quick, ok := i.(map[string]interface{}); ok {
		return quick, nil
	}
	var out map[string]interface{}
	tmp, err := json.Marshal(i)
	if err != nil {
		return nil, err
	}
	json.Unmarshal(tmp, &out)
	return out, nil
}

// generic `interface{}` to JSON string function
func toJSON(i interface{}) (string, error) {
	b, err := json.Marshal(i)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// toTable renders i as a columnized table. A *dice.CompoundResult or
// *dice.DiceResult gets one row per individual roll plus a trailing total
// row, since the generic key/value flattening below reads poorly for a
// result whose interesting content is a slice of rolled sequences.
// Anything else (a *calc.Result, a map) falls back to one row per
// top-level field, sorted by key.
func toTable(i interface{}) (string, error) {
	switch v := i.(type) {
	case *dice.CompoundResult:
		return rollTable(v.Individuals, v.Total.String())
	case *dice.DiceResult:
		return rollTable([]*dice.DiceResult{v}, v.String())
	}

	data, err := toMapStringInterface(i)
	if err != nil {
		return "", err
	}
	return fieldTable(data)
}

func rollTable(individuals []*dice.DiceResult, total string) (string, error) {
	rows := make([]string, 0, len(individuals)+2)
	rows = append(rows, strings.Join([]string{"die", "seq", "subtotal", "truly_random"}, delim))
	for idx, r := range individuals {
		seq := make([]string, len(r.Seq))
		for i, v := range r.Seq {
			seq[i] = strconv.Itoa(v)
		}
		rows = append(rows, fmt.Sprintf("%d%s%s%s%d%s%t",
			idx, delim, strings.Join(seq, ","), delim, r.Aggregate(), delim, r.TrulyRandom))
	}
	rows = append(rows, fmt.Sprintf("%s%s%s%s%s%s%s", "-", delim, "-", delim, total, delim, "-"))
	return columnOutput(rows, &columnize.Config{Delim: delim}), nil
}

func fieldTable(data map[string]interface{}) (string, error) {
	props := make([]string, 0, len(data))
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		props = append(props, fmt.Sprintf("%s %s %v", k, delim, data[k]))
	}
	return columnOutput(props, &columnize.Config{Delim: delim}), nil
}

func columnOutput(list []string, c *columnize.Config) string {
	if len(list) == 0 {
		return ""
	}

	if c == nil {
		c = &columnize.Config{}
	}
	if c.Glue == "" {
		c.Glue = "    "
	}
	if c.Empty == "" {
		c.Empty = "n/a"
	}

	return columnize.Format(list, c)
}

func toYaml(data map[string]interface{}) (string, error) {
	tmp, err := yaml.Marshal(data)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(tmp)), nil
}

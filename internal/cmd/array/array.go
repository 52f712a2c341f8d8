// Package array implements the hseq array command.
package array

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/geofduf/hetseq/array"
	"github.com/geofduf/hetseq/internal/cmd/input"
	logutil "github.com/geofduf/hetseq/internal/util/log"
	"github.com/geofduf/hetseq/shape"
)

var flags = append([]cli.Flag{
	&cli.IntFlag{
		Name:        "capacity",
		Aliases:     []string{"c"},
		Usage:       "buffer capacity in `bytes`",
		DefaultText: "sum of the value sizes",
		EnvVars:     []string{"HSEQ_CAPACITY"},
	},
}, input.Flags...)

// Command returns the array command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "array",
		Usage:     "pack plain-data values into a fixed buffer and print them",
		ArgsUsage: " ",
		Flags:     flags,
		Action:    run,
	}
}

func run(c *cli.Context) error {
	log := logutil.New(c).WithField("cmd", "array")

	flag, err := input.Serialization(c)
	if err != nil {
		return err
	}

	values, err := input.Read(c)
	if err != nil {
		return err
	}

	a, err := build(c, values)
	if err != nil {
		return err
	}
	log.WithField("size", a.Size()).
		WithField("capacity", a.Cap()).
		Debug("packed")

	if c.IsSet("index") {
		_, err = fmt.Fprintln(c.App.Writer, a.Index(c.Int("index")))
		return err
	}

	_, err = fmt.Fprintf(c.App.Writer, "%s\n", render(a, c.Bool("reverse"), flag))
	return err
}

func build(c *cli.Context, values []any) (*array.Array, error) {
	if !c.IsSet("capacity") {
		return array.Of(values...)
	}

	a := array.New(c.Int("capacity"))
	for i, v := range values {
		next, err := a.Push(v)
		if err != nil {
			return nil, errors.Wrapf(err, "value %d", i)
		}
		a = next
	}
	return a, nil
}

// render walks a with a cursor in the requested direction.
func render(a *array.Array, reverse bool, flag int) []byte {
	c := a.Forward()
	if reverse {
		c = a.Backward()
	}
	s := c.Ahead()

	var values []any
	for ; !c.Done(); c = c.Next() {
		v, err := c.Value()
		if err != nil {
			break
		}
		values = append(values, v)
	}
	return shape.Serialize(s, values, flag)
}

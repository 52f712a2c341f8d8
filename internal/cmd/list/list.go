// Package list implements the hseq list command.
package list

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/geofduf/hetseq/internal/cmd/input"
	logutil "github.com/geofduf/hetseq/internal/util/log"
	"github.com/geofduf/hetseq/list"
	"github.com/geofduf/hetseq/shape"
)

// Command returns the list command.
func Command() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "build a heap-linked sequence and print it",
		ArgsUsage: " ",
		Flags:     input.Flags,
		Action:    run,
	}
}

func run(c *cli.Context) error {
	log := logutil.New(c).WithField("cmd", "list")

	flag, err := input.Serialization(c)
	if err != nil {
		return err
	}

	values, err := input.Read(c)
	if err != nil {
		return err
	}

	l := list.New()
	for _, v := range values {
		l = l.Push(v)
		log.WithField("type", fmt.Sprintf("%T", v)).Debug("pushed")
	}

	if c.IsSet("index") {
		_, err = fmt.Fprintln(c.App.Writer, l.Index(c.Int("index")))
	} else {
		_, err = fmt.Fprintf(c.App.Writer, "%s\n", render(l, c.Bool("reverse"), flag))
	}

	n := l.Len()
	if cerr := l.Close(); cerr != nil {
		log.WithError(cerr).Error("teardown failed")
		if err == nil {
			err = cerr
		}
	}
	log.WithField("count", n).Debug("released")
	return err
}

// render walks l with a cursor in the requested direction.
func render(l *list.List, reverse bool, flag int) []byte {
	c := l.Forward()
	if reverse {
		c = l.Backward()
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

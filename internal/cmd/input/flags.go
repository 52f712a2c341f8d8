package input

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/geofduf/hetseq/shape"
)

// Flags shared by the sequence commands.
var Flags = []cli.Flag{
	&cli.PathFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "read the YAML values from `path`",
		Value:   "-",
		EnvVars: []string{"HSEQ_INPUT"},
	},
	&cli.BoolFlag{
		Name:    "reverse",
		Aliases: []string{"r"},
		Usage:   "walk the sequence backward",
	},
	&cli.IntFlag{
		Name:    "index",
		Aliases: []string{"k"},
		Usage:   "print the value at `position` instead of the whole sequence",
	},
	&cli.StringFlag{
		Name:  "fields",
		Usage: "comma-separated `fields` to print: type, offset, size, value or all",
		Value: "type,value",
	},
}

// Read decodes the values named by the --input flag. "-" reads the
// application's standard input.
func Read(c *cli.Context) ([]any, error) {
	var r io.Reader = c.App.Reader
	if path := c.Path("input"); path != "-" && path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return Decode(r)
}

// Serialization returns the shape.Serialize flag selected by --fields.
func Serialization(c *cli.Context) (int, error) {
	var flag int
	for _, name := range strings.Split(c.String("fields"), ",") {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "type":
			flag |= shape.SerializeType
		case "offset":
			flag |= shape.SerializeOffset
		case "size":
			flag |= shape.SerializeSize
		case "value":
			flag |= shape.SerializeValue
		case "all":
			flag |= shape.SerializeAll
		default:
			return 0, errors.Wrapf(ErrInput, "unknown field %q", name)
		}
	}
	return flag, nil
}

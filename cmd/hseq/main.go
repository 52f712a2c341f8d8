package main

import (
	"os"

	"github.com/lthibault/log"
	"github.com/urfave/cli/v2"

	"github.com/geofduf/hetseq"
	"github.com/geofduf/hetseq/internal/cmd/array"
	"github.com/geofduf/hetseq/internal/cmd/list"
	logutil "github.com/geofduf/hetseq/internal/util/log"
)

var commands = []*cli.Command{
	list.Command(),
	array.Command(),
}

func main() {
	run(&cli.App{
		Name:                 "hseq",
		Usage:                "build and inspect heterogeneous sequences",
		UsageText:            "hseq [global options] command [command options]",
		Version:              hetseq.Version,
		EnableBashCompletion: true,
		Flags:                logutil.Flags,
		Commands:             commands,
		Metadata: map[string]interface{}{
			"version": hetseq.Version,
		},
	})
}

func run(app *cli.App) {
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// Package logutil configures the hseq logger from command-line flags.
package logutil

import (
	"github.com/lthibault/log"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/geofduf/hetseq"
)

// Flags declares the logging flags read by New.
var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:    "logfmt",
		Aliases: []string{"f"},
		Usage:   "`format` logs as text, json or none",
		Value:   "text",
		EnvVars: []string{"HSEQ_LOGFMT"},
	},
	&cli.StringFlag{
		Name:    "loglvl",
		Usage:   "set logging `level` to trace, debug, info, warn, error or fatal",
		Value:   "info",
		EnvVars: []string{"HSEQ_LOGLVL"},
	},
}

// levels maps the accepted spellings of -loglvl. Unknown names fall back to
// info.
var levels = map[string]log.Level{
	"trace": log.TraceLevel, "t": log.TraceLevel,
	"debug": log.DebugLevel, "d": log.DebugLevel,
	"info": log.InfoLevel, "i": log.InfoLevel,
	"warn": log.WarnLevel, "warning": log.WarnLevel, "w": log.WarnLevel,
	"error": log.ErrorLevel, "err": log.ErrorLevel, "e": log.ErrorLevel,
	"fatal": log.FatalLevel, "f": log.FatalLevel,
}

// metadataKey caches the logger in cli.App.Metadata.
const metadataKey = "hseq.logger"

// New returns the logger of the running app, creating it on first use. The
// logger writes to the app's ErrWriter and carries the module version.
func New(c *cli.Context) log.Logger {
	if logger, ok := c.App.Metadata[metadataKey].(log.Logger); ok {
		return logger
	}

	logger := log.New(
		WithLevel(c),
		WithFormat(c),
		log.WithWriter(c.App.ErrWriter)).
		WithField("version", hetseq.Version)

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata[metadataKey] = logger
	return logger
}

// WithLevel returns the level option selected by -loglvl. The "none" format
// silences everything below fatal.
func WithLevel(c *cli.Context) log.Option {
	if c.String("logfmt") == "none" {
		return log.WithLevel(log.FatalLevel)
	}
	level, ok := levels[c.String("loglvl")]
	if !ok {
		level = log.InfoLevel
	}
	return log.WithLevel(level)
}

// WithFormat returns the formatter option selected by -logfmt.
func WithFormat(c *cli.Context) log.Option {
	if c.String("logfmt") == "json" {
		return log.WithFormatter(new(logrus.JSONFormatter))
	}
	return log.WithFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

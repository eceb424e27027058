// Package logging configures the shared logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Options selects the level and output format of the logger.
type Options struct {
	Level  string
	Format string // "text" or "json"
	Output io.Writer
}

// Setup applies opts to the standard logrus logger and returns it.
func Setup(opts Options) (*logrus.Logger, error) {
	log := logrus.StandardLogger()

	level := logrus.InfoLevel
	if opts.Level != "" {
		l, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = l
	}
	log.SetLevel(level)

	switch opts.Format {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{}) // structured logging
	default:
		return nil, fmt.Errorf("logging: unknown format %q", opts.Format)
	}

	if opts.Output != nil {
		log.SetOutput(opts.Output)
	} else {
		log.SetOutput(os.Stderr)
	}
	return log, nil
}

// For returns an entry tagged with the component name.
func For(component string) *logrus.Entry {
	return logrus.WithField("component", component)
}

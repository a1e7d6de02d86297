// Package logging configures the zerolog logger the styling system reports
// through. Injection warnings are developer-console output; they never
// interrupt rendering.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// New creates a configured zerolog.Logger based on Options.
func New(opts Options) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.WarnLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		output = console
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("component", "tachui").
		Logger(), nil
}

// Default returns the stderr warn-level logger used when none is supplied.
func Default() zerolog.Logger {
	logger, _ := New(Options{})
	return logger
}

// Package logging builds the charmbracelet logger used by the CLI and the
// platform backends. The terminal belongs to the game while it runs, so
// logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options configures a logger.
type Options struct {
	Level string // debug, info, warn or error; empty means info
	File  string // Log file path; empty discards output
}

// New creates a logger from opts. The returned close function releases the
// log file and is safe to call when no file was opened.
func New(opts Options) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var w io.Writer = io.Discard
	closeFn := func() error { return nil }

	if opts.File != "" {
		if dir := filepath.Dir(opts.File); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("logging: cannot create directory %s: %w", dir, err)
			}
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open %s: %w", opts.File, err)
		}
		w = f
		closeFn = f.Close
	}

	return newLogger(w, level), closeFn, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return newLogger(io.Discard, log.InfoLevel)
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dragon",
		Level:           level,
	})
}

// Package logging builds the diagnostic logger. The terminal is owned
// by the TUI for the whole run, so diagnostics go to a local file, never
// to stderr.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultPath is the diagnostic log file, written to the working
// directory alongside saved search results.
const DefaultPath = ".sbsearch.log"

// New returns a logger writing to path at the given level. An empty
// level disables logging entirely (no file is created).
func New(path, level string) (*zap.Logger, error) {
	if level == "" {
		return zap.NewNop(), nil
	}

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

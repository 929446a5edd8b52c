package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// Formats lists the accepted output format names, including short aliases.
var Formats = []string{"json", "text", "txt", "markdown", "md"}

// Encodings lists the tiktoken encodings textstat accepts.
var Encodings = []string{"cl100k_base", "o200k_base", "p50k_base", "r50k_base"}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Analysis.Top <= 0 {
		return errors.New("analysis.top must be greater than 0")
	}
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("output.format %q is not one of %v", c.Output.Format, Formats)
	}
	if !slices.Contains(Encodings, c.Tokens.Encoding) {
		return fmt.Errorf("tokens.encoding %q is not one of %v", c.Tokens.Encoding, Encodings)
	}
	if _, ok := logLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

// SlogLevel returns the configured log level. Unknown levels map to error.
func (c *Config) SlogLevel() slog.Level {
	if level, ok := logLevels[c.Logging.Level]; ok {
		return level
	}
	return slog.LevelError
}

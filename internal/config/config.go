// Package config provides configuration for the chess engine and its driver.
package config

import (
	"fmt"
	"io"
	"os"
)

// Verbosity levels understood by Logf.
const (
	Quiet      = 0 // nothing
	GameEvents = 1 // new games, outcomes, loaded movetext
	Commentary = 2 // every commit and search summaries
)

// Config holds all engine configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=game events, 2=running commentary

	// Sub-configurations
	Search   *SearchConfig
	Notation *NotationConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  GameEvents,
		Search:     NewSearchConfig(),
		Notation:   NewNotationConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
// A nil Config logs nothing.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if c.Search != nil {
		if err := c.Search.Validate(); err != nil {
			return err
		}
	}
	return nil
}

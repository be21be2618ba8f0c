// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

var (
	// Position options
	fenString = flag.String("fen", "", "Start position in FEN (default: initial position)")
	movesText = flag.String("moves", "", "SAN movetext to play from the start position")
	movesFile = flag.String("movesfile", "", "File containing SAN movetext to play")

	// Move generation checks
	perftDepth  = flag.Int("perft", 0, "Count leaf nodes at each depth up to N")
	divideDepth = flag.Int("divide", 0, "Count leaf nodes below each root move at depth N")

	// Search options
	strategyName = flag.String("strategy", "auto", "Search strategy: auto, minimax, ply")
	difficulty   = flag.Int("difficulty", 2, "Difficulty for -strategy auto: 0 and 1 use ply search, n>=2 minimax of 2n plies")
	depth        = flag.Int("depth", 0, "Search depth in plies for -strategy minimax or ply (0 = strategy default)")
	workers      = flag.Int("workers", 1, "Number of goroutines scoring root moves")
	seed         = flag.Int64("seed", 0, "Random seed for ply search (0 = clock)")
	margin       = flag.Int("margin", 25, "Score window for near-best moves in ply search")
	selfPlay     = flag.Int("selfplay", 0, "Let the engine play N plies against itself")

	// Notation options
	strictSAN    = flag.Bool("strict-san", false, "Reject SAN tokens that match more than one move")
	outputFormat = flag.String("W", "san", "Move output format: san, uci")

	// Logging
	verbosity = flag.Int("v", config.GameEvents, "Verbosity: 0 quiet, 1 game events, 2 search commentary")
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applySearchFlags(cfg); err != nil {
		return err
	}
	if err := applyNotationFlags(cfg); err != nil {
		return err
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Quiet
	}
	return cfg.Validate()
}

// applySearchFlags configures the search strategy.
func applySearchFlags(cfg *config.Config) error {
	strategy, err := config.ParseStrategy(*strategyName)
	if err != nil {
		return err
	}

	cfg.Search.Strategy = strategy
	cfg.Search.Difficulty = *difficulty
	cfg.Search.Workers = *workers
	cfg.Search.Seed = *seed
	cfg.Search.Margin = *margin

	switch {
	case *depth > 0:
		cfg.Search.Depth = *depth
	case strategy == config.StrategyPlySearch:
		cfg.Search.Depth = 2
	}
	return nil
}

// applyNotationFlags configures move input and output.
func applyNotationFlags(cfg *config.Config) error {
	formatMap := map[string]config.OutputFormat{
		"san": config.SAN,
		"uci": config.UCI,
	}

	format, ok := formatMap[*outputFormat]
	if !ok {
		return fmt.Errorf("unknown output format %q: %w", *outputFormat, errors.ErrInvalidConfig)
	}
	cfg.Notation.Format = format
	cfg.Notation.StrictDisambiguation = *strictSAN
	return nil
}

package config

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Strategy selects the move-choosing algorithm.
type Strategy int

const (
	StrategyAuto      Strategy = iota // derived from Difficulty
	StrategyMiniMax                   // fixed-depth minimax
	StrategyPlySearch                 // heuristic one or two ply search
)

// String returns the flag spelling of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyMiniMax:
		return "minimax"
	case StrategyPlySearch:
		return "ply"
	default:
		return "auto"
	}
}

// ParseStrategy parses the flag spelling of a strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "auto":
		return StrategyAuto, nil
	case "minimax":
		return StrategyMiniMax, nil
	case "ply":
		return StrategyPlySearch, nil
	}
	return StrategyAuto, fmt.Errorf("unknown strategy %q: %w", name, errors.ErrInvalidConfig)
}

// SearchConfig holds settings for move search.
type SearchConfig struct {
	// Strategy picks the algorithm; StrategyAuto maps Difficulty to one
	Strategy Strategy

	// Depth is the search depth in plies for explicit strategies
	Depth int

	// Difficulty is the level used by StrategyAuto
	Difficulty int

	// Workers evaluates root moves concurrently when greater than 1
	Workers int

	// Seed drives the random choice among near-best moves; 0 uses the clock
	Seed int64

	// Margin is the score window for near-best moves in ply search
	Margin int

	// MateBonus is added to moves that deliver mate in ply search
	MateBonus int

	// WinningThreshold is the side-relative score above which ply search
	// avoids lines that allow a threefold repetition
	WinningThreshold int
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Strategy:         StrategyAuto,
		Depth:            4,
		Difficulty:       2,
		Workers:          1,
		Margin:           25,
		MateBonus:        10000,
		WinningThreshold: 200,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	switch s.Strategy {
	case StrategyAuto:
		if s.Difficulty < 0 {
			return fmt.Errorf("difficulty (%d) < 0: %w", s.Difficulty, errors.ErrInvalidConfig)
		}
	case StrategyMiniMax:
		if s.Depth < 1 {
			return fmt.Errorf("minimax depth (%d) < 1: %w", s.Depth, errors.ErrInvalidConfig)
		}
	case StrategyPlySearch:
		if s.Depth < 1 || s.Depth > 2 {
			return fmt.Errorf("ply search depth (%d) not 1 or 2: %w", s.Depth, errors.ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("unknown strategy %d: %w", s.Strategy, errors.ErrInvalidConfig)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers (%d) < 0: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.Margin < 0 {
		return fmt.Errorf("margin (%d) < 0: %w", s.Margin, errors.ErrInvalidConfig)
	}
	return nil
}

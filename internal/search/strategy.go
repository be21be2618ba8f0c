package search

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
)

// MoveStrategy chooses a move for the side to move. It returns
// chess.NullMove when there is none.
type MoveStrategy interface {
	ChooseMove(pos *chess.Position) chess.Move
}

// ForDifficulty maps a difficulty level to a strategy: 0 is a greedy one-ply
// search, 1 a two-ply search, and n >= 2 a minimax of 2n plies.
func ForDifficulty(level int, tracker RepetitionChecker, cfg *config.Config) MoveStrategy {
	sc := searchConfig(cfg)
	switch {
	case level <= 0:
		return NewPlySearch(1, tracker, sc).WithLogging(cfg)
	case level == 1:
		return NewPlySearch(2, tracker, sc).WithLogging(cfg)
	default:
		return NewMiniMax(2*level, WithWorkers(sc.Workers), WithConfig(cfg))
	}
}

// NewFromConfig builds the strategy named by cfg.Search.
func NewFromConfig(cfg *config.Config, tracker RepetitionChecker) (MoveStrategy, error) {
	sc := searchConfig(cfg)
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("search strategy: %w", err)
	}

	switch sc.Strategy {
	case config.StrategyMiniMax:
		return NewMiniMax(sc.Depth, WithWorkers(sc.Workers), WithConfig(cfg)), nil
	case config.StrategyPlySearch:
		return NewPlySearch(sc.Depth, tracker, sc).WithLogging(cfg), nil
	default:
		return ForDifficulty(sc.Difficulty, tracker, cfg), nil
	}
}

func searchConfig(cfg *config.Config) *config.SearchConfig {
	if cfg == nil || cfg.Search == nil {
		return config.NewSearchConfig()
	}
	return cfg.Search
}

package notation

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// FindMove returns the legal move of the side to move described by a SAN
// token. Check marks and annotations are ignored, and an origin file or rank
// in the token always narrows the match.
//
// In the default permissive mode a token that still matches several moves
// resolves to the first in generation order, a missing or non-queen
// promotion piece is accepted, and both cases are logged. With
// cfg.Notation.StrictDisambiguation such tokens fail with ErrAmbiguousMove
// or ErrNoMatchingMove.
func FindMove(pos *chess.Position, text string, cfg *config.Config) (chess.Move, error) {
	tok, err := decode(text)
	if err != nil {
		return chess.NullMove, err
	}
	strict := cfg != nil && cfg.Notation != nil && cfg.Notation.StrictDisambiguation

	var candidates []chess.Move
	for _, m := range engine.LegalMoves(pos) {
		if !tok.matches(m) {
			continue
		}
		if m.IsPromotion() && tok.promotion != chess.Queen {
			if strict {
				continue
			}
			cfg.Logf(config.GameEvents, "%s: promoting to a queen\n", text)
		}
		if !m.IsPromotion() && tok.promotion != chess.Empty {
			continue
		}
		candidates = append(candidates, m)
	}

	switch {
	case len(candidates) == 0:
		return chess.NullMove, fmt.Errorf("%q in %s: %w", text, engine.ToFEN(pos), errors.ErrNoMatchingMove)
	case len(candidates) == 1:
		return candidates[0], nil
	case strict:
		return chess.NullMove, fmt.Errorf("%q matches %d moves: %w", text, len(candidates), errors.ErrAmbiguousMove)
	}
	cfg.Logf(config.GameEvents, "%s: ambiguous, %d candidates, playing %s\n",
		text, len(candidates), Render(pos, candidates[0]))
	return candidates[0], nil
}

// Format renders a move in the notation selected by cfg.Notation.Format.
func Format(pos *chess.Position, m chess.Move, cfg *config.Config) string {
	if cfg != nil && cfg.Notation != nil && cfg.Notation.Format == config.UCI {
		return m.UCI()
	}
	return Render(pos, m)
}

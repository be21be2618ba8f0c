package game

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/hashing"
)

// Outcome is the state of a game as seen from its current position.
type Outcome int

const (
	InProgress Outcome = iota
	Checkmate
	Stalemate
	ThreefoldRepetition
	InsufficientMaterial
)

// String returns the name of the outcome.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case ThreefoldRepetition:
		return "threefold repetition"
	case InsufficientMaterial:
		return "insufficient material"
	default:
		return "unknown"
	}
}

// IsOver reports whether the outcome ends the game.
func (o Outcome) IsOver() bool {
	return o != InProgress
}

// IsDraw reports whether the outcome ends the game without a winner.
func (o Outcome) IsDraw() bool {
	return o == Stalemate || o == ThreefoldRepetition || o == InsufficientMaterial
}

// Result returns the PGN result string for pos under outcome o.
func (o Outcome) Result(pos *chess.Position) string {
	switch {
	case o == Checkmate:
		return chess.Choose(pos.NextMoveMaker(), "0-1", "1-0")
	case o.IsDraw():
		return "1/2-1/2"
	default:
		return "*"
	}
}

// classify decides the outcome of pos. Mate and stalemate take precedence
// over the draw rules.
func classify(pos *chess.Position, tracker *hashing.ThreadSafeRepetitionTracker) Outcome {
	switch engine.Classify(pos) {
	case engine.Checkmate:
		return Checkmate
	case engine.Stalemate:
		return Stalemate
	}
	if tracker != nil && tracker.IsThreefold(pos) {
		return ThreefoldRepetition
	}
	if engine.HasInsufficientMaterial(pos) {
		return InsufficientMaterial
	}
	return InProgress
}

package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// GameStatus classifies a position from the side to move's point of view.
type GameStatus int

const (
	Normal GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the name of the status.
func (s GameStatus) String() string {
	switch s {
	case Normal:
		return "Normal"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Unknown"
	}
}

// Classify returns the status of the side to move.
func Classify(pos *chess.Position) GameStatus {
	p := CurrentPlayer(pos)
	switch {
	case p.IsInCheckMate():
		return Checkmate
	case p.IsInStaleMate():
		return Stalemate
	case p.IsInCheck():
		return Check
	default:
		return Normal
	}
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return CurrentPlayer(pos).IsInCheckMate()
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return CurrentPlayer(pos).IsInStaleMate()
}

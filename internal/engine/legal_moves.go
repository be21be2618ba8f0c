package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// LegalMoves returns the legal moves of the side to move on pos.
func LegalMoves(pos *chess.Position) []chess.Move {
	return CurrentPlayer(pos).LegalMoves()
}

// MoveFromSquares returns the candidate move of the side to move that goes
// from one square to another, or chess.NullMove if there is none.
func MoveFromSquares(pos *chess.Position, from, to int) chess.Move {
	for _, m := range CurrentPlayer(pos).CandidateMoves() {
		if m.From() == from && m.Dest == to {
			return m
		}
	}
	return chess.NullMove
}

// MakeMove attempts move for the side to move on pos.
func MakeMove(pos *chess.Position, move chess.Move) MoveTransition {
	return CurrentPlayer(pos).MakeMove(move)
}

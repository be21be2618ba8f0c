package engine

import (
	"fmt"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Execute applies move to the position it was generated from and returns
// the resulting position. The source position is left untouched. Execute
// does not check legality; use Player.MakeMove for that.
func Execute(move chess.Move) (*chess.Position, error) {
	if move.IsNull() {
		return nil, fmt.Errorf("executing the null move: %w", errors.ErrInvalidOperation)
	}
	if move.Board == nil {
		return nil, fmt.Errorf("move %s has no source position: %w", move, errors.ErrInvalidOperation)
	}

	switch move.Kind {
	case chess.PawnPromotion:
		return executePromotion(move)
	case chess.KingSideCastle, chess.QueenSideCastle:
		return executeCastle(move)
	default:
		return executeSimple(move)
	}
}

// executeSimple handles quiet moves, captures and pawn moves.
func executeSimple(move chess.Move) (*chess.Position, error) {
	board := move.Board
	b := chess.NewBuilder()

	for _, piece := range board.AllActivePieces() {
		if piece == move.Piece {
			continue
		}
		// The en-passant victim is removed by identity; it is not on Dest.
		if move.IsAttack() && piece == move.Captured {
			continue
		}
		b.SetPiece(piece)
	}

	moved := move.Piece.MovedTo(move.Dest)
	b.SetPiece(moved)
	if move.Kind == chess.PawnJump {
		b.SetEnPassantPawn(moved)
	}
	b.SetMoveMaker(board.NextMoveMaker().Opposite())
	return b.Build()
}

// executePromotion executes the wrapped pawn move, then swaps the pawn
// for a queen on the destination square.
func executePromotion(move chess.Move) (*chess.Position, error) {
	if move.Inner == nil {
		return nil, fmt.Errorf("promotion without pawn move: %w", errors.ErrInvalidOperation)
	}
	after, err := Execute(*move.Inner)
	if err != nil {
		return nil, err
	}

	b := chess.NewBuilder()
	for _, piece := range after.AllActivePieces() {
		if piece.Square != move.Dest {
			b.SetPiece(piece)
		}
	}
	queen := chess.NewPiece(chess.Queen, move.Piece.Alliance, move.Dest).MovedTo(move.Dest)
	b.SetPiece(queen)
	b.SetMoveMaker(after.NextMoveMaker())
	return b.Build()
}

// executeCastle relocates king and rook in one step.
func executeCastle(move chess.Move) (*chess.Position, error) {
	board := move.Board
	b := chess.NewBuilder()

	for _, piece := range board.AllActivePieces() {
		if piece == move.Piece || piece == move.Rook {
			continue
		}
		b.SetPiece(piece)
	}
	b.SetPiece(move.Piece.MovedTo(move.Dest))
	b.SetPiece(move.Rook.MovedTo(move.RookDest))
	b.SetMoveMaker(board.NextMoveMaker().Opposite())
	return b.Build()
}

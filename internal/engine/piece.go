// Package engine implements the rules of chess on top of the immutable
// positions in package chess: move generation, execution, legality and
// game status.
package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// generator produces the pseudo-legal moves of one piece.
type generator func(pos *chess.Position, piece chess.Piece) []chess.Move

var generators [chess.NumPieceKinds]generator

func init() {
	generators[chess.Pawn] = pawnMoves
	generators[chess.Knight] = knightMoves
	generators[chess.Bishop] = slidingMoves(bishopOffsets[:])
	generators[chess.Rook] = slidingMoves(rookOffsets[:])
	generators[chess.Queen] = slidingMoves(queenOffsets[:])
	generators[chess.King] = kingMoves
}

// CalculateMoves returns the pseudo-legal moves of piece on pos: every move
// allowed by the piece's movement pattern, ignoring whether the mover's own
// king ends up attacked. Castles are not included.
func CalculateMoves(pos *chess.Position, piece chess.Piece) []chess.Move {
	if piece.IsEmpty() || piece.Kind >= chess.NumPieceKinds {
		return nil
	}
	return generators[piece.Kind](pos, piece)
}

// PseudoLegalMoves returns the pseudo-legal moves of every piece of the
// given alliance, in square order.
func PseudoLegalMoves(pos *chess.Position, alliance chess.Alliance) []chess.Move {
	var moves []chess.Move
	for _, piece := range pos.ActivePieces(alliance) {
		moves = append(moves, CalculateMoves(pos, piece)...)
	}
	return moves
}

// occupantMove returns the move of piece onto dest: quiet when dest is
// empty, an attack when it holds an enemy piece. ok is false when dest
// holds a friendly piece.
func occupantMove(pos *chess.Position, piece chess.Piece, dest int) (chess.Move, bool) {
	target := pos.PieceAt(dest)
	if target.IsEmpty() {
		return chess.NewMajorMove(pos, piece, dest), true
	}
	if target.Alliance != piece.Alliance {
		return chess.NewAttackMove(pos, piece, dest, target), true
	}
	return chess.Move{}, false
}

func knightMoves(pos *chess.Position, piece chess.Piece) []chess.Move {
	var moves []chess.Move
	for _, offset := range knightOffsets {
		dest := piece.Square + offset
		if !chess.IsValidSquare(dest) || knightExcluded(piece.Square, offset) {
			continue
		}
		if m, ok := occupantMove(pos, piece, dest); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

func kingMoves(pos *chess.Position, piece chess.Piece) []chess.Move {
	var moves []chess.Move
	for _, offset := range kingOffsets {
		dest := piece.Square + offset
		if !chess.IsValidSquare(dest) || stepExcluded(piece.Square, offset) {
			continue
		}
		if m, ok := occupantMove(pos, piece, dest); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// slidingMoves builds a generator that walks each offset until it leaves
// the board or meets a piece.
func slidingMoves(offsets []int) generator {
	return func(pos *chess.Position, piece chess.Piece) []chess.Move {
		var moves []chess.Move
		for _, offset := range offsets {
			rayWalk(piece.Square, offset, func(dest int) bool {
				m, ok := occupantMove(pos, piece, dest)
				if ok {
					moves = append(moves, m)
				}
				return !pos.IsOccupied(dest)
			})
		}
		return moves
	}
}

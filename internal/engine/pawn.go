package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

var pawnOffsets = [...]int{8, 16, 7, 9}

// pawnMoves generates pushes, double steps, diagonal captures and en-passant
// captures. Any move reaching the far rank is wrapped as a promotion.
func pawnMoves(pos *chess.Position, pawn chess.Piece) []chess.Move {
	var moves []chess.Move
	dir := pawn.Alliance.Direction()

	for _, offset := range pawnOffsets {
		dest := pawn.Square + dir*offset
		if !chess.IsValidSquare(dest) {
			continue
		}

		switch offset {
		case 8:
			if !pos.IsOccupied(dest) {
				moves = append(moves, promoteIfNeeded(chess.NewPawnMove(pos, pawn, dest)))
			}

		case 16:
			if !pawn.FirstMove || !pawn.Alliance.IsPawnStartSquare(pawn.Square) {
				continue
			}
			behind := pawn.Square + dir*8
			if !pos.IsOccupied(behind) && !pos.IsOccupied(dest) {
				moves = append(moves, chess.NewPawnJump(pos, pawn, dest))
			}

		case 7, 9:
			if pawnCaptureExcluded(pawn.Square, pawn.Alliance, offset) {
				continue
			}
			if m, ok := pawnCapture(pos, pawn, dest, offset); ok {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// pawnCapture returns the diagonal capture onto dest, or the en-passant
// capture of the enemy pawn beside the mover on that side.
func pawnCapture(pos *chess.Position, pawn chess.Piece, dest, offset int) (chess.Move, bool) {
	if target := pos.PieceAt(dest); !target.IsEmpty() {
		if target.Alliance == pawn.Alliance {
			return chess.Move{}, false
		}
		return promoteIfNeeded(chess.NewPawnAttack(pos, pawn, dest, target)), true
	}

	ep, ok := pos.EnPassantPawn()
	if !ok || ep.Alliance == pawn.Alliance {
		return chess.Move{}, false
	}

	// The captured pawn stands beside the mover, on the file of dest.
	beside := pawn.Square + pawn.Alliance.OppositeDirection()
	if offset == 9 {
		beside = pawn.Square + pawn.Alliance.Direction()
	}
	if ep.Square != beside {
		return chess.Move{}, false
	}
	return chess.NewPawnEnPassantAttack(pos, pawn, dest, ep), true
}

func promoteIfNeeded(m chess.Move) chess.Move {
	if m.Piece.Alliance.IsPawnPromotionSquare(m.Dest) {
		return chess.NewPawnPromotion(m)
	}
	return m
}

package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// IsInCheck returns true if the given alliance's king is attacked.
func IsInCheck(pos *chess.Position, alliance chess.Alliance) bool {
	king := pos.King(alliance)
	if king.IsEmpty() {
		return false
	}
	return IsSquareAttacked(pos, king.Square, alliance.Opposite())
}

// IsSquareAttacked returns true if a piece of the given alliance could move
// to or capture on sq. The probe works outward from sq instead of generating
// every enemy move; pawns count only along their capture diagonals.
func IsSquareAttacked(pos *chess.Position, sq int, by chess.Alliance) bool {
	return pawnAttacks(pos, sq, by) ||
		leaperAttacks(pos, sq, by) ||
		sliderAttacks(pos, sq, by, bishopOffsets[:], chess.Bishop) ||
		sliderAttacks(pos, sq, by, rookOffsets[:], chess.Rook)
}

func pawnAttacks(pos *chess.Position, sq int, by chess.Alliance) bool {
	for _, offset := range [...]int{7, 9} {
		from := sq - by.Direction()*offset
		if !chess.IsValidSquare(from) || pawnCaptureExcluded(from, by, offset) {
			continue
		}
		if p := pos.PieceAt(from); p.Kind == chess.Pawn && p.Alliance == by {
			return true
		}
	}
	return false
}

func leaperAttacks(pos *chess.Position, sq int, by chess.Alliance) bool {
	for _, offset := range knightOffsets {
		from := sq + offset
		if !chess.IsValidSquare(from) || knightExcluded(sq, offset) {
			continue
		}
		if p := pos.PieceAt(from); p.Kind == chess.Knight && p.Alliance == by {
			return true
		}
	}
	for _, offset := range kingOffsets {
		from := sq + offset
		if !chess.IsValidSquare(from) || stepExcluded(sq, offset) {
			continue
		}
		if p := pos.PieceAt(from); p.Kind == chess.King && p.Alliance == by {
			return true
		}
	}
	return false
}

// sliderAttacks walks each ray from sq and reports whether the first piece
// met is an enemy of the given sliding kind or a queen.
func sliderAttacks(pos *chess.Position, sq int, by chess.Alliance, offsets []int, kind chess.PieceKind) bool {
	attacked := false
	for _, offset := range offsets {
		rayWalk(sq, offset, func(cur int) bool {
			p := pos.PieceAt(cur)
			if p.IsEmpty() {
				return true
			}
			if p.Alliance == by && (p.Kind == kind || p.Kind == chess.Queen) {
				attacked = true
			}
			return false
		})
		if attacked {
			return true
		}
	}
	return false
}

// AttacksOnSquare returns the pseudo-legal moves of the given alliance that
// land on sq. It is the literal form of the attack relation and is used
// where the attacking moves themselves are needed.
func AttacksOnSquare(pos *chess.Position, sq int, by chess.Alliance) []chess.Move {
	var attacks []chess.Move
	for _, m := range PseudoLegalMoves(pos, by) {
		if m.Dest == sq {
			attacks = append(attacks, m)
		}
	}
	return attacks
}

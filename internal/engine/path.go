package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// Square offsets on the a8=0 board. Offsets that would wrap around the
// board edge are filtered by the column exclusions below.
var (
	knightOffsets = [...]int{-17, -15, -10, -6, 6, 10, 15, 17}
	kingOffsets   = [...]int{-9, -8, -7, -1, 1, 7, 8, 9}
	bishopOffsets = [...]int{-9, -7, 7, 9}
	rookOffsets   = [...]int{-8, -1, 1, 8}
	queenOffsets  = [...]int{-9, -8, -7, -1, 1, 7, 8, 9}
)

// knightExcluded reports whether a knight jump by offset from sq would wrap
// around the board edge.
func knightExcluded(sq, offset int) bool {
	switch {
	case chess.FirstColumn[sq] && (offset == -17 || offset == -10 || offset == 6 || offset == 15):
		return true
	case chess.SecondColumn[sq] && (offset == -10 || offset == 6):
		return true
	case chess.SeventhColumn[sq] && (offset == -6 || offset == 10):
		return true
	case chess.EighthColumn[sq] && (offset == -15 || offset == -6 || offset == 10 || offset == 17):
		return true
	}
	return false
}

// stepExcluded reports whether a single king, bishop, rook or queen step by
// offset from sq would wrap around the board edge.
func stepExcluded(sq, offset int) bool {
	switch {
	case chess.FirstColumn[sq] && (offset == -9 || offset == -1 || offset == 7):
		return true
	case chess.EighthColumn[sq] && (offset == -7 || offset == 1 || offset == 9):
		return true
	}
	return false
}

// pawnCaptureExcluded reports whether a pawn of the given alliance on sq
// cannot capture along the diagonal named by offset (7 or 9).
func pawnCaptureExcluded(sq int, alliance chess.Alliance, offset int) bool {
	if offset == 7 {
		return (chess.EighthColumn[sq] && alliance.IsWhite()) ||
			(chess.FirstColumn[sq] && alliance.IsBlack())
	}
	return (chess.FirstColumn[sq] && alliance.IsWhite()) ||
		(chess.EighthColumn[sq] && alliance.IsBlack())
}

// rayWalk calls visit for each square along offset from sq until the edge of
// the board, stopping early when visit returns false.
func rayWalk(sq, offset int, visit func(int) bool) {
	for cur := sq; ; {
		if stepExcluded(cur, offset) {
			return
		}
		cur += offset
		if !chess.IsValidSquare(cur) || !visit(cur) {
			return
		}
	}
}

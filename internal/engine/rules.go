package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// HasInsufficientMaterial returns true if neither side can possibly mate.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (bishops on the same colour)
func HasInsufficientMaterial(pos *chess.Position) bool {
	var whiteMinors, blackMinors []chess.Piece

	for _, piece := range pos.AllActivePieces() {
		switch piece.Kind {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}
		if piece.Alliance == chess.White {
			whiteMinors = append(whiteMinors, piece)
		} else {
			blackMinors = append(blackMinors, piece)
		}
	}

	switch {
	case len(whiteMinors) == 0 && len(blackMinors) == 0:
		return true
	case len(whiteMinors)+len(blackMinors) == 1:
		return true
	case len(whiteMinors) == 1 && len(blackMinors) == 1:
		w, b := whiteMinors[0], blackMinors[0]
		return w.Kind == chess.Bishop && b.Kind == chess.Bishop &&
			chess.IsLightSquare(w.Square) == chess.IsLightSquare(b.Square)
	}
	return false
}

// MaterialCount returns the summed static value of the alliance's pieces,
// excluding the king.
func MaterialCount(pos *chess.Position, alliance chess.Alliance) int {
	total := 0
	for _, piece := range pos.ActivePieces(alliance) {
		if piece.Kind != chess.King {
			total += piece.Kind.Value()
		}
	}
	return total
}

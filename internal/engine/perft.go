package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	player := CurrentPlayer(pos)
	var nodes uint64
	for _, m := range player.CandidateMoves() {
		t := player.MakeMove(m)
		if !t.Status.IsDone() {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += Perft(t.Position, depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each legal root move, keyed by
// the move's coordinate form (e.g. "e2e4").
func PerftDivide(pos *chess.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}

	player := CurrentPlayer(pos)
	for _, m := range player.LegalMoves() {
		t := player.MakeMove(m)
		if t.Status.IsDone() {
			result[m.UCI()] = Perft(t.Position, depth-1)
		}
	}
	return result
}

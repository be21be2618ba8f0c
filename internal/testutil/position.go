package testutil

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// Common test positions.
const (
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	// White king on h1 is mated by the queen on h8.
	BackRankMateFEN = "k6q/8/8/8/8/8/6P1/6RK w - - 0 1"

	// Black king on a8 has no move and is not in check.
	StalemateFEN = "k7/8/1Q6/8/8/8/8/7K b - - 0 1"
)

// MustParsePosition parses fen and fails the test on error.
func MustParsePosition(t testing.TB, fen string) *chess.Position {
	t.Helper()
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	return pos
}

// Square converts an algebraic square name and fails the test on error.
func Square(t testing.TB, name string) int {
	t.Helper()
	sq, ok := chess.AlgebraicToSquare(name)
	if !ok {
		t.Fatalf("AlgebraicToSquare(%q) failed", name)
	}
	return sq
}

// MustFindMove returns the legal move of the side to move whose coordinate
// form (e.g. "e2e4") matches uci, failing the test if there is none.
func MustFindMove(t testing.TB, pos *chess.Position, uci string) chess.Move {
	t.Helper()
	for _, m := range engine.LegalMoves(pos) {
		if m.UCI() == uci || m.UCI()[:4] == uci {
			return m
		}
	}
	t.Fatalf("no legal move %s in %s", uci, engine.ToFEN(pos))
	return chess.NullMove
}

// MustPlay plays the given coordinate moves from pos and returns the final
// position, failing the test on the first move that is not Done.
func MustPlay(t testing.TB, pos *chess.Position, ucis ...string) *chess.Position {
	t.Helper()
	for _, uci := range ucis {
		move := MustFindMove(t, pos, uci)
		tr := engine.MakeMove(pos, move)
		if !tr.Status.IsDone() {
			t.Fatalf("MakeMove(%s) status = %v", uci, tr.Status)
		}
		pos = tr.Position
	}
	return pos
}

// UCIList renders moves in coordinate form.
func UCIList(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.UCI())
	}
	return out
}

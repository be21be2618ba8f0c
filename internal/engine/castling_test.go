package engine_test

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func castleNames(moves []chess.Move) []string {
	var out []string
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}

func TestCastleMoves(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		alliance chess.Alliance
		want     []string
	}{
		{"both sides white", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", chess.White, []string{"O-O", "O-O-O"}},
		{"both sides black", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", chess.Black, []string{"O-O", "O-O-O"}},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", chess.White, nil},
		{"only queen side right", "r3k2r/8/8/8/8/8/8/R3K2R w Q - 0 1", chess.White, []string{"O-O-O"}},
		{"blocked by knight", "r3k2r/8/8/8/8/8/8/RN2K1NR w KQkq - 0 1", chess.White, nil},
		{"b-file blocker stops queen side", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", chess.White, []string{"O-O"}},
		{"king in check", "4r2k/8/8/8/8/8/8/R3K2R w KQ - 0 1", chess.White, nil},
		{"transit square attacked", "5r1k/8/8/8/8/8/8/R3K2R w KQ - 0 1", chess.White, []string{"O-O-O"}},
		{"landing square attacked", "3r3k/8/8/8/8/8/8/R3K2R w KQ - 0 1", chess.White, []string{"O-O"}},
		{"attacked b1 does not matter", "1r5k/8/8/8/8/8/8/R3K2R w KQ - 0 1", chess.White, []string{"O-O", "O-O-O"}},
		{"attacked rook does not matter", "7k/7r/8/8/8/8/8/R3K2R w KQ - 0 1", chess.White, []string{"O-O", "O-O-O"}},
		{"pawn guards transit square", "4k3/8/8/8/8/8/6p1/R3K2R w KQ - 0 1", chess.White, []string{"O-O-O"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustParsePosition(t, tt.fen)
			got := castleNames(engine.CastleMoves(pos, tt.alliance))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestCastle_MovedKingOrRookNeverCastles(t *testing.T) {
	start := testutil.MustParsePosition(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")

	t.Run("king went out and back", func(t *testing.T) {
		pos := testutil.MustPlay(t, start, "e1f1", "a7a6", "f1e1", "a6a5")
		testutil.AssertEqual(t, castleNames(engine.CastleMoves(pos, chess.White)), []string(nil))
		testutil.AssertEqual(t, engine.CastlingRights(pos), "kq")
	})

	t.Run("rook went out and back", func(t *testing.T) {
		pos := testutil.MustPlay(t, start, "h1g1", "a7a6", "g1h1", "a6a5")
		testutil.AssertEqual(t, castleNames(engine.CastleMoves(pos, chess.White)), []string{"O-O-O"})
	})
}

func TestCastle_IsLegalMove(t *testing.T) {
	pos := testutil.MustParsePosition(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	var castles int
	for _, m := range engine.LegalMoves(pos) {
		if m.IsCastle() {
			castles++
		}
	}
	testutil.AssertEqual(t, castles, 2)
}

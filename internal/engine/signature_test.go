package engine_test

import (
	"strings"
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func TestSignature_Transposition(t *testing.T) {
	start := chess.NewInitialPosition()
	a := testutil.MustPlay(t, start, "g1f3", "g8f6", "b1c3", "b8c6")
	b := testutil.MustPlay(t, start, "b1c3", "b8c6", "g1f3", "g8f6")

	testutil.AssertEqual(t, engine.Signature(a), engine.Signature(b))
	testutil.AssertEqual(t, engine.ZobristHash(a), engine.ZobristHash(b))
}

func TestSignature_KnightShuffleRepeatsStart(t *testing.T) {
	start := chess.NewInitialPosition()
	back := testutil.MustPlay(t, start, "g1f3", "g8f6", "f3g1", "f6g8")

	testutil.AssertEqual(t, engine.Signature(back), engine.Signature(start))
	testutil.AssertEqual(t, engine.ZobristHash(back), engine.ZobristHash(start))
}

func TestSignature_LostCastlingRightsDiffer(t *testing.T) {
	start := testutil.MustParsePosition(t, "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1")
	shuffled := testutil.MustPlay(t, start, "e1f1", "e8f8", "f1e1", "f8e8")
	if engine.Signature(shuffled) == engine.Signature(start) {
		t.Errorf("signature ignores lost castling rights: %s", engine.Signature(shuffled))
	}
	if engine.ZobristHash(shuffled) == engine.ZobristHash(start) {
		t.Error("hash ignores lost castling rights")
	}
	testutil.AssertTrue(t, strings.HasSuffix(engine.Signature(shuffled), " w - -"), engine.Signature(shuffled))
}

func TestSignature_SideToMove(t *testing.T) {
	white := testutil.MustParsePosition(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	black := testutil.MustParsePosition(t, "4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if engine.Signature(white) == engine.Signature(black) {
		t.Error("signature ignores the side to move")
	}
	if engine.ZobristHash(white) == engine.ZobristHash(black) {
		t.Error("hash ignores the side to move")
	}
}

func TestSignature_EnPassantOnlyWhenCapturable(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		equivalent string
		capturable bool
	}{
		{
			name:       "no pawn can capture",
			fen:        "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			equivalent: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		},
		{
			name:       "capture available",
			fen:        "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
			equivalent: "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3",
			capturable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustParsePosition(t, tt.fen)
			other := testutil.MustParsePosition(t, tt.equivalent)

			testutil.AssertEqual(t, engine.HasEnPassantCapture(pos), tt.capturable)
			testutil.AssertFalse(t, engine.HasEnPassantCapture(other))
			testutil.AssertEqual(t, engine.Signature(pos) == engine.Signature(other), !tt.capturable)
			testutil.AssertEqual(t, engine.ZobristHash(pos) == engine.ZobristHash(other), !tt.capturable)
		})
	}
}

func TestSignature_IgnoresClocks(t *testing.T) {
	a := testutil.MustParsePosition(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	b := testutil.MustParsePosition(t, "4k3/8/8/8/8/8/8/4K3 w - - 37 80")
	testutil.AssertEqual(t, engine.Signature(a), engine.Signature(b))
	testutil.AssertEqual(t, engine.Signature(a), "4k3/8/8/8/8/8/8/4K3 w - -")
}

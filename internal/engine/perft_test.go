package engine_test

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func TestPerftInitialPosition(t *testing.T) {
	pos := chess.NewInitialPosition()
	tests := []struct {
		depth int
		want  uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
	}

	for _, tt := range tests {
		if got := engine.Perft(pos, tt.depth); got != tt.want {
			t.Errorf("Perft(initial, %d) = %d; want %d", tt.depth, got, tt.want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	pos := testutil.MustParsePosition(t, testutil.KiwipeteFEN)
	if got := engine.Perft(pos, 1); got != 48 {
		t.Fatalf("Perft(kiwipete, 1) = %d; want 48", got)
	}
	if got := engine.Perft(pos, 2); got != 2039 {
		t.Fatalf("Perft(kiwipete, 2) = %d; want 2039", got)
	}
}

func TestPerftEndgame(t *testing.T) {
	// Position 3 of the standard perft suite; rich in en passant and
	// discovered checks, free of promotions at shallow depth.
	pos := testutil.MustParsePosition(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1")
	want := []uint64{1, 14, 191, 2812}
	for depth, n := range want {
		if got := engine.Perft(pos, depth); got != n {
			t.Errorf("Perft(position3, %d) = %d; want %d", depth, got, n)
		}
	}
}

func TestPerftDivide(t *testing.T) {
	pos := chess.NewInitialPosition()
	divide := engine.PerftDivide(pos, 2)
	if len(divide) != 20 {
		t.Fatalf("len(PerftDivide) = %d; want 20", len(divide))
	}
	var total uint64
	for move, n := range divide {
		if n != 20 {
			t.Errorf("PerftDivide[%s] = %d; want 20", move, n)
		}
		total += n
	}
	testutil.AssertEqual(t, total, engine.Perft(pos, 2))
	testutil.AssertEqual(t, len(engine.PerftDivide(pos, 0)), 0)
}

package engine_test

import (
	"errors"
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	chesserrors "github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func TestParseFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*testing.T, *chess.Position)
	}{
		{
			name: "initial position",
			fen:  engine.InitialFEN,
			checkFn: func(t *testing.T, p *chess.Position) {
				king := p.PieceAt(testutil.Square(t, "e1"))
				testutil.AssertEqual(t, king.Kind, chess.King)
				testutil.AssertTrue(t, king.FirstMove, "king should carry castling rights")
				testutil.AssertTrue(t, p.PieceAt(testutil.Square(t, "h8")).FirstMove, "h8 rook should carry castling rights")
				testutil.AssertTrue(t, p.PieceAt(testutil.Square(t, "e7")).FirstMove, "start rank pawn can jump")
				testutil.AssertEqual(t, p.NextMoveMaker(), chess.White)
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(t *testing.T, p *chess.Position) {
				ep, ok := p.EnPassantPawn()
				testutil.AssertTrue(t, ok, "en-passant pawn expected")
				testutil.AssertEqual(t, ep.Square, testutil.Square(t, "e4"))
				testutil.AssertEqual(t, p.NextMoveMaker(), chess.Black)
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(t *testing.T, p *chess.Position) {
				testutil.AssertFalse(t, p.King(chess.White).FirstMove)
				testutil.AssertFalse(t, p.PieceAt(testutil.Square(t, "a8")).FirstMove)
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(t *testing.T, p *chess.Position) {
				testutil.AssertEqual(t, p.NextMoveMaker(), chess.White)
				testutil.AssertEqual(t, len(p.AllActivePieces()), 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := engine.ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q) error: %v", tt.fen, err)
			}
			tt.checkFn(t, pos)
		})
	}
}

func TestParseFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBXKBNR w KQkq - 0 1"},
		{"rank overflow", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkX - 0 1"},
		{"castling without rook", "rnbqkbn1/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"en passant without pawn", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq e3 0 1"},
		{"bad en passant square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq z9 0 1"},
		{"bad clock", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1"},
		{"missing king", "rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQ - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.ParseFEN(tt.fen)
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("ParseFEN(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		testutil.KiwipeteFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}

	for _, fen := range fens {
		pos := testutil.MustParsePosition(t, fen)
		testutil.AssertEqual(t, engine.ToFEN(pos), fen)
	}
}

func TestNewInitialPositionMatchesFEN(t *testing.T) {
	testutil.AssertEqual(t, engine.ToFEN(chess.NewInitialPosition()), engine.InitialFEN)
}

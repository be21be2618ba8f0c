package engine_test

import (
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

func TestLegalMoves_InitialPosition(t *testing.T) {
	pos := chess.NewInitialPosition()
	moves := engine.LegalMoves(pos)
	if len(moves) != 20 {
		t.Fatalf("len(LegalMoves) = %d; want 20", len(moves))
	}
}

func TestLegalMoves_AllTransitionDone(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		testutil.KiwipeteFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
	}

	for _, fen := range fens {
		pos := testutil.MustParsePosition(t, fen)
		player := engine.CurrentPlayer(pos)
		for _, m := range player.LegalMoves() {
			tr := player.MakeMove(m)
			if tr.Status != engine.Done {
				t.Errorf("%s: MakeMove(%s) status = %v; want Done", fen, m.UCI(), tr.Status)
				continue
			}
			if tr.Position.NextMoveMaker() != pos.NextMoveMaker().Opposite() {
				t.Errorf("%s: MakeMove(%s) did not flip the side to move", fen, m.UCI())
			}
			if engine.IsInCheck(tr.Position, pos.NextMoveMaker()) {
				t.Errorf("%s: MakeMove(%s) left the mover in check", fen, m.UCI())
			}
		}
	}
}

func TestMakeMove_Statuses(t *testing.T) {
	t.Run("illegal move keeps position", func(t *testing.T) {
		pos := chess.NewInitialPosition()
		knight := pos.PieceAt(testutil.Square(t, "g1"))
		bogus := chess.NewMajorMove(pos, knight, testutil.Square(t, "g3"))
		tr := engine.MakeMove(pos, bogus)
		testutil.AssertEqual(t, tr.Status, engine.IllegalMove)
		if tr.Position != pos {
			t.Error("IllegalMove transition should carry the source position")
		}
	})

	t.Run("null move is illegal", func(t *testing.T) {
		pos := chess.NewInitialPosition()
		tr := engine.MakeMove(pos, chess.NullMove)
		testutil.AssertEqual(t, tr.Status, engine.IllegalMove)
	})

	t.Run("pinned piece leaves player in check", func(t *testing.T) {
		// The e2 knight is pinned against the e1 king by the e8 rook.
		pos := testutil.MustParsePosition(t, "4r2k/8/8/8/8/8/4N3/4K3 w - - 0 1")
		move := engine.MoveFromSquares(pos, testutil.Square(t, "e2"), testutil.Square(t, "c3"))
		if move.IsNull() {
			t.Fatal("MoveFromSquares(e2, c3) returned the null move")
		}
		tr := engine.MakeMove(pos, move)
		testutil.AssertEqual(t, tr.Status, engine.LeavesPlayerInCheck)
		if tr.Position != pos {
			t.Error("LeavesPlayerInCheck transition should carry the source position")
		}
		for _, m := range engine.LegalMoves(pos) {
			if m.Piece.Kind == chess.Knight {
				t.Errorf("pinned knight move %s listed as legal", m.UCI())
			}
		}
	})

	t.Run("move from a different position instance", func(t *testing.T) {
		pos := chess.NewInitialPosition()
		other := chess.NewInitialPosition()
		move := testutil.MustFindMove(t, other, "e2e4")
		tr := engine.MakeMove(pos, move)
		testutil.AssertEqual(t, tr.Status, engine.Done)
		if tr.Move.Board != pos {
			t.Error("transition move should be the candidate generated on pos")
		}
	})
}

func TestMoveFromSquares(t *testing.T) {
	pos := chess.NewInitialPosition()

	m := engine.MoveFromSquares(pos, testutil.Square(t, "g1"), testutil.Square(t, "f3"))
	testutil.AssertEqual(t, m.String(), "Nf3")

	m = engine.MoveFromSquares(pos, testutil.Square(t, "e2"), testutil.Square(t, "e5"))
	testutil.AssertTrue(t, m.IsNull(), "e2e5 should not exist")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want engine.GameStatus
	}{
		{"initial", engine.InitialFEN, engine.Normal},
		{"back rank mate", testutil.BackRankMateFEN, engine.Checkmate},
		{"stalemate", testutil.StalemateFEN, engine.Stalemate},
		{"rook not aligned", "4k3/8/8/8/8/8/8/R3K3 b - - 0 1", engine.Normal},
		{"rook check", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", engine.Check},
		{"fools mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", engine.Checkmate},
		{"smothered mate", "6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1", engine.Checkmate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustParsePosition(t, tt.fen)
			if got := engine.Classify(pos); got != tt.want {
				t.Errorf("Classify(%q) = %v; want %v", tt.fen, got, tt.want)
			}
		})
	}
}

func TestPlayerMateAndStalemate(t *testing.T) {
	mated := engine.CurrentPlayer(testutil.MustParsePosition(t, testutil.BackRankMateFEN))
	testutil.AssertTrue(t, mated.IsInCheck(), "mated player should be in check")
	testutil.AssertTrue(t, mated.IsInCheckMate())
	testutil.AssertFalse(t, mated.HasEscapeMoves())
	testutil.AssertFalse(t, mated.IsInStaleMate())
	testutil.AssertEqual(t, len(mated.LegalMoves()), 0)
	if len(mated.CandidateMoves()) == 0 {
		t.Error("mated player should still have candidate moves")
	}

	stuck := engine.CurrentPlayer(testutil.MustParsePosition(t, testutil.StalemateFEN))
	testutil.AssertFalse(t, stuck.IsInCheck())
	testutil.AssertTrue(t, stuck.IsInStaleMate())
	testutil.AssertFalse(t, stuck.IsInCheckMate())
	testutil.AssertEqual(t, stuck.Opponent().Alliance(), chess.White)
}

func TestNewPlayerPanicsWithoutKing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewPlayer on a kingless position should panic")
		}
	}()
	engine.NewPlayer(&chess.Position{}, chess.White)
}

func TestIsSquareAttacked_MatchesPseudoLegalMoves(t *testing.T) {
	// For occupied target squares the probe agrees with the literal
	// definition: some enemy pseudo-legal move lands on the square.
	for _, fen := range []string{testutil.KiwipeteFEN, engine.InitialFEN, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"} {
		pos := testutil.MustParsePosition(t, fen)
		for sq := 0; sq < chess.NumSquares; sq++ {
			target := pos.PieceAt(sq)
			if target.IsEmpty() {
				continue
			}
			by := target.Alliance.Opposite()
			probe := engine.IsSquareAttacked(pos, sq, by)
			literal := len(engine.AttacksOnSquare(pos, sq, by)) > 0
			if probe != literal {
				t.Errorf("%s: IsSquareAttacked(%s) = %v; literal = %v", fen, chess.SquareToAlgebraic(sq), probe, literal)
			}
		}
	}
}

func TestTransitions_MatchMakeMove(t *testing.T) {
	pos := testutil.MustParsePosition(t, testutil.KiwipeteFEN)
	player := engine.CurrentPlayer(pos)
	transitions := player.Transitions()
	legal := player.LegalMoves()

	if len(transitions) != len(legal) {
		t.Fatalf("len(Transitions) = %d; want %d", len(transitions), len(legal))
	}
	for i, tr := range transitions {
		if !tr.Move.Equal(legal[i]) {
			t.Errorf("transition %d is %s; want %s", i, tr.Move.UCI(), legal[i].UCI())
		}
		want := player.MakeMove(legal[i])
		testutil.AssertEqual(t, tr.Status, engine.Done)
		testutil.AssertEqual(t, engine.ToFEN(tr.Position), engine.ToFEN(want.Position))
	}
}

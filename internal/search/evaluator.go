// Package search chooses moves: fixed-depth minimax and the shallow
// heuristic ply search used at low difficulty.
package search

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// Evaluator scores a position. Positive scores favour White. depth is the
// search depth remaining when the position was reached.
type Evaluator interface {
	Evaluate(pos *chess.Position, depth int) int
}

// Scoring weights of StandardEvaluator.
const (
	CheckBonus     = 50
	CheckmateBonus = 10000
	DepthBonus     = 100
	CastledBonus   = 60
)

// Perspective returns +1 for White and -1 for Black, turning a White-positive
// score into one relative to the alliance.
func Perspective(a chess.Alliance) int {
	if a == chess.White {
		return 1
	}
	return -1
}

// StandardEvaluator adds material, piece placement, mobility, check,
// checkmate and castling terms for each side.
type StandardEvaluator struct{}

// Evaluate implements Evaluator.
func (e StandardEvaluator) Evaluate(pos *chess.Position, depth int) int {
	white := engine.NewPlayer(pos, chess.White)
	black := white.Opponent()
	return e.scorePlayer(pos, white, black, depth) - e.scorePlayer(pos, black, white, depth)
}

func (e StandardEvaluator) scorePlayer(pos *chess.Position, player, opponent *engine.Player, depth int) int {
	return pieceScore(pos, player.Alliance()) +
		len(player.CandidateMoves()) +
		checkScore(pos, opponent) +
		checkmateScore(pos, opponent, depth) +
		castledScore(pos, player.Alliance())
}

func pieceScore(pos *chess.Position, a chess.Alliance) int {
	score := engine.MaterialCount(pos, a)
	for _, piece := range pos.ActivePieces(a) {
		score += placementScore(piece)
	}
	return score
}

// checkScore only counts for the side whose opponent is to move; a position
// cannot have the side that just moved in check.
func checkScore(pos *chess.Position, opponent *engine.Player) int {
	if opponent.Alliance() == pos.NextMoveMaker() && opponent.IsInCheck() {
		return CheckBonus
	}
	return 0
}

// checkmateScore grows with the remaining depth so that a mate found nearer
// the root outscores a later one.
func checkmateScore(pos *chess.Position, opponent *engine.Player, depth int) int {
	if opponent.Alliance() != pos.NextMoveMaker() || !opponent.IsInCheckMate() {
		return 0
	}
	return CheckmateBonus * depthBonus(depth)
}

func depthBonus(depth int) int {
	if depth <= 0 {
		return 1
	}
	return DepthBonus * depth
}

// castledScore recognises a castled king by the king and rook standing on
// their post-castling squares after the king has moved.
func castledScore(pos *chess.Position, a chess.Alliance) int {
	king := pos.King(a)
	if king.FirstMove {
		return 0
	}
	home := 60
	if a == chess.Black {
		home = 4
	}
	for _, side := range [...]struct{ king, rook int }{{home + 2, home + 1}, {home - 2, home - 1}} {
		if king.Square != side.king {
			continue
		}
		rook := pos.PieceAt(side.rook)
		if rook.Kind == chess.Rook && rook.Alliance == a {
			return CastledBonus
		}
	}
	return 0
}

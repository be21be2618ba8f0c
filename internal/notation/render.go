package notation

import (
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// Render returns the full SAN of a legal move in pos: origin disambiguation
// where another piece of the same kind reaches the same square, capture
// mark, promotion piece and a trailing "+" or "#".
func Render(pos *chess.Position, m chess.Move) string {
	if m.IsNull() {
		return m.String()
	}

	var sb strings.Builder
	switch {
	case m.IsCastle():
		sb.WriteString(m.String())
	case m.IsPawnMove():
		if m.IsAttack() {
			sb.WriteByte(chess.SquareToAlgebraic(m.From())[0])
			sb.WriteByte('x')
		}
		sb.WriteString(chess.SquareToAlgebraic(m.Dest))
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.PromotedTo().Letter())
		}
	default:
		sb.WriteByte(m.Piece.Kind.Letter())
		sb.WriteString(disambiguation(pos, m))
		if m.IsAttack() {
			sb.WriteByte('x')
		}
		sb.WriteString(chess.SquareToAlgebraic(m.Dest))
	}

	sb.WriteString(checkSuffix(pos, m))
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell m
// apart from other legal moves of the same kind to the same square.
func disambiguation(pos *chess.Position, m chess.Move) string {
	from := m.From()
	var needed, sameFile, sameRank bool
	for _, o := range engine.LegalMoves(pos) {
		if o.From() == from || o.Dest != m.Dest || o.Piece.Kind != m.Piece.Kind || o.IsCastle() {
			continue
		}
		needed = true
		if chess.File(o.From()) == chess.File(from) {
			sameFile = true
		}
		if chess.Rank(o.From()) == chess.Rank(from) {
			sameRank = true
		}
	}

	name := chess.SquareToAlgebraic(from)
	switch {
	case !needed:
		return ""
	case sameFile && sameRank:
		return name
	case sameFile:
		return name[1:]
	default:
		return name[:1]
	}
}

func checkSuffix(pos *chess.Position, m chess.Move) string {
	t := engine.MakeMove(pos, m)
	if !t.Status.IsDone() {
		return ""
	}
	switch engine.Classify(t.Position) {
	case engine.Checkmate:
		return "#"
	case engine.Check:
		return "+"
	}
	return ""
}

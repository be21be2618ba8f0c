package engine

import "github.com/lgbarn/minimax-chess-go/internal/chess"

// castleSide describes one castle relative to the king's home square.
type castleSide struct {
	kind      chess.MoveKind
	rookDelta int   // rook corner relative to the king
	kingDelta int   // king destination relative to the king
	between   []int // squares that must be empty, relative to the king
	transit   []int // squares that must not be attacked, relative to the king
}

var castleSides = [...]castleSide{
	{
		kind:      chess.KingSideCastle,
		rookDelta: 3,
		kingDelta: 2,
		between:   []int{1, 2},
		transit:   []int{1, 2},
	},
	{
		kind:      chess.QueenSideCastle,
		rookDelta: -4,
		kingDelta: -2,
		between:   []int{-1, -2, -3},
		transit:   []int{-1, -2},
	},
}

// kingHome returns the king's starting square for an alliance (e1 or e8).
func kingHome(alliance chess.Alliance) int {
	return chess.Choose(alliance, 60, 4)
}

// CastleMoves returns the castles available to the king of alliance on pos.
// The king and rook must both be unmoved, the king must not be in check,
// the squares between them must be empty, and the squares the king crosses
// and lands on must not be attacked. The rook's own square is not examined.
func CastleMoves(pos *chess.Position, alliance chess.Alliance) []chess.Move {
	king := pos.King(alliance)
	home := kingHome(alliance)
	if !king.FirstMove || king.Square != home {
		return nil
	}
	opponent := alliance.Opposite()
	if IsSquareAttacked(pos, home, opponent) {
		return nil
	}

	var moves []chess.Move
	for _, side := range castleSides {
		if m, ok := castleFor(pos, king, side, opponent); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

func castleFor(pos *chess.Position, king chess.Piece, side castleSide, opponent chess.Alliance) (chess.Move, bool) {
	for _, d := range side.between {
		if pos.IsOccupied(king.Square + d) {
			return chess.Move{}, false
		}
	}

	rook := pos.PieceAt(king.Square + side.rookDelta)
	if rook.Kind != chess.Rook || rook.Alliance != king.Alliance || !rook.FirstMove {
		return chess.Move{}, false
	}

	for _, d := range side.transit {
		if IsSquareAttacked(pos, king.Square+d, opponent) {
			return chess.Move{}, false
		}
	}

	kingDest := king.Square + side.kingDelta
	rookDest := king.Square + side.kingDelta - sign(side.kingDelta)
	return chess.NewCastleMove(side.kind, pos, king, kingDest, rook, rookDest), true
}

package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// MoveStatus is the outcome of attempting a move.
type MoveStatus int

const (
	// Done means the move was applied.
	Done MoveStatus = iota
	// IllegalMove means the move is not a candidate move of the player.
	IllegalMove
	// LeavesPlayerInCheck means the move would expose the mover's king.
	LeavesPlayerInCheck
)

// String returns the name of the status.
func (s MoveStatus) String() string {
	switch s {
	case Done:
		return "Done"
	case IllegalMove:
		return "IllegalMove"
	case LeavesPlayerInCheck:
		return "LeavesPlayerInCheck"
	default:
		return "Unknown"
	}
}

// IsDone reports whether the move was applied.
func (s MoveStatus) IsDone() bool {
	return s == Done
}

// MoveTransition is the result of Player.MakeMove. Position is the new
// position when Status is Done and the source position otherwise.
type MoveTransition struct {
	Position *chess.Position
	Move     chess.Move
	Status   MoveStatus
}

// Player is one side's view of a position. A Player caches its candidate
// and legal moves and is not safe for concurrent use.
type Player struct {
	pos      *chess.Position
	alliance chess.Alliance
	king     chess.Piece

	candidates []chess.Move
	legal      []chess.Move
	legalReady bool
	inCheck    bool
}

// NewPlayer returns the player of the given alliance on pos. It panics if
// pos has no king of that alliance, which Builder.Build rules out.
func NewPlayer(pos *chess.Position, alliance chess.Alliance) *Player {
	king := pos.King(alliance)
	if king.IsEmpty() || king.Kind != chess.King {
		panic(fmt.Sprintf("engine: position has no %s king", alliance))
	}

	p := &Player{
		pos:      pos,
		alliance: alliance,
		king:     king,
		inCheck:  IsSquareAttacked(pos, king.Square, alliance.Opposite()),
	}
	p.candidates = append(PseudoLegalMoves(pos, alliance), CastleMoves(pos, alliance)...)
	return p
}

// CurrentPlayer returns the player whose turn it is on pos.
func CurrentPlayer(pos *chess.Position) *Player {
	return NewPlayer(pos, pos.NextMoveMaker())
}

// Alliance returns the player's side.
func (p *Player) Alliance() chess.Alliance { return p.alliance }

// King returns the player's king.
func (p *Player) King() chess.Piece { return p.king }

// Position returns the position the player was created on.
func (p *Player) Position() *chess.Position { return p.pos }

// Opponent returns the other side on the same position.
func (p *Player) Opponent() *Player {
	return NewPlayer(p.pos, p.alliance.Opposite())
}

// CandidateMoves returns the pseudo-legal moves plus the available castles.
// Some of them may leave the king attacked. The slice must not be modified.
func (p *Player) CandidateMoves() []chess.Move {
	return p.candidates
}

// LegalMoves returns the candidate moves that MakeMove accepts.
func (p *Player) LegalMoves() []chess.Move {
	if !p.legalReady {
		p.legal = make([]chess.Move, 0, len(p.candidates))
		for _, m := range p.candidates {
			if _, ok := p.tryMove(m); ok {
				p.legal = append(p.legal, m)
			}
		}
		p.legalReady = true
	}
	return p.legal
}

// Transitions returns the Done transition of every legal move, in candidate
// order. It is MakeMove applied to each legal move without repeating the
// membership lookup.
func (p *Player) Transitions() []MoveTransition {
	out := make([]MoveTransition, 0, len(p.candidates))
	for _, m := range p.candidates {
		if next, ok := p.tryMove(m); ok {
			out = append(out, MoveTransition{Position: next, Move: m, Status: Done})
		}
	}
	return out
}

// IsInCheck reports whether the player's king is attacked.
func (p *Player) IsInCheck() bool {
	return p.inCheck
}

// HasEscapeMoves reports whether at least one candidate move does not leave
// the king attacked.
func (p *Player) HasEscapeMoves() bool {
	if p.legalReady {
		return len(p.legal) > 0
	}
	for _, m := range p.candidates {
		if _, ok := p.tryMove(m); ok {
			return true
		}
	}
	return false
}

// IsInCheckMate reports whether the player is in check with no escape.
func (p *Player) IsInCheckMate() bool {
	return p.inCheck && !p.HasEscapeMoves()
}

// IsInStaleMate reports whether the player is not in check but has no escape.
func (p *Player) IsInStaleMate() bool {
	return !p.inCheck && !p.HasEscapeMoves()
}

// MakeMove attempts move. A move that is not among the candidate moves
// yields IllegalMove; one that exposes the king yields LeavesPlayerInCheck.
// In both cases the transition carries the unchanged position.
func (p *Player) MakeMove(move chess.Move) MoveTransition {
	i := slices.IndexFunc(p.candidates, move.Equal)
	if i < 0 {
		return MoveTransition{Position: p.pos, Move: move, Status: IllegalMove}
	}

	candidate := p.candidates[i]
	next, err := Execute(candidate)
	if err != nil {
		return MoveTransition{Position: p.pos, Move: candidate, Status: IllegalMove}
	}
	if IsSquareAttacked(next, next.King(p.alliance).Square, p.alliance.Opposite()) {
		return MoveTransition{Position: p.pos, Move: candidate, Status: LeavesPlayerInCheck}
	}
	return MoveTransition{Position: next, Move: candidate, Status: Done}
}

// tryMove executes a candidate and reports whether the king stays safe.
func (p *Player) tryMove(m chess.Move) (*chess.Position, bool) {
	next, err := Execute(m)
	if err != nil {
		return nil, false
	}
	return next, !IsSquareAttacked(next, next.King(p.alliance).Square, p.alliance.Opposite())
}

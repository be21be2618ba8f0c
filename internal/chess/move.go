package chess

// MoveKind classifies a move.
type MoveKind int

const (
	MajorMove MoveKind = iota
	AttackMove
	PawnMove
	PawnJump
	PawnAttack
	PawnEnPassantAttack
	PawnPromotion
	KingSideCastle
	QueenSideCastle
	NullMoveKind
)

var moveKindNames = [...]string{
	"MajorMove", "AttackMove", "PawnMove", "PawnJump", "PawnAttack",
	"PawnEnPassantAttack", "PawnPromotion", "KingSideCastle", "QueenSideCastle", "NullMove",
}

// String returns the name of the move kind.
func (k MoveKind) String() string {
	if int(k) >= 0 && int(k) < len(moveKindNames) {
		return moveKindNames[k]
	}
	return "Unknown"
}

// Move is a candidate transition from the position it was generated on.
// It is a tagged value: Kind decides which of the optional fields apply.
type Move struct {
	Kind MoveKind

	// Board is the position the move was generated from.
	Board *Position

	// Piece is the piece being moved, as it stands on Board.
	Piece Piece

	Dest int

	// Captured is the piece removed by an attack. For en passant it does
	// not stand on Dest.
	Captured Piece

	// Inner is the pawn move wrapped by a promotion.
	Inner *Move

	// Rook and RookDest describe the rook relocated by a castle.
	Rook     Piece
	RookDest int
}

// NullMove is the sentinel for "no move": it matches nothing and cannot be executed.
var NullMove = Move{Kind: NullMoveKind, Dest: NoSquare}

// NewMajorMove creates a quiet move of a non-pawn piece.
func NewMajorMove(board *Position, piece Piece, dest int) Move {
	return Move{Kind: MajorMove, Board: board, Piece: piece, Dest: dest}
}

// NewAttackMove creates a capture by a non-pawn piece.
func NewAttackMove(board *Position, piece Piece, dest int, captured Piece) Move {
	return Move{Kind: AttackMove, Board: board, Piece: piece, Dest: dest, Captured: captured}
}

// NewPawnMove creates a single-step pawn push.
func NewPawnMove(board *Position, pawn Piece, dest int) Move {
	return Move{Kind: PawnMove, Board: board, Piece: pawn, Dest: dest}
}

// NewPawnJump creates a double-step pawn push from the starting rank.
func NewPawnJump(board *Position, pawn Piece, dest int) Move {
	return Move{Kind: PawnJump, Board: board, Piece: pawn, Dest: dest}
}

// NewPawnAttack creates a diagonal pawn capture.
func NewPawnAttack(board *Position, pawn Piece, dest int, captured Piece) Move {
	return Move{Kind: PawnAttack, Board: board, Piece: pawn, Dest: dest, Captured: captured}
}

// NewPawnEnPassantAttack creates an en-passant capture of the pawn beside the mover.
func NewPawnEnPassantAttack(board *Position, pawn Piece, dest int, captured Piece) Move {
	return Move{Kind: PawnEnPassantAttack, Board: board, Piece: pawn, Dest: dest, Captured: captured}
}

// NewPawnPromotion wraps a pawn move or pawn attack that reaches the last rank.
func NewPawnPromotion(inner Move) Move {
	in := inner
	return Move{
		Kind:     PawnPromotion,
		Board:    inner.Board,
		Piece:    inner.Piece,
		Dest:     inner.Dest,
		Captured: inner.Captured,
		Inner:    &in,
	}
}

// NewCastleMove creates a king-side or queen-side castle.
func NewCastleMove(kind MoveKind, board *Position, king Piece, dest int, rook Piece, rookDest int) Move {
	return Move{Kind: kind, Board: board, Piece: king, Dest: dest, Rook: rook, RookDest: rookDest}
}

// From returns the origin square of the moved piece.
func (m Move) From() int {
	if m.IsNull() {
		return NoSquare
	}
	return m.Piece.Square
}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool {
	return m.Kind == NullMoveKind
}

// IsAttack reports whether the move captures a piece.
func (m Move) IsAttack() bool {
	switch m.Kind {
	case AttackMove, PawnAttack, PawnEnPassantAttack:
		return true
	case PawnPromotion:
		return m.Inner != nil && m.Inner.IsAttack()
	default:
		return false
	}
}

// IsCastle reports whether the move is a castle.
func (m Move) IsCastle() bool {
	return m.Kind == KingSideCastle || m.Kind == QueenSideCastle
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Kind == PawnPromotion
}

// IsPawnMove reports whether the moved piece is a pawn.
func (m Move) IsPawnMove() bool {
	return !m.IsNull() && m.Piece.Kind == Pawn
}

// PromotedTo returns the piece kind a promotion produces, or Empty.
func (m Move) PromotedTo() PieceKind {
	if m.IsPromotion() {
		return Queen
	}
	return Empty
}

// Equal reports whether two moves have the same origin, destination and
// moved piece.
func (m Move) Equal(o Move) bool {
	if m.IsNull() || o.IsNull() {
		return m.IsNull() && o.IsNull()
	}
	return m.Piece.Kind == o.Piece.Kind &&
		m.Piece.Alliance == o.Piece.Alliance &&
		m.Piece.Square == o.Piece.Square &&
		m.Dest == o.Dest
}

// String renders the move in short algebraic form without disambiguation
// or check suffix, e.g. "Nf3", "Nxf3", "e4", "exd5", "e8=Q", "O-O".
func (m Move) String() string {
	switch m.Kind {
	case NullMoveKind:
		return "--"
	case KingSideCastle:
		return "O-O"
	case QueenSideCastle:
		return "O-O-O"
	case PawnPromotion:
		if m.Inner == nil {
			return SquareToAlgebraic(m.Dest) + "=Q"
		}
		return m.Inner.String() + "=" + string(Queen.Letter())
	case PawnMove, PawnJump:
		return SquareToAlgebraic(m.Dest)
	case PawnAttack, PawnEnPassantAttack:
		return SquareToAlgebraic(m.From())[:1] + "x" + SquareToAlgebraic(m.Dest)
	case AttackMove:
		return string(m.Piece.Kind.Letter()) + "x" + SquareToAlgebraic(m.Dest)
	default:
		return string(m.Piece.Kind.Letter()) + SquareToAlgebraic(m.Dest)
	}
}

// UCI returns the move as origin and destination squares, e.g. "e2e4",
// with a trailing "q" for promotions.
func (m Move) UCI() string {
	if m.IsNull() {
		return "0000"
	}
	s := SquareToAlgebraic(m.From()) + SquareToAlgebraic(m.Dest)
	if m.IsPromotion() {
		s += "q"
	}
	return s
}

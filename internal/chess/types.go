// Package chess provides core chess types and operations.
package chess

// Alliance represents the side a piece or player belongs to.
type Alliance int

const (
	White Alliance = iota
	Black
)

// String returns the string representation of an alliance.
func (a Alliance) String() string {
	if a == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite alliance.
func (a Alliance) Opposite() Alliance {
	if a == White {
		return Black
	}
	return White
}

// IsWhite reports whether the alliance is White.
func (a Alliance) IsWhite() bool {
	return a == White
}

// IsBlack reports whether the alliance is Black.
func (a Alliance) IsBlack() bool {
	return a == Black
}

// Direction returns the square-index step of a forward pawn move.
// Square 0 is a8, so White moves towards lower indices.
func (a Alliance) Direction() int {
	if a == White {
		return -1
	}
	return 1
}

// OppositeDirection returns the negated forward direction.
func (a Alliance) OppositeDirection() int {
	return -a.Direction()
}

// IsPawnPromotionSquare reports whether a pawn of this alliance promotes
// on the given square.
func (a Alliance) IsPawnPromotionSquare(square int) bool {
	if a == White {
		return EighthRank[square]
	}
	return FirstRank[square]
}

// IsPawnStartSquare reports whether the square lies on this alliance's
// pawn starting rank.
func (a Alliance) IsPawnStartSquare(square int) bool {
	if a == White {
		return SecondRank[square]
	}
	return SeventhRank[square]
}

// Choose returns white when the alliance is White and black otherwise.
func Choose[T any](a Alliance, white, black T) T {
	if a == White {
		return white
	}
	return black
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Empty PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Value returns the static material value of a piece kind in centipawns.
func (k PieceKind) Value() int {
	switch k {
	case Pawn:
		return 100
	case Knight, Bishop:
		return 300
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 10000
	default:
		return 0
	}
}

// Piece is an immutable piece value. The zero value is an empty square.
type Piece struct {
	Kind     PieceKind
	Alliance Alliance
	Square   int

	// FirstMove is true until the piece has moved. It carries castling
	// rights for kings and rooks and the double step for pawns.
	FirstMove bool
}

// NewPiece creates a piece that has not moved yet.
func NewPiece(kind PieceKind, alliance Alliance, square int) Piece {
	return Piece{Kind: kind, Alliance: alliance, Square: square, FirstMove: true}
}

// IsEmpty reports whether p is the empty-square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// MovedTo returns the piece relocated to dest with its first-move flag cleared.
func (p Piece) MovedTo(dest int) Piece {
	return Piece{Kind: p.Kind, Alliance: p.Alliance, Square: dest}
}

// Letter returns the FEN letter of the piece, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Alliance == Black && p.Kind != Empty {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the FEN letter of the piece, or "-" for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "-"
	}
	return string(p.Letter())
}

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)

package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// Position is an immutable snapshot of the board: 64 squares in a8=0 order,
// the side to move and the pawn that just made a double step, if any.
// Positions are only created by Builder.Build and never change afterwards.
type Position struct {
	squares [NumSquares]Piece

	// Active pieces per alliance, in square order.
	whitePieces []Piece
	blackPieces []Piece

	whiteKing Piece
	blackKing Piece

	toMove        Alliance
	enPassantPawn Piece
}

// PieceAt returns the piece on sq, or the empty piece.
func (p *Position) PieceAt(sq int) Piece {
	if !IsValidSquare(sq) {
		return Piece{}
	}
	return p.squares[sq]
}

// IsOccupied reports whether a piece stands on sq.
func (p *Position) IsOccupied(sq int) bool {
	return !p.PieceAt(sq).IsEmpty()
}

// ActivePieces returns the pieces of the given alliance in square order.
// The returned slice is shared and must not be modified.
func (p *Position) ActivePieces(a Alliance) []Piece {
	return Choose(a, p.whitePieces, p.blackPieces)
}

// AllActivePieces returns the pieces of both alliances, White first.
func (p *Position) AllActivePieces() []Piece {
	all := make([]Piece, 0, len(p.whitePieces)+len(p.blackPieces))
	all = append(all, p.whitePieces...)
	return append(all, p.blackPieces...)
}

// King returns the king of the given alliance.
func (p *Position) King(a Alliance) Piece {
	return Choose(a, p.whiteKing, p.blackKing)
}

// NextMoveMaker returns the alliance to move.
func (p *Position) NextMoveMaker() Alliance {
	return p.toMove
}

// EnPassantPawn returns the pawn that made a double step on the previous
// ply. The second result is false when there is none.
func (p *Position) EnPassantPawn() (Piece, bool) {
	return p.enPassantPawn, !p.enPassantPawn.IsEmpty()
}

// String renders the board rank by rank from the eighth rank down,
// with "-" for empty squares.
func (p *Position) String() string {
	var sb strings.Builder
	for sq := 0; sq < NumSquares; sq++ {
		sb.WriteString(fmt.Sprintf("%3s", p.squares[sq].String()))
		if (sq+1)%SquaresPerRow == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Builder assembles a Position. The zero value is not usable; call NewBuilder.
type Builder struct {
	squares       [NumSquares]Piece
	toMove        Alliance
	enPassantPawn Piece
}

// NewBuilder returns an empty builder with White to move.
func NewBuilder() *Builder {
	return &Builder{toMove: White}
}

// SetPiece places piece on its own square, replacing whatever was there.
func (b *Builder) SetPiece(piece Piece) *Builder {
	if IsValidSquare(piece.Square) {
		b.squares[piece.Square] = piece
	}
	return b
}

// SetMoveMaker sets the alliance to move.
func (b *Builder) SetMoveMaker(a Alliance) *Builder {
	b.toMove = a
	return b
}

// SetEnPassantPawn records the pawn that just made a double step.
func (b *Builder) SetEnPassantPawn(pawn Piece) *Builder {
	b.enPassantPawn = pawn
	return b
}

// Build validates the configuration and returns the position. Each alliance
// must have exactly one king, and an en-passant pawn must be a pawn standing
// on its square.
func (b *Builder) Build() (*Position, error) {
	pos := &Position{
		squares:       b.squares,
		toMove:        b.toMove,
		enPassantPawn: b.enPassantPawn,
	}

	var whiteKings, blackKings int
	for sq, piece := range pos.squares {
		if piece.IsEmpty() {
			continue
		}
		if piece.Square != sq {
			return nil, fmt.Errorf("%w: piece %s on %s claims square %s",
				errors.ErrInvalidPosition, piece, SquareToAlgebraic(sq), SquareToAlgebraic(piece.Square))
		}
		if piece.Alliance == White {
			pos.whitePieces = append(pos.whitePieces, piece)
		} else {
			pos.blackPieces = append(pos.blackPieces, piece)
		}
		if piece.Kind != King {
			continue
		}
		if piece.Alliance == White {
			whiteKings++
			pos.whiteKing = piece
		} else {
			blackKings++
			pos.blackKing = piece
		}
	}

	if whiteKings != 1 || blackKings != 1 {
		return nil, fmt.Errorf("%w: %d white and %d black kings",
			errors.ErrInvalidPosition, whiteKings, blackKings)
	}

	if ep := b.enPassantPawn; !ep.IsEmpty() {
		if ep.Kind != Pawn || pos.PieceAt(ep.Square) != ep {
			return nil, fmt.Errorf("%w: en-passant pawn %s not on %s",
				errors.ErrInvalidPosition, ep, SquareToAlgebraic(ep.Square))
		}
	}

	return pos, nil
}

var backRank = [SquaresPerRow]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewInitialPosition returns the standard starting position with White to move.
func NewInitialPosition() *Position {
	b := NewBuilder()
	for file := 0; file < SquaresPerRow; file++ {
		b.SetPiece(NewPiece(backRank[file], Black, file))
		b.SetPiece(NewPiece(Pawn, Black, SquaresPerRow+file))
		b.SetPiece(NewPiece(Pawn, White, 6*SquaresPerRow+file))
		b.SetPiece(NewPiece(backRank[file], White, 7*SquaresPerRow+file))
	}
	pos, err := b.SetMoveMaker(White).Build()
	if err != nil {
		panic(err)
	}
	return pos
}

package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece kind.
func ConvertFENCharToPiece(c byte) chess.PieceKind {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.Empty
	}
}

// castleRight ties a FEN castling letter to the king and rook it requires.
type castleRight struct {
	letter   byte
	alliance chess.Alliance
	rookSq   int
}

var castleRights = [...]castleRight{
	{'K', chess.White, 63},
	{'Q', chess.White, 56},
	{'k', chess.Black, 7},
	{'q', chess.Black, 0},
}

// ParseFEN builds a position from a FEN string. The castling field sets the
// first-move flag of the king and the named rook; the en-passant field names
// the pawn that just made a double step. Move counters are validated but not
// kept, since positions carry no clocks.
func ParseFEN(fen string) (*chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pieces, err := parsePiecePositions(parts[0])
	if err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}

	if err := parseCastlingRights(pieces, parts); err != nil {
		return nil, err
	}

	b := chess.NewBuilder().SetMoveMaker(toMove)
	for _, piece := range pieces {
		if !piece.IsEmpty() {
			b.SetPiece(piece)
		}
	}

	if err := parseEnPassant(b, pieces, toMove, parts); err != nil {
		return nil, err
	}

	if err := parseClocks(parts); err != nil {
		return nil, err
	}

	pos, err := b.Build()
	if err != nil {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 1, Got: err.Error()}
	}
	return pos, nil
}

// MustParseFEN is like ParseFEN but panics on error. It is meant for
// fixed positions known to be valid.
func MustParseFEN(fen string) *chess.Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Pawns on their starting rank keep the first-move flag; every other piece
// starts without it until the castling field is applied.
func parsePiecePositions(placement string) (*[chess.NumSquares]chess.Piece, error) {
	var pieces [chess.NumSquares]chess.Piece
	rows := strings.Split(placement, "/")
	if len(rows) != chess.SquaresPerRow {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: placement, Field: 1,
			Expected: "8 ranks", Got: placement}
	}

	for row, text := range rows {
		col := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			kind := ConvertFENCharToPiece(c)
			if kind == chess.Empty {
				return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.SquaresPerRow {
				return nil, fmt.Errorf("rank %d overflows: %w", 8-row, errors.ErrInvalidFEN)
			}

			alliance := chess.White
			if unicode.IsLower(rune(c)) {
				alliance = chess.Black
			}
			sq := row*chess.SquaresPerRow + col
			piece := chess.Piece{Kind: kind, Alliance: alliance, Square: sq}
			if kind == chess.Pawn && alliance.IsPawnStartSquare(sq) {
				piece.FirstMove = true
			}
			pieces[sq] = piece
			col++
		}
		if col != chess.SquaresPerRow {
			return nil, fmt.Errorf("rank %d has %d files: %w", 8-row, col, errors.ErrInvalidFEN)
		}
	}
	return &pieces, nil
}

// parseSideToMove parses the side to move field. White moves when absent.
func parseSideToMove(parts []string) (chess.Alliance, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, &errors.ParseError{Err: errors.ErrInvalidFEN, Field: 2,
			Expected: "w or b", Got: parts[1]}
	}
}

// parseCastlingRights marks kings and rooks named by the castling field
// as unmoved. A right whose king or rook is missing is rejected.
func parseCastlingRights(pieces *[chess.NumSquares]chess.Piece, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for i := 0; i < len(parts[2]); i++ {
		c := parts[2][i]
		var right *castleRight
		for j := range castleRights {
			if castleRights[j].letter == c {
				right = &castleRights[j]
			}
		}
		if right == nil {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: 3,
				Expected: "castling letters KQkq", Got: parts[2]}
		}

		home := kingHome(right.alliance)
		king, rook := pieces[home], pieces[right.rookSq]
		if king.Kind != chess.King || king.Alliance != right.alliance ||
			rook.Kind != chess.Rook || rook.Alliance != right.alliance {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: 3,
				Expected: "king and rook on their home squares", Got: string(c)}
		}
		pieces[home].FirstMove = true
		pieces[right.rookSq].FirstMove = true
	}
	return nil
}

// parseEnPassant maps the en-passant target square to the pawn standing
// in front of it.
func parseEnPassant(b *chess.Builder, pieces *[chess.NumSquares]chess.Piece, toMove chess.Alliance, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}

	target, ok := chess.AlgebraicToSquare(parts[3])
	if !ok {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: 4,
			Expected: "square or -", Got: parts[3]}
	}

	jumper := toMove.Opposite()
	pawnSq := target + jumper.Direction()*chess.SquaresPerRow
	if !chess.IsValidSquare(pawnSq) {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: 4,
			Expected: "en-passant square behind a pawn", Got: parts[3]}
	}
	pawn := pieces[pawnSq]
	if pawn.Kind != chess.Pawn || pawn.Alliance != jumper {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: 4,
			Expected: "en-passant square behind a pawn", Got: parts[3]}
	}
	b.SetEnPassantPawn(pawn)
	return nil
}

// parseClocks validates the halfmove clock and fullmove number fields.
func parseClocks(parts []string) error {
	for i := 4; i < len(parts) && i < 6; i++ {
		if n, err := strconv.Atoi(parts[i]); err != nil || n < 0 {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: i + 1,
				Expected: "non-negative number", Got: parts[i]}
		}
	}
	return nil
}

// ToFEN converts a position to a FEN string. Positions carry no move
// counters, so the clocks are always written as "0 1".
func ToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos)
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos)
	sb.WriteString(" 0 1")

	return sb.String()
}

func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for row := 0; row < chess.SquaresPerRow; row++ {
		emptyCount := 0
		for col := 0; col < chess.SquaresPerRow; col++ {
			piece := pos.PieceAt(row*chess.SquaresPerRow + col)
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.SquaresPerRow-1 {
			sb.WriteByte('/')
		}
	}
}

func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.NextMoveMaker() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// CastlingRights returns the FEN castling field implied by the first-move
// flags of kings and corner rooks.
func CastlingRights(pos *chess.Position) string {
	var rights []byte
	for _, r := range castleRights {
		king := pos.PieceAt(kingHome(r.alliance))
		rook := pos.PieceAt(r.rookSq)
		if king.Kind == chess.King && king.Alliance == r.alliance && king.FirstMove &&
			rook.Kind == chess.Rook && rook.Alliance == r.alliance && rook.FirstMove {
			rights = append(rights, r.letter)
		}
	}
	if len(rights) == 0 {
		return "-"
	}
	return string(rights)
}

func writeCastlingRights(sb *strings.Builder, pos *chess.Position) {
	sb.WriteString(CastlingRights(pos))
}

func writeEnPassant(sb *strings.Builder, pos *chess.Position) {
	sb.WriteString(EnPassantTarget(pos))
}

// EnPassantTarget returns the square behind the pawn that just made a
// double step, or "-".
func EnPassantTarget(pos *chess.Position) string {
	ep, ok := pos.EnPassantPawn()
	if !ok {
		return "-"
	}
	return chess.SquareToAlgebraic(ep.Square + ep.Alliance.OppositeDirection()*chess.SquaresPerRow)
}

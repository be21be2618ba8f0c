// Package notation converts between Standard Algebraic Notation and engine
// moves.
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
)

// token is a decoded SAN move. fromFile and fromRank are -1 when the token
// carries no disambiguation.
type token struct {
	text      string
	castle    chess.MoveKind
	kind      chess.PieceKind
	fromFile  int
	fromRank  int
	dest      int
	capture   bool
	promotion chess.PieceKind
}

func isFile(c byte) bool {
	return c >= 'a' && c <= 'h'
}

func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':'
}

func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// pieceKind returns the kind named by an uppercase SAN letter.
func pieceKind(c byte) chess.PieceKind {
	switch c {
	case 'K':
		return chess.King
	case 'Q':
		return chess.Queen
	case 'R':
		return chess.Rook
	case 'B':
		return chess.Bishop
	case 'N':
		return chess.Knight
	}
	return chess.Empty
}

// trimSuffixes drops check, mate and annotation marks.
func trimSuffixes(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "e.p.")
	s = strings.TrimSuffix(s, "ep")
	return strings.TrimRight(s, "+#!? ")
}

// decode parses a SAN token such as "Nbxd2", "exd5", "e8=Q" or "O-O-O".
func decode(text string) (token, error) {
	tok := token{text: text, castle: chess.NullMoveKind, fromFile: -1, fromRank: -1, dest: chess.NoSquare}
	s := trimSuffixes(text)
	bad := func() (token, error) {
		return tok, fmt.Errorf("cannot decode %q: %w", text, errors.ErrNoMatchingMove)
	}
	if s == "" {
		return bad()
	}

	if isCastlingChar(s[0]) {
		switch strings.Map(castleRune, s) {
		case "OO":
			tok.castle = chess.KingSideCastle
		case "OOO":
			tok.castle = chess.QueenSideCastle
		default:
			return bad()
		}
		tok.kind = chess.King
		return tok, nil
	}

	tok.kind = chess.Pawn
	if k := pieceKind(s[0]); k != chess.Empty {
		tok.kind = k
		s = s[1:]
	}

	// Promotion suffix: "=Q" or a bare trailing piece letter.
	if i := strings.IndexByte(s, '='); i >= 0 {
		if i != len(s)-2 || pieceKind(s[i+1]) == chess.Empty {
			return bad()
		}
		tok.promotion = pieceKind(s[i+1])
		s = s[:i]
	} else if n := len(s); tok.kind == chess.Pawn && n > 0 && pieceKind(s[n-1]) != chess.Empty {
		tok.promotion = pieceKind(s[n-1])
		s = s[:n-1]
	}

	var rest []byte
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isCapture(c):
			tok.capture = true
		case isFile(c), isRank(c):
			rest = append(rest, c)
		case c == '-':
			// long algebraic separator
		default:
			return bad()
		}
	}

	n := len(rest)
	if n < 2 || n > 4 || !isFile(rest[n-2]) || !isRank(rest[n-1]) {
		return bad()
	}
	tok.dest, _ = chess.AlgebraicToSquare(string(rest[n-2:]))

	for _, c := range rest[:n-2] {
		switch {
		case isFile(c) && tok.fromFile < 0:
			tok.fromFile = int(c - 'a')
		case isRank(c) && tok.fromRank < 0:
			tok.fromRank = int(c - '1')
		default:
			return bad()
		}
	}
	return tok, nil
}

func castleRune(r rune) rune {
	switch r {
	case 'O', 'o', '0':
		return 'O'
	case '-':
		return -1
	}
	return r
}

// matches reports whether m is the move the token describes, ignoring the
// promotion piece.
func (t token) matches(m chess.Move) bool {
	if t.castle != chess.NullMoveKind {
		return m.Kind == t.castle
	}
	if m.IsCastle() || m.Piece.Kind != t.kind || m.Dest != t.dest {
		return false
	}
	from := m.From()
	if t.fromFile >= 0 && chess.File(from) != t.fromFile {
		return false
	}
	if t.fromRank >= 0 && chess.Rank(from) != t.fromRank {
		return false
	}
	return true
}

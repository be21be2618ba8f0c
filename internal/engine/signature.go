package engine

import (
	"math/rand"
	"strings"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// Zobrist keys, generated from a fixed seed so that the same position
// hashes identically across runs.
var (
	zobristPieces     [2][chess.NumPieceKinds][chess.NumSquares]uint64
	zobristCastling   [len(castleRights)]uint64
	zobristEnPassant  [chess.SquaresPerRow]uint64
	zobristSideToMove uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x1234567890ABCDEF))

	for a := range zobristPieces {
		for k := range zobristPieces[a] {
			for sq := range zobristPieces[a][k] {
				zobristPieces[a][k][sq] = rng.Uint64()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rng.Uint64()
	}
	zobristSideToMove = rng.Uint64()
}

// Signature returns the canonical text of a position for repetition
// purposes: piece placement, side to move, castling rights and the
// en-passant target, the last only when an en-passant capture is actually
// available. Move counters are not part of it.
func Signature(pos *chess.Position) string {
	var sb strings.Builder
	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos)
	sb.WriteByte(' ')
	if HasEnPassantCapture(pos) {
		writeEnPassant(&sb, pos)
	} else {
		sb.WriteByte('-')
	}
	return sb.String()
}

// ZobristHash hashes the same features as Signature.
func ZobristHash(pos *chess.Position) uint64 {
	var h uint64
	for _, piece := range pos.AllActivePieces() {
		h ^= zobristPieces[piece.Alliance][piece.Kind][piece.Square]
	}

	rights := CastlingRights(pos)
	for i, r := range castleRights {
		if strings.IndexByte(rights, r.letter) >= 0 {
			h ^= zobristCastling[i]
		}
	}

	if ep, ok := pos.EnPassantPawn(); ok && HasEnPassantCapture(pos) {
		h ^= zobristEnPassant[chess.File(ep.Square)]
	}

	if pos.NextMoveMaker() == chess.Black {
		h ^= zobristSideToMove
	}
	return h
}

// HasEnPassantCapture reports whether the side to move has a pseudo-legal
// en-passant capture.
func HasEnPassantCapture(pos *chess.Position) bool {
	if _, ok := pos.EnPassantPawn(); !ok {
		return false
	}
	for _, piece := range pos.ActivePieces(pos.NextMoveMaker()) {
		if piece.Kind != chess.Pawn {
			continue
		}
		for _, m := range pawnMoves(pos, piece) {
			if m.Kind == chess.PawnEnPassantAttack {
				return true
			}
		}
	}
	return false
}

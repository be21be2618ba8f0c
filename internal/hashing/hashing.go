// Package hashing tracks recurring positions for threefold repetition.
package hashing

import (
	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// ThreefoldCount is the number of occurrences that makes a draw.
const ThreefoldCount = 3

// PositionSignature identifies a recorded position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the canonical signature
	Hash uint64
	// Text is the canonical signature, compared when hashes collide
	Text string
}

// SignatureOf returns the repetition key of a position.
func SignatureOf(pos *chess.Position) PositionSignature {
	return PositionSignature{
		Hash: engine.ZobristHash(pos),
		Text: engine.Signature(pos),
	}
}

type entry struct {
	sig   PositionSignature
	count int
}

// RepetitionTracker counts how often each committed position occurred.
// Only the owner of the authoritative game should record positions;
// search uses WouldBeThreefold, which never mutates the tracker.
type RepetitionTracker struct {
	// hashTable buckets entries by Zobrist hash
	hashTable map[uint64][]entry
	// recorded is the total number of RecordPosition calls since Reset
	recorded int
}

// NewRepetitionTracker creates an empty tracker.
func NewRepetitionTracker() *RepetitionTracker {
	return &RepetitionTracker{
		hashTable: make(map[uint64][]entry),
	}
}

// RecordPosition increments the occurrence count of pos and returns the
// new count.
func (r *RepetitionTracker) RecordPosition(pos *chess.Position) int {
	if pos == nil {
		return 0
	}
	return r.record(SignatureOf(pos))
}

func (r *RepetitionTracker) record(sig PositionSignature) int {
	r.recorded++
	bucket := r.hashTable[sig.Hash]
	for i := range bucket {
		if bucket[i].sig.Text == sig.Text {
			bucket[i].count++
			return bucket[i].count
		}
	}
	r.hashTable[sig.Hash] = append(bucket, entry{sig: sig, count: 1})
	return 1
}

// Count returns how many times pos has been recorded.
func (r *RepetitionTracker) Count(pos *chess.Position) int {
	if pos == nil {
		return 0
	}
	return r.count(SignatureOf(pos))
}

func (r *RepetitionTracker) count(sig PositionSignature) int {
	for _, e := range r.hashTable[sig.Hash] {
		if e.sig.Text == sig.Text {
			return e.count
		}
	}
	return 0
}

// IsThreefold reports whether pos has been recorded at least three times.
func (r *RepetitionTracker) IsThreefold(pos *chess.Position) bool {
	return r.Count(pos) >= ThreefoldCount
}

// WouldBeThreefold reports whether recording pos once more would make it a
// threefold repetition.
func (r *RepetitionTracker) WouldBeThreefold(pos *chess.Position) bool {
	if pos == nil {
		return false
	}
	return r.Count(pos)+1 >= ThreefoldCount
}

// RecordedCount returns the number of positions recorded since Reset.
func (r *RepetitionTracker) RecordedCount() int {
	return r.recorded
}

// UniqueCount returns the number of distinct positions recorded.
func (r *RepetitionTracker) UniqueCount() int {
	count := 0
	for _, bucket := range r.hashTable {
		count += len(bucket)
	}
	return count
}

// Reset clears all counts.
func (r *RepetitionTracker) Reset() {
	r.hashTable = make(map[uint64][]entry)
	r.recorded = 0
}

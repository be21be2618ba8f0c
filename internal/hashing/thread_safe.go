package hashing

import (
	"sync"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// ThreadSafeRepetitionTracker wraps RepetitionTracker with mutex protection so
// search goroutines can query it while the game owner commits positions.
type ThreadSafeRepetitionTracker struct {
	tracker *RepetitionTracker
	mu      sync.RWMutex
}

// NewThreadSafeRepetitionTracker creates an empty thread-safe tracker.
func NewThreadSafeRepetitionTracker() *ThreadSafeRepetitionTracker {
	return &ThreadSafeRepetitionTracker{
		tracker: NewRepetitionTracker(),
	}
}

// RecordPosition increments the occurrence count of pos and returns the new count.
func (t *ThreadSafeRepetitionTracker) RecordPosition(pos *chess.Position) int {
	if pos == nil {
		return 0
	}
	sig := SignatureOf(pos)
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tracker.record(sig)
}

// Count returns how many times pos has been recorded.
func (t *ThreadSafeRepetitionTracker) Count(pos *chess.Position) int {
	if pos == nil {
		return 0
	}
	sig := SignatureOf(pos)
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tracker.count(sig)
}

// IsThreefold reports whether pos has been recorded at least three times.
func (t *ThreadSafeRepetitionTracker) IsThreefold(pos *chess.Position) bool {
	return t.Count(pos) >= ThreefoldCount
}

// WouldBeThreefold reports whether one more occurrence of pos would make a
// threefold repetition.
func (t *ThreadSafeRepetitionTracker) WouldBeThreefold(pos *chess.Position) bool {
	if pos == nil {
		return false
	}
	return t.Count(pos)+1 >= ThreefoldCount
}

// RecordedCount returns the number of positions recorded since Reset.
func (t *ThreadSafeRepetitionTracker) RecordedCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tracker.RecordedCount()
}

// UniqueCount returns the number of distinct positions recorded.
func (t *ThreadSafeRepetitionTracker) UniqueCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tracker.UniqueCount()
}

// Reset clears all counts.
func (t *ThreadSafeRepetitionTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tracker.Reset()
}

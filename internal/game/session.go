// Package game holds the authoritative state of one game: the current
// position, the move log and the repetition history.
package game

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/hashing"
	"github.com/lgbarn/minimax-chess-go/internal/notation"
	"github.com/lgbarn/minimax-chess-go/internal/search"
)

// Session owns a game. Commits are serialised; the repetition tracker may
// be read by searches running alongside.
type Session struct {
	ID string

	cfg     *config.Config
	mu      sync.RWMutex
	start   *chess.Position
	pos     *chess.Position
	moves   []chess.Move
	tracker *hashing.ThreadSafeRepetitionTracker
}

// NewSession starts a session at the standard initial position.
func NewSession(cfg *config.Config) *Session {
	return newSession(chess.NewInitialPosition(), cfg)
}

// NewSessionFromFEN starts a session at the position described by fen.
func NewSessionFromFEN(fen string, cfg *config.Config) (*Session, error) {
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newSession(pos, cfg), nil
}

func newSession(start *chess.Position, cfg *config.Config) *Session {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	s := &Session{
		ID:      uuid.New().String(),
		cfg:     cfg,
		tracker: hashing.NewThreadSafeRepetitionTracker(),
	}
	s.reset(start)
	return s
}

// reset must be called with mu held or before the session is shared.
func (s *Session) reset(start *chess.Position) {
	s.start = start
	s.pos = start
	s.moves = nil
	s.tracker.Reset()
	s.tracker.RecordPosition(start)
}

// NewGame discards the move log and returns to the standard initial
// position.
func (s *Session) NewGame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(chess.NewInitialPosition())
	s.cfg.Logf(config.GameEvents, "game %s: new game\n", s.ID)
}

// Position returns the current position.
func (s *Session) Position() *chess.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pos
}

// StartPosition returns the position the move log starts from.
func (s *Session) StartPosition() *chess.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.start
}

// Tracker returns the repetition history of the session.
func (s *Session) Tracker() *hashing.ThreadSafeRepetitionTracker {
	return s.tracker
}

// Config returns the session configuration.
func (s *Session) Config() *config.Config {
	return s.cfg
}

// MakeMove commits a move for the side to move. A move that is not Done
// leaves the session unchanged and returns a GameError wrapping
// ErrIllegalMove or ErrLeavesPlayerInCheck.
func (s *Session) MakeMove(move chess.Move) (engine.MoveTransition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(move)
}

func (s *Session) commit(move chess.Move) (engine.MoveTransition, error) {
	if o := classify(s.pos, s.tracker); o.IsOver() {
		return engine.MoveTransition{Position: s.pos, Move: move, Status: engine.IllegalMove},
			s.gameError(errors.ErrGameOver, move.String())
	}

	t := engine.MakeMove(s.pos, move)
	switch t.Status {
	case engine.Done:
	case engine.LeavesPlayerInCheck:
		return t, s.gameError(errors.ErrLeavesPlayerInCheck, move.String())
	default:
		return t, s.gameError(errors.ErrIllegalMove, move.String())
	}

	san := notation.Render(s.pos, move)
	s.pos = t.Position
	s.moves = append(s.moves, move)
	n := s.tracker.RecordPosition(s.pos)
	s.cfg.Logf(config.Commentary, "game %s: ply %d %s (seen %d)\n", s.ID, len(s.moves), san, n)
	if o := classify(s.pos, s.tracker); o.IsOver() {
		s.cfg.Logf(config.GameEvents, "game %s: %s %s\n", s.ID, o, o.Result(s.pos))
	}
	return t, nil
}

func (s *Session) gameError(err error, moveText string) error {
	return &errors.GameError{
		Err:      err,
		GameID:   s.ID,
		PlyNum:   len(s.moves) + 1,
		MoveText: moveText,
	}
}

// ApplyNotation finds the move named by a SAN token and commits it.
func (s *Session) ApplyNotation(token string) (chess.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	move, err := notation.FindMove(s.pos, token, s.cfg)
	if err != nil {
		return chess.NullMove, &errors.GameError{Err: err, GameID: s.ID, PlyNum: len(s.moves) + 1, MoveText: token}
	}
	if _, err := s.commit(move); err != nil {
		return chess.NullMove, err
	}
	return move, nil
}

// LoadMovetext replays SAN movetext from the start position, replacing the
// current game. It stops at the first token that does not resolve to a legal
// move and returns a GameError; the moves before it stay committed. The
// number of plies applied is returned in both cases.
func (s *Session) LoadMovetext(movetext string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset(s.start)
	tokens := notation.Tokenize(movetext)
	for i, tok := range tokens {
		move, err := notation.FindMove(s.pos, tok, s.cfg)
		if err != nil {
			s.cfg.Logf(config.GameEvents, "game %s: stopped at token %d %q: %v\n", s.ID, i+1, tok, err)
			return len(s.moves), &errors.GameError{Err: err, GameID: s.ID, PlyNum: len(s.moves) + 1, MoveText: tok}
		}
		if _, err := s.commit(move); err != nil {
			return len(s.moves), err
		}
	}
	s.cfg.Logf(config.GameEvents, "game %s: loaded %d plies, %d distinct positions\n",
		s.ID, len(s.moves), s.tracker.UniqueCount())
	return len(s.moves), nil
}

// MoveLog returns a copy of the committed moves.
func (s *Session) MoveLog() []chess.Move {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]chess.Move(nil), s.moves...)
}

// SANLog returns the committed moves in SAN.
func (s *Session) SANLog() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.moves))
	pos := s.start
	for _, m := range s.moves {
		out = append(out, notation.Render(pos, m))
		pos = engine.MakeMove(pos, m).Position
	}
	return out
}

// PositionAtPly replays the move log from the start position and returns the
// position after ply moves. Ply 0 is the start position.
func (s *Session) PositionAtPly(ply int) (*chess.Position, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if ply < 0 || ply > len(s.moves) {
		return nil, errors.Wrapf(errors.ErrInvalidOperation, "ply %d outside 0..%d", ply, len(s.moves))
	}
	pos := s.start
	for i, m := range s.moves[:ply] {
		t := engine.MakeMove(pos, m)
		if !t.Status.IsDone() {
			return nil, &errors.GameError{Err: errors.ErrIllegalMove, GameID: s.ID, PlyNum: i + 1, MoveText: m.String()}
		}
		pos = t.Position
	}
	return pos, nil
}

// Outcome classifies the current position.
func (s *Session) Outcome() Outcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return classify(s.pos, s.tracker)
}

// IsGameOver reports whether the current position ends the game.
func (s *Session) IsGameOver() bool {
	return s.Outcome().IsOver()
}

// ComputerMove asks strategy for a move on the current position and commits
// it. It returns ErrGameOver when the game has ended.
func (s *Session) ComputerMove(strategy search.MoveStrategy) (chess.Move, error) {
	pos := s.Position()
	if o := s.Outcome(); o.IsOver() {
		return chess.NullMove, s.lockedError(errors.ErrGameOver, o.String())
	}

	move := strategy.ChooseMove(pos)
	if move.IsNull() {
		return chess.NullMove, s.lockedError(errors.ErrGameOver, "no legal move")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos != pos {
		return chess.NullMove, s.gameError(errors.ErrInvalidOperation, move.String())
	}
	if _, err := s.commit(move); err != nil {
		return chess.NullMove, err
	}
	return move, nil
}

func (s *Session) lockedError(err error, text string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gameError(err, text)
}

// Strategy builds the move strategy configured for this session, sharing its
// repetition history.
func (s *Session) Strategy() (search.MoveStrategy, error) {
	return search.NewFromConfig(s.cfg, s.tracker)
}

package search

import (
	"math"
	"sync/atomic"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/worker"
)

// MiniMax searches every legal line to a fixed depth. White maximises and
// Black minimises; among equal values the earliest root move wins.
type MiniMax struct {
	depth     int
	evaluator Evaluator
	workers   int
	cfg       *config.Config
	nodes     int64
}

// MiniMaxOption configures a MiniMax.
type MiniMaxOption func(*MiniMax)

// WithEvaluator replaces the StandardEvaluator.
func WithEvaluator(e Evaluator) MiniMaxOption {
	return func(m *MiniMax) {
		if e != nil {
			m.evaluator = e
		}
	}
}

// WithWorkers scores root moves on n goroutines. The choice is the same as
// the sequential search.
func WithWorkers(n int) MiniMaxOption {
	return func(m *MiniMax) {
		if n >= 1 {
			m.workers = n
		}
	}
}

// WithConfig sets the configuration used for logging.
func WithConfig(cfg *config.Config) MiniMaxOption {
	return func(m *MiniMax) {
		m.cfg = cfg
	}
}

// NewMiniMax creates a minimax search of the given depth in plies.
// Depths below 1 are raised to 1.
func NewMiniMax(depth int, opts ...MiniMaxOption) *MiniMax {
	if depth < 1 {
		depth = 1
	}
	m := &MiniMax{
		depth:     depth,
		evaluator: StandardEvaluator{},
		workers:   1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// String returns the strategy name.
func (m *MiniMax) String() string {
	return "MiniMax"
}

// Depth returns the search depth in plies.
func (m *MiniMax) Depth() int {
	return m.depth
}

// Nodes returns the number of positions visited by the last ChooseMove.
func (m *MiniMax) Nodes() int64 {
	return atomic.LoadInt64(&m.nodes)
}

// RootScore is the minimax value of one root move.
type RootScore struct {
	Move  chess.Move
	Score int
}

// ChooseMove implements MoveStrategy. It returns NullMove when the side to
// move has no legal move.
func (m *MiniMax) ChooseMove(pos *chess.Position) chess.Move {
	scores := m.ScoreRootMoves(pos)
	if len(scores) == 0 {
		return chess.NullMove
	}

	white := pos.NextMoveMaker() == chess.White
	best := scores[0]
	for _, s := range scores[1:] {
		if (white && s.Score > best.Score) || (!white && s.Score < best.Score) {
			best = s
		}
	}

	m.cfg.Logf(config.Commentary, "%s %s depth %d: %s (%d) after %d nodes\n",
		m, pos.NextMoveMaker(), m.depth, best.Move, best.Score, m.Nodes())
	return best.Move
}

// ScoreRootMoves returns the minimax value of every legal root move in
// generation order.
func (m *MiniMax) ScoreRootMoves(pos *chess.Position) []RootScore {
	atomic.StoreInt64(&m.nodes, 0)
	transitions := engine.CurrentPlayer(pos).Transitions()
	scores := make([]RootScore, len(transitions))

	if m.workers <= 1 || len(transitions) < 2 {
		for i, t := range transitions {
			scores[i] = RootScore{Move: t.Move, Score: m.value(t.Position, m.depth-1)}
		}
		return scores
	}

	moves := make([]chess.Move, len(transitions))
	for i, t := range transitions {
		moves[i] = t.Move
	}
	results := worker.ScoreMoves(moves, func(item worker.WorkItem) worker.ProcessResult {
		next := transitions[item.Index].Position
		return worker.ProcessResult{
			Move:     item.Move,
			Index:    item.Index,
			Position: next,
			Score:    m.value(next, m.depth-1),
		}
	}, worker.WithWorkers(m.workers), worker.WithBufferSize(len(moves)))

	for i, r := range results {
		scores[i] = RootScore{Move: r.Move, Score: r.Score}
	}
	return scores
}

// value dispatches to max or min depending on the side to move.
func (m *MiniMax) value(pos *chess.Position, depth int) int {
	if pos.NextMoveMaker() == chess.White {
		return m.max(pos, depth)
	}
	return m.min(pos, depth)
}

func (m *MiniMax) max(pos *chess.Position, depth int) int {
	atomic.AddInt64(&m.nodes, 1)
	if depth <= 0 {
		return m.evaluator.Evaluate(pos, depth)
	}
	transitions := engine.CurrentPlayer(pos).Transitions()
	if len(transitions) == 0 {
		return m.evaluator.Evaluate(pos, depth)
	}

	highest := math.MinInt
	for _, t := range transitions {
		if v := m.min(t.Position, depth-1); v > highest {
			highest = v
		}
	}
	return highest
}

func (m *MiniMax) min(pos *chess.Position, depth int) int {
	atomic.AddInt64(&m.nodes, 1)
	if depth <= 0 {
		return m.evaluator.Evaluate(pos, depth)
	}
	transitions := engine.CurrentPlayer(pos).Transitions()
	if len(transitions) == 0 {
		return m.evaluator.Evaluate(pos, depth)
	}

	lowest := math.MaxInt
	for _, t := range transitions {
		if v := m.max(t.Position, depth-1); v < lowest {
			lowest = v
		}
	}
	return lowest
}

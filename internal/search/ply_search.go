package search

import (
	"math"
	"math/rand"
	"time"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
)

// RepetitionChecker answers whether committing a position would complete a
// threefold repetition. hashing.RepetitionTracker satisfies it.
type RepetitionChecker interface {
	WouldBeThreefold(pos *chess.Position) bool
}

// Bucket classifies the outcome of a root move in ply search.
type Bucket int

const (
	Normal Bucket = iota
	Mate
	Draw
)

// String returns the bucket name.
func (b Bucket) String() string {
	switch b {
	case Mate:
		return "mate"
	case Draw:
		return "draw"
	default:
		return "normal"
	}
}

// PlyScore is the side-relative score and bucket of one root move.
type PlyScore struct {
	Move   chess.Move
	Score  int
	Bucket Bucket
}

// PlySearch looks one or two plies ahead. Mating moves come first, then
// normal moves, then drawing moves. At two plies it picks uniformly among
// the normal moves within Margin of the best.
type PlySearch struct {
	depth            int
	evaluator        Evaluator
	tracker          RepetitionChecker
	rng              *rand.Rand
	margin           int
	mateBonus        int
	winningThreshold int
	cfg              *config.Config
}

// NewPlySearch creates a ply search of depth 1 or 2 from the search
// settings. A nil tracker never reports repetitions; a nil sc uses the
// defaults.
func NewPlySearch(depth int, tracker RepetitionChecker, sc *config.SearchConfig) *PlySearch {
	if sc == nil {
		sc = config.NewSearchConfig()
	}
	if depth < 1 {
		depth = 1
	}
	if depth > 2 {
		depth = 2
	}
	seed := sc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PlySearch{
		depth:            depth,
		evaluator:        StandardEvaluator{},
		tracker:          tracker,
		rng:              rand.New(rand.NewSource(seed)),
		margin:           sc.Margin,
		mateBonus:        sc.MateBonus,
		winningThreshold: sc.WinningThreshold,
	}
}

// WithLogging sets the configuration used for logging and returns p.
func (p *PlySearch) WithLogging(cfg *config.Config) *PlySearch {
	p.cfg = cfg
	return p
}

// String returns the strategy name.
func (p *PlySearch) String() string {
	return "PlySearch"
}

// Depth returns 1 or 2.
func (p *PlySearch) Depth() int {
	return p.depth
}

// ChooseMove implements MoveStrategy. It returns NullMove when the side to
// move has no legal move.
func (p *PlySearch) ChooseMove(pos *chess.Position) chess.Move {
	scores := p.ScoreMoves(pos)
	if len(scores) == 0 {
		return chess.NullMove
	}

	if best, ok := bestIn(scores, Mate); ok {
		p.cfg.Logf(config.Commentary, "%s: mating move %s\n", p, best.Move)
		return best.Move
	}
	if best, ok := bestIn(scores, Normal); ok {
		if p.depth == 1 {
			return best.Move
		}
		near := p.nearBest(scores, best.Score)
		choice := near[p.rng.Intn(len(near))]
		p.cfg.Logf(config.Commentary, "%s: %d moves within %d of %d, chose %s\n",
			p, len(near), p.margin, best.Score, choice.Move)
		return choice.Move
	}
	best, _ := bestIn(scores, Draw)
	p.cfg.Logf(config.Commentary, "%s: only drawing moves, chose %s\n", p, best.Move)
	return best.Move
}

// bestIn returns the first highest-scoring move of the bucket.
func bestIn(scores []PlyScore, b Bucket) (PlyScore, bool) {
	var best PlyScore
	found := false
	for _, s := range scores {
		if s.Bucket != b {
			continue
		}
		if !found || s.Score > best.Score {
			best = s
			found = true
		}
	}
	return best, found
}

func (p *PlySearch) nearBest(scores []PlyScore, best int) []PlyScore {
	var near []PlyScore
	for _, s := range scores {
		if s.Bucket == Normal && s.Score >= best-p.margin {
			near = append(near, s)
		}
	}
	return near
}

// ScoreMoves classifies and scores every legal move from the mover's point
// of view, in generation order.
func (p *PlySearch) ScoreMoves(pos *chess.Position) []PlyScore {
	mover := pos.NextMoveMaker()
	sign := Perspective(mover)
	winning := sign*p.evaluator.Evaluate(pos, 0) > p.winningThreshold

	transitions := engine.CurrentPlayer(pos).Transitions()
	scores := make([]PlyScore, 0, len(transitions))
	for _, t := range transitions {
		scores = append(scores, p.scoreMove(t, sign, winning))
	}
	return scores
}

func (p *PlySearch) scoreMove(t engine.MoveTransition, sign int, winning bool) PlyScore {
	next := t.Position
	reply := engine.CurrentPlayer(next)

	switch {
	case reply.IsInCheckMate():
		return PlyScore{Move: t.Move, Bucket: Mate,
			Score: p.mateBonus + sign*p.evaluator.Evaluate(next, p.depth-1)}
	case reply.IsInStaleMate(), p.wouldRepeat(next):
		return PlyScore{Move: t.Move, Bucket: Draw}
	}

	if p.depth == 1 {
		return PlyScore{Move: t.Move, Score: sign * p.evaluator.Evaluate(next, 0)}
	}

	// The opponent answers with the reply that is worst for the mover.
	worst := math.MaxInt
	for _, r := range reply.Transitions() {
		var score int
		answer := engine.CurrentPlayer(r.Position)
		switch {
		case answer.IsInCheckMate():
			score = -p.mateBonus
		case answer.IsInStaleMate():
			score = 0
		case winning && p.wouldRepeat(r.Position):
			score = 0
		default:
			score = sign * p.evaluator.Evaluate(r.Position, 0)
		}
		if score < worst {
			worst = score
		}
	}
	return PlyScore{Move: t.Move, Score: worst}
}

func (p *PlySearch) wouldRepeat(pos *chess.Position) bool {
	return p.tracker != nil && p.tracker.WouldBeThreefold(pos)
}

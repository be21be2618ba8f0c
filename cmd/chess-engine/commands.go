package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/engine"
	"github.com/lgbarn/minimax-chess-go/internal/game"
	"github.com/lgbarn/minimax-chess-go/internal/notation"
)

// runPerft prints the leaf count for every depth from 1 to maxDepth.
func runPerft(w io.Writer, pos *chess.Position, maxDepth int) error {
	for d := 1; d <= maxDepth; d++ {
		start := time.Now()
		nodes := engine.Perft(pos, d)
		fmt.Fprintf(w, "perft %d: %d (%s)\n", d, nodes, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// runDivide prints the leaf count below each root move in coordinate order.
func runDivide(w io.Writer, pos *chess.Position, depth int) error {
	counts := engine.PerftDivide(pos, depth)
	moves := maps.Keys(counts)
	slices.Sort(moves)

	var total uint64
	for _, m := range moves {
		fmt.Fprintf(w, "%s: %d\n", m, counts[m])
		total += counts[m]
	}
	fmt.Fprintf(w, "\nmoves: %d\nnodes: %d\n", len(moves), total)
	return nil
}

// runBestMove prints the move the configured strategy chooses.
func runBestMove(w io.Writer, session *game.Session) error {
	pos := session.Position()
	if o := session.Outcome(); o.IsOver() {
		fmt.Fprintf(w, "%s %s\n", o, o.Result(pos))
		return nil
	}

	strategy, err := session.Strategy()
	if err != nil {
		return err
	}
	start := time.Now()
	move := strategy.ChooseMove(pos)
	session.Config().Logf(config.Commentary, "%v chose %s in %s\n", strategy, move.UCI(), time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(w, "bestmove %s\n", notation.Format(pos, move, session.Config()))
	return nil
}

// runSelfPlay lets the configured strategy play both sides for up to plies
// moves and prints the resulting movetext.
func runSelfPlay(w io.Writer, session *game.Session, plies int) error {
	strategy, err := session.Strategy()
	if err != nil {
		return err
	}

	already := len(session.MoveLog())
	for i := 0; i < plies && !session.IsGameOver(); i++ {
		if _, err := session.ComputerMove(strategy); err != nil {
			return err
		}
	}

	sans := session.SANLog()
	outcome := session.Outcome()
	fmt.Fprintln(w, formatMovetext(session.StartPosition(), sans, outcome.Result(session.Position())))
	if outcome.IsOver() {
		fmt.Fprintf(w, "%s after %d plies\n", outcome, len(sans))
	} else {
		fmt.Fprintf(w, "%d plies played\n", len(sans)-already)
	}
	return nil
}

// formatMovetext numbers SAN moves from start, e.g. "1. e4 e5 2. Nf3 *".
func formatMovetext(start *chess.Position, sans []string, result string) string {
	var sb strings.Builder
	moveNum := 1
	white := start.NextMoveMaker() == chess.White
	for i, san := range sans {
		switch {
		case white:
			fmt.Fprintf(&sb, "%d. ", moveNum)
		case i == 0:
			fmt.Fprintf(&sb, "%d... ", moveNum)
		}
		sb.WriteString(san)
		sb.WriteByte(' ')
		if !white {
			moveNum++
		}
		white = !white
	}
	sb.WriteString(result)
	return sb.String()
}

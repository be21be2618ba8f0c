// chess-engine plays, searches and checks chess positions from the command line.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/game"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-engine version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)

	session, err := setupSession(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, session); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches to the action selected by the flags.
func run(cfg *config.Config, session *game.Session) error {
	out := cfg.OutputFile
	switch {
	case *divideDepth > 0:
		return runDivide(out, session.Position(), *divideDepth)
	case *perftDepth > 0:
		return runPerft(out, session.Position(), *perftDepth)
	case *selfPlay > 0:
		return runSelfPlay(out, session, *selfPlay)
	default:
		return runBestMove(out, session)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupSession builds the session from -fen and plays -moves or -movesfile.
func setupSession(cfg *config.Config) (*game.Session, error) {
	session := game.NewSession(cfg)
	if *fenString != "" {
		var err error
		if session, err = game.NewSessionFromFEN(*fenString, cfg); err != nil {
			return nil, err
		}
	}

	movetext := *movesText
	if *movesFile != "" {
		data, err := os.ReadFile(*movesFile)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", *movesFile, err)
		}
		movetext = string(data)
	}
	if movetext != "" {
		if _, err := session.LoadMovetext(movetext); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-engine [options]\n\n")
	fmt.Fprintf(os.Stderr, "Searches for a move, plays the engine against itself or counts legal move trees.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -perft 4\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -moves \"1. e4 e5 2. Nf3\" -strategy minimax -depth 3\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -selfplay 40 -difficulty 1 -seed 7\n")
}

// Package errors provides sentinel errors and error types for the chess engine.
// Sentinels are checked with errors.Is(); the structured types carry session
// and parse context and unwrap to the underlying sentinel.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not among the candidate moves
	// of the player to move.
	ErrIllegalMove = errors.New("illegal move")

	// ErrLeavesPlayerInCheck indicates a move that would leave the mover's
	// own king attacked.
	ErrLeavesPlayerInCheck = errors.New("move leaves player in check")

	// ErrInvalidPosition indicates a position that violates structural
	// invariants, such as a missing king.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidOperation indicates an operation that is never valid,
	// such as executing the null move.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrNoMatchingMove indicates a notation token that matches no legal move.
	ErrNoMatchingMove = errors.New("no matching move")

	// ErrAmbiguousMove indicates a notation token that matches more than one
	// legal move under strict disambiguation.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrParseFailure indicates a general movetext parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a move request after the game has ended.
	ErrGameOver = errors.New("game over")
)

// GameError wraps errors with session context: the game id, the ply at
// which the failure occurred and the offending move text.
type GameError struct {
	Err      error  // The underlying error
	GameID   string // Session identifier
	PlyNum   int    // 1-based ply number (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, "game "+e.GameID)
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	default:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError represents a parse failure in a FEN string or movetext,
// located by field or token index.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Field    int    // 1-based field or token index (0 if unknown)
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field > 0 {
		parts = append(parts, fmt.Sprintf("field %d", e.Field))
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

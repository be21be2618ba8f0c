package notation

import (
	"strings"
)

// Results that terminate movetext.
var results = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// Tokenize extracts the main-line SAN tokens from movetext. Tag pair lines,
// brace and semicolon comments, variations, NAGs, move numbers and game
// results are dropped.
func Tokenize(movetext string) []string {
	var tokens []string
	var word strings.Builder
	ravLevel := 0
	inBrace := false
	inLineComment := false
	atLineStart := true

	flush := func() {
		if word.Len() == 0 {
			return
		}
		if w := stripMoveNumber(word.String()); w != "" && ravLevel == 0 && !results[w] {
			tokens = append(tokens, w)
		}
		word.Reset()
	}

	for i := 0; i < len(movetext); i++ {
		c := movetext[i]

		switch {
		case inLineComment:
			if c == '\n' {
				inLineComment = false
				atLineStart = true
			}
			continue
		case inBrace:
			if c == '}' {
				inBrace = false
			}
			continue
		}

		if atLineStart && c == '[' {
			// Tag pair: skip to end of line.
			for i < len(movetext) && movetext[i] != '\n' {
				i++
			}
			continue
		}
		atLineStart = c == '\n'

		switch c {
		case ' ', '\t', '\r', '\n':
			flush()
		case '{':
			flush()
			inBrace = true
		case ';':
			flush()
			inLineComment = true
		case '(':
			flush()
			ravLevel++
		case ')':
			flush()
			if ravLevel > 0 {
				ravLevel--
			}
		case '$':
			flush()
			for i+1 < len(movetext) && movetext[i+1] >= '0' && movetext[i+1] <= '9' {
				i++
			}
		default:
			word.WriteByte(c)
		}
	}
	flush()
	return tokens
}

// stripMoveNumber removes a leading "12." or "12..." from w.
func stripMoveNumber(w string) string {
	i := 0
	for i < len(w) && w[i] >= '0' && w[i] <= '9' {
		i++
	}
	if i == 0 || i == len(w) || w[i] != '.' {
		return w
	}
	return strings.TrimLeft(w[i:], ".")
}
